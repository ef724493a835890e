package razorpay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payment-connector-engine/internal/domain"
)

func TestMapPaymentStatus(t *testing.T) {
	cases := []struct {
		status   string
		expected domain.AttemptStatus
	}{
		{"created", domain.AttemptStarted},
		{"authorized", domain.AttemptAuthorized},
		{"captured", domain.AttemptCharged},
		{"refunded", domain.AttemptAutoRefunded},
		{"failed", domain.AttemptAuthorizationFailed},
		{"unknown", domain.AttemptPending},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, mapPaymentStatus(c.status), "status=%s", c.status)
	}
}

func TestMapRefundStatus(t *testing.T) {
	cases := []struct {
		status   string
		expected domain.RefundStatus
	}{
		{"processed", domain.RefundSuccess},
		{"failed", domain.RefundFailure},
		{"pending", domain.RefundPending},
		{"unknown", domain.RefundPending},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, mapRefundStatus(c.status), "status=%s", c.status)
	}
}
