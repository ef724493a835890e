package elavon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payment-connector-engine/internal/domain"
)

func TestMapTransactionStatus(t *testing.T) {
	cases := []struct {
		transStatus string
		txnType     string
		expected    domain.AttemptStatus
	}{
		{"STL", "Sale", domain.AttemptCharged},
		{"OPN", "AuthOnly", domain.AttemptAuthorized},
		{"OPN", "Sale", domain.AttemptPending},
		{"FPR", "Sale", domain.AttemptFailure},
		{"FPR", "AuthOnly", domain.AttemptFailure},
		{"PEN", "Sale", domain.AttemptPending},
		{"VOD", "Sale", domain.AttemptVoided},
		{"XXX", "Sale", domain.AttemptPending},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, mapTransactionStatus(c.transStatus, c.txnType), "transStatus=%s txnType=%s", c.transStatus, c.txnType)
	}
}
