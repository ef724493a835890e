package authorizenet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payment-connector-engine/internal/domain"
)

func TestMapStatus(t *testing.T) {
	cases := []struct {
		name       string
		resultCode string
		respCode   string
		operation  string
		expected   domain.AttemptStatus
	}{
		{"approved authOnly", "Ok", "1", "authOnlyTransaction", domain.AttemptAuthorized},
		{"approved authCapture", "Ok", "1", "authCaptureTransaction", domain.AttemptCharged},
		{"approved priorAuthCapture", "Ok", "1", "priorAuthCaptureTransaction", domain.AttemptCharged},
		{"declined", "Ok", "2", "authCaptureTransaction", domain.AttemptAuthorizationFailed},
		{"held for review", "Ok", "4", "authCaptureTransaction", domain.AttemptPending},
		{"non-ok result", "Error", "1", "authCaptureTransaction", domain.AttemptAuthorizationFailed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, mapStatus(c.resultCode, c.respCode, c.operation))
		})
	}
}

func TestAmountMajor(t *testing.T) {
	assert.Equal(t, "5.00", amountMajor(500, "USD"))
	assert.Equal(t, "19.99", amountMajor(1999, "USD"))
}
