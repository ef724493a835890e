package adyen

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/domain"
	"payment-connector-engine/internal/domain/auth"
)

func TestMapResultCode(t *testing.T) {
	cases := []struct {
		result   string
		capture  domain.CaptureMethod
		expected domain.AttemptStatus
	}{
		{"Authorised", domain.CaptureAutomatic, domain.AttemptCharged},
		{"Authorised", domain.CaptureManual, domain.AttemptAuthorized},
		{"PartiallyAuthorised", domain.CaptureAutomatic, domain.AttemptPartialCharged},
		{"RedirectShopper", domain.CaptureAutomatic, domain.AttemptAuthenticationPending},
		{"Received", domain.CaptureAutomatic, domain.AttemptPending},
		{"Refused", domain.CaptureAutomatic, domain.AttemptAuthorizationFailed},
		{"Cancelled", domain.CaptureAutomatic, domain.AttemptVoided},
		{"Error", domain.CaptureAutomatic, domain.AttemptFailure},
		{"SomethingUnseen", domain.CaptureAutomatic, domain.AttemptPending},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, mapResultCode(c.result, c.capture), "resultCode=%s capture=%s", c.result, c.capture)
	}
}

func TestHeadersFor_RejectsMissingAPIKey(t *testing.T) {
	_, err := headersFor(auth.Descriptor{})
	assert.Error(t, err)
}

// TestGetErrorResponse_401InvalidAPIKey exercises the same upstream-401
// shape spec.md's worked scenarios document for a rejected credential
// (error_type/error_code pair, status_code 401, attempt_status failure).
// No pack example and no chosen connector speaks Checkout.com's envelope,
// but Adyen's own error envelope carries the same three fields, so this
// case is demonstrated against it instead.
func TestGetErrorResponse_401InvalidAPIKey(t *testing.T) {
	c := &client{}
	raw := connector.RawResponse{
		StatusCode: http.StatusUnauthorized,
		Body:       []byte(`{"status":401,"errorCode":"invalid_api_key","message":"authentication_error","errorType":"security"}`),
	}
	errResp, err := c.getErrorResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "invalid_api_key", errResp.Code)
	assert.Equal(t, "authentication_error", errResp.Message)
	assert.Equal(t, domain.AttemptFailure, errResp.AttemptStatus)
}
