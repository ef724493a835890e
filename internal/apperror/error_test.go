package apperror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestToStatus(t *testing.T) {
	cases := []struct {
		kind     Kind
		expected codes.Code
	}{
		{InvalidArgument, codes.InvalidArgument},
		{MissingField, codes.InvalidArgument},
		{NotImplemented, codes.Unimplemented},
		{Unauthorized, codes.Unauthenticated},
		{Network, codes.Internal},
		{ResponseDeserialization, codes.Internal},
		{UpstreamServerError, codes.Internal},
		{UpstreamRejected, codes.OK},
		{WebhookVerificationFailed, codes.OK},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, c.kind.ToStatus())
	}
}

func TestNewUpstreamRejected_FallsBackToSentinels(t *testing.T) {
	e := NewUpstreamRejected("", "")
	assert.Equal(t, "NO_ERROR_CODE", e.Code)
	assert.Equal(t, "upstream rejected the request", e.Message)
}

func TestNewUpstreamRejected_KeepsGivenValues(t *testing.T) {
	e := NewUpstreamRejected("DECLINED", "card declined")
	assert.Equal(t, "DECLINED", e.Code)
	assert.Equal(t, "card declined", e.Message)
}

func TestErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	e := NewNetwork(cause)
	assert.ErrorIs(t, e, cause)
}
