package grpcserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/domain/auth"
)

func ctxWithMD(pairs ...string) context.Context {
	md := metadata.Pairs(pairs...)
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestConnectorFromContext(t *testing.T) {
	ctx := ctxWithMD("x-connector", "adyen")
	id, err := connectorFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, connector.Adyen, id)
}

func TestConnectorFromContext_Missing(t *testing.T) {
	_, err := connectorFromContext(context.Background())
	assert.Error(t, err)
}

func TestAuthFromContext_HeaderKey(t *testing.T) {
	ctx := ctxWithMD("x-auth", "header-key", "x-api-key", "sk_test_123")
	d, err := authFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.SchemeHeaderKey, d.Scheme)
	assert.Equal(t, "sk_test_123", d.APIKey.ExposeSecret())
}

func TestAuthFromContext_MultiAuthKey(t *testing.T) {
	ctx := ctxWithMD(
		"x-auth", "multi-auth-key",
		"x-api-key", "merchant1",
		"x-key1", "user1",
		"x-api-secret", "pin1",
		"x-key2", "processor1",
	)
	d, err := authFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.SchemeMultiAuthKey, d.Scheme)
	assert.Equal(t, "processor1", d.Key2.ExposeSecret())
}

func TestAuthFromContext_MalformedSignatureKeyIsUnauthorized(t *testing.T) {
	ctx := ctxWithMD("x-auth", "signature-key", "x-api-key", "only-key")
	_, err := authFromContext(ctx)
	assert.Error(t, err)
}

func TestAuthFromContext_UnrecognizedScheme(t *testing.T) {
	ctx := ctxWithMD("x-auth", "not-a-real-scheme")
	_, err := authFromContext(ctx)
	assert.Error(t, err)
}

func TestLowercaseHeaders(t *testing.T) {
	out := lowercaseHeaders(map[string]string{"X-Signature": "abc", "content-type": "application/json"})
	assert.Equal(t, "abc", out["x-signature"])
	assert.Equal(t, "application/json", out["content-type"])
}
