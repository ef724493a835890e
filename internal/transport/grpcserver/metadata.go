package grpcserver

import (
	"context"

	"google.golang.org/grpc/metadata"

	"payment-connector-engine/internal/apperror"
	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/domain/auth"
)

// md1 returns the first value of a lowercased incoming metadata key, or "".
func md1(md metadata.MD, key string) string {
	vs := md.Get(key)
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// connectorFromContext reads the x-connector metadata key (spec §6).
func connectorFromContext(ctx context.Context) (connector.ID, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", apperror.NewMissingField("x-connector")
	}
	id := md1(md, "x-connector")
	if id == "" {
		return "", apperror.NewMissingField("x-connector")
	}
	return connector.ID(id), nil
}

// authFromContext builds an auth.Descriptor from the x-auth/x-api-key/
// x-key1/x-api-secret/x-key2 metadata keys (spec §6) and validates it
// before any outbound call is ever attempted.
func authFromContext(ctx context.Context) (auth.Descriptor, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return auth.Descriptor{}, apperror.NewMissingField("x-auth")
	}
	scheme := md1(md, "x-auth")
	apiKey := md1(md, "x-api-key")
	key1 := md1(md, "x-key1")
	apiSecret := md1(md, "x-api-secret")
	key2 := md1(md, "x-key2")

	var d auth.Descriptor
	switch auth.Scheme(scheme) {
	case auth.SchemeHeaderKey:
		d = auth.HeaderKey(apiKey)
	case auth.SchemeBodyKey:
		d = auth.BodyKey(apiKey, key1)
	case auth.SchemeSignatureKey:
		d = auth.SignatureKey(apiKey, key1, apiSecret)
	case auth.SchemeMultiAuthKey:
		d = auth.MultiAuthKey(apiKey, key1, apiSecret, key2)
	default:
		return auth.Descriptor{}, apperror.NewInvalidArgument("x-auth", "unrecognized scheme: "+scheme)
	}
	if err := d.Validate(); err != nil {
		return auth.Descriptor{}, apperror.NewUnauthorized()
	}
	return d, nil
}

// toRPCError maps an apperror.Error (or any error) to the gRPC status it
// crosses the wire as (spec §7). UpstreamRejected/WebhookVerificationFailed
// never reach here since those are encoded inside a successful response.
func toRPCError(err error) error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*apperror.Error); ok {
		return statusError(ae.Kind.ToStatus(), ae.Error())
	}
	return err
}

// lowercaseHeaders normalizes an incoming webhook's raw header map so
// connector code can do exact-key lookups regardless of what casing the
// gateway sent (spec C10 step 1 precondition).
func lowercaseHeaders(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[toLower(k)] = v
	}
	return out
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
