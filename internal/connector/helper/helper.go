// Package helper holds the small set of generic functions shared across
// per-connector modules (spec C12 / design note §9: prefer explicit
// per-connector modules with shared helpers over macro-generated
// boilerplate when the flow count per connector stays at or below ten).
package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"payment-connector-engine/internal/apperror"
	"payment-connector-engine/internal/connector"
)

// DecodeJSON unmarshals a raw gateway body into the connector-specific
// intermediate type T, wrapping a parse failure as the canonical
// ResponseDeserialization error so every connector reports decode
// failures the same way.
func DecodeJSON[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, apperror.NewResponseDeserialization(err.Error())
	}
	return out, nil
}

// HMACSHA256Hex computes an HMAC-SHA256 over msg using key, hex-encoded —
// the scheme Razorpay documents for webhook/signature verification
// (Adyen's webhook signature is base64-encoded instead).
func HMACSHA256Hex(key, msg []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return hex.EncodeToString(mac.Sum(nil))
}

// HMACSHA512Hex computes an HMAC-SHA512 over msg using key, hex-encoded —
// the scheme a handful of gateways (e.g. Elavon's SHA-512 hashcode
// variant) document instead of SHA-256.
func HMACSHA512Hex(key, msg []byte) string {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg)
	return hex.EncodeToString(mac.Sum(nil))
}

// ConstantTimeEqual compares two signatures without leaking timing
// information, as spec §8's testable properties require of every webhook
// verification step.
func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// ClassifyByStatus reports whether an HTTP status code is in the 2xx
// success class ("2xx is success, else error"). The executor applies the
// same rule inline when choosing between a connector's HandleResponse and
// GetErrorResponse; it does not call this function.
func ClassifyByStatus(statusCode int) (isSuccess bool) {
	return statusCode >= 200 && statusCode < 300
}

// AuthHeader builds a single masked Authorization-style header from a
// redacted credential, the common shape for HeaderKey/BodyKey schemes
// across connectors.
func AuthHeader(name, scheme, value string) connector.Header {
	v := value
	if scheme != "" {
		v = scheme + " " + value
	}
	return connector.Header{Name: name, Value: v, Masked: true}
}

// JSONContentType is the Content-Type header for a ContentJSON body.
func JSONContentType() connector.Header {
	return connector.Header{Name: "Content-Type", Value: "application/json"}
}

// FormContentType is the Content-Type header for a ContentFormURLEncoded body.
func FormContentType() connector.Header {
	return connector.Header{Name: "Content-Type", Value: "application/x-www-form-urlencoded"}
}

// RequirePathParam validates that a required path/identifier parameter
// extracted from the request is non-empty before a URL is spliced
// together, per spec C5's "missing required field -> MissingField before
// any outbound call" contract.
func RequirePathParam(name, value string) error {
	if value == "" {
		return apperror.NewMissingField(name)
	}
	return nil
}

// BuildURL splices a base URL and a path, avoiding the classic
// double/missing-slash bug when either side already carries one.
func BuildURL(base, path string) string {
	if len(base) == 0 {
		return path
	}
	if base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	if len(path) > 0 && path[0] != '/' {
		path = "/" + path
	}
	return fmt.Sprintf("%s%s", base, path)
}
