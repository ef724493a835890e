// Package auth defines the discriminated union of credential shapes a
// request carries per call (spec C3). Exactly one scheme is populated at a
// time; which one is selected by the caller via the x-auth metadata key.
package auth

import "payment-connector-engine/internal/domain"

// Scheme names the credential shape, mirroring the gRPC x-auth metadata
// values bit-exact (spec §6).
type Scheme string

const (
	SchemeHeaderKey    Scheme = "header-key"
	SchemeBodyKey      Scheme = "body-key"
	SchemeSignatureKey Scheme = "signature-key"
	SchemeMultiAuthKey Scheme = "multi-auth-key"
	SchemeCurrencyAuth Scheme = "currency-auth-key"
)

// Descriptor is the closed set of authentication shapes a connector may be
// handed. Only the fields relevant to Scheme are populated; connectors read
// the Scheme first and then the fields that scheme defines.
type Descriptor struct {
	Scheme Scheme

	APIKey    domain.Redacted
	Key1      domain.Redacted
	APISecret domain.Redacted
	Key2      domain.Redacted

	// CurrencyKeys is populated only for SchemeCurrencyAuth: one credential
	// set per supported settlement currency.
	CurrencyKeys map[domain.Currency]Descriptor
}

// HeaderKey builds a Descriptor for the single-API-key scheme.
func HeaderKey(apiKey string) Descriptor {
	return Descriptor{Scheme: SchemeHeaderKey, APIKey: domain.NewRedacted(apiKey)}
}

// BodyKey builds a Descriptor for gateways that embed credentials in the
// request body rather than a header.
func BodyKey(apiKey, key1 string) Descriptor {
	return Descriptor{Scheme: SchemeBodyKey, APIKey: domain.NewRedacted(apiKey), Key1: domain.NewRedacted(key1)}
}

// SignatureKey builds a Descriptor for HMAC-signed gateways.
func SignatureKey(apiKey, key1, apiSecret string) Descriptor {
	return Descriptor{
		Scheme:    SchemeSignatureKey,
		APIKey:    domain.NewRedacted(apiKey),
		Key1:      domain.NewRedacted(key1),
		APISecret: domain.NewRedacted(apiSecret),
	}
}

// MultiAuthKey builds a Descriptor for gateways needing four credential
// parts (e.g. Elavon's merchant/user/pin/processor quadruplet).
func MultiAuthKey(apiKey, key1, apiSecret, key2 string) Descriptor {
	return Descriptor{
		Scheme:    SchemeMultiAuthKey,
		APIKey:    domain.NewRedacted(apiKey),
		Key1:      domain.NewRedacted(key1),
		APISecret: domain.NewRedacted(apiSecret),
		Key2:      domain.NewRedacted(key2),
	}
}

// Validate reports whether the populated fields match what Scheme requires.
// A malformed signature-key credential (e.g. an empty secret) is an
// Unauthorized condition caught here, before any outbound call (spec §8
// boundary behavior: "Signature key present but malformed -> Unauthorized,
// no egress").
func (d Descriptor) Validate() error {
	switch d.Scheme {
	case SchemeHeaderKey:
		if d.APIKey == "" {
			return errMissing("x-api-key")
		}
	case SchemeBodyKey:
		if d.APIKey == "" || d.Key1 == "" {
			return errMissing("x-api-key/x-key1")
		}
	case SchemeSignatureKey:
		if d.APIKey == "" || d.Key1 == "" || d.APISecret == "" {
			return errMissing("x-api-key/x-key1/x-api-secret")
		}
	case SchemeMultiAuthKey:
		if d.APIKey == "" || d.Key1 == "" || d.APISecret == "" || d.Key2 == "" {
			return errMissing("x-api-key/x-key1/x-api-secret/x-key2")
		}
	case SchemeCurrencyAuth:
		if len(d.CurrencyKeys) == 0 {
			return errMissing("currency credential set")
		}
	default:
		return errMissing("x-auth")
	}
	return nil
}

type validationError struct{ field string }

func (e *validationError) Error() string { return "malformed auth descriptor: missing " + e.field }

func errMissing(field string) error { return &validationError{field: field} }

// ForCurrency resolves the credential set to use for a multi-currency
// merchant; it is a no-op passthrough for every other scheme.
func (d Descriptor) ForCurrency(c domain.Currency) Descriptor {
	if d.Scheme != SchemeCurrencyAuth {
		return d
	}
	if sub, ok := d.CurrencyKeys[c]; ok {
		return sub
	}
	return d
}
