// Package apperror defines the engine's closed error taxonomy (spec §7)
// and its single projection onto gRPC status codes. Every error that
// crosses a package boundary inside the engine is either an *apperror.Error
// or gets wrapped into one at the RPC boundary; no other error shape is
// allowed to leak into a transport response.
package apperror

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

// Kind is the closed set of error categories the engine distinguishes.
type Kind int

const (
	InvalidArgument Kind = iota
	MissingField
	NotImplemented
	Unauthorized
	Network
	ResponseDeserialization
	UpstreamRejected
	UpstreamServerError
	WebhookVerificationFailed
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case MissingField:
		return "missing_field"
	case NotImplemented:
		return "not_implemented"
	case Unauthorized:
		return "unauthorized"
	case Network:
		return "network"
	case ResponseDeserialization:
		return "response_deserialization"
	case UpstreamRejected:
		return "upstream_rejected"
	case UpstreamServerError:
		return "upstream_server_error"
	case WebhookVerificationFailed:
		return "webhook_verification_failed"
	default:
		return "unknown"
	}
}

// Error is the engine-wide error type. Field is populated for
// InvalidArgument/MissingField; Code/Message for UpstreamRejected;
// StatusCode for UpstreamServerError; Cause wraps the underlying transport
// error for Network.
type Error struct {
	Kind    Kind
	Field   string
	Reason  string
	Code    string
	Message string
	StatusCode int
	Cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidArgument:
		return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
	case MissingField:
		return fmt.Sprintf("missing required field %q", e.Field)
	case NotImplemented:
		return fmt.Sprintf("not implemented: %s", e.Reason)
	case Unauthorized:
		return "unauthorized: gateway rejected credentials"
	case Network:
		if e.Cause != nil {
			return fmt.Sprintf("network error: %s", e.Cause.Error())
		}
		return "network error"
	case ResponseDeserialization:
		return fmt.Sprintf("could not parse gateway response: %s", e.Reason)
	case UpstreamRejected:
		return fmt.Sprintf("upstream rejected [%s]: %s", e.Code, e.Message)
	case UpstreamServerError:
		return fmt.Sprintf("upstream server error (status %d)", e.StatusCode)
	case WebhookVerificationFailed:
		return "webhook signature verification failed"
	default:
		return "unknown engine error"
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewInvalidArgument builds an InvalidArgument error.
func NewInvalidArgument(field, reason string) *Error {
	return &Error{Kind: InvalidArgument, Field: field, Reason: reason}
}

// NewMissingField builds a MissingField error.
func NewMissingField(field string) *Error {
	return &Error{Kind: MissingField, Field: field}
}

// NewNotImplemented builds a NotImplemented error.
func NewNotImplemented(what string) *Error {
	return &Error{Kind: NotImplemented, Reason: what}
}

// NewUnauthorized builds an Unauthorized error.
func NewUnauthorized() *Error {
	return &Error{Kind: Unauthorized}
}

// NewNetwork wraps a transport-layer failure (dial, TLS, timeout).
func NewNetwork(cause error) *Error {
	return &Error{Kind: Network, Cause: cause}
}

// NewResponseDeserialization builds a ResponseDeserialization error.
func NewResponseDeserialization(reason string) *Error {
	return &Error{Kind: ResponseDeserialization, Reason: reason}
}

// NewUpstreamRejected builds an UpstreamRejected error. code/message fall
// back to non-empty sentinels per spec testable property #6.
func NewUpstreamRejected(code, message string) *Error {
	if code == "" {
		code = "NO_ERROR_CODE"
	}
	if message == "" {
		message = "upstream rejected the request"
	}
	return &Error{Kind: UpstreamRejected, Code: code, Message: message}
}

// NewUpstreamServerError builds an UpstreamServerError error for a 5xx with
// an unparseable body.
func NewUpstreamServerError(statusCode int) *Error {
	return &Error{Kind: UpstreamServerError, StatusCode: statusCode}
}

// NewWebhookVerificationFailed builds a WebhookVerificationFailed error.
// Per spec §7 this is never surfaced as an RPC error; it is only ever used
// internally to decide source_verified = false on a WebhookOutcome.
func NewWebhookVerificationFailed() *Error {
	return &Error{Kind: WebhookVerificationFailed}
}

// ToStatus projects a Kind onto the gRPC status code used to carry it
// across the transport boundary (spec §7 propagation policy). Only
// InvalidArgument/MissingField become INVALID_ARGUMENT; UpstreamRejected
// and WebhookVerificationFailed are never surfaced as RPC errors at all
// (they are encoded inside an OK response) — ToStatus is defined for them
// anyway so a defensive caller never panics on an exhaustive switch.
func (k Kind) ToStatus() codes.Code {
	switch k {
	case InvalidArgument, MissingField:
		return codes.InvalidArgument
	case NotImplemented:
		return codes.Unimplemented
	case Unauthorized:
		return codes.Unauthenticated
	case Network, ResponseDeserialization, UpstreamServerError:
		return codes.Internal
	case UpstreamRejected, WebhookVerificationFailed:
		return codes.OK
	default:
		return codes.Unknown
	}
}
