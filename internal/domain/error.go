package domain

// ErrorResponse is the canonical, connector-agnostic shape for a failed
// gateway call. It is populated by a connector's GetErrorResponse and never
// loses the gateway's native code/message (falling back to sentinels when
// the gateway omits them).
type ErrorResponse struct {
	Code                   string
	Message                string
	Reason                 string
	StatusCode             int
	AttemptStatus          AttemptStatus // empty when no status hint applies
	ConnectorTransactionID string
}

// NoErrorCode is the sentinel used when a gateway's error body carries no
// machine-readable code.
const NoErrorCode = "NO_ERROR_CODE"

// UpstreamServerError synthesises the canonical shape for a 5xx with no
// parseable body (spec'd fallback: "upstream server error").
func UpstreamServerError(statusCode int) ErrorResponse {
	return ErrorResponse{
		Code:       NoErrorCode,
		Message:    "upstream server error",
		StatusCode: statusCode,
	}
}
