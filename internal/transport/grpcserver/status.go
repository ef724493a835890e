package grpcserver

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusError builds the gRPC error a handler returns for a given code and
// message, the only place in this package that touches the status package
// directly.
func statusError(code codes.Code, msg string) error {
	return status.Error(code, msg)
}
