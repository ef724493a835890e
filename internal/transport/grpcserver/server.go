// Package grpcserver wires the connector engine's RPC surface (spec §6)
// onto grpc-go without protoc-generated message types: request/response
// shapes are plain JSON-tagged structs (types.go), and jsonCodec
// (codec.go) installed via grpc.ForceServerCodec lets the server exchange
// them directly instead of protobuf's binary wire format. grpc's health
// and reflection services assume real protobuf descriptors for their own
// wire messages, which this engine does not have, so neither is wired up
// here; a caller that needs liveness/readiness uses the plain HTTP health
// check alongside the metrics endpoint in cmd/server instead.
package grpcserver

import (
	"google.golang.org/grpc"
)

// NewTransport builds the *grpc.Server for eng, registering the connector
// engine service under the JSON codec.
func NewTransport(eng Dispatcher, opts ...grpc.ServerOption) *grpc.Server {
	allOpts := append([]grpc.ServerOption{grpc.ForceServerCodec(jsonCodec{})}, opts...)
	srv := grpc.NewServer(allOpts...)
	srv.RegisterService(&ServiceDesc, NewServer(eng))
	return srv
}
