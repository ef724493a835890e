package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/domain"
)

// Dispatcher is the subset of *engine.Engine the transport layer calls.
// Declaring it as an interface here (rather than importing the concrete
// type into every handler signature) keeps this package decoupled from
// engine's metrics/registry wiring details.
type Dispatcher interface {
	Authorize(ctx context.Context, id connector.ID, rd domain.AuthorizeRouterData) (domain.AuthorizeRouterData, error)
	PSync(ctx context.Context, id connector.ID, rd domain.PSyncRouterData) (domain.PSyncRouterData, error)
	Capture(ctx context.Context, id connector.ID, rd domain.CaptureRouterData) (domain.CaptureRouterData, error)
	Void(ctx context.Context, id connector.ID, rd domain.VoidRouterData) (domain.VoidRouterData, error)
	SetupMandate(ctx context.Context, id connector.ID, rd domain.SetupMandateRouterData) (domain.SetupMandateRouterData, error)
	Refund(ctx context.Context, id connector.ID, rd domain.RefundRouterData) (domain.RefundRouterData, error)
	RSync(ctx context.Context, id connector.ID, rd domain.RSyncRouterData) (domain.RSyncRouterData, error)
	AcceptDispute(ctx context.Context, id connector.ID, rd domain.AcceptDisputeRouterData) (domain.AcceptDisputeRouterData, error)
	SubmitEvidence(ctx context.Context, id connector.ID, rd domain.SubmitEvidenceRouterData) (domain.SubmitEvidenceRouterData, error)
	IngestWebhook(ctx context.Context, id connector.ID, details domain.IncomingWebhookRequestDetails, secrets domain.WebhookSecrets) (domain.WebhookOutcome, error)
}

// ConnectorEngineServer is the RPC surface of spec §6, the hand-written
// equivalent of the xxxServer interface protoc-gen-go-grpc would normally
// generate from a connector_engine.proto file (see codec.go for why this
// engine skips protobuf code generation).
type ConnectorEngineServer interface {
	Authorize(context.Context, *AuthorizeRequest) (*PaymentResponse, error)
	Sync(context.Context, *SyncRequest) (*PaymentResponse, error)
	Capture(context.Context, *CaptureRequest) (*PaymentResponse, error)
	Void(context.Context, *VoidRequest) (*PaymentResponse, error)
	Refund(context.Context, *RefundRequest) (*RefundResponse, error)
	RefundSync(context.Context, *RefundSyncRequest) (*RefundResponse, error)
	SetupMandate(context.Context, *SetupMandateRequest) (*SetupMandateResponse, error)
	AcceptDispute(context.Context, *AcceptDisputeRequest) (*AcceptDisputeResponse, error)
	SubmitEvidence(context.Context, *SubmitEvidenceRequest) (*SubmitEvidenceResponse, error)
	IncomingWebhook(context.Context, *IncomingWebhookRequest) (*IncomingWebhookResponse, error)
}

// Server implements ConnectorEngineServer by translating each wire request
// into a RouterData, running it through the Dispatcher, and translating
// the result back. It carries no state of its own beyond the Dispatcher
// reference, matching the "stateless service" shape spec §1 requires of
// the transport layer.
type Server struct {
	eng Dispatcher
}

// NewServer builds the Server around a Dispatcher (normally *engine.Engine).
func NewServer(eng Dispatcher) *Server {
	return &Server{eng: eng}
}

func (s *Server) Authorize(ctx context.Context, req *AuthorizeRequest) (*PaymentResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	d, err := authFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	rd := domain.AuthorizeRouterData{
		Flow: domain.FlowAuthorize,
		Auth: d,
		Request: domain.PaymentsAuthorizeData{
			Amount:             amountMinor(req.Amount),
			Currency:           domain.Currency(req.Currency),
			PaymentMethodData:  paymentMethodFromWire(req.PaymentMethod),
			CaptureMethod:      captureMethodFromWire(req.CaptureMethod),
			ReturnURL:          req.ReturnURL,
			RequestRefID:       req.RequestRefID,
			CustomerAcceptance: customerAcceptanceFromWire(req.CustomerAcceptance),
			Metadata:           req.Metadata,
		},
	}
	out, err := s.eng.Authorize(ctx, id, rd)
	if err != nil {
		return nil, toRPCError(err)
	}
	resp := paymentResponseToWire(out.Response)
	return &resp, nil
}

func (s *Server) Sync(ctx context.Context, req *SyncRequest) (*PaymentResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	d, err := authFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	rd := domain.PSyncRouterData{
		Flow:    domain.FlowPSync,
		Auth:    d,
		Request: domain.PaymentsSyncData{ConnectorTransactionID: req.ResourceID},
	}
	out, err := s.eng.PSync(ctx, id, rd)
	if err != nil {
		return nil, toRPCError(err)
	}
	resp := paymentResponseToWire(out.Response)
	return &resp, nil
}

func (s *Server) Capture(ctx context.Context, req *CaptureRequest) (*PaymentResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	d, err := authFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	rd := domain.CaptureRouterData{
		Flow: domain.FlowCapture,
		Auth: d,
		Request: domain.PaymentsCaptureData{
			ConnectorTransactionID: req.ResourceID,
			AmountToCapture:        amountMinor(req.AmountToCapture),
			Currency:               domain.Currency(req.Currency),
		},
	}
	out, err := s.eng.Capture(ctx, id, rd)
	if err != nil {
		return nil, toRPCError(err)
	}
	resp := paymentResponseToWire(out.Response)
	return &resp, nil
}

func (s *Server) Void(ctx context.Context, req *VoidRequest) (*PaymentResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	d, err := authFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	rd := domain.VoidRouterData{
		Flow: domain.FlowVoid,
		Auth: d,
		Request: domain.PaymentsVoidData{
			ConnectorTransactionID: req.ResourceID,
			CancellationReason:     req.CancellationReason,
		},
	}
	out, err := s.eng.Void(ctx, id, rd)
	if err != nil {
		return nil, toRPCError(err)
	}
	resp := paymentResponseToWire(out.Response)
	return &resp, nil
}

func (s *Server) Refund(ctx context.Context, req *RefundRequest) (*RefundResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	d, err := authFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	rd := domain.RefundRouterData{
		Flow: domain.FlowRefund,
		Auth: d,
		Request: domain.RefundsData{
			ConnectorTransactionID: req.ResourceID,
			RefundAmount:           amountMinor(req.RefundAmount),
			Currency:               domain.Currency(req.Currency),
			RefundReason:           req.RefundReason,
			RequestRefID:           req.RequestRefID,
		},
	}
	out, err := s.eng.Refund(ctx, id, rd)
	if err != nil {
		return nil, toRPCError(err)
	}
	resp := refundResponseToWire(out.Response)
	return &resp, nil
}

func (s *Server) RefundSync(ctx context.Context, req *RefundSyncRequest) (*RefundResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	d, err := authFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	rd := domain.RSyncRouterData{
		Flow:    domain.FlowRSync,
		Auth:    d,
		Request: domain.RefundsSyncData{ConnectorRefundID: req.ConnectorRefundID},
	}
	out, err := s.eng.RSync(ctx, id, rd)
	if err != nil {
		return nil, toRPCError(err)
	}
	resp := refundResponseToWire(out.Response)
	return &resp, nil
}

func (s *Server) SetupMandate(ctx context.Context, req *SetupMandateRequest) (*SetupMandateResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	d, err := authFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	rd := domain.SetupMandateRouterData{
		Flow: domain.FlowSetupMandate,
		Auth: d,
		Request: domain.SetupMandateData{
			Currency:           domain.Currency(req.Currency),
			PaymentMethodData:  paymentMethodFromWire(req.PaymentMethod),
			ReturnURL:          req.ReturnURL,
			RequestRefID:       req.RequestRefID,
			CustomerAcceptance: customerAcceptanceFromWire(req.CustomerAcceptance),
		},
	}
	out, err := s.eng.SetupMandate(ctx, id, rd)
	if err != nil {
		return nil, toRPCError(err)
	}
	var resp SetupMandateResponse
	if out.Response.Success != nil {
		resp = SetupMandateResponse{
			MandateReference: out.Response.Success.MandateReference,
			Status:           string(out.Response.Success.Status),
			RedirectionData:  redirectionDataToWire(out.Response.Success.RedirectionData),
		}
	} else {
		resp = SetupMandateResponse{Error: errorToWire(out.Response.Error)}
	}
	return &resp, nil
}

func (s *Server) AcceptDispute(ctx context.Context, req *AcceptDisputeRequest) (*AcceptDisputeResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	d, err := authFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	rd := domain.AcceptDisputeRouterData{
		Flow:    domain.FlowAcceptDispute,
		Auth:    d,
		Request: domain.AcceptDisputeData{ConnectorDisputeID: req.ConnectorDisputeID},
	}
	out, err := s.eng.AcceptDispute(ctx, id, rd)
	if err != nil {
		return nil, toRPCError(err)
	}
	resp := disputeResponseToAcceptWire(out.Response)
	return &resp, nil
}

func (s *Server) SubmitEvidence(ctx context.Context, req *SubmitEvidenceRequest) (*SubmitEvidenceResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	d, err := authFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	rd := domain.SubmitEvidenceRouterData{
		Flow: domain.FlowSubmitEvidence,
		Auth: d,
		Request: domain.SubmitEvidenceData{
			ConnectorDisputeID: req.ConnectorDisputeID,
			Evidence:           evidenceFromWire(req.Evidence),
		},
	}
	out, err := s.eng.SubmitEvidence(ctx, id, rd)
	if err != nil {
		return nil, toRPCError(err)
	}
	if out.Response.Success == nil {
		return &SubmitEvidenceResponse{
			ConnectorDisputeID: req.ConnectorDisputeID,
			Error:              errorToWire(out.Response.Error),
		}, nil
	}
	return &SubmitEvidenceResponse{
		ConnectorDisputeID:   req.ConnectorDisputeID,
		SubmittedEvidenceIDs: []string{out.Response.Success.ConnectorDisputeID},
	}, nil
}

func (s *Server) IncomingWebhook(ctx context.Context, req *IncomingWebhookRequest) (*IncomingWebhookResponse, error) {
	id, err := connectorFromContext(ctx)
	if err != nil {
		return nil, toRPCError(err)
	}
	details := domain.IncomingWebhookRequestDetails{
		Method:      req.Method,
		Headers:     lowercaseHeaders(req.Headers),
		Body:        req.Body,
		QueryParams: req.QueryParams,
		URLPath:     req.URLPath,
	}
	outcome, err := s.eng.IngestWebhook(ctx, id, details, domain.WebhookSecrets{HMACKey: req.HMACKey})
	if err != nil {
		return nil, toRPCError(err)
	}
	return &IncomingWebhookResponse{
		EventType:      string(outcome.EventType),
		Content:        webhookContentToWire(outcome.Content),
		SourceVerified: outcome.SourceVerified,
	}, nil
}

// decodeAndRun adapts one generated-by-hand RPC method into the untyped
// grpc.MethodDesc.Handler shape protoc-gen-go-grpc normally emits per
// message type.
func decodeAndRun[Req any, Resp any](
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
	info *grpc.UnaryServerInfo,
	run func(context.Context, *Req) (*Resp, error),
) (any, error) {
	in := new(Req)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return run(ctx, in)
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return run(ctx, req.(*Req))
	}
	return interceptor(ctx, in, info, handler)
}

// ServiceDesc is the hand-built equivalent of the *_grpc.pb.go ServiceDesc
// protoc-gen-go-grpc would normally emit for a connector_engine.proto
// service definition (spec §6's RPC surface).
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: "connectorengine.v1.ConnectorEngine",
	HandlerType: (*ConnectorEngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Authorize", Handler: authorizeHandler},
		{MethodName: "Sync", Handler: syncHandler},
		{MethodName: "Capture", Handler: captureHandler},
		{MethodName: "Void", Handler: voidHandler},
		{MethodName: "Refund", Handler: refundHandler},
		{MethodName: "RefundSync", Handler: refundSyncHandler},
		{MethodName: "SetupMandate", Handler: setupMandateHandler},
		{MethodName: "AcceptDispute", Handler: acceptDisputeHandler},
		{MethodName: "SubmitEvidence", Handler: submitEvidenceHandler},
		{MethodName: "IncomingWebhook", Handler: incomingWebhookHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "connector_engine.proto",
}

func authorizeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/Authorize"}
	return decodeAndRun(ctx, dec, interceptor, info, s.Authorize)
}

func syncHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/Sync"}
	return decodeAndRun(ctx, dec, interceptor, info, s.Sync)
}

func captureHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/Capture"}
	return decodeAndRun(ctx, dec, interceptor, info, s.Capture)
}

func voidHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/Void"}
	return decodeAndRun(ctx, dec, interceptor, info, s.Void)
}

func refundHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/Refund"}
	return decodeAndRun(ctx, dec, interceptor, info, s.Refund)
}

func refundSyncHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/RefundSync"}
	return decodeAndRun(ctx, dec, interceptor, info, s.RefundSync)
}

func setupMandateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/SetupMandate"}
	return decodeAndRun(ctx, dec, interceptor, info, s.SetupMandate)
}

func acceptDisputeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/AcceptDispute"}
	return decodeAndRun(ctx, dec, interceptor, info, s.AcceptDispute)
}

func submitEvidenceHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/SubmitEvidence"}
	return decodeAndRun(ctx, dec, interceptor, info, s.SubmitEvidence)
}

func incomingWebhookHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	s := srv.(ConnectorEngineServer)
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/connectorengine.v1.ConnectorEngine/IncomingWebhook"}
	return decodeAndRun(ctx, dec, interceptor, info, s.IncomingWebhook)
}
