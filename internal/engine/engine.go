// Package engine wires the registry and the request lifecycle executor
// into the single orchestrator the transport layer calls: one method per
// flow plus webhook ingestion, each resolving a connector id, checking
// that connector actually implements the requested flow, and running it
// through the shared Executor. This is the layer a teacher's service.go
// would normally hold application logic in; here it holds none beyond
// dispatch and metrics, because every flow's real behavior lives in its
// connector.
package engine

import (
	"context"
	"time"

	"payment-connector-engine/internal/apperror"
	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/connector/executor"
	"payment-connector-engine/internal/domain"
	"payment-connector-engine/internal/platform/metrics"
)

// outcomeLabel classifies one flow invocation for the outbound-request
// metric: a non-nil err means execution never produced a canonical
// response at all (network/deserialization failure); an ok flag of false
// means the gateway was reached but rejected the call.
func outcomeLabel(err error, ok bool) string {
	switch {
	case err != nil:
		return "error"
	case ok:
		return "success"
	default:
		return "rejected"
	}
}

// Engine is the stateless dispatcher every RPC handler calls into. It is
// safe for concurrent use: Registry and Executor are both read-only after
// construction.
type Engine struct {
	registry *connector.Registry
	executor *executor.Executor
}

// New builds an Engine around a populated Registry and a shared Executor.
// Passing a nil Executor is invalid; cmd/server/main.go always constructs
// one pooled executor and passes it in so every connector shares the same
// connection pool (spec §5).
func New(registry *connector.Registry, ex *executor.Executor) *Engine {
	return &Engine{registry: registry, executor: ex}
}

func (e *Engine) resolve(id connector.ID) (connector.Connector, error) {
	return e.registry.Resolve(id)
}

const (
	flowAuthorize      = "authorize"
	flowPSync          = "psync"
	flowCapture        = "capture"
	flowVoid           = "void"
	flowSetupMandate   = "setup_mandate"
	flowRefund         = "refund"
	flowRSync          = "rsync"
	flowAcceptDispute  = "accept_dispute"
	flowSubmitEvidence = "submit_evidence"
)

// Authorize runs the Authorize flow for id.
func (e *Engine) Authorize(ctx context.Context, id connector.ID, rd domain.AuthorizeRouterData) (domain.AuthorizeRouterData, error) {
	c, err := e.resolve(id)
	if err != nil {
		return rd, err
	}
	if c.Authorize == nil {
		return rd, apperror.NewNotImplemented(string(id) + ": " + flowAuthorize)
	}
	start := time.Now()
	out, err := executor.ExecuteWith(ctx, e.executor, c.Authorize, rd)
	metrics.RecordOutboundRequest(string(id), flowAuthorize, outcomeLabel(err, out.Response.IsSuccess()), time.Since(start))
	return out, err
}

// PSync runs the payment-sync flow for id.
func (e *Engine) PSync(ctx context.Context, id connector.ID, rd domain.PSyncRouterData) (domain.PSyncRouterData, error) {
	c, err := e.resolve(id)
	if err != nil {
		return rd, err
	}
	if c.PSync == nil {
		return rd, apperror.NewNotImplemented(string(id) + ": " + flowPSync)
	}
	start := time.Now()
	out, err := executor.ExecuteWith(ctx, e.executor, c.PSync, rd)
	metrics.RecordOutboundRequest(string(id), flowPSync, outcomeLabel(err, out.Response.IsSuccess()), time.Since(start))
	return out, err
}

// Capture runs the Capture flow for id.
func (e *Engine) Capture(ctx context.Context, id connector.ID, rd domain.CaptureRouterData) (domain.CaptureRouterData, error) {
	c, err := e.resolve(id)
	if err != nil {
		return rd, err
	}
	if c.Capture == nil {
		return rd, apperror.NewNotImplemented(string(id) + ": " + flowCapture)
	}
	start := time.Now()
	out, err := executor.ExecuteWith(ctx, e.executor, c.Capture, rd)
	metrics.RecordOutboundRequest(string(id), flowCapture, outcomeLabel(err, out.Response.IsSuccess()), time.Since(start))
	return out, err
}

// Void runs the Void flow for id.
func (e *Engine) Void(ctx context.Context, id connector.ID, rd domain.VoidRouterData) (domain.VoidRouterData, error) {
	c, err := e.resolve(id)
	if err != nil {
		return rd, err
	}
	if c.Void == nil {
		return rd, apperror.NewNotImplemented(string(id) + ": " + flowVoid)
	}
	start := time.Now()
	out, err := executor.ExecuteWith(ctx, e.executor, c.Void, rd)
	metrics.RecordOutboundRequest(string(id), flowVoid, outcomeLabel(err, out.Response.IsSuccess()), time.Since(start))
	return out, err
}

// SetupMandate runs the SetupMandate flow for id.
func (e *Engine) SetupMandate(ctx context.Context, id connector.ID, rd domain.SetupMandateRouterData) (domain.SetupMandateRouterData, error) {
	c, err := e.resolve(id)
	if err != nil {
		return rd, err
	}
	if c.SetupMandate == nil {
		return rd, apperror.NewNotImplemented(string(id) + ": " + flowSetupMandate)
	}
	start := time.Now()
	out, err := executor.ExecuteWith(ctx, e.executor, c.SetupMandate, rd)
	metrics.RecordOutboundRequest(string(id), flowSetupMandate, outcomeLabel(err, out.Response.IsSuccess()), time.Since(start))
	return out, err
}

// Refund runs the Refund flow for id.
func (e *Engine) Refund(ctx context.Context, id connector.ID, rd domain.RefundRouterData) (domain.RefundRouterData, error) {
	c, err := e.resolve(id)
	if err != nil {
		return rd, err
	}
	if c.Refund == nil {
		return rd, apperror.NewNotImplemented(string(id) + ": " + flowRefund)
	}
	start := time.Now()
	out, err := executor.ExecuteWith(ctx, e.executor, c.Refund, rd)
	metrics.RecordOutboundRequest(string(id), flowRefund, outcomeLabel(err, out.Response.IsSuccess()), time.Since(start))
	return out, err
}

// RSync runs the refund-sync flow for id.
func (e *Engine) RSync(ctx context.Context, id connector.ID, rd domain.RSyncRouterData) (domain.RSyncRouterData, error) {
	c, err := e.resolve(id)
	if err != nil {
		return rd, err
	}
	if c.RSync == nil {
		return rd, apperror.NewNotImplemented(string(id) + ": " + flowRSync)
	}
	start := time.Now()
	out, err := executor.ExecuteWith(ctx, e.executor, c.RSync, rd)
	metrics.RecordOutboundRequest(string(id), flowRSync, outcomeLabel(err, out.Response.IsSuccess()), time.Since(start))
	return out, err
}

// AcceptDispute runs the accept-dispute flow for id.
func (e *Engine) AcceptDispute(ctx context.Context, id connector.ID, rd domain.AcceptDisputeRouterData) (domain.AcceptDisputeRouterData, error) {
	c, err := e.resolve(id)
	if err != nil {
		return rd, err
	}
	if c.AcceptDispute == nil {
		return rd, apperror.NewNotImplemented(string(id) + ": " + flowAcceptDispute)
	}
	start := time.Now()
	out, err := executor.ExecuteWith(ctx, e.executor, c.AcceptDispute, rd)
	metrics.RecordOutboundRequest(string(id), flowAcceptDispute, outcomeLabel(err, out.Response.IsSuccess()), time.Since(start))
	return out, err
}

// SubmitEvidence runs the submit-evidence flow for id.
func (e *Engine) SubmitEvidence(ctx context.Context, id connector.ID, rd domain.SubmitEvidenceRouterData) (domain.SubmitEvidenceRouterData, error) {
	c, err := e.resolve(id)
	if err != nil {
		return rd, err
	}
	if c.SubmitEvidence == nil {
		return rd, apperror.NewNotImplemented(string(id) + ": " + flowSubmitEvidence)
	}
	start := time.Now()
	out, err := executor.ExecuteWith(ctx, e.executor, c.SubmitEvidence, rd)
	metrics.RecordOutboundRequest(string(id), flowSubmitEvidence, outcomeLabel(err, out.Response.IsSuccess()), time.Since(start))
	return out, err
}

// IngestWebhook translates one inbound webhook delivery for id into its
// canonical WebhookOutcome (spec C10). A connector with no Webhook
// ingestor (one that never receives server-to-server callbacks) reports
// WebhookUnknown with SourceVerified false rather than erroring, since an
// unrecognized delivery is the correct response to give an upstream retry
// loop regardless of the reason.
func (e *Engine) IngestWebhook(ctx context.Context, id connector.ID, details domain.IncomingWebhookRequestDetails, secrets domain.WebhookSecrets) (domain.WebhookOutcome, error) {
	c, err := e.resolve(id)
	if err != nil {
		return domain.WebhookOutcome{}, err
	}
	if c.Webhook == nil {
		metrics.RecordWebhookIngested(string(id), string(domain.WebhookUnknown), false)
		return domain.WebhookOutcome{EventType: domain.WebhookUnknown, SourceVerified: false}, nil
	}
	outcome, err := c.Webhook.Ingest(details, secrets)
	if err != nil {
		return outcome, err
	}
	metrics.RecordWebhookIngested(string(id), string(outcome.EventType), outcome.SourceVerified)
	return outcome, nil
}
