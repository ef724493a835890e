package connector

import "payment-connector-engine/internal/domain"

// WebhookIngestor is the per-connector webhook verification/classification
// contract (spec C10). A connector that receives no webhooks from its
// gateway leaves this nil on its Connector value; the engine treats a nil
// Webhook as an immediate WebhookUnknown/source_verified=false outcome.
type WebhookIngestor interface {
	Ingest(details domain.IncomingWebhookRequestDetails, secrets domain.WebhookSecrets) (domain.WebhookOutcome, error)
}

// Connector is the full capability set a gateway integration may implement
// (spec C6): one FlowExecutor field per flow, each independently nilable.
// Declared capability membership is part of a connector's construction —
// the registry only ever returns fully-populated values for the flows that
// connector's New* constructor wires up — so the executor never dispatches
// into a flow the gateway doesn't support; absent fields surface as
// apperror.NotImplemented at the call site instead of at construction.
type Connector struct {
	ID ID

	Authorize    FlowExecutor[domain.PaymentFlowData, domain.PaymentsAuthorizeData, domain.PaymentsResponseData]
	PSync        FlowExecutor[domain.PaymentFlowData, domain.PaymentsSyncData, domain.PaymentsResponseData]
	Capture      FlowExecutor[domain.PaymentFlowData, domain.PaymentsCaptureData, domain.PaymentsResponseData]
	Void         FlowExecutor[domain.PaymentFlowData, domain.PaymentsVoidData, domain.PaymentsResponseData]
	SetupMandate FlowExecutor[domain.PaymentFlowData, domain.SetupMandateData, domain.PaymentsResponseData]
	Refund       FlowExecutor[domain.RefundFlowData, domain.RefundsData, domain.RefundsResponseData]
	RSync        FlowExecutor[domain.RefundFlowData, domain.RefundsSyncData, domain.RefundsResponseData]
	AcceptDispute  FlowExecutor[domain.DisputeFlowData, domain.AcceptDisputeData, domain.DisputeResponseData]
	SubmitEvidence FlowExecutor[domain.DisputeFlowData, domain.SubmitEvidenceData, domain.DisputeResponseData]

	Webhook WebhookIngestor
}
