// Package domain holds the canonical, connector-agnostic value types that
// flow through the connector integration engine: flow tags, the RouterData
// envelope, status taxonomies, and the request/response shapes every
// connector translates into and out of.
package domain

// FlowName identifies one of the closed set of operations a connector may
// implement. It is carried on RouterData purely for logging/metrics; the
// actual per-flow behavior is selected at compile time by which
// FlowExecutor[...] instantiation a connector wires up.
type FlowName string

const (
	FlowAuthorize      FlowName = "authorize"
	FlowPSync          FlowName = "psync"
	FlowCapture        FlowName = "capture"
	FlowVoid           FlowName = "void"
	FlowRefund         FlowName = "refund"
	FlowRSync          FlowName = "rsync"
	FlowSetupMandate   FlowName = "setup_mandate"
	FlowCreateOrder    FlowName = "create_order"
	FlowAcceptDispute  FlowName = "accept_dispute"
	FlowSubmitEvidence FlowName = "submit_evidence"
	FlowDefend         FlowName = "defend_dispute"
)

// CaptureMethod distinguishes automatic (sale, auto-captured) from manual
// (auth-only, captured later) flows; connectors consult it when mapping an
// "approved" result to either Authorized or Charged.
type CaptureMethod string

const (
	CaptureAutomatic CaptureMethod = "automatic"
	CaptureManual    CaptureMethod = "manual"
)
