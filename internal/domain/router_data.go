package domain

import "payment-connector-engine/internal/domain/auth"

// Result holds exactly one of a successful flow-specific response or a
// normalized error; the two are mutually exclusive at every point after
// execution (spec invariant #1).
type Result[Resp any] struct {
	Success *Resp
	Error   *ErrorResponse
}

// Ok builds a successful Result.
func Ok[Resp any](v Resp) Result[Resp] { return Result[Resp]{Success: &v} }

// Err builds a failed Result.
func Err[Resp any](e ErrorResponse) Result[Resp] { return Result[Resp]{Error: &e} }

// IsSuccess reports whether the flow completed without error.
func (r Result[Resp]) IsSuccess() bool { return r.Success != nil }

// RouterData is the pervasive envelope carried through one flow
// invocation: flow-family context, credentials, the flow-specific request,
// and (post-execution) the flow-specific response or a normalized error.
//
// Common is one of PaymentFlowData / RefundFlowData / DisputeFlowData; Req
// and Resp are the flow's own input/output types. A RouterData value is
// owned exclusively by the task handling one call and is never shared
// across requests.
type RouterData[Common any, Req any, Resp any] struct {
	Flow     FlowName
	Common   Common
	Auth     auth.Descriptor
	Request  Req
	Response Result[Resp]
}

// PaymentFlowData is the ResourceCommonData shared by every payment-family
// flow (authorize, sync, capture, void, setup-mandate).
type PaymentFlowData struct {
	MerchantID                  string
	BaseURL                     string
	CaptureMethod               CaptureMethod
	Status                      AttemptStatus
	ConnectorRequestReferenceID string
	Address                     *Address
}

// RefundFlowData is the ResourceCommonData shared by refund and
// refund-sync.
type RefundFlowData struct {
	BaseURL                     string
	Status                      RefundStatus
	ConnectorRequestReferenceID string
}

// DisputeFlowData is the ResourceCommonData shared by dispute flows.
type DisputeFlowData struct {
	BaseURL    string
	DisputeID  string
	Status     DisputeStatus
}

// Address is the minimal billing/shipping address shape connectors may
// need for AVS or risk fields. Fields are optional; a zero Address means
// "omit address data".
type Address struct {
	Line1       string
	City        string
	State       string
	PostalCode  string
	CountryCode string
}

// Flow type aliases: one RouterData instantiation per (flow, common,
// request, response) triple named in spec §3/§4.1.
type (
	AuthorizeRouterData      = RouterData[PaymentFlowData, PaymentsAuthorizeData, PaymentsResponseData]
	PSyncRouterData          = RouterData[PaymentFlowData, PaymentsSyncData, PaymentsResponseData]
	CaptureRouterData        = RouterData[PaymentFlowData, PaymentsCaptureData, PaymentsResponseData]
	VoidRouterData           = RouterData[PaymentFlowData, PaymentsVoidData, PaymentsResponseData]
	SetupMandateRouterData   = RouterData[PaymentFlowData, SetupMandateData, PaymentsResponseData]
	RefundRouterData         = RouterData[RefundFlowData, RefundsData, RefundsResponseData]
	RSyncRouterData          = RouterData[RefundFlowData, RefundsSyncData, RefundsResponseData]
	AcceptDisputeRouterData  = RouterData[DisputeFlowData, AcceptDisputeData, DisputeResponseData]
	SubmitEvidenceRouterData = RouterData[DisputeFlowData, SubmitEvidenceData, DisputeResponseData]
)
