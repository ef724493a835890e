package domain

// WebhookEventType classifies an incoming webhook before its payload is
// even deserialized (spec C10 step 1).
type WebhookEventType string

const (
	WebhookPaymentUpdate WebhookEventType = "payment_update"
	WebhookRefundUpdate  WebhookEventType = "refund_update"
	WebhookDispute       WebhookEventType = "dispute"
	WebhookUnknown       WebhookEventType = "unknown"
)

// IncomingWebhookRequestDetails is the raw transport-agnostic shape a
// webhook ingestor receives; header names are pre-lowercased by the caller
// so connector code can do exact-key lookups, while query params are passed
// as received.
type IncomingWebhookRequestDetails struct {
	Method      string
	Headers     map[string]string
	Body        []byte
	QueryParams map[string]string
	URLPath     string
}

// WebhookSecrets carries the configured verification material for one
// merchant account's webhook endpoint. Which field a connector consults
// depends entirely on that connector's documented scheme.
type WebhookSecrets struct {
	HMACKey string
}

// WebhookContentKind discriminates WebhookContent.
type WebhookContentKind int

const (
	WebhookContentNone WebhookContentKind = iota
	WebhookContentPayment
	WebhookContentRefund
	WebhookContentDispute
)

// WebhookContent is a sum type over the three canonical shapes a webhook's
// payload can resolve to, matching exactly what sync would have produced
// for the same gateway-side state (spec C10 step 4).
type WebhookContent struct {
	Kind    WebhookContentKind
	Payment PaymentsResponseData
	Refund  RefundsResponseData
	Dispute DisputeResponseData
}

// WebhookOutcome is the result of ingesting one webhook delivery.
type WebhookOutcome struct {
	EventType      WebhookEventType
	Content        WebhookContent
	SourceVerified bool
}
