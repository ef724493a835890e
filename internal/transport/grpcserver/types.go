package grpcserver

// Wire-level request/response shapes for the payment/refund/dispute/webhook
// RPC surface (spec §6). These are intentionally flat structs rather than
// generated protobuf messages (see codec.go); field names match the
// canonical domain model's JSON projection so the wire-exactness spec
// calls out for metadata keys and enum values is preserved even without a
// .proto-generated binary format.

type CardWire struct {
	Number   string `json:"number"`
	ExpMonth string `json:"exp_month"`
	ExpYear  string `json:"exp_year"`
	CVC      string `json:"cvc"`
}

type CustomerAcceptanceWire struct {
	AcceptanceType string `json:"acceptance_type"`
	IPAddress      string `json:"ip_address"`
	UserAgent      string `json:"user_agent"`
}

// PaymentMethodWire.Kind is one of "card", "token", "mandate".
type PaymentMethodWire struct {
	Kind      string    `json:"kind"`
	Card      *CardWire `json:"card,omitempty"`
	Token     string    `json:"token,omitempty"`
	MandateID string    `json:"mandate_id,omitempty"`
}

type RedirectionDataWire struct {
	URL        string            `json:"url"`
	Method     string            `json:"method"`
	FormFields map[string]string `json:"form_fields,omitempty"`
	RawHTML    string            `json:"raw_html,omitempty"`
}

type ErrorWire struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	Reason        string `json:"reason,omitempty"`
	StatusCode    int    `json:"status_code,omitempty"`
	AttemptStatus string `json:"attempt_status,omitempty"`
}

type AuthorizeRequest struct {
	Amount             int64                   `json:"amount"`
	Currency           string                  `json:"currency"`
	PaymentMethod      PaymentMethodWire       `json:"payment_method"`
	CaptureMethod      string                  `json:"capture_method"`
	ReturnURL          string                  `json:"return_url,omitempty"`
	RequestRefID       string                  `json:"request_ref_id"`
	CustomerAcceptance *CustomerAcceptanceWire `json:"customer_acceptance,omitempty"`
	Metadata           map[string]string       `json:"metadata,omitempty"`
}

type PaymentResponse struct {
	ResourceID             string               `json:"resource_id"`
	Status                 string               `json:"status"`
	RedirectionData        *RedirectionDataWire `json:"redirection_data,omitempty"`
	MandateReference       string               `json:"mandate_reference,omitempty"`
	ResponseRefID          string               `json:"response_ref_id,omitempty"`
	IncrementalAuthAllowed *bool                `json:"incremental_auth_allowed,omitempty"`
	Error                  *ErrorWire           `json:"error,omitempty"`
}

type SyncRequest struct {
	ResourceID string `json:"resource_id"`
}

type CaptureRequest struct {
	ResourceID      string `json:"resource_id"`
	AmountToCapture int64  `json:"amount_to_capture"`
	Currency        string `json:"currency"`
}

type VoidRequest struct {
	ResourceID         string `json:"resource_id"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
}

type RefundRequest struct {
	ResourceID   string `json:"resource_id"`
	RefundAmount int64  `json:"refund_amount"`
	Currency     string `json:"currency"`
	RefundReason string `json:"refund_reason,omitempty"`
	RequestRefID string `json:"request_ref_id"`
}

type RefundResponse struct {
	ConnectorRefundID string     `json:"connector_refund_id"`
	RefundStatus      string     `json:"refund_status"`
	Error             *ErrorWire `json:"error,omitempty"`
}

type RefundSyncRequest struct {
	ConnectorRefundID string `json:"connector_refund_id"`
}

type SetupMandateRequest struct {
	Currency           string                  `json:"currency"`
	PaymentMethod      PaymentMethodWire       `json:"payment_method"`
	ReturnURL          string                  `json:"return_url,omitempty"`
	RequestRefID       string                  `json:"request_ref_id"`
	CustomerAcceptance *CustomerAcceptanceWire `json:"customer_acceptance,omitempty"`
}

type SetupMandateResponse struct {
	MandateReference string               `json:"mandate_reference,omitempty"`
	Status           string               `json:"status"`
	RedirectionData  *RedirectionDataWire `json:"redirection_data,omitempty"`
	Error            *ErrorWire           `json:"error,omitempty"`
}

type AcceptDisputeRequest struct {
	ConnectorDisputeID string `json:"connector_dispute_id"`
}

type AcceptDisputeResponse struct {
	ConnectorDisputeID string     `json:"connector_dispute_id"`
	DisputeStatus      string     `json:"dispute_status"`
	Error              *ErrorWire `json:"error,omitempty"`
}

// EvidenceWire.Kind is one of "text", "file".
type EvidenceWire struct {
	Kind     string `json:"kind"`
	Field    string `json:"field"`
	Text     string `json:"text,omitempty"`
	FileName string `json:"file_name,omitempty"`
	FileData []byte `json:"file_data,omitempty"`
	MIMEType string `json:"mime_type,omitempty"`
}

type SubmitEvidenceRequest struct {
	ConnectorDisputeID string         `json:"connector_dispute_id"`
	Evidence           []EvidenceWire `json:"evidence"`
}

type SubmitEvidenceResponse struct {
	ConnectorDisputeID   string     `json:"connector_dispute_id"`
	SubmittedEvidenceIDs []string   `json:"submitted_evidence_ids"`
	Error                *ErrorWire `json:"error,omitempty"`
}

type IncomingWebhookRequest struct {
	Method      string            `json:"method"`
	Headers     map[string]string `json:"headers"`
	Body        []byte            `json:"body"`
	QueryParams map[string]string `json:"query_params,omitempty"`
	URLPath     string            `json:"url_path"`
	HMACKey     string            `json:"hmac_key,omitempty"`
}

type WebhookContentWire struct {
	Kind    string           `json:"kind"`
	Payment *PaymentResponse `json:"payment,omitempty"`
	Refund  *RefundResponse  `json:"refund,omitempty"`
	Dispute *AcceptDisputeResponse `json:"dispute,omitempty"`
}

type IncomingWebhookResponse struct {
	EventType      string              `json:"event_type"`
	Content        *WebhookContentWire `json:"content,omitempty"`
	SourceVerified bool                `json:"source_verified"`
}
