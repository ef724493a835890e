package domain

import "payment-connector-engine/internal/domain/amount"

// PaymentMethodKind discriminates PaymentMethodData.
type PaymentMethodKind int

const (
	PaymentMethodCard PaymentMethodKind = iota
	PaymentMethodToken
	PaymentMethodMandate
)

// Card carries raw card details. Number and CVC are Redacted so that no
// logging call below the executor can ever print them.
type Card struct {
	Number   Redacted
	ExpMonth string
	ExpYear  string
	CVC      Redacted
}

// PaymentMethodData is a sum type over the ways a payment can be funded.
// Exactly one of the fields matching Kind is populated.
type PaymentMethodData struct {
	Kind      PaymentMethodKind
	Card      Card
	Token     string
	MandateID string
}

// CustomerAcceptance records that the shopper agreed to future off-session
// charges, required by several gateways to set up a mandate/token.
type CustomerAcceptance struct {
	AcceptanceType string // "online" | "offline"
	IPAddress      string
	UserAgent      string
}

// PaymentsAuthorizeData is the canonical Authorize request.
type PaymentsAuthorizeData struct {
	Amount              amount.Minor
	Currency            Currency
	PaymentMethodData   PaymentMethodData
	CaptureMethod       CaptureMethod
	ReturnURL           string
	RequestRefID        string
	CustomerAcceptance  *CustomerAcceptance
	Metadata            map[string]string
}

// PaymentsSyncData is the canonical PSync request.
type PaymentsSyncData struct {
	ConnectorTransactionID string
}

// PaymentsCaptureData is the canonical Capture request.
type PaymentsCaptureData struct {
	ConnectorTransactionID string
	AmountToCapture        amount.Minor
	Currency               Currency
}

// PaymentsVoidData is the canonical Void request.
type PaymentsVoidData struct {
	ConnectorTransactionID string
	CancellationReason     string
}

// RedirectionData signals a redirect workflow: either a URL+method+form
// fields tuple, or a raw HTML blob the client renders directly.
type RedirectionData struct {
	URL        string
	Method     string
	FormFields map[string]string
	RawHTML    string
}

// PaymentsResponseData is the canonical response shape for every
// payment-family flow (authorize, sync, capture, void, setup-mandate).
type PaymentsResponseData struct {
	ResourceID                      ResponseId
	Status                           AttemptStatus
	RedirectionData                 *RedirectionData
	MandateReference                string
	NetworkTransactionID             string
	ConnectorResponseReferenceID    string
	IncrementalAuthorizationAllowed *bool
	ConnectorMetadata               map[string]string
}
