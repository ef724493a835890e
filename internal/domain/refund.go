package domain

import "payment-connector-engine/internal/domain/amount"

// RefundsData is the canonical Refund request.
type RefundsData struct {
	ConnectorTransactionID string
	RefundAmount           amount.Minor
	Currency               Currency
	RefundReason           string
	RequestRefID           string
}

// RefundsSyncData is the canonical RSync request.
type RefundsSyncData struct {
	ConnectorRefundID string
}

// RefundsResponseData is the canonical response shape for refund and
// refund-sync.
type RefundsResponseData struct {
	ConnectorRefundID string
	Status            RefundStatus
	ConnectorMetadata map[string]string
}
