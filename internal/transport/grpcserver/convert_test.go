package grpcserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-connector-engine/internal/domain"
)

func TestPaymentMethodFromWire_Card(t *testing.T) {
	w := PaymentMethodWire{
		Kind: "card",
		Card: &CardWire{Number: "4111111111111111", ExpMonth: "12", ExpYear: "2030", CVC: "123"},
	}
	pm := paymentMethodFromWire(w)
	assert.Equal(t, domain.PaymentMethodCard, pm.Kind)
	assert.Equal(t, "4111111111111111", pm.Card.Number.ExposeSecret())
	assert.Equal(t, "123", pm.Card.CVC.ExposeSecret())
	assert.Equal(t, "***REDACTED***", pm.Card.Number.String())
}

func TestPaymentMethodFromWire_TokenAndMandate(t *testing.T) {
	tok := paymentMethodFromWire(PaymentMethodWire{Kind: "token", Token: "tok_123"})
	assert.Equal(t, domain.PaymentMethodToken, tok.Kind)
	assert.Equal(t, "tok_123", tok.Token)

	mand := paymentMethodFromWire(PaymentMethodWire{Kind: "mandate", MandateID: "mandate_1"})
	assert.Equal(t, domain.PaymentMethodMandate, mand.Kind)
	assert.Equal(t, "mandate_1", mand.MandateID)
}

func TestPaymentResponseToWire_Success(t *testing.T) {
	res := domain.Ok(domain.PaymentsResponseData{
		ResourceID: domain.ConnectorTransactionID("txn_9"),
		Status:     domain.AttemptCharged,
	})
	w := paymentResponseToWire(res)
	assert.Equal(t, "txn_9", w.ResourceID)
	assert.Equal(t, "charged", w.Status)
	assert.Nil(t, w.Error)
}

func TestPaymentResponseToWire_Failure(t *testing.T) {
	errResp := domain.ErrorResponse{Code: "DECLINED", Message: "card declined", StatusCode: 402}
	res := domain.Result[domain.PaymentsResponseData]{Error: &errResp}
	w := paymentResponseToWire(res)
	assert.Empty(t, w.ResourceID)
	require.NotNil(t, w.Error)
	assert.Equal(t, "DECLINED", w.Error.Code)
	assert.Equal(t, 402, w.Error.StatusCode)
}

func TestRefundResponseToWire(t *testing.T) {
	res := domain.Ok(domain.RefundsResponseData{ConnectorRefundID: "re_1", Status: domain.RefundSuccess})
	w := refundResponseToWire(res)
	assert.Equal(t, "re_1", w.ConnectorRefundID)
	assert.Equal(t, "success", w.RefundStatus)
	assert.Nil(t, w.Error)
}

func TestDisputeResponseToAcceptWire_Failure(t *testing.T) {
	errResp := domain.ErrorResponse{Code: "NOT_FOUND", Message: "no such dispute"}
	res := domain.Result[domain.DisputeResponseData]{Error: &errResp}
	w := disputeResponseToAcceptWire(res)
	assert.Empty(t, w.ConnectorDisputeID)
	require.NotNil(t, w.Error)
	assert.Equal(t, "NOT_FOUND", w.Error.Code)
}

func TestEvidenceFromWire(t *testing.T) {
	items := []EvidenceWire{
		{Kind: "text", Field: "explanation", Text: "delivered on time"},
		{Kind: "file", Field: "receipt", FileName: "receipt.pdf", FileData: []byte("pdfdata"), MIMEType: "application/pdf"},
	}
	docs := evidenceFromWire(items)
	require.Len(t, docs, 2)
	assert.Equal(t, domain.EvidenceText, docs[0].Kind)
	assert.Equal(t, "delivered on time", docs[0].Text)
	assert.Equal(t, domain.EvidenceFile, docs[1].Kind)
	assert.Equal(t, "receipt.pdf", docs[1].FileName)
}

func TestWebhookContentToWire_Payment(t *testing.T) {
	content := domain.WebhookContent{
		Kind: domain.WebhookContentPayment,
		Payment: domain.PaymentsResponseData{
			ResourceID: domain.ConnectorTransactionID("txn_7"),
			Status:     domain.AttemptAuthorized,
		},
	}
	w := webhookContentToWire(content)
	require.Equal(t, "payment", w.Kind)
	require.NotNil(t, w.Payment)
	assert.Equal(t, "txn_7", w.Payment.ResourceID)
	assert.Equal(t, "authorized", w.Payment.Status)
}

func TestWebhookContentToWire_None(t *testing.T) {
	w := webhookContentToWire(domain.WebhookContent{})
	assert.Equal(t, "none", w.Kind)
	assert.Nil(t, w.Payment)
	assert.Nil(t, w.Refund)
	assert.Nil(t, w.Dispute)
}
