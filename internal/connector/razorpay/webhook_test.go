package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-connector-engine/internal/domain"
)

func sign(t *testing.T, secret string, body []byte) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookIngestor_PaymentCaptured_VerifiedAndMapped(t *testing.T) {
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","status":"captured","order_id":"order_1","amount":5000,"currency":"INR"}}}}`)
	secret := "whsec_test"
	w := webhookIngestor{c: &client{}}

	out, err := w.Ingest(domain.IncomingWebhookRequestDetails{
		Body:    body,
		Headers: map[string]string{"x-razorpay-signature": sign(t, secret, body)},
	}, domain.WebhookSecrets{HMACKey: secret})

	require.NoError(t, err)
	assert.True(t, out.SourceVerified)
	assert.Equal(t, domain.WebhookPaymentUpdate, out.EventType)
	assert.Equal(t, domain.WebhookContentPayment, out.Content.Kind)
	assert.Equal(t, domain.ConnectorTransactionID("pay_1"), out.Content.Payment.ResourceID)
	assert.Equal(t, domain.AttemptCharged, out.Content.Payment.Status)
	assert.Equal(t, "order_1", out.Content.Payment.ConnectorResponseReferenceID)
}

func TestWebhookIngestor_RefundFailed_MapsFailureStatus(t *testing.T) {
	body := []byte(`{"event":"refund.failed","payload":{"refund":{"entity":{"id":"rfnd_1","payment_id":"pay_1","status":"failed"}}}}`)
	secret := "whsec_test"
	w := webhookIngestor{c: &client{}}

	out, err := w.Ingest(domain.IncomingWebhookRequestDetails{
		Body:    body,
		Headers: map[string]string{"x-razorpay-signature": sign(t, secret, body)},
	}, domain.WebhookSecrets{HMACKey: secret})

	require.NoError(t, err)
	assert.True(t, out.SourceVerified)
	assert.Equal(t, domain.WebhookRefundUpdate, out.EventType)
	assert.Equal(t, domain.RefundFailure, out.Content.Refund.Status)
	assert.Equal(t, "rfnd_1", out.Content.Refund.ConnectorRefundID)
}

func TestWebhookIngestor_BadSignature_NotVerified(t *testing.T) {
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","status":"captured"}}}}`)
	w := webhookIngestor{c: &client{}}

	out, err := w.Ingest(domain.IncomingWebhookRequestDetails{
		Body:    body,
		Headers: map[string]string{"x-razorpay-signature": "deadbeef"},
	}, domain.WebhookSecrets{HMACKey: "whsec_test"})

	require.NoError(t, err)
	assert.False(t, out.SourceVerified)
	assert.Equal(t, domain.WebhookPaymentUpdate, out.EventType)
}

func TestWebhookIngestor_UnknownEvent(t *testing.T) {
	body := []byte(`{"event":"order.paid","payload":{}}`)
	secret := "whsec_test"
	w := webhookIngestor{c: &client{}}

	out, err := w.Ingest(domain.IncomingWebhookRequestDetails{
		Body:    body,
		Headers: map[string]string{"x-razorpay-signature": sign(t, secret, body)},
	}, domain.WebhookSecrets{HMACKey: secret})

	require.NoError(t, err)
	assert.Equal(t, domain.WebhookUnknown, out.EventType)
	assert.True(t, out.SourceVerified)
}
