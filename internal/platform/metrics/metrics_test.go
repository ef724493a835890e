package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOutboundRequest(t *testing.T) {
	before := testutil.ToFloat64(OutboundRequestsTotal.WithLabelValues("adyen", "authorize", "success"))
	RecordOutboundRequest("adyen", "authorize", "success", 0)
	after := testutil.ToFloat64(OutboundRequestsTotal.WithLabelValues("adyen", "authorize", "success"))
	assert.Equal(t, before+1, after)
}

func TestRecordWebhookIngested(t *testing.T) {
	before := testutil.ToFloat64(WebhooksIngestedTotal.WithLabelValues("razorpay", "payment_update", "true"))
	RecordWebhookIngested("razorpay", "payment_update", true)
	after := testutil.ToFloat64(WebhooksIngestedTotal.WithLabelValues("razorpay", "payment_update", "true"))
	assert.Equal(t, before+1, after)
}

func TestRecordRPC(t *testing.T) {
	before := testutil.ToFloat64(RPCRequestsTotal.WithLabelValues("Authorize", "OK"))
	RecordRPC("Authorize", "OK")
	after := testutil.ToFloat64(RPCRequestsTotal.WithLabelValues("Authorize", "OK"))
	assert.Equal(t, before+1, after)
}
