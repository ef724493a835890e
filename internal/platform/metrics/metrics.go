// Package metrics declares the Prometheus series this engine exports,
// grounded on user-service/internal/metrics: package-level promauto
// collectors plus small Record* helper functions so call sites never touch
// a prometheus.*Vec directly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OutboundRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_connector_engine_outbound_requests_total",
			Help: "Total number of outbound calls issued to upstream gateways",
		},
		[]string{"connector", "flow", "outcome"},
	)

	OutboundRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_connector_engine_outbound_request_duration_seconds",
			Help:    "Outbound gateway call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"connector", "flow"},
	)

	WebhooksIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_connector_engine_webhooks_ingested_total",
			Help: "Total number of inbound webhook deliveries ingested",
		},
		[]string{"connector", "event_type", "source_verified"},
	)

	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_connector_engine_rpc_requests_total",
			Help: "Total number of gRPC requests served",
		},
		[]string{"method", "code"},
	)
)

// RecordOutboundRequest records one outbound gateway call.
func RecordOutboundRequest(connector, flow, outcome string, duration time.Duration) {
	OutboundRequestsTotal.WithLabelValues(connector, flow, outcome).Inc()
	OutboundRequestDuration.WithLabelValues(connector, flow).Observe(duration.Seconds())
}

// RecordWebhookIngested records one inbound webhook delivery.
func RecordWebhookIngested(connector, eventType string, sourceVerified bool) {
	WebhooksIngestedTotal.WithLabelValues(connector, eventType, boolLabel(sourceVerified)).Inc()
}

// RecordRPC records one served gRPC request.
func RecordRPC(method, code string) {
	RPCRequestsTotal.WithLabelValues(method, code).Inc()
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
