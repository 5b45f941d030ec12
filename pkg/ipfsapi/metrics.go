package ipfsapi

import (
	"github.com/prometheus/client_golang/prometheus"

	m "github.com/gauss-project/ipfsclient/pkg/metrics"
)

type metrics struct {
	// all metrics fields must be exported
	// to be able to return them by Metrics()
	// using reflection

	RequestCount         prometheus.Counter
	SendErrorCount       prometheus.Counter
	ResponseErrorCount   prometheus.Counter
	GatewayFallbackCount prometheus.Counter
}

func newMetrics() metrics {
	subsystem := "api"

	return metrics{
		RequestCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "request_count",
			Help:      "Number of requests dispatched to the daemon or gateway.",
		}),
		SendErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "send_error_count",
			Help:      "Number of transport-level request failures.",
		}),
		ResponseErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "response_error_count",
			Help:      "Number of non-success daemon responses.",
		}),
		GatewayFallbackCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "gateway_fallback_count",
			Help:      "Number of requests redirected to the public gateway.",
		}),
	}
}

func (s *Service) Metrics() []prometheus.Collector {
	return m.PrometheusCollectorsFromFields(s.metrics)
}
