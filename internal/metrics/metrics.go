package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Edge server
var (
	ProxyRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boutique_edge_proxy_requests_total",
		Help: "API requests forwarded to the backend by upstream status code",
	}, []string{"code"})
	ProxyUpstreamErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boutique_edge_proxy_upstream_errors_total",
		Help: "API requests that failed to reach the backend",
	})
	ProxyLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "boutique_edge_proxy_duration_ms",
		Help:    "Backend round trip duration in milliseconds",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	})
	ConfigRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boutique_edge_config_requests_total",
		Help: "Runtime config documents served",
	})
	AdminRedirectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boutique_edge_admin_redirects_total",
		Help: "Redirects issued to the admin interface",
	})
)

// API client
var (
	ClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boutique_client_requests_total",
		Help: "API client requests by method and status code",
	}, []string{"method", "code"})
)
