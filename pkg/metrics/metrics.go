package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	gatewayRequestsTotal   *prometheus.CounterVec
	gatewayRequestDuration *prometheus.HistogramVec

	fallbacksTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		gatewayRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "gateway_requests_total",
			Help:        "Total number of remote gateway calls",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		gatewayRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "gateway_request_duration_seconds",
			Help:        "Remote gateway call duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		fallbacksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_fallbacks_total",
			Help:        "Total number of operations degraded to local persistence",
			ConstLabels: constLabels,
		}, []string{"operation"}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveGatewayCall фиксирует вызов удаленного API
// outcome: success | error
func (m *Metrics) ObserveGatewayCall(operation, outcome string, duration time.Duration) {
	m.gatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.gatewayRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// IncFallback фиксирует деградацию операции до локального хранилища
func (m *Metrics) IncFallback(operation string) {
	m.fallbacksTotal.WithLabelValues(operation).Inc()
}
