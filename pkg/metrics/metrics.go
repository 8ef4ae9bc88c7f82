package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	LifecycleTransitions *prometheus.CounterVec
	BookingsCreated      prometheus.Counter
	BookingsCancelled    prometheus.Counter
}

// New регистрирует метрики в дефолтном registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		LifecycleTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_lifecycle_transitions_total",
			Help:        "Total number of booking status transitions",
			ConstLabels: labels,
		}, []string{"from", "to"}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: labels,
		}),

		BookingsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of cancelled bookings",
			ConstLabels: labels,
		}),
	}
}

// IncLifecycleTransition учитывает переход статуса бронирования
func (m *Metrics) IncLifecycleTransition(from, to string) {
	m.LifecycleTransitions.WithLabelValues(from, to).Inc()
}

// IncBookingCreated учитывает созданное бронирование
func (m *Metrics) IncBookingCreated() {
	m.BookingsCreated.Inc()
}

// IncBookingCancelled учитывает отменённое бронирование
func (m *Metrics) IncBookingCancelled() {
	m.BookingsCancelled.Inc()
}
