package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dayledger"

// Metrics owns one registry so separate app instances never collide.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight      prometheus.Gauge
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	carriedTasks      prometheus.Counter
	carryRuns         *prometheus.CounterVec
	invoicesCreated   *prometheus.CounterVec
	invoiceTransition *prometheus.CounterVec
	overdueMarked     prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "path"}),
		carriedTasks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tasks",
			Name:      "carried_forward_total",
			Help:      "Tasks created by carry-forward.",
		}),
		carryRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tasks",
			Name:      "carry_forward_runs_total",
			Help:      "Carry-forward invocations by outcome.",
		}, []string{"success"}),
		invoicesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "invoices",
			Name:      "created_total",
			Help:      "Invoices created, by currency.",
		}, []string{"currency"}),
		invoiceTransition: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "invoices",
			Name:      "status_changes_total",
			Help:      "Invoice status changes, by target status.",
		}, []string{"status"}),
		overdueMarked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "invoices",
			Name:      "marked_overdue_total",
			Help:      "Invoices moved to overdue by the sweep.",
		}),
	}

	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.carriedTasks,
		m.carryRuns,
		m.invoicesCreated,
		m.invoiceTransition,
		m.overdueMarked,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// TrackInFlight increments the in-flight gauge and returns its decrement.
func (m *Metrics) TrackInFlight() func() {
	m.httpInFlight.Inc()
	return m.httpInFlight.Dec
}

// ObserveRequest records one finished request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method string, path string, status int, duration time.Duration) {
	method = strings.ToUpper(method)
	if path == "" {
		path = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordCarryForward(created int, err error) {
	m.carryRuns.WithLabelValues(strconv.FormatBool(err == nil)).Inc()
	if err == nil {
		m.carriedTasks.Add(float64(created))
	}
}

func (m *Metrics) RecordInvoiceCreated(currency string) {
	m.invoicesCreated.WithLabelValues(currency).Inc()
}

func (m *Metrics) RecordInvoiceStatus(status string) {
	m.invoiceTransition.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordOverdueMarked(count int64) {
	m.overdueMarked.Add(float64(count))
}
