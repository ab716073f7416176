package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns every collector of the service. All recording methods are
// safe to call on a nil *Manager, which records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Report metrics
	reportsBuilt      prometheus.Counter
	validationErrors  prometheus.Counter
	referenceMisses   *prometheus.CounterVec
	buildDuration     prometheus.Histogram
	referenceSubjects prometheus.Gauge

	// Transport metrics
	grpcRequests        *prometheus.CounterVec
	grpcRequestDuration *prometheus.HistogramVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a Manager and registers its collectors, plus the Go
// runtime and process collectors, on its registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "score_report",
		histogramBuckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(m.registry)

	m.reportsBuilt = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reports_built_total",
		Help:      "Total number of analysis reports built",
	})

	m.validationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_errors_total",
		Help:      "Total number of score sets rejected as invalid",
	})

	m.referenceMisses = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "reference_misses_total",
			Help:      "Subjects reported without reference data, by table",
		},
		[]string{"table"},
	)

	m.buildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "build_duration_milliseconds",
		Help:      "Time spent building one report in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.referenceSubjects = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reference_subjects",
		Help:      "Number of subjects in the loaded reference tables",
	})

	m.grpcRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "grpc_requests_total",
			Help:      "Total number of gRPC requests by method and status code",
		},
		[]string{"method", "code"},
	)

	m.grpcRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "grpc_request_duration_milliseconds",
			Help:      "gRPC request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"method", "code"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method", "status_code"},
	)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// RecordReportBuilt counts a successful report and observes its build time.
func (m *Manager) RecordReportBuilt(d time.Duration) {
	if m == nil {
		return
	}
	m.reportsBuilt.Inc()
	m.buildDuration.Observe(millis(d))
}

// RecordValidationError counts a rejected score set.
func (m *Manager) RecordValidationError() {
	if m == nil {
		return
	}
	m.validationErrors.Inc()
}

// RecordReferenceMiss counts a subject missing from table
// ("class_average" or "distribution").
func (m *Manager) RecordReferenceMiss(table string) {
	if m == nil {
		return
	}
	m.referenceMisses.WithLabelValues(table).Inc()
}

// SetReferenceSubjects publishes the size of the loaded reference tables.
func (m *Manager) SetReferenceSubjects(n int) {
	if m == nil {
		return
	}
	m.referenceSubjects.Set(float64(n))
}

// RecordGRPCRequest records one finished unary call.
func (m *Manager) RecordGRPCRequest(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.grpcRequests.WithLabelValues(method, code).Inc()
	m.grpcRequestDuration.WithLabelValues(method, code).Observe(millis(d))
}

// RecordHTTPRequest records one finished HTTP request.
func (m *Manager) RecordHTTPRequest(route, method, statusCode string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, statusCode).Observe(millis(d))
}

// Registry returns the registry the collectors live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
