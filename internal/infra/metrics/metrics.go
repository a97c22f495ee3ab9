// Package metrics exposes Prometheus collectors for the ledger and its HTTP surfaces.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"nutriledger/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nutriledger"

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

type ledgerMetrics struct {
	analysisTotal    *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	analyzerTotal    *prometheus.CounterVec
	analyzerDuration *prometheus.HistogramVec
	goalCacheTotal   *prometheus.CounterVec
}

// NewLedgerMetrics registers the domain collectors on reg.
func NewLedgerMetrics(reg prometheus.Registerer) service.LedgerMetrics {
	factory := promauto.With(reg)

	return &ledgerMetrics{
		analysisTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_finished_total",
			Help:      "Analyses that left the analyzing state, by resulting status.",
		}, []string{"status"}),
		analysisDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time from picking up an analysis job to persisting its outcome.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		}, []string{"status"}),
		analyzerTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyzer_calls_total",
			Help:      "Image analyzer calls by outcome.",
		}, []string{"outcome"}),
		analyzerDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analyzer_call_duration_seconds",
			Help:      "Image analyzer call latency.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"outcome"}),
		goalCacheTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goal_cache_lookups_total",
			Help:      "Goal cache lookups by result.",
		}, []string{"result"}),
	}
}

func (m *ledgerMetrics) AnalysisFinished(status string, elapsed time.Duration) {
	m.analysisTotal.WithLabelValues(status).Inc()
	m.analysisDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

func (m *ledgerMetrics) AnalyzerCall(outcome string, elapsed time.Duration) {
	m.analyzerTotal.WithLabelValues(outcome).Inc()
	m.analyzerDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *ledgerMetrics) GoalCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.goalCacheTotal.WithLabelValues(result).Inc()
}

// HTTPMetrics counts requests and their latency per route template.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP collectors on reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)

	return &HTTPMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Observe records one finished request. route must be the route template, not the raw path.
func (m *HTTPMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// DBMetrics counts ledger statements and their latency per table.
type DBMetrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewDBMetrics registers the query collectors on reg.
func NewDBMetrics(reg prometheus.Registerer) *DBMetrics {
	factory := promauto.With(reg)

	return &DBMetrics{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_queries_total",
			Help:      "Database statements by table, operation and outcome.",
		}, []string{"table", "operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Database statement latency by table and operation.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"table", "operation"}),
	}
}

// ObserveQuery records one executed statement.
func (m *DBMetrics) ObserveQuery(table, operation string, elapsed time.Duration, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	m.queries.WithLabelValues(table, operation, outcome).Inc()
	m.duration.WithLabelValues(table, operation).Observe(elapsed.Seconds())
}
