// Package metrics provides Prometheus metrics for the game catalog service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/gamecatalog-backend/internal/adapter/postgres/query"
)

const namespace = "gamecatalog"

// Metrics holds every collector the service exports. It implements
// query.Observer.
type Metrics struct {
	reg *prometheus.Registry

	QueriesTotal    *prometheus.CounterVec
	QueryDuration   *prometheus.HistogramVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
	HTTPPanics      *prometheus.CounterVec
	RateLimitHits   prometheus.Counter
	NotificationsGC prometheus.Counter
}

var _ query.Observer = (*Metrics)(nil)

// New registers the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,

		QueriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "queries_total",
				Help:      "Total number of query layer statements by operation, table and outcome",
			},
			[]string{"op", "table", "outcome"},
		),
		QueryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "query_duration_seconds",
				Help:      "Duration of query layer statements in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"op"},
		),
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPPanics: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "panics_total",
				Help:      "Total number of handler panics recovered, by route",
			},
			[]string{"route"},
		),
		RateLimitHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ratelimit",
			Name:      "hits_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),
		NotificationsGC: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "purged_total",
			Help:      "Total number of read notifications removed by cleanup",
		}),
	}
}

// ObserveQuery records one statement. Build errors count like any other
// failure so rejected chains stay visible.
func (m *Metrics) ObserveQuery(op, table string, elapsed time.Duration, err *query.Error) {
	outcome := "ok"
	if err != nil {
		outcome = string(err.Kind)
	}
	m.QueriesTotal.WithLabelValues(op, table, outcome).Inc()
	m.QueryDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObservePanic counts a recovered handler panic.
func (m *Metrics) ObservePanic(route string) {
	m.HTTPPanics.WithLabelValues(route).Inc()
}

// ObserveRateLimited counts a rejected request.
func (m *Metrics) ObserveRateLimited() {
	m.RateLimitHits.Inc()
}

// ObserveNotificationsCleanup counts notifications removed by retention cleanup.
func (m *Metrics) ObserveNotificationsCleanup(removed int) {
	m.NotificationsGC.Add(float64(removed))
}

// RegisterPool exports connection pool gauges read from pool.Stat on scrape.
func (m *Metrics) RegisterPool(pool *pgxpool.Pool) {
	f := promauto.With(m.reg)
	gauge := func(name, help string, fn func(*pgxpool.Stat) float64) {
		f.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 { return fn(pool.Stat()) })
	}

	gauge("total_conns", "Connections currently open", func(s *pgxpool.Stat) float64 { return float64(s.TotalConns()) })
	gauge("acquired_conns", "Connections currently checked out", func(s *pgxpool.Stat) float64 { return float64(s.AcquiredConns()) })
	gauge("idle_conns", "Idle connections", func(s *pgxpool.Stat) float64 { return float64(s.IdleConns()) })
	gauge("max_conns", "Configured pool size", func(s *pgxpool.Stat) float64 { return float64(s.MaxConns()) })
	gauge("empty_acquire_total", "Acquires that had to wait for a connection", func(s *pgxpool.Stat) float64 { return float64(s.EmptyAcquireCount()) })
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
