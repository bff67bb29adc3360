package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors. Each instance owns its registry so
// tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	kettleActive  prometheus.Gauge
	batches       *prometheus.CounterVec
	unitCost      *prometheus.HistogramVec
	stockRejected *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitumen_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bitumen_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		kettleActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bitumen_kettle_boiling",
			Help: "1 while a conversion batch is boiling.",
		}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitumen_production_runs_total",
			Help: "Committed production runs by kind and outcome.",
		}, []string{"kind", "outcome"}),
		unitCost: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bitumen_unit_cost",
			Help:    "Unit cost per kg of committed production runs.",
			Buckets: prometheus.ExponentialBuckets(100, 1.5, 12),
		}, []string{"kind"}),
		stockRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitumen_stock_rejections_total",
			Help: "Debits rejected because stock could not cover them.",
		}, []string{"category"}),
	}
	m.registry.MustRegister(
		m.httpRequests, m.httpDuration, m.kettleActive,
		m.batches, m.unitCost, m.stockRejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records one sample per request, keyed by the route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) SetKettleBoiling(boiling bool) {
	if boiling {
		m.kettleActive.Set(1)
		return
	}
	m.kettleActive.Set(0)
}

func (m *Metrics) ObserveRun(kind, outcome string, unitCost float64) {
	m.batches.WithLabelValues(kind, outcome).Inc()
	if outcome == "ok" {
		m.unitCost.WithLabelValues(kind).Observe(unitCost)
	}
}

func (m *Metrics) ObserveStockRejection(category string) {
	m.stockRejected.WithLabelValues(category).Inc()
}
