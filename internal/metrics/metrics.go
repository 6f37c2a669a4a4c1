package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Catalog
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of product catalog queries by result",
		},
		[]string{"result"},
	)

	CatalogRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Product catalog query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Total number of catalog cache hits",
		},
	)

	CatalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Total number of catalog cache misses",
		},
	)

	// Generation
	GenerationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_requests_total",
			Help: "Total number of language model calls by result",
		},
		[]string{"model", "result"},
	)

	GenerationCostUSD = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_cost_usd_total",
			Help: "Accumulated estimated language model cost in USD",
		},
		[]string{"model"},
	)

	// Engagement
	DesignsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "designs_created_total",
			Help: "Total number of uploaded designs",
		},
	)

	VotesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "design_votes_total",
			Help: "Total number of vote requests",
		},
	)

	SignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total number of signup requests",
		},
	)
)

// RecordAPIRequest records one served request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCatalogRequest records one upstream catalog query.
func RecordCatalogRequest(err error, duration time.Duration) {
	CatalogRequestsTotal.WithLabelValues(result(err)).Inc()
	CatalogRequestDuration.Observe(duration.Seconds())
}

// RecordGeneration records one language model call and its estimated cost.
func RecordGeneration(model string, err error, costUSD float64) {
	GenerationRequestsTotal.WithLabelValues(model, result(err)).Inc()
	if costUSD > 0 {
		GenerationCostUSD.WithLabelValues(model).Add(costUSD)
	}
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
