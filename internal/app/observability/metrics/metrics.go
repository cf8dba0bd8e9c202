package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "carehome_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec
	sessionRefresh  *prometheus.CounterVec

	cacheLookups   *prometheus.CounterVec
	cacheEvictions *prometheus.CounterVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	mutationEvents *prometheus.CounterVec
)

// Init registers the service collectors on the default registry. Calling it more than once is a no-op.
func Init() {
	registerOnce.Do(func() {
		backendRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "backend_requests_total",
				Help: "Total care backend requests by resource, method and status code",
			},
			[]string{"resource", "method", "status"},
		)
		backendLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "backend_request_latency_seconds",
				Help:    "Care backend request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource", "method"},
		)
		sessionRefresh = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "session_refresh_total",
				Help: "Total session token refresh attempts by result",
			},
			[]string{"result"},
		)

		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cache_lookups_total",
				Help: "Query cache lookups by resource and outcome",
			},
			[]string{"resource", "outcome"},
		)
		cacheEvictions = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cache_evicted_keys_total",
				Help: "Query cache keys evicted after mutations",
			},
			[]string{"resource"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "specification_export_total",
				Help: "Total specification exports by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "specification_export_latency_seconds",
				Help:    "Specification export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		)

		mutationEvents = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "mutation_events_total",
				Help: "Mutation events published by resource and result",
			},
			[]string{"resource", "result"},
		)

		prometheus.MustRegister(
			backendRequests,
			backendLatency,
			sessionRefresh,
			cacheLookups,
			cacheEvictions,
			exportTotal,
			exportLatency,
			mutationEvents,
		)
	})
}

// ObserveBackendRequest records one care backend round trip. statusCode 0 means transport failure.
func ObserveBackendRequest(resource, method string, statusCode int, duration time.Duration) {
	if backendRequests != nil {
		backendRequests.WithLabelValues(resource, method, strconv.Itoa(statusCode)).Inc()
	}
	if backendLatency != nil {
		backendLatency.WithLabelValues(resource, method).Observe(duration.Seconds())
	}
}

func IncSessionRefresh(result string) {
	if result == "" {
		result = ResultSuccess
	}
	if sessionRefresh != nil {
		sessionRefresh.WithLabelValues(result).Inc()
	}
}

func IncCacheLookup(resource string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	if cacheLookups != nil {
		cacheLookups.WithLabelValues(resource, outcome).Inc()
	}
}

func AddCacheEvictions(resource string, count int) {
	if count <= 0 {
		return
	}
	if cacheEvictions != nil {
		cacheEvictions.WithLabelValues(resource).Add(float64(count))
	}
}

func ObserveExport(format, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
	if exportLatency != nil {
		exportLatency.WithLabelValues(format).Observe(duration.Seconds())
	}
}

func IncMutationEvent(resource, result string) {
	if mutationEvents != nil {
		mutationEvents.WithLabelValues(resource, result).Inc()
	}
}
