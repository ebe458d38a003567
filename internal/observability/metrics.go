// Package observability holds Prometheus metrics shared across the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// CacheHits counts cache-aside hits by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_cache_hits_total",
		Help: "Total number of cache hits by key prefix",
	}, []string{"prefix"})

	// CacheMisses counts cache-aside misses by key prefix.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_cache_misses_total",
		Help: "Total number of cache misses by key prefix",
	}, []string{"prefix"})

	// GithubUpstreamFailures counts failed GitHub pass-through calls.
	GithubUpstreamFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnector_github_upstream_failures_total",
		Help: "Total number of failed GitHub repository lookups",
	})
)
