package fas

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var nicknameCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fas_resolver_nickname_cache_hits",
	Help: "Number of cache hits for nickname lookups",
})

var nicknameCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fas_resolver_nickname_cache_misses",
	Help: "Number of cache misses for nickname lookups",
})

var emailCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fas_resolver_email_cache_hits",
	Help: "Number of cache hits for email lookups",
})

var emailCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fas_resolver_email_cache_misses",
	Help: "Number of cache misses for email lookups",
})

var accountSearches = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fas_resolver_searches",
	Help: "Account-system search requests",
}, []string{"status"})
