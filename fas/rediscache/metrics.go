package rediscache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheReadErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fas_redis_cache_read_errors",
	Help: "Number of failed reads from the redis account cache",
})

var cacheWriteErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fas_redis_cache_write_errors",
	Help: "Number of failed writes to the redis account cache",
})
