package redis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// cacheLookups counts read-through cache lookups.
// Label:
//   - result: "hit", "miss", or "error"
var cacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "bookstore",
		Name:      "book_cache_lookups_total",
		Help:      "Total number of book cache lookups, labelled by result.",
	},
	[]string{"result"},
)
