package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(searchReindexDocs, searchQueries) }

var searchReindexDocs = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "search_reindex_docs",
		Help: "Documents written by the most recent full reindex.",
	},
)

var searchQueries = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "search_queries_total",
		Help: "Search queries served.",
	},
)

func SetReindexDocs(n int) { searchReindexDocs.Set(float64(n)) }
func IncSearchQuery()      { searchQueries.Inc() }
