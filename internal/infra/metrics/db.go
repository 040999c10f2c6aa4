package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(pgPoolConns) }

var pgPoolConns = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "pg_pool_connections",
		Help: "pgx pool connections by state.",
	},
	[]string{"state"}, // 'total', 'idle', 'in_use'
)

// SetDBPoolStats publishes a pool snapshot; cmd/app samples it on a ticker.
func SetDBPoolStats(total, idle, inUse int32) {
	pgPoolConns.WithLabelValues("total").Set(float64(total))
	pgPoolConns.WithLabelValues("idle").Set(float64(idle))
	pgPoolConns.WithLabelValues("in_use").Set(float64(inUse))
}
