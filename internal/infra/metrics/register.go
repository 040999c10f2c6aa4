package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Collectors are declared next to the code they measure (sync passes, HTTP,
// DB pool, search) and enqueued from init(); cmd/app flushes the queue with
// MustRegister before the first request is served.
var (
	registerOnce sync.Once
	pending      []prometheus.Collector
)

func register(cs ...prometheus.Collector) {
	pending = append(pending, cs...)
}

// MustRegister registers every enqueued collector exactly once.
// Calling it again is a no-op, so tests and main can both invoke it.
func MustRegister() {
	registerOnce.Do(func() {
		if len(pending) > 0 {
			prometheus.MustRegister(pending...)
		}
	})
}
