package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(syncPassDuration, codesReconciled, syncScrapeErrors)
}

var syncPassDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "code_sync_pass_duration_seconds",
		Help:    "Duration of code reconciliation passes.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 40},
	},
	[]string{"pass", "success"}, // pass: 'import' | 'refresh'
)

var codesReconciled = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "codes_reconciled_total",
		Help: "Codes processed by reconciliation passes, by outcome.",
	},
	[]string{"outcome"}, // 'found', 'upserted', 'removed'
)

var syncScrapeErrors = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "code_sync_scrape_errors_total",
		Help: "Scrape failures encountered during reconciliation passes.",
	},
)

func ObserveSyncPass(pass string, success bool, d time.Duration) {
	syncPassDuration.WithLabelValues(pass, strconv.FormatBool(success)).Observe(d.Seconds())
}

func AddCodesReconciled(found, upserted, removed int) {
	codesReconciled.WithLabelValues("found").Add(float64(found))
	codesReconciled.WithLabelValues("upserted").Add(float64(upserted))
	codesReconciled.WithLabelValues("removed").Add(float64(removed))
}

func IncScrapeError() {
	syncScrapeErrors.Inc()
}
