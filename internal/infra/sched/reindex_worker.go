package sched

import (
	"context"
	"time"

	"rocodes-admin/internal/infra/metrics"
	"rocodes-admin/internal/usecase"

	"github.com/rs/zerolog"
)

// ReindexWorker periodically rebuilds the admin search index from storage.
// It only touches the search index; reconciliation passes are staff-triggered
// and never run from here.
type ReindexWorker struct {
	interval time.Duration
	searchUC *usecase.SearchUseCase
	log      *zerolog.Logger
}

func NewReindexWorker(interval time.Duration, searchUC *usecase.SearchUseCase, logger *zerolog.Logger) *ReindexWorker {
	idxLog := logger.With().Str("component", "ReindexWorker").Logger()
	return &ReindexWorker{
		interval: interval,
		searchUC: searchUC,
		log:      &idxLog,
	}
}

func (w *ReindexWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Msg("Starting reindex worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Stopping reindex worker")
			return ctx.Err()
		case <-ticker.C:
			n, err := w.searchUC.Reindex(ctx)
			if err != nil {
				w.log.Error().Err(err).Msg("reindex failed")
				continue
			}
			metrics.SetReindexDocs(n)
			w.log.Info().Int("docs", n).Msg("search index rebuilt")
		}
	}
}
