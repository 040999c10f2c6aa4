package scraper

import (
	"context"

	"rocodes-admin/internal/domain/ports/adapter"
)

// Noop returns empty results; used in dev mode when no scraper service is
// configured so game saves still succeed.
type Noop struct{}

var _ adapter.SourceScraper = (*Noop)(nil)

func (Noop) Scrape(ctx context.Context, urls []string) (*adapter.ScrapeResult, error) {
	return &adapter.ScrapeResult{}, nil
}
