package adapter

import (
	"context"

	"rocodes-admin/internal/domain/model"
)

// ScrapeResult is what the external scraper collaborator reports for one run.
// Codes may contain several candidates for the same comparison key (differing
// provenance); the reconciler resolves such collisions, not the scraper.
type ScrapeResult struct {
	Codes        []model.CodeCandidate `json:"codes"`
	ExpiredCodes []string              `json:"expired_codes"`
}

// SourceScraper fetches candidate and known-expired codes from external source
// URLs. How sources are fetched (HTML scraping, APIs) is out of scope here;
// the engine treats this as an opaque function. An error aborts the whole
// reconciliation pass before any storage mutation.
type SourceScraper interface {
	Scrape(ctx context.Context, urls []string) (*ScrapeResult, error)
}
