package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"rocodes-admin/internal/config"
	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/ports/adapter"
)

// HTTPScraper calls the external scraping service that actually fetches and
// parses source pages. This process never touches source URLs directly.
type HTTPScraper struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ adapter.SourceScraper = (*HTTPScraper)(nil)

func NewHTTPScraper(cfg config.ScraperConfig) *HTTPScraper {
	return &HTTPScraper{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type scrapeRequest struct {
	URLs []string `json:"urls"`
}

func (s *HTTPScraper) Scrape(ctx context.Context, urls []string) (*adapter.ScrapeResult, error) {
	if len(urls) == 0 {
		return &adapter.ScrapeResult{}, nil
	}
	body, err := json.Marshal(scrapeRequest{URLs: urls})
	if err != nil {
		return nil, fmt.Errorf("encode scrape request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build scrape request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScrapeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrScrapeFailed, resp.StatusCode, snippet)
	}

	var out adapter.ScrapeResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrScrapeFailed, err)
	}
	return &out, nil
}
