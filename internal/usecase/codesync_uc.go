package usecase

import (
	"context"
	"fmt"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/adapter"
	"rocodes-admin/internal/domain/ports/repository"
)

// SyncResult is the outcome of one import pass. CodesFound and Codes reflect
// only the candidates that survived the priority rule; Errors carries the
// scrape failure message when the aggregator could not be reached.
type SyncResult struct {
	CodesFound    int                   `json:"codes_found"`
	CodesUpserted int                   `json:"codes_upserted"`
	ExpiredCodes  []string              `json:"expired_codes"`
	Errors        []string              `json:"errors"`
	Codes         []model.CodeCandidate `json:"codes"`
}

// RefreshResult is the outcome of a refresh pass (import + prune).
type RefreshResult struct {
	Found    int `json:"found"`
	Upserted int `json:"upserted"`
	Removed  int `json:"removed"`
	Expired  int `json:"expired"`
}

// CodeSyncUseCase is the code reconciliation engine: it diffs aggregated
// candidates against the persisted code set for a game, applies the
// priority-wins policy, issues upserts, and (on refresh) prunes codes that
// disappeared from every source. Each call is a pure function of
// (existing rows, incoming candidates); no state survives between passes.
type CodeSyncUseCase struct {
	codes   repository.GameCodeRepository
	games   repository.GameRepository
	scraper adapter.SourceScraper
}

func NewCodeSyncUseCase(
	codes repository.GameCodeRepository,
	games repository.GameRepository,
	scraper adapter.SourceScraper,
) *CodeSyncUseCase {
	return &CodeSyncUseCase{codes: codes, games: games, scraper: scraper}
}

// SyncFromSources runs one import pass for a game.
//
// A scrape failure is reported in the result's Errors and leaves storage
// untouched. A persistence failure is returned as an error; upserts already
// committed stay committed (each is independent and idempotent, so the pass
// is safely re-runnable).
func (uc *CodeSyncUseCase) SyncFromSources(ctx context.Context, gameID string, sources []string) (*SyncResult, error) {
	res := &SyncResult{ExpiredCodes: []string{}, Errors: []string{}, Codes: []model.CodeCandidate{}}

	urls := model.DedupeSources(sources)
	if len(urls) == 0 {
		return res, nil
	}

	scraped, err := uc.scraper.Scrape(ctx, urls)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res, nil
	}

	existing, err := uc.codes.ListByGame(ctx, repository.NoTX, gameID)
	if err != nil {
		return nil, fmt.Errorf("list codes for game %s: %w", gameID, err)
	}

	// Highest known provider priority per comparison key, seeded from the
	// persisted rows so a low-trust source cannot clobber high-trust data
	// across passes. Rows that fail to normalize take no part in the merge.
	best := make(map[string]int, len(existing))
	for _, row := range existing {
		key, ok := row.Key()
		if !ok {
			continue
		}
		if p, seen := best[key]; !seen || row.ProviderPriority > p {
			best[key] = row.ProviderPriority
		}
	}

	for _, cand := range scraped.Codes {
		display, ok := model.SanitizeDisplay(cand.Code)
		if !ok {
			continue
		}
		key, ok := model.NormalizeKey(cand.Code)
		if !ok {
			continue
		}
		// First-claimed-priority blocks equal or lower: an existing row or an
		// already-processed candidate at priority >= ours wins the key.
		if p, seen := best[key]; seen && p >= cand.ProviderPriority {
			continue
		}
		best[key] = cand.ProviderPriority

		status := cand.Status
		if status == "" {
			status = model.CodeStatusActive
		}
		up := repository.CodeUpsert{
			GameID:           gameID,
			Code:             display,
			Status:           status,
			RewardsText:      cand.RewardsText,
			LevelRequirement: cand.LevelRequirement,
			IsNew:            cand.IsNew,
			ProviderPriority: cand.ProviderPriority,
		}
		if err := uc.codes.Upsert(ctx, repository.NoTX, up); err != nil {
			return nil, fmt.Errorf("upsert code %s: %w", display, err)
		}
		kept := cand
		kept.Code = display
		kept.Status = status
		res.Codes = append(res.Codes, kept)
		res.CodesUpserted++
	}
	res.CodesFound = len(res.Codes)

	res.ExpiredCodes = dedupeExpired(scraped.ExpiredCodes)
	// The array replaces whatever the game row held before, never merged.
	if err := uc.games.SetExpiredCodes(ctx, repository.NoTX, gameID, res.ExpiredCodes); err != nil {
		return nil, fmt.Errorf("store expired codes for game %s: %w", gameID, err)
	}
	if len(res.ExpiredCodes) > 0 {
		// Stale 'expired' rows are now tracked in the array instead; active
		// and check rows are untouched here.
		if _, err := uc.codes.DeleteExpired(ctx, repository.NoTX, gameID); err != nil {
			return nil, fmt.Errorf("delete expired rows for game %s: %w", gameID, err)
		}
	}

	return res, nil
}

// Refresh wraps an import pass and then prunes persisted active/check rows
// whose comparison key was not upserted by that pass. Expired rows are never
// pruned this way. When the import pass reports errors the refresh fails
// immediately and nothing is pruned.
func (uc *CodeSyncUseCase) Refresh(ctx context.Context, game *model.Game) (*RefreshResult, error) {
	if game.IsZero() {
		return nil, domain.ErrInvalidArgument
	}

	sync, err := uc.SyncFromSources(ctx, game.ID, game.Sources())
	if err != nil {
		return nil, err
	}
	if len(sync.Errors) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrScrapeFailed, sync.Errors[0])
	}

	existing, err := uc.codes.ListByGame(ctx, repository.NoTX, game.ID)
	if err != nil {
		return nil, fmt.Errorf("list codes for game %s: %w", game.ID, err)
	}

	upserted := make(map[string]struct{}, len(sync.Codes))
	for _, c := range sync.Codes {
		if key, ok := model.NormalizeKey(c.Code); ok {
			upserted[key] = struct{}{}
		}
	}

	var prune []string
	for _, row := range existing {
		if row.Status != model.CodeStatusActive && row.Status != model.CodeStatusCheck {
			continue
		}
		key, ok := row.Key()
		if !ok {
			continue
		}
		if _, found := upserted[key]; !found {
			prune = append(prune, row.Code)
		}
	}

	removed := 0
	if len(prune) > 0 {
		removed, err = uc.codes.DeleteByCodes(ctx, repository.NoTX, game.ID, prune)
		if err != nil {
			return nil, fmt.Errorf("prune codes for game %s: %w", game.ID, err)
		}
	}

	return &RefreshResult{
		Found:    sync.CodesFound,
		Upserted: sync.CodesUpserted,
		Removed:  removed,
		Expired:  len(sync.ExpiredCodes),
	}, nil
}

// ListCodes returns the persisted code rows for a game in first-seen order.
func (uc *CodeSyncUseCase) ListCodes(ctx context.Context, gameID string) ([]*model.GameCode, error) {
	if _, err := uc.games.FindByID(ctx, repository.NoTX, gameID); err != nil {
		return nil, err
	}
	return uc.codes.ListByGame(ctx, repository.NoTX, gameID)
}

// dedupeExpired sanitizes the aggregator's expired list to display form and
// de-duplicates by comparison key, keeping first occurrence order.
func dedupeExpired(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		display, ok := model.SanitizeDisplay(r)
		if !ok {
			continue
		}
		key, ok := model.NormalizeKey(r)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, display)
	}
	return out
}
