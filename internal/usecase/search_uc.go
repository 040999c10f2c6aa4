package usecase

import (
	"context"
	"fmt"

	"rocodes-admin/internal/domain/ports/adapter"
	"rocodes-admin/internal/domain/ports/repository"
)

// SearchUseCase queries the index and rebuilds it from persisted content.
type SearchUseCase struct {
	index    adapter.SearchIndex
	games    repository.GameRepository
	articles repository.ArticleRepository
}

func NewSearchUseCase(index adapter.SearchIndex, games repository.GameRepository, articles repository.ArticleRepository) *SearchUseCase {
	return &SearchUseCase{index: index, games: games, articles: articles}
}

func (uc *SearchUseCase) Query(ctx context.Context, q string, limit int) ([]adapter.SearchHit, error) {
	if limit <= 0 {
		limit = 20
	}
	return uc.index.Query(ctx, q, limit)
}

// Reindex rebuilds the whole index from the database. Used by the periodic
// worker and the manual reindex action. Returns the number of documents
// indexed.
func (uc *SearchUseCase) Reindex(ctx context.Context) (int, error) {
	if err := uc.index.Clear(ctx); err != nil {
		return 0, fmt.Errorf("clear index: %w", err)
	}

	indexed := 0
	const page = 200

	for offset := 0; ; offset += page {
		games, err := uc.games.List(ctx, repository.NoTX, offset, page)
		if err != nil {
			return indexed, fmt.Errorf("list games: %w", err)
		}
		if len(games) == 0 {
			break
		}
		for _, g := range games {
			doc := adapter.SearchDoc{ID: g.ID, Kind: "game", Title: g.Title, Body: g.Description, Slug: g.Slug}
			if err := uc.index.Index(ctx, doc); err != nil {
				return indexed, fmt.Errorf("index game %s: %w", g.ID, err)
			}
			indexed++
		}
		if len(games) < page {
			break
		}
	}

	for offset := 0; ; offset += page {
		articles, err := uc.articles.List(ctx, repository.NoTX, "", offset, page)
		if err != nil {
			return indexed, fmt.Errorf("list articles: %w", err)
		}
		if len(articles) == 0 {
			break
		}
		for _, a := range articles {
			doc := adapter.SearchDoc{ID: a.ID, Kind: "article", Title: a.Title, Body: a.Body, Slug: a.Slug}
			if err := uc.index.Index(ctx, doc); err != nil {
				return indexed, fmt.Errorf("index article %s: %w", a.ID, err)
			}
			indexed++
		}
		if len(articles) < page {
			break
		}
	}

	return indexed, nil
}
