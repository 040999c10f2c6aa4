package usecase

import (
	"context"
	"strings"
	"time"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/repository"
)

// GameUseCase manages game listing pages. Saving a game that has code sources
// configured also runs an import pass so the page is fresh right after edit.
type GameUseCase struct {
	games repository.GameRepository
	sync  *CodeSyncUseCase
}

func NewGameUseCase(games repository.GameRepository, sync *CodeSyncUseCase) *GameUseCase {
	return &GameUseCase{games: games, sync: sync}
}

func (uc *GameUseCase) Create(ctx context.Context, slug, title, robloxURL, description string, sources []string) (*model.Game, *SyncResult, error) {
	game, err := model.NewGame("", slug, title)
	if err != nil {
		return nil, nil, err
	}
	game.RobloxURL = strings.TrimSpace(robloxURL)
	game.Description = description
	game.CodeSources = model.DedupeSources(sources)
	if len(game.CodeSources) > 3 {
		return nil, nil, domain.ErrInvalidArgument
	}
	if err := uc.games.Save(ctx, repository.NoTX, game); err != nil {
		return nil, nil, err
	}
	sync, err := uc.syncAfterSave(ctx, game)
	return game, sync, err
}

func (uc *GameUseCase) Update(ctx context.Context, id, title, robloxURL, description string, sources []string) (*model.Game, *SyncResult, error) {
	game, err := uc.games.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(title) != "" {
		game.Title = title
	}
	game.RobloxURL = strings.TrimSpace(robloxURL)
	game.Description = description
	game.CodeSources = model.DedupeSources(sources)
	if len(game.CodeSources) > 3 {
		return nil, nil, domain.ErrInvalidArgument
	}
	game.UpdatedAt = time.Now()
	if err := uc.games.Save(ctx, repository.NoTX, game); err != nil {
		return nil, nil, err
	}
	sync, err := uc.syncAfterSave(ctx, game)
	return game, sync, err
}

// syncAfterSave runs an import pass when sources are configured. A pass with
// no sources is a zero-result no-op by design.
func (uc *GameUseCase) syncAfterSave(ctx context.Context, game *model.Game) (*SyncResult, error) {
	if len(game.Sources()) == 0 {
		return nil, nil
	}
	return uc.sync.SyncFromSources(ctx, game.ID, game.Sources())
}

func (uc *GameUseCase) Get(ctx context.Context, id string) (*model.Game, error) {
	return uc.games.FindByID(ctx, repository.NoTX, id)
}

func (uc *GameUseCase) GetBySlug(ctx context.Context, slug string) (*model.Game, error) {
	return uc.games.FindBySlug(ctx, repository.NoTX, slug)
}

func (uc *GameUseCase) List(ctx context.Context, offset, limit int) ([]*model.Game, int, error) {
	games, err := uc.games.List(ctx, repository.NoTX, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.games.Count(ctx, repository.NoTX)
	if err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

func (uc *GameUseCase) Delete(ctx context.Context, id string) error {
	return uc.games.Delete(ctx, repository.NoTX, id)
}
