package usecase

import (
	"context"
	"time"

	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/repository"
)

// ChecklistUseCase manages per-game staff checklists.
type ChecklistUseCase struct {
	lists repository.ChecklistRepository
	games repository.GameRepository
}

func NewChecklistUseCase(lists repository.ChecklistRepository, games repository.GameRepository) *ChecklistUseCase {
	return &ChecklistUseCase{lists: lists, games: games}
}

func (uc *ChecklistUseCase) Create(ctx context.Context, gameID, title string, items []model.ChecklistItem) (*model.Checklist, error) {
	// The game must exist; checklists never dangle.
	if _, err := uc.games.FindByID(ctx, repository.NoTX, gameID); err != nil {
		return nil, err
	}
	list, err := model.NewChecklist("", gameID, title)
	if err != nil {
		return nil, err
	}
	list.Items = items
	if err := uc.lists.Save(ctx, repository.NoTX, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (uc *ChecklistUseCase) ToggleItem(ctx context.Context, id string, idx int) (*model.Checklist, error) {
	list, err := uc.lists.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, err
	}
	if err := list.ToggleItem(idx); err != nil {
		return nil, err
	}
	if err := uc.lists.Save(ctx, repository.NoTX, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (uc *ChecklistUseCase) Rename(ctx context.Context, id, title string) (*model.Checklist, error) {
	list, err := uc.lists.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return nil, err
	}
	if title != "" {
		list.Title = title
		list.UpdatedAt = time.Now()
	}
	if err := uc.lists.Save(ctx, repository.NoTX, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (uc *ChecklistUseCase) ListByGame(ctx context.Context, gameID string) ([]*model.Checklist, error) {
	return uc.lists.ListByGame(ctx, repository.NoTX, gameID)
}

func (uc *ChecklistUseCase) Delete(ctx context.Context, id string) error {
	return uc.lists.Delete(ctx, repository.NoTX, id)
}
