package repository

import (
	"context"

	"rocodes-admin/internal/domain/model"
)

// ChecklistRepository is the port for per-game staff checklists.
type ChecklistRepository interface {
	Save(ctx context.Context, tx Tx, list *model.Checklist) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Checklist, error)
	ListByGame(ctx context.Context, tx Tx, gameID string) ([]*model.Checklist, error)
	Delete(ctx context.Context, tx Tx, id string) error
}
