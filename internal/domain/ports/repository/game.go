package repository

import (
	"context"

	"rocodes-admin/internal/domain/model"
)

// GameRepository is the port for game listing pages.
type GameRepository interface {
	Save(ctx context.Context, tx Tx, game *model.Game) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Game, error)
	FindBySlug(ctx context.Context, tx Tx, slug string) (*model.Game, error)
	List(ctx context.Context, tx Tx, offset, limit int) ([]*model.Game, error)
	Count(ctx context.Context, tx Tx) (int, error)
	Delete(ctx context.Context, tx Tx, id string) error
	// SetExpiredCodes replaces the expired_codes array on the game row.
	SetExpiredCodes(ctx context.Context, tx Tx, gameID string, codes []string) error
}
