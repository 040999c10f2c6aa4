package repository

import (
	"context"

	"rocodes-admin/internal/domain/model"
)

// CodeUpsert carries the arguments of the idempotent upsert_game_code stored
// procedure. The procedure is keyed by (game_id, code), preserves first_seen_at
// and bumps last_seen_at on every touch.
type CodeUpsert struct {
	GameID           string
	Code             string // display form
	Status           string
	RewardsText      string
	LevelRequirement int
	IsNew            bool
	ProviderPriority int
}

// GameCodeRepository is the port for the game_codes table. The table is exclusively
// owned by this layer; the reconciliation engine holds no state between calls.
type GameCodeRepository interface {
	// ListByGame returns every persisted code row for a game.
	ListByGame(ctx context.Context, tx Tx, gameID string) ([]*model.GameCode, error)
	// Upsert applies one code through the stored procedure. Implementations
	// fall back to re-resolving by (game_id, upper(code)) when a uniqueness
	// race surfaces mid-call.
	Upsert(ctx context.Context, tx Tx, up CodeUpsert) error
	// DeleteByCodes batch-deletes rows by their exact display code values.
	DeleteByCodes(ctx context.Context, tx Tx, gameID string, codes []string) (int, error)
	// DeleteExpired removes every row for the game with status 'expired'.
	DeleteExpired(ctx context.Context, tx Tx, gameID string) (int, error)
}
