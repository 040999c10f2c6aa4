package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/repository"
)

// Ensure implementation satisfies the interface.
var _ repository.GameCodeRepository = (*gameCodeRepo)(nil)

type gameCodeRepo struct {
	pool *pgxpool.Pool
}

func NewGameCodeRepo(pool *pgxpool.Pool) repository.GameCodeRepository {
	return &gameCodeRepo{pool: pool}
}

func (r *gameCodeRepo) ListByGame(ctx context.Context, tx repository.Tx, gameID string) ([]*model.GameCode, error) {
	const q = `
SELECT id, game_id, code, status, rewards_text, level_requirement, is_new,
       provider_priority, posted_online, first_seen_at, last_seen_at
  FROM game_codes
 WHERE game_id = $1
 ORDER BY first_seen_at ASC;
`
	rows, err := queryRows(ctx, r.pool, tx, q, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.GameCode, 0, 32)
	for rows.Next() {
		var c model.GameCode
		if err := rows.Scan(
			&c.ID, &c.GameID, &c.Code, &c.Status, &c.RewardsText, &c.LevelRequirement,
			&c.IsNew, &c.ProviderPriority, &c.PostedOnline, &c.FirstSeenAt, &c.LastSeenAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Upsert applies one code through the upsert_game_code stored procedure.
// The procedure inserts or updates by (game_id, code), preserves first_seen_at
// and bumps last_seen_at. If a concurrent writer slips a row in under a
// differently-formatted display code with the same upper(code), the unique
// index fires; the fallback re-resolves the row by (game_id, upper(code)).
func (r *gameCodeRepo) Upsert(ctx context.Context, tx repository.Tx, up repository.CodeUpsert) error {
	const proc = `
SELECT upsert_game_code($1, $2, $3, $4, $5, $6, $7);
`
	_, err := execSQL(ctx, r.pool, tx, proc,
		up.GameID, up.Code, up.Status, nullIfEmpty(up.RewardsText),
		nullIfZero(up.LevelRequirement), up.IsNew, up.ProviderPriority,
	)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}

	const fallback = `
UPDATE game_codes
   SET status = $3,
       rewards_text = $4,
       level_requirement = $5,
       is_new = $6,
       provider_priority = $7,
       last_seen_at = now()
 WHERE game_id = $1 AND upper(code) = upper($2);
`
	_, err = execSQL(ctx, r.pool, tx, fallback,
		up.GameID, up.Code, up.Status, nullIfEmpty(up.RewardsText),
		nullIfZero(up.LevelRequirement), up.IsNew, up.ProviderPriority,
	)
	return err
}

func (r *gameCodeRepo) DeleteByCodes(ctx context.Context, tx repository.Tx, gameID string, codes []string) (int, error) {
	if len(codes) == 0 {
		return 0, nil
	}
	const q = `
DELETE FROM game_codes
 WHERE game_id = $1 AND code = ANY($2);
`
	tag, err := execSQL(ctx, r.pool, tx, q, gameID, codes)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *gameCodeRepo) DeleteExpired(ctx context.Context, tx repository.Tx, gameID string) (int, error) {
	const q = `
DELETE FROM game_codes
 WHERE game_id = $1 AND status = 'expired';
`
	tag, err := execSQL(ctx, r.pool, tx, q, gameID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(n int) interface{} {
	if n == 0 {
		return nil
	}
	return n
}
