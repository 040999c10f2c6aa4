package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/repository"
)

var _ repository.GameRepository = (*gameRepo)(nil)

type gameRepo struct {
	pool *pgxpool.Pool
}

func NewGameRepo(pool *pgxpool.Pool) repository.GameRepository {
	return &gameRepo{pool: pool}
}

func (r *gameRepo) Save(ctx context.Context, tx repository.Tx, g *model.Game) error {
	const q = `
INSERT INTO games (id, slug, title, roblox_url, description, code_sources, expired_codes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
  slug = EXCLUDED.slug,
  title = EXCLUDED.title,
  roblox_url = EXCLUDED.roblox_url,
  description = EXCLUDED.description,
  code_sources = EXCLUDED.code_sources,
  updated_at = EXCLUDED.updated_at;
`
	_, err := execSQL(ctx, r.pool, tx, q,
		g.ID, g.Slug, g.Title, g.RobloxURL, g.Description,
		g.CodeSources, g.ExpiredCodes, g.CreatedAt, g.UpdatedAt,
	)
	return err
}

const gameColumns = `id, slug, title, roblox_url, description, code_sources, expired_codes, created_at, updated_at`

func (r *gameRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Game, error) {
	return r.findOne(ctx, tx, `SELECT `+gameColumns+` FROM games WHERE id = $1;`, id)
}

func (r *gameRepo) FindBySlug(ctx context.Context, tx repository.Tx, slug string) (*model.Game, error) {
	return r.findOne(ctx, tx, `SELECT `+gameColumns+` FROM games WHERE slug = $1;`, slug)
}

func (r *gameRepo) findOne(ctx context.Context, tx repository.Tx, q string, arg interface{}) (*model.Game, error) {
	row, err := pickRow(ctx, r.pool, tx, q, arg)
	if err != nil {
		return nil, err
	}
	var g model.Game
	err = row.Scan(
		&g.ID, &g.Slug, &g.Title, &g.RobloxURL, &g.Description,
		&g.CodeSources, &g.ExpiredCodes, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &g, nil
}

func (r *gameRepo) List(ctx context.Context, tx repository.Tx, offset, limit int) ([]*model.Game, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := queryRows(ctx, r.pool, tx,
		`SELECT `+gameColumns+` FROM games ORDER BY updated_at DESC LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Game, 0, limit)
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(
			&g.ID, &g.Slug, &g.Title, &g.RobloxURL, &g.Description,
			&g.CodeSources, &g.ExpiredCodes, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &g)
	}
	return out, rows.Err()
}

func (r *gameRepo) Count(ctx context.Context, tx repository.Tx) (int, error) {
	row, err := pickRow(ctx, r.pool, tx, `SELECT COUNT(1) FROM games;`)
	if err != nil {
		return 0, err
	}
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *gameRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	tag, err := execSQL(ctx, r.pool, tx, `DELETE FROM games WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *gameRepo) SetExpiredCodes(ctx context.Context, tx repository.Tx, gameID string, codes []string) error {
	if codes == nil {
		codes = []string{}
	}
	tag, err := execSQL(ctx, r.pool, tx,
		`UPDATE games SET expired_codes = $2, updated_at = now() WHERE id = $1;`, gameID, codes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
