package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/repository"
)

var _ repository.ChecklistRepository = (*checklistRepo)(nil)

// checklistRepo stores checklist items as a jsonb column; lists are small and
// always read whole.
type checklistRepo struct {
	pool *pgxpool.Pool
}

func NewChecklistRepo(pool *pgxpool.Pool) repository.ChecklistRepository {
	return &checklistRepo{pool: pool}
}

func (r *checklistRepo) Save(ctx context.Context, tx repository.Tx, l *model.Checklist) error {
	items, err := json.Marshal(l.Items)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO checklists (id, game_id, title, items, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
  title = EXCLUDED.title,
  items = EXCLUDED.items,
  updated_at = EXCLUDED.updated_at;
`
	_, err = execSQL(ctx, r.pool, tx, q, l.ID, l.GameID, l.Title, items, l.CreatedAt, l.UpdatedAt)
	return err
}

func (r *checklistRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Checklist, error) {
	const q = `
SELECT id, game_id, title, items, created_at, updated_at
  FROM checklists
 WHERE id = $1;
`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	return scanChecklist(row)
}

func (r *checklistRepo) ListByGame(ctx context.Context, tx repository.Tx, gameID string) ([]*model.Checklist, error) {
	const q = `
SELECT id, game_id, title, items, created_at, updated_at
  FROM checklists
 WHERE game_id = $1
 ORDER BY created_at ASC;
`
	rows, err := queryRows(ctx, r.pool, tx, q, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Checklist{}
	for rows.Next() {
		l, err := scanChecklist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *checklistRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	tag, err := execSQL(ctx, r.pool, tx, `DELETE FROM checklists WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanChecklist(row pgx.Row) (*model.Checklist, error) {
	var (
		l     model.Checklist
		items []byte
	)
	err := row.Scan(&l.ID, &l.GameID, &l.Title, &items, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &l.Items); err != nil {
			return nil, err
		}
	}
	return &l, nil
}
