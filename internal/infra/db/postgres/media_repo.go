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

var _ repository.MediaRepository = (*mediaRepo)(nil)

type mediaRepo struct {
	pool *pgxpool.Pool
}

func NewMediaRepo(pool *pgxpool.Pool) repository.MediaRepository {
	return &mediaRepo{pool: pool}
}

func (r *mediaRepo) Save(ctx context.Context, tx repository.Tx, m *model.MediaAsset) error {
	const q = `
INSERT INTO media_assets (id, file_name, content_type, size_bytes, url, uploaded_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
  file_name = EXCLUDED.file_name,
  url = EXCLUDED.url;
`
	_, err := execSQL(ctx, r.pool, tx, q,
		m.ID, m.FileName, m.ContentType, m.SizeBytes, m.URL, m.UploadedBy, m.CreatedAt)
	return err
}

func (r *mediaRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.MediaAsset, error) {
	const q = `
SELECT id, file_name, content_type, size_bytes, url, uploaded_by, created_at
  FROM media_assets
 WHERE id = $1;
`
	row, err := pickRow(ctx, r.pool, tx, q, id)
	if err != nil {
		return nil, err
	}
	var m model.MediaAsset
	err = row.Scan(&m.ID, &m.FileName, &m.ContentType, &m.SizeBytes, &m.URL, &m.UploadedBy, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &m, nil
}

func (r *mediaRepo) List(ctx context.Context, tx repository.Tx, offset, limit int) ([]*model.MediaAsset, error) {
	if limit <= 0 {
		limit = 50
	}
	// ULIDs sort by creation time, so id DESC is newest-first.
	const q = `
SELECT id, file_name, content_type, size_bytes, url, uploaded_by, created_at
  FROM media_assets
 ORDER BY id DESC
 LIMIT $1 OFFSET $2;
`
	rows, err := queryRows(ctx, r.pool, tx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.MediaAsset, 0, limit)
	for rows.Next() {
		var m model.MediaAsset
		if err := rows.Scan(&m.ID, &m.FileName, &m.ContentType, &m.SizeBytes, &m.URL, &m.UploadedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *mediaRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	tag, err := execSQL(ctx, r.pool, tx, `DELETE FROM media_assets WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
