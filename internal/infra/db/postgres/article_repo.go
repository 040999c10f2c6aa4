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

var _ repository.ArticleRepository = (*articleRepo)(nil)

type articleRepo struct {
	pool *pgxpool.Pool
}

func NewArticleRepo(pool *pgxpool.Pool) repository.ArticleRepository {
	return &articleRepo{pool: pool}
}

const articleColumns = `id, slug, title, body, status, author_id, published_at, created_at, updated_at`

func (r *articleRepo) Save(ctx context.Context, tx repository.Tx, a *model.Article) error {
	const q = `
INSERT INTO articles (id, slug, title, body, status, author_id, published_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
  slug = EXCLUDED.slug,
  title = EXCLUDED.title,
  body = EXCLUDED.body,
  status = EXCLUDED.status,
  published_at = EXCLUDED.published_at,
  updated_at = EXCLUDED.updated_at;
`
	_, err := execSQL(ctx, r.pool, tx, q,
		a.ID, a.Slug, a.Title, a.Body, a.Status, a.AuthorID, a.PublishedAt, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *articleRepo) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.Article, error) {
	return r.findOne(ctx, tx, `SELECT `+articleColumns+` FROM articles WHERE id = $1;`, id)
}

func (r *articleRepo) FindBySlug(ctx context.Context, tx repository.Tx, slug string) (*model.Article, error) {
	return r.findOne(ctx, tx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1;`, slug)
}

func (r *articleRepo) findOne(ctx context.Context, tx repository.Tx, q string, arg interface{}) (*model.Article, error) {
	row, err := pickRow(ctx, r.pool, tx, q, arg)
	if err != nil {
		return nil, err
	}
	var a model.Article
	err = row.Scan(&a.ID, &a.Slug, &a.Title, &a.Body, &a.Status, &a.AuthorID, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrReadDatabaseRow
	}
	return &a, nil
}

// List returns articles newest-first, optionally filtered by status.
func (r *articleRepo) List(ctx context.Context, tx repository.Tx, status string, offset, limit int) ([]*model.Article, error) {
	if limit <= 0 {
		limit = 50
	}
	var (
		rows pgx.Rows
		err  error
	)
	if status == "" {
		rows, err = queryRows(ctx, r.pool, tx,
			`SELECT `+articleColumns+` FROM articles ORDER BY updated_at DESC LIMIT $1 OFFSET $2;`, limit, offset)
	} else {
		rows, err = queryRows(ctx, r.pool, tx,
			`SELECT `+articleColumns+` FROM articles WHERE status = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3;`,
			status, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Article, 0, limit)
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(&a.ID, &a.Slug, &a.Title, &a.Body, &a.Status, &a.AuthorID, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *articleRepo) Delete(ctx context.Context, tx repository.Tx, id string) error {
	tag, err := execSQL(ctx, r.pool, tx, `DELETE FROM articles WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
