package repository

import (
	"context"

	"rocodes-admin/internal/domain/model"
)

// ArticleRepository is the port for article persistence.
type ArticleRepository interface {
	Save(ctx context.Context, tx Tx, article *model.Article) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.Article, error)
	FindBySlug(ctx context.Context, tx Tx, slug string) (*model.Article, error)
	List(ctx context.Context, tx Tx, status string, offset, limit int) ([]*model.Article, error)
	Delete(ctx context.Context, tx Tx, id string) error
}
