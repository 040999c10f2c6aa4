package repository

import (
	"context"

	"rocodes-admin/internal/domain/model"
)

// MediaRepository is the port for media asset metadata rows.
type MediaRepository interface {
	Save(ctx context.Context, tx Tx, asset *model.MediaAsset) error
	FindByID(ctx context.Context, tx Tx, id string) (*model.MediaAsset, error)
	List(ctx context.Context, tx Tx, offset, limit int) ([]*model.MediaAsset, error)
	Delete(ctx context.Context, tx Tx, id string) error
}
