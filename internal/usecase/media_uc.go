package usecase

import (
	"context"
	"fmt"
	"io"
	"path"

	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/adapter"
	"rocodes-admin/internal/domain/ports/repository"
)

// MediaUseCase uploads binaries to hosted object storage and keeps metadata
// rows locally. Resizing and serving are the storage provider's problem.
type MediaUseCase struct {
	media   repository.MediaRepository
	storage adapter.ObjectStorage
}

func NewMediaUseCase(media repository.MediaRepository, storage adapter.ObjectStorage) *MediaUseCase {
	return &MediaUseCase{media: media, storage: storage}
}

func (uc *MediaUseCase) Upload(ctx context.Context, fileName, contentType string, size int64, body io.Reader, uploadedBy string) (*model.MediaAsset, error) {
	asset, err := model.NewMediaAsset(fileName, contentType, size, uploadedBy)
	if err != nil {
		return nil, err
	}
	key := asset.ID + path.Ext(fileName)
	url, err := uc.storage.Put(ctx, key, contentType, body, size)
	if err != nil {
		return nil, fmt.Errorf("storage put %s: %w", key, err)
	}
	asset.URL = url
	if err := uc.media.Save(ctx, repository.NoTX, asset); err != nil {
		// Orphaned object; best effort cleanup.
		_ = uc.storage.Delete(ctx, key)
		return nil, err
	}
	return asset, nil
}

func (uc *MediaUseCase) Get(ctx context.Context, id string) (*model.MediaAsset, error) {
	return uc.media.FindByID(ctx, repository.NoTX, id)
}

func (uc *MediaUseCase) List(ctx context.Context, offset, limit int) ([]*model.MediaAsset, error) {
	return uc.media.List(ctx, repository.NoTX, offset, limit)
}

func (uc *MediaUseCase) Delete(ctx context.Context, id string) error {
	asset, err := uc.media.FindByID(ctx, repository.NoTX, id)
	if err != nil {
		return err
	}
	key := asset.ID + path.Ext(asset.FileName)
	if err := uc.storage.Delete(ctx, key); err != nil {
		return fmt.Errorf("storage delete %s: %w", key, err)
	}
	return uc.media.Delete(ctx, repository.NoTX, id)
}
