package model

import (
	"crypto/rand"
	"time"

	"rocodes-admin/internal/domain"

	"github.com/oklog/ulid/v2"
)

// MediaAsset is the metadata row for a file held in hosted object storage.
// The binary itself never passes through this service's database.
type MediaAsset struct {
	ID          string // ULID, sortable by upload time
	FileName    string
	ContentType string
	SizeBytes   int64
	URL         string
	UploadedBy  string
	CreatedAt   time.Time
}

func NewMediaAsset(fileName, contentType string, sizeBytes int64, uploadedBy string) (*MediaAsset, error) {
	if fileName == "" || contentType == "" || sizeBytes <= 0 || uploadedBy == "" {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	return &MediaAsset{
		ID:          ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   sizeBytes,
		UploadedBy:  uploadedBy,
		CreatedAt:   now,
	}, nil
}

func (m *MediaAsset) IsZero() bool { return m == nil || m.ID == "" }
