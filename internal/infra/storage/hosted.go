package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"rocodes-admin/internal/config"
	"rocodes-admin/internal/domain/ports/adapter"
)

// HostedStorage pushes media binaries to the hosted object storage service
// over its HTTP API. Objects are addressed as <bucket>/<key>.
type HostedStorage struct {
	baseURL   string
	bucket    string
	apiKey    string
	publicURL string
	client    *http.Client
}

var _ adapter.ObjectStorage = (*HostedStorage)(nil)

func NewHostedStorage(cfg config.StorageConfig) *HostedStorage {
	return &HostedStorage{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		bucket:    cfg.Bucket,
		apiKey:    cfg.APIKey,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		client:    &http.Client{},
	}
}

func (s *HostedStorage) objectURL(key string) string {
	return fmt.Sprintf("%s/buckets/%s/objects/%s", s.baseURL, url.PathEscape(s.bucket), url.PathEscape(key))
}

func (s *HostedStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.objectURL(key), body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("upload object: status %d: %s", resp.StatusCode, snippet)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

func (s *HostedStorage) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.objectURL(key), nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete object: status %d", resp.StatusCode)
	}
	return nil
}
