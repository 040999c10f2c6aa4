package model

import (
	"strings"
	"time"

	"rocodes-admin/internal/domain"

	"github.com/google/uuid"
)

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Article is a staff-authored post with a markdown body.
type Article struct {
	ID          string
	Slug        string
	Title       string
	Body        string // markdown
	Status      string
	AuthorID    string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewArticle(id, slug, title, authorID string) (*Article, error) {
	if id == "" {
		id = uuid.NewString()
	}
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" || strings.TrimSpace(title) == "" || authorID == "" {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	return &Article{
		ID:        id,
		Slug:      slug,
		Title:     title,
		Status:    ArticleStatusDraft,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (a *Article) IsZero() bool { return a == nil || a.ID == "" }

// Publish moves a draft to published and stamps PublishedAt once.
func (a *Article) Publish() {
	if a.Status == ArticleStatusPublished {
		return
	}
	a.Status = ArticleStatusPublished
	now := time.Now()
	a.PublishedAt = &now
	a.UpdatedAt = now
}
