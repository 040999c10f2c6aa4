package model

import (
	"strings"
	"time"

	"rocodes-admin/internal/domain"

	"github.com/google/uuid"
)

// Game is a code listing page for one Roblox experience.
// ExpiredCodes is the array of display-form codes the sources currently report
// as expired; it is replaced wholesale on every import pass, never merged.
type Game struct {
	ID           string
	Slug         string
	Title        string
	RobloxURL    string
	Description  string
	CodeSources  []string // 1-3 external source URLs scraped on sync
	ExpiredCodes []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewGame(id, slug, title string) (*Game, error) {
	if id == "" {
		id = uuid.NewString()
	}
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" || strings.TrimSpace(title) == "" {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	return &Game{
		ID:        id,
		Slug:      slug,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (g *Game) IsZero() bool { return g == nil || g.ID == "" }

// Sources returns the configured source URLs trimmed and de-duplicated,
// preserving first-occurrence order. Blank entries are dropped.
func (g *Game) Sources() []string {
	return DedupeSources(g.CodeSources)
}

// DedupeSources trims, drops blanks, and de-duplicates a source URL list.
func DedupeSources(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
