package model

import (
	"strings"
	"time"

	"rocodes-admin/internal/domain"

	"github.com/google/uuid"
)

// ChecklistItem is one line of a staff checklist.
type ChecklistItem struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// Checklist is a per-game staff to-do list (e.g. "verify codes after update").
type Checklist struct {
	ID        string
	GameID    string
	Title     string
	Items     []ChecklistItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewChecklist(id, gameID, title string) (*Checklist, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if gameID == "" || strings.TrimSpace(title) == "" {
		return nil, domain.ErrInvalidArgument
	}
	now := time.Now()
	return &Checklist{
		ID:        id,
		GameID:    gameID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (c *Checklist) IsZero() bool { return c == nil || c.ID == "" }

// ToggleItem flips the done flag of the item at idx.
func (c *Checklist) ToggleItem(idx int) error {
	if idx < 0 || idx >= len(c.Items) {
		return domain.ErrInvalidArgument
	}
	c.Items[idx].Done = !c.Items[idx].Done
	c.UpdatedAt = time.Now()
	return nil
}

// Progress reports done and total item counts.
func (c *Checklist) Progress() (done, total int) {
	for _, it := range c.Items {
		if it.Done {
			done++
		}
	}
	return done, len(c.Items)
}
