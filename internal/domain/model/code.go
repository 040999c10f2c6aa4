package model

import (
	"strings"
	"time"
)

// Code status values as persisted in the codes table.
const (
	CodeStatusActive  = "active"
	CodeStatusCheck   = "check"
	CodeStatusExpired = "expired"
)

// GameCode is a persisted promotional code attached to a game page.
// Within a game no two rows share the same comparison key (see NormalizeKey);
// the codes table enforces this with a unique index on (game_id, upper(code)).
type GameCode struct {
	ID               string
	GameID           string
	Code             string // display form, canonical upper-case
	Status           string
	RewardsText      *string
	LevelRequirement *int
	IsNew            bool
	ProviderPriority int
	PostedOnline     bool
	FirstSeenAt      time.Time // immutable once set
	LastSeenAt       time.Time // bumped on every reconciliation touch
}

func (c *GameCode) IsZero() bool { return c == nil || c.ID == "" }

// Key returns the comparison key of the persisted display code.
func (c *GameCode) Key() (string, bool) { return NormalizeKey(c.Code) }

// CodeCandidate is an ephemeral code reported by the source aggregator for one
// reconciliation pass. It is never persisted directly.
type CodeCandidate struct {
	Code             string `json:"code"`
	Status           string `json:"status"`
	RewardsText      string `json:"rewards_text"`
	LevelRequirement int    `json:"level_requirement"`
	IsNew            bool   `json:"is_new"`
	ProviderPriority int    `json:"provider_priority"`
}

// SanitizeDisplay canonicalizes a raw code into the display form stored in the
// database: trimmed and upper-cased. The second return is false when the raw
// value is empty after trimming.
func SanitizeDisplay(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	return strings.ToUpper(s), true
}

// NormalizeKey derives the comparison key used for de-duplication and diffing:
// the sanitized display form with every character outside [A-Z0-9] removed.
// Two codes are the same code iff their keys match, regardless of dashes or
// spacing in the display form. The key is derived on demand, never stored.
// A punctuation-only code sanitizes fine but yields an empty key, so the
// second return is false and callers skip it.
func NormalizeKey(raw string) (string, bool) {
	s, ok := SanitizeDisplay(raw)
	if !ok {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}
