package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"rocodes-admin/internal/domain/ports/adapter"
)

const (
	docKeyPrefix   = "search:doc:"
	tokenKeyPrefix = "search:tok:"
	scanBatch      = 200
)

// SearchIndex implements adapter.SearchIndex on top of Redis sets. Each
// document is stored as JSON under search:doc:<id>; every token of its title
// and body holds a reverse-index set search:tok:<token> listing doc ids.
type SearchIndex struct {
	cli RedisClient
}

var _ adapter.SearchIndex = (*SearchIndex)(nil)

func NewSearchIndex(cli RedisClient) *SearchIndex {
	return &SearchIndex{cli: cli}
}

func (s *SearchIndex) Index(ctx context.Context, doc adapter.SearchDoc) error {
	// Re-indexing an existing doc must drop tokens its old version had.
	if err := s.Remove(ctx, doc.ID); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal search doc: %w", err)
	}
	if err := s.cli.Set(ctx, docKeyPrefix+doc.ID, raw, 0); err != nil {
		return fmt.Errorf("store search doc: %w", err)
	}
	for _, tok := range tokenize(doc.Title + " " + doc.Body) {
		if err := s.cli.SAdd(ctx, tokenKeyPrefix+tok, doc.ID); err != nil {
			return fmt.Errorf("index token %q: %w", tok, err)
		}
	}
	return nil
}

func (s *SearchIndex) Remove(ctx context.Context, id string) error {
	raw, err := s.cli.Get(ctx, docKeyPrefix+id)
	if err != nil {
		return fmt.Errorf("load search doc: %w", err)
	}
	if raw == "" {
		return nil
	}
	var doc adapter.SearchDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return fmt.Errorf("decode search doc: %w", err)
	}
	for _, tok := range tokenize(doc.Title + " " + doc.Body) {
		if err := s.cli.SRem(ctx, tokenKeyPrefix+tok, id); err != nil {
			return fmt.Errorf("unindex token %q: %w", tok, err)
		}
	}
	return s.cli.Del(ctx, docKeyPrefix+id)
}

func (s *SearchIndex) Query(ctx context.Context, q string, limit int) ([]adapter.SearchHit, error) {
	tokens := tokenize(q)
	if len(tokens) == 0 {
		return nil, nil
	}

	// Score docs by how many query tokens they match.
	scores := make(map[string]float64)
	for _, tok := range tokens {
		ids, err := s.cli.SMembers(ctx, tokenKeyPrefix+tok)
		if err != nil {
			return nil, fmt.Errorf("query token %q: %w", tok, err)
		}
		for _, id := range ids {
			scores[id]++
		}
	}

	hits := make([]adapter.SearchHit, 0, len(scores))
	for id, score := range scores {
		raw, err := s.cli.Get(ctx, docKeyPrefix+id)
		if err != nil {
			return nil, fmt.Errorf("load search doc: %w", err)
		}
		if raw == "" {
			continue // token set outlived its doc
		}
		var doc adapter.SearchDoc
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("decode search doc: %w", err)
		}
		hits = append(hits, adapter.SearchHit{
			ID:    doc.ID,
			Kind:  doc.Kind,
			Title: doc.Title,
			Slug:  doc.Slug,
			Score: score / float64(len(tokens)),
		})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Title < hits[j].Title
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (s *SearchIndex) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.cli.Scan(ctx, cursor, "search:*", scanBatch)
		if err != nil {
			return fmt.Errorf("scan search keys: %w", err)
		}
		if len(keys) > 0 {
			if err := s.cli.Del(ctx, keys...); err != nil {
				return fmt.Errorf("delete search keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// tokenize lowercases and splits on non-alphanumeric runes, dropping tokens
// shorter than two characters and duplicates.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
