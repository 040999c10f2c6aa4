package adapter

import "context"

// SearchDoc is a unit of indexable admin content (game page or article).
type SearchDoc struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"` // "game" | "article"
	Title string `json:"title"`
	Body  string `json:"body"`
	Slug  string `json:"slug"`
}

// SearchHit is one ranked query result.
type SearchHit struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	Title string  `json:"title"`
	Slug  string  `json:"slug"`
	Score float64 `json:"score"`
}

// SearchIndex is the port for the search backend. The admin panel only needs
// token matching over titles and bodies; ranking is hit-count based.
type SearchIndex interface {
	Index(ctx context.Context, doc SearchDoc) error
	Remove(ctx context.Context, id string) error
	Query(ctx context.Context, q string, limit int) ([]SearchHit, error)
	// Clear drops the whole index; used before a full rebuild.
	Clear(ctx context.Context) error
}
