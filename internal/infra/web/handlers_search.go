package web

import (
	"net/http"
	"strconv"

	"rocodes-admin/internal/infra/metrics"
)

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	hits, err := s.search.Query(r.Context(), q, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.IncSearchQuery()
	writeJSON(w, http.StatusOK, hits)
}

func (s *Server) searchReindexHandler(w http.ResponseWriter, r *http.Request) {
	n, err := s.search.Reindex(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.SetReindexDocs(n)
	writeJSON(w, http.StatusOK, struct {
		Indexed int `json:"indexed"`
	}{Indexed: n})
}
