package web

import (
	"net/http"
	"strconv"
	"time"

	"rocodes-admin/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type articleCreateRequest struct {
	Slug  string `json:"slug" validate:"required,min=2,max=80"`
	Title string `json:"title" validate:"required,min=2,max=200"`
	Body  string `json:"body"`
}

type articleUpdateRequest struct {
	Title string `json:"title" validate:"required,min=2,max=200"`
	Body  string `json:"body"`
}

type articleResponse struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	Status      string  `json:"status"`
	AuthorID    string  `json:"author_id"`
	PublishedAt *string `json:"published_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func toArticleResponse(a *model.Article) articleResponse {
	resp := articleResponse{
		ID:        a.ID,
		Slug:      a.Slug,
		Title:     a.Title,
		Body:      a.Body,
		Status:    a.Status,
		AuthorID:  a.AuthorID,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if a.PublishedAt != nil {
		p := a.PublishedAt.UTC().Format(time.RFC3339)
		resp.PublishedAt = &p
	}
	return resp
}

func (s *Server) articlesListHandler(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	status := r.URL.Query().Get("status")

	articles, err := s.articles.List(r.Context(), status, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) articlesCreateHandler(w http.ResponseWriter, r *http.Request) {
	var req articleCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	claims := claimsFrom(r.Context())
	article, err := s.articles.Create(r.Context(), req.Slug, req.Title, req.Body, claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toArticleResponse(article))
}

func (s *Server) articleGetHandler(w http.ResponseWriter, r *http.Request) {
	article, err := s.articles.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(article))
}

func (s *Server) articleUpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req articleUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	article, err := s.articles.Update(r.Context(), chi.URLParam(r, "id"), req.Title, req.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(article))
}

func (s *Server) articlePublishHandler(w http.ResponseWriter, r *http.Request) {
	article, err := s.articles.Publish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponse(article))
}

func (s *Server) articleDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.articles.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
