package web

import (
	"net/http"
	"strconv"
	"time"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 25 << 20 // 25 MiB

type mediaResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	URL         string `json:"url"`
	UploadedBy  string `json:"uploaded_by"`
	CreatedAt   string `json:"created_at"`
}

func toMediaResponse(m *model.MediaAsset) mediaResponse {
	return mediaResponse{
		ID:          m.ID,
		FileName:    m.FileName,
		ContentType: m.ContentType,
		SizeBytes:   m.SizeBytes,
		URL:         m.URL,
		UploadedBy:  m.UploadedBy,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Server) mediaUploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	claims := claimsFrom(r.Context())

	asset, err := s.media.Upload(r.Context(), header.Filename, contentType, header.Size, file, claims.Subject)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMediaResponse(asset))
}

func (s *Server) mediaListHandler(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	assets, err := s.media.List(r.Context(), offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]mediaResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, toMediaResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) mediaGetHandler(w http.ResponseWriter, r *http.Request) {
	asset, err := s.media.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMediaResponse(asset))
}

func (s *Server) mediaDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.media.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
