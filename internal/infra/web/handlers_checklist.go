package web

import (
	"net/http"
	"strconv"
	"time"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type checklistCreateRequest struct {
	GameID string                `json:"game_id" validate:"required"`
	Title  string                `json:"title" validate:"required,min=2,max=160"`
	Items  []model.ChecklistItem `json:"items" validate:"dive"`
}

type checklistRenameRequest struct {
	Title string `json:"title" validate:"required,min=2,max=160"`
}

type checklistResponse struct {
	ID        string                `json:"id"`
	GameID    string                `json:"game_id"`
	Title     string                `json:"title"`
	Items     []model.ChecklistItem `json:"items"`
	ItemsDone int                   `json:"items_done"`
	CreatedAt string                `json:"created_at"`
	UpdatedAt string                `json:"updated_at"`
}

func toChecklistResponse(c *model.Checklist) checklistResponse {
	done, _ := c.Progress()
	return checklistResponse{
		ID:        c.ID,
		GameID:    c.GameID,
		Title:     c.Title,
		Items:     c.Items,
		ItemsDone: done,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *Server) checklistCreateHandler(w http.ResponseWriter, r *http.Request) {
	var req checklistCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	list, err := s.checklists.Create(r.Context(), req.GameID, req.Title, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChecklistResponse(list))
}

func (s *Server) checklistsByGameHandler(w http.ResponseWriter, r *http.Request) {
	lists, err := s.checklists.ListByGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]checklistResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, toChecklistResponse(l))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) checklistRenameHandler(w http.ResponseWriter, r *http.Request) {
	var req checklistRenameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	list, err := s.checklists.Rename(r.Context(), chi.URLParam(r, "id"), req.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toChecklistResponse(list))
}

func (s *Server) checklistToggleHandler(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}
	list, err := s.checklists.ToggleItem(r.Context(), chi.URLParam(r, "id"), idx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toChecklistResponse(list))
}

func (s *Server) checklistDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.checklists.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
