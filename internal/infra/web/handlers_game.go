package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/infra/metrics"
	"rocodes-admin/internal/usecase"

	"github.com/go-chi/chi/v5"
)

type gamePayload struct {
	Slug        string   `json:"slug" validate:"required,min=2,max=80"`
	Title       string   `json:"title" validate:"required,min=2,max=160"`
	RobloxURL   string   `json:"roblox_url" validate:"omitempty,url"`
	Description string   `json:"description"`
	CodeSources []string `json:"code_sources" validate:"max=3,dive,url"`
}

type gameResponse struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	RobloxURL    string   `json:"roblox_url"`
	Description  string   `json:"description"`
	CodeSources  []string `json:"code_sources"`
	ExpiredCodes []string `json:"expired_codes"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func toGameResponse(g *model.Game) gameResponse {
	return gameResponse{
		ID:           g.ID,
		Slug:         g.Slug,
		Title:        g.Title,
		RobloxURL:    g.RobloxURL,
		Description:  g.Description,
		CodeSources:  g.CodeSources,
		ExpiredCodes: g.ExpiredCodes,
		CreatedAt:    g.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type gameSaveResponse struct {
	Game gameResponse        `json:"game"`
	Sync *usecase.SyncResult `json:"sync,omitempty"`
}

func (s *Server) gamesListHandler(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	games, total, err := s.games.List(r.Context(), offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	items := make([]gameResponse, 0, len(games))
	for _, g := range games {
		items = append(items, toGameResponse(g))
	}
	writeJSON(w, http.StatusOK, struct {
		Items []gameResponse `json:"items"`
		Total int            `json:"total"`
	}{Items: items, Total: total})
}

func (s *Server) gamesCreateHandler(w http.ResponseWriter, r *http.Request) {
	var req gamePayload
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	game, syncRes, err := s.games.Create(r.Context(), req.Slug, req.Title, req.RobloxURL, req.Description, req.CodeSources)
	if err != nil {
		writeError(w, err)
		return
	}
	s.observeImportPass(syncRes, time.Since(start))

	writeJSON(w, http.StatusCreated, gameSaveResponse{Game: toGameResponse(game), Sync: syncRes})
}

func (s *Server) gameGetHandler(w http.ResponseWriter, r *http.Request) {
	game, err := s.games.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameResponse(game))
}

func (s *Server) gameUpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req gamePayload
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	game, syncRes, err := s.games.Update(r.Context(), chi.URLParam(r, "id"), req.Title, req.RobloxURL, req.Description, req.CodeSources)
	if err != nil {
		writeError(w, err)
		return
	}
	s.observeImportPass(syncRes, time.Since(start))

	writeJSON(w, http.StatusOK, gameSaveResponse{Game: toGameResponse(game), Sync: syncRes})
}

func (s *Server) gameDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.games.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// gameSyncHandler runs a standalone import pass for one game.
func (s *Server) gameSyncHandler(w http.ResponseWriter, r *http.Request) {
	game, err := s.games.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	res, err := s.sync.SyncFromSources(r.Context(), game.ID, game.Sources())
	if err != nil {
		metrics.ObserveSyncPass("import", false, time.Since(start))
		writeError(w, err)
		return
	}
	s.observeImportPass(res, time.Since(start))

	writeJSON(w, http.StatusOK, res)
}

type refreshResponse struct {
	Success  bool `json:"success"`
	Found    int  `json:"found"`
	Upserted int  `json:"upserted"`
	Removed  int  `json:"removed"`
	Expired  int  `json:"expired"`
}

// gameRefreshHandler runs a full refresh pass (import + prune) and tells the
// staff channel how it went.
func (s *Server) gameRefreshHandler(w http.ResponseWriter, r *http.Request) {
	game, err := s.games.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	res, err := s.sync.Refresh(r.Context(), game)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveSyncPass("refresh", false, elapsed)
		metrics.IncScrapeError()
		s.notify(r, fmt.Sprintf("refresh failed for %s: %v", game.Slug, err))
		writeError(w, err)
		return
	}
	metrics.ObserveSyncPass("refresh", true, elapsed)
	metrics.AddCodesReconciled(res.Found, res.Upserted, res.Removed)
	s.notify(r, fmt.Sprintf("refreshed %s: %d found, %d upserted, %d removed, %d expired",
		game.Slug, res.Found, res.Upserted, res.Removed, res.Expired))

	writeJSON(w, http.StatusOK, refreshResponse{
		Success:  true,
		Found:    res.Found,
		Upserted: res.Upserted,
		Removed:  res.Removed,
		Expired:  res.Expired,
	})
}

type codeResponse struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	Status           string  `json:"status"`
	RewardsText      *string `json:"rewards_text"`
	LevelRequirement *int    `json:"level_requirement"`
	IsNew            bool    `json:"is_new"`
	ProviderPriority int     `json:"provider_priority"`
	PostedOnline     bool    `json:"posted_online"`
	FirstSeenAt      string  `json:"first_seen_at"`
	LastSeenAt       string  `json:"last_seen_at"`
}

func (s *Server) gameCodesHandler(w http.ResponseWriter, r *http.Request) {
	codes, err := s.sync.ListCodes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]codeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, codeResponse{
			ID:               c.ID,
			Code:             c.Code,
			Status:           c.Status,
			RewardsText:      c.RewardsText,
			LevelRequirement: c.LevelRequirement,
			IsNew:            c.IsNew,
			ProviderPriority: c.ProviderPriority,
			PostedOnline:     c.PostedOnline,
			FirstSeenAt:      c.FirstSeenAt.UTC().Format(time.RFC3339),
			LastSeenAt:       c.LastSeenAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) gameCodesExportHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="codes.csv"`)
	if err := s.export.GameCodesCSV(r.Context(), id, w); err != nil {
		// Headers may already be out; log and bail.
		s.log.Error().Err(err).Str("game_id", id).Msg("export codes csv")
		return
	}
}

func (s *Server) observeImportPass(res *usecase.SyncResult, elapsed time.Duration) {
	if res == nil {
		return
	}
	success := len(res.Errors) == 0
	metrics.ObserveSyncPass("import", success, elapsed)
	if !success {
		metrics.IncScrapeError()
	}
	metrics.AddCodesReconciled(res.CodesFound, res.CodesUpserted, 0)
}

// notify sends a staff channel message without failing the request. Delivery
// goes through the worker pool when one is attached so the response does not
// wait on Telegram.
func (s *Server) notify(r *http.Request, text string) {
	if s.notifier == nil {
		return
	}
	if s.tasks != nil {
		if err := s.tasks.Submit(func(ctx context.Context) error {
			return s.notifier.Notify(ctx, text)
		}); err == nil {
			return
		}
		// queue full, fall through to inline delivery
	}
	if err := s.notifier.Notify(r.Context(), text); err != nil {
		s.log.Warn().Err(err).Msg("staff notification failed")
	}
}
