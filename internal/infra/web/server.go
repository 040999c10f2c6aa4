package web

import (
	"context"
	"net/http"
	"time"

	"rocodes-admin/internal/domain/ports/adapter"
	"rocodes-admin/internal/infra/logging"
	"rocodes-admin/internal/infra/worker"
	"rocodes-admin/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Server struct {
	games      *usecase.GameUseCase
	sync       *usecase.CodeSyncUseCase
	articles   *usecase.ArticleUseCase
	checklists *usecase.ChecklistUseCase
	media      *usecase.MediaUseCase
	auth       *usecase.AuthUseCase
	export     *usecase.ExportUseCase
	search     *usecase.SearchUseCase
	sessions   *AuthManager
	notifier   adapter.StaffNotifier
	tasks      *worker.Pool
	log        *zerolog.Logger
}

func NewServer(
	games *usecase.GameUseCase,
	sync *usecase.CodeSyncUseCase,
	articles *usecase.ArticleUseCase,
	checklists *usecase.ChecklistUseCase,
	media *usecase.MediaUseCase,
	auth *usecase.AuthUseCase,
	export *usecase.ExportUseCase,
	search *usecase.SearchUseCase,
	sessions *AuthManager,
	notifier adapter.StaffNotifier,
	tasks *worker.Pool,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		games:      games,
		sync:       sync,
		articles:   articles,
		checklists: checklists,
		media:      media,
		auth:       auth,
		export:     export,
		search:     search,
		sessions:   sessions,
		notifier:   notifier,
		tasks:      tasks,
		log:        logger,
	}
}

// Router builds the admin API routing tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(TraceID())
	r.Use(Recover(s.log))
	r.Use(RequestLog(s.log))
	r.Use(Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", s.loginHandler)
		r.Post("/logout", s.logoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.sessionMiddleware)

			r.Get("/me", s.meHandler)

			r.Route("/games", func(r chi.Router) {
				r.Get("/", s.gamesListHandler)
				r.Post("/", s.gamesCreateHandler)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.gameGetHandler)
					r.Put("/", s.gameUpdateHandler)
					r.Delete("/", s.gameDeleteHandler)
					r.Post("/sync", s.gameSyncHandler)
					r.Post("/refresh", s.gameRefreshHandler)
					r.Get("/codes", s.gameCodesHandler)
					r.Get("/codes/export", s.gameCodesExportHandler)
					r.Get("/checklists", s.checklistsByGameHandler)
				})
			})

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", s.articlesListHandler)
				r.Post("/", s.articlesCreateHandler)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.articleGetHandler)
					r.Put("/", s.articleUpdateHandler)
					r.Delete("/", s.articleDeleteHandler)
					r.Post("/publish", s.articlePublishHandler)
				})
			})

			r.Route("/checklists", func(r chi.Router) {
				r.Post("/", s.checklistCreateHandler)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", s.checklistRenameHandler)
					r.Delete("/", s.checklistDeleteHandler)
					r.Post("/items/{idx}/toggle", s.checklistToggleHandler)
				})
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", s.mediaListHandler)
				r.Post("/", s.mediaUploadHandler)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.mediaGetHandler)
					r.Delete("/", s.mediaDeleteHandler)
				})
			})

			r.Get("/search", s.searchHandler)
			r.Post("/search/reindex", s.searchReindexHandler)

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", s.staffListHandler)
				r.Post("/", s.staffCreateHandler)
			})
		})
	})

	return r
}

type ctxKeyClaims struct{}

// sessionMiddleware rejects requests without a valid staff session.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.sessions.ParseFromRequest(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}
		ctx := context.WithValue(r.Context(), ctxKeyClaims{}, claims)
		ctx = logging.WithStaffID(ctx, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFrom(ctx context.Context) *StaffClaims {
	if v := ctx.Value(ctxKeyClaims{}); v != nil {
		return v.(*StaffClaims)
	}
	return nil
}
