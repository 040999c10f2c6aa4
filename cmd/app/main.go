// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rocodes-admin/internal/config"
	"rocodes-admin/internal/domain/ports/adapter"
	pg "rocodes-admin/internal/infra/db/postgres"
	"rocodes-admin/internal/infra/logging"
	"rocodes-admin/internal/infra/metrics"
	"rocodes-admin/internal/infra/notify"
	red "rocodes-admin/internal/infra/redis"
	"rocodes-admin/internal/infra/sched"
	"rocodes-admin/internal/infra/scraper"
	"rocodes-admin/internal/infra/storage"
	"rocodes-admin/internal/infra/web"
	"rocodes-admin/internal/infra/worker"
	"rocodes-admin/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (noop scraper, relaxed auth)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Warn().Msg("dev mode enabled")
	}

	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer pool.Close()

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st := pool.Stat()
				metrics.SetDBPoolStats(st.TotalConns(), st.IdleConns(), st.AcquiredConns())
			}
		}
	}()

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis")
	}
	defer redisClient.Close()
	searchIndex := red.NewSearchIndex(redisClient)

	// ---- Repositories ----
	gameRepo := pg.NewGameRepo(pool)
	codeRepo := pg.NewGameCodeRepo(pool)
	articleRepo := pg.NewArticleRepo(pool)
	checklistRepo := pg.NewChecklistRepo(pool)
	mediaRepo := pg.NewMediaRepo(pool)
	staffRepo := pg.NewStaffRepo(pool)

	// ---- Adapters ----
	var src adapter.SourceScraper
	if cfg.Scraper.BaseURL == "" {
		if !cfg.Runtime.Dev {
			logger.Fatal().Msg("scraper.base_url is required outside dev mode")
		}
		logger.Warn().Msg("no scraper configured; using noop")
		src = scraper.Noop{}
	} else {
		src = scraper.NewHTTPScraper(cfg.Scraper)
	}

	objStore := storage.NewHostedStorage(cfg.Storage)

	var notifier adapter.StaffNotifier
	if cfg.Notify.TelegramToken != "" {
		notifier, err = notify.NewTelegramNotifier(cfg.Notify)
		if err != nil {
			logger.Fatal().Err(err).Msg("telegram notifier")
		}
	} else {
		logger.Warn().Msg("no telegram token; staff notifications disabled")
		notifier = notify.NoopNotifier{}
	}

	// ---- Use cases ----
	syncUC := usecase.NewCodeSyncUseCase(codeRepo, gameRepo, src)
	gameUC := usecase.NewGameUseCase(gameRepo, syncUC)
	articleUC := usecase.NewArticleUseCase(articleRepo, searchIndex)
	checklistUC := usecase.NewChecklistUseCase(checklistRepo, gameRepo)
	mediaUC := usecase.NewMediaUseCase(mediaRepo, objStore)
	authUC := usecase.NewAuthUseCase(staffRepo)
	exportUC := usecase.NewExportUseCase(codeRepo, gameRepo)
	searchUC := usecase.NewSearchUseCase(searchIndex, gameRepo, articleRepo)

	// ---- Background workers ----
	pool4 := worker.NewPool(4, logger)
	pool4.Start(ctx)
	defer pool4.Stop()

	reindexer := sched.NewReindexWorker(cfg.Search.ReindexInterval, searchUC, logger)
	go func() { _ = reindexer.Run(ctx) }()

	// ---- HTTP server ----
	sessions := web.NewAuthManager(cfg.Auth.HMACSecret, cfg.Auth.SecureCookie, cfg.Auth.CookieDomain, cfg.Auth.SessionTTL)
	srv := web.NewServer(gameUC, syncUC, articleUC, checklistUC, mediaUC, authUC, exportUC, searchUC, sessions, notifier, pool4, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("admin api listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	cancel()
}
