package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"rocodes-admin/internal/config"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/repository"
	pg "rocodes-admin/internal/infra/db/postgres"

	"github.com/jackc/pgx/v4"
)

// Seeds a first admin account and a sample game so a fresh deployment is
// navigable. Safe to re-run: existing rows are left alone.
func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	email := flag.String("email", "admin@example.com", "initial admin email")
	password := flag.String("password", "", "initial admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: seed -password <password> [-email <email>] [-config <path>]")
	}

	cfg, err := config.LoadConfig(*cfgPath, true)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	staffRepo := pg.NewStaffRepo(pool)
	gameRepo := pg.NewGameRepo(pool)
	tm := pg.NewTxManager(pool)

	if existing, err := staffRepo.FindByEmail(ctx, repository.NoTX, *email); err == nil && !existing.IsZero() {
		fmt.Printf("staff user %s already present. No changes.\n", existing.Email)
		return
	}

	admin, err := model.NewStaffUser("", *email, "Site Admin", model.RoleAdmin, *password)
	if err != nil {
		log.Fatalf("build admin user: %v", err)
	}
	game, err := model.NewGame("", "sample-game", "Sample Game")
	if err != nil {
		log.Fatalf("build sample game: %v", err)
	}
	game.Description = "Placeholder listing page. Replace with a real experience."

	// Both rows or neither.
	err = tm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		if err := staffRepo.Save(ctx, tx, admin); err != nil {
			return fmt.Errorf("save admin user: %w", err)
		}
		if _, err := gameRepo.FindBySlug(ctx, tx, "sample-game"); err == nil {
			return nil // game already present
		}
		if err := gameRepo.Save(ctx, tx, game); err != nil {
			return fmt.Errorf("save sample game: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	fmt.Printf("seeded admin: %s (id=%s)\n", admin.Email, admin.ID)
	fmt.Println("Seeding complete.")
}
