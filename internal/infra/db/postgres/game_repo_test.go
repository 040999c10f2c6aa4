//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/repository"

	"github.com/jackc/pgx/v4"
)

func TestGameRepo_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode.")
	}

	repo := NewGameRepo(testPool)
	ctx := context.Background()

	t.Run("should perform full CRUD cycle", func(t *testing.T) {
		cleanup(t)

		game, err := model.NewGame("", "pet-simulator", "Pet Simulator")
		if err != nil {
			t.Fatalf("model.NewGame() failed: %v", err)
		}
		game.RobloxURL = "https://www.roblox.com/games/123"
		game.CodeSources = []string{"https://provider.example.com/pet-simulator"}
		if err := repo.Save(ctx, nil, game); err != nil {
			t.Fatalf("Failed to save new game: %v", err)
		}

		found, err := repo.FindBySlug(ctx, nil, "pet-simulator")
		if err != nil {
			t.Fatalf("Failed to find game by slug: %v", err)
		}
		if found.ID != game.ID || found.Title != "Pet Simulator" {
			t.Errorf("found = %+v", found)
		}
		if len(found.CodeSources) != 1 || found.CodeSources[0] != game.CodeSources[0] {
			t.Errorf("code_sources = %v", found.CodeSources)
		}

		found.Title = "Pet Simulator 99"
		if err := repo.Save(ctx, nil, found); err != nil {
			t.Fatalf("Failed to update game: %v", err)
		}
		updated, err := repo.FindByID(ctx, nil, game.ID)
		if err != nil {
			t.Fatalf("Failed to find game by ID: %v", err)
		}
		if updated.Title != "Pet Simulator 99" {
			t.Errorf("title = %q", updated.Title)
		}

		if err := repo.Delete(ctx, nil, game.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := repo.FindByID(ctx, nil, game.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("after delete err = %v, want ErrNotFound", err)
		}
		if err := repo.Delete(ctx, nil, game.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("double delete err = %v, want ErrNotFound", err)
		}
	})

	t.Run("should replace the expired codes array wholesale", func(t *testing.T) {
		cleanup(t)
		game := seedGame(t, "expired-game")

		if err := repo.SetExpiredCodes(ctx, nil, game.ID, []string{"OLD-1", "OLD-2"}); err != nil {
			t.Fatalf("SetExpiredCodes failed: %v", err)
		}
		found, err := repo.FindByID(ctx, nil, game.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if len(found.ExpiredCodes) != 2 {
			t.Fatalf("expired_codes = %v", found.ExpiredCodes)
		}

		// An empty report still replaces; nil is normalized to empty.
		if err := repo.SetExpiredCodes(ctx, nil, game.ID, nil); err != nil {
			t.Fatalf("SetExpiredCodes(nil) failed: %v", err)
		}
		found, err = repo.FindByID(ctx, nil, game.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if len(found.ExpiredCodes) != 0 {
			t.Errorf("expired_codes = %v, want empty", found.ExpiredCodes)
		}

		if err := repo.SetExpiredCodes(ctx, nil, "00000000-0000-0000-0000-000000000000", []string{"X1"}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("unknown game err = %v, want ErrNotFound", err)
		}
	})

	t.Run("should count and page listings", func(t *testing.T) {
		cleanup(t)
		seedGame(t, "game-a")
		seedGame(t, "game-b")
		seedGame(t, "game-c")

		n, err := repo.Count(ctx, nil)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if n != 3 {
			t.Errorf("count = %d, want 3", n)
		}

		page, err := repo.List(ctx, nil, 0, 2)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(page) != 2 {
			t.Errorf("page size = %d, want 2", len(page))
		}
		rest, err := repo.List(ctx, nil, 2, 2)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(rest) != 1 {
			t.Errorf("second page size = %d, want 1", len(rest))
		}
	})

	t.Run("should roll back a failed transaction", func(t *testing.T) {
		cleanup(t)
		tm := NewTxManager(testPool)

		game, _ := model.NewGame("", "tx-game", "Tx Game")
		sentinel := errors.New("boom")
		err := tm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
			if err := repo.Save(ctx, tx, game); err != nil {
				return err
			}
			return sentinel
		})
		if !errors.Is(err, sentinel) {
			t.Fatalf("WithTx err = %v, want the callback error", err)
		}
		if _, err := repo.FindByID(ctx, nil, game.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("row visible after rollback: err = %v", err)
		}
	})
}
