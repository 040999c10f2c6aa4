package usecase

import (
	"context"
	"errors"
	"testing"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
	"rocodes-admin/internal/domain/ports/adapter"
)

func newGameFixture() (*GameUseCase, *memGameRepo, *memCodeRepo, *fakeScraper) {
	games := newMemGameRepo()
	codes := newMemCodeRepo()
	scr := &fakeScraper{}
	syncUC := NewCodeSyncUseCase(codes, games, scr)
	return NewGameUseCase(games, syncUC), games, codes, scr
}

func TestGameUseCase_CreateRunsImportPass(t *testing.T) {
	t.Parallel()

	uc, _, codes, scr := newGameFixture()
	scr.result = &adapter.ScrapeResult{
		Codes: []model.CodeCandidate{{Code: "WELCOME", ProviderPriority: 10}},
	}

	game, syncRes, err := uc.Create(context.Background(), "obby-world", "Obby World", "", "",
		[]string{"https://sources.example.com/obby"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if game.Slug != "obby-world" {
		t.Fatalf("slug not kept: %q", game.Slug)
	}
	if syncRes == nil || syncRes.CodesUpserted != 1 {
		t.Fatalf("expected import pass after save, got %+v", syncRes)
	}
	if codes.get(game.ID, "WELCOME") == nil {
		t.Fatal("code from import pass not persisted")
	}
}

func TestGameUseCase_CreateWithoutSourcesSkipsSync(t *testing.T) {
	t.Parallel()

	uc, _, _, scr := newGameFixture()

	_, syncRes, err := uc.Create(context.Background(), "quiet-game", "Quiet Game", "", "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if syncRes != nil {
		t.Fatalf("no sources means no pass, got %+v", syncRes)
	}
	if scr.calls != 0 {
		t.Fatalf("scraper must not be called, got %d calls", scr.calls)
	}
}

func TestGameUseCase_TooManySourcesRejected(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newGameFixture()
	_, _, err := uc.Create(context.Background(), "greedy", "Greedy", "", "", []string{
		"https://a.example.com", "https://b.example.com",
		"https://c.example.com", "https://d.example.com",
	})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGameUseCase_UpdateDedupesSources(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newGameFixture()
	game, _, err := uc.Create(context.Background(), "fruit-sim", "Fruit Sim", "", "", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, _, err := uc.Update(context.Background(), game.ID, "Fruit Simulator", "", "", []string{
		" https://a.example.com ", "https://a.example.com", "", "https://b.example.com",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Fruit Simulator" {
		t.Fatalf("title not updated: %q", updated.Title)
	}
	if len(updated.CodeSources) != 2 {
		t.Fatalf("sources not deduped: %v", updated.CodeSources)
	}
}

func TestGameUseCase_UpdateUnknownID(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newGameFixture()
	_, _, err := uc.Update(context.Background(), "missing", "X", "", "", nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
