package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"rocodes-admin/internal/domain"
	"rocodes-admin/internal/domain/model"
)

func TestExportUseCase_GameCodesCSV(t *testing.T) {
	t.Parallel()

	games := newMemGameRepo()
	codes := newMemCodeRepo()
	uc := NewExportUseCase(codes, games)

	game, _ := model.NewGame("", "csv-game", "CSV Game")
	if err := games.Save(context.Background(), nil, game); err != nil {
		t.Fatalf("save game: %v", err)
	}
	codes.seed(game.ID, "ALPHA", model.CodeStatusActive, 10)
	codes.seed(game.ID, "BETA", model.CodeStatusCheck, 20)

	var buf bytes.Buffer
	if err := uc.GameCodesCSV(context.Background(), game.ID, &buf); err != nil {
		t.Fatalf("GameCodesCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "code" || records[0][1] != "status" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "ALPHA" || records[2][0] != "BETA" {
		t.Fatalf("rows out of first-seen order: %v", records)
	}
}

func TestExportUseCase_UnknownGame(t *testing.T) {
	t.Parallel()

	uc := NewExportUseCase(newMemCodeRepo(), newMemGameRepo())
	var buf bytes.Buffer
	if err := uc.GameCodesCSV(context.Background(), "missing", &buf); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
