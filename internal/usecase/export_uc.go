package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"rocodes-admin/internal/domain/ports/repository"
)

// ExportUseCase streams admin data as CSV for spreadsheet workflows.
type ExportUseCase struct {
	codes repository.GameCodeRepository
	games repository.GameRepository
}

func NewExportUseCase(codes repository.GameCodeRepository, games repository.GameRepository) *ExportUseCase {
	return &ExportUseCase{codes: codes, games: games}
}

// GameCodesCSV writes every persisted code row of a game as CSV.
// Column order is stable; consumers pin on it.
func (uc *ExportUseCase) GameCodesCSV(ctx context.Context, gameID string, w io.Writer) error {
	if _, err := uc.games.FindByID(ctx, repository.NoTX, gameID); err != nil {
		return err
	}
	rows, err := uc.codes.ListByGame(ctx, repository.NoTX, gameID)
	if err != nil {
		return fmt.Errorf("list codes for game %s: %w", gameID, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"code", "status", "rewards_text", "level_requirement",
		"is_new", "provider_priority", "posted_online", "first_seen_at", "last_seen_at",
	}); err != nil {
		return err
	}
	for _, row := range rows {
		rewards := ""
		if row.RewardsText != nil {
			rewards = *row.RewardsText
		}
		level := ""
		if row.LevelRequirement != nil {
			level = strconv.Itoa(*row.LevelRequirement)
		}
		rec := []string{
			row.Code,
			row.Status,
			rewards,
			level,
			strconv.FormatBool(row.IsNew),
			strconv.Itoa(row.ProviderPriority),
			strconv.FormatBool(row.PostedOnline),
			row.FirstSeenAt.UTC().Format("2006-01-02T15:04:05Z"),
			row.LastSeenAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
