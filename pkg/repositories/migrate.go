package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gametypes "github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/repositories/models"
)

// applyRecord folds a single record into stats.
func applyRecord(stats *models.Stats, record models.GameRecord) {
	if record.Result != nil {
		stats.TotalGames++
		switch gametypes.Result(*record.Result) {
		case gametypes.ResultPlayerWin:
			stats.PlayerWins++
		case gametypes.ResultAIWin:
			stats.AIWins++
		}
	}
	if record.Score != nil && *record.Score > stats.HighestScore {
		stats.HighestScore = *record.Score
	}
}

// runMigrations executes every file in dir in name order.
func runMigrations(ctx context.Context, dir string, exec func(ctx context.Context, sql string) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		migrationPath := filepath.Join(dir, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if err := exec(ctx, string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return nil
}
