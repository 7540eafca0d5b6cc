package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/pong/pkg/repositories/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(result *string, score *int64) models.GameRecord {
	return models.GameRecord{
		ID:        uuid.New(),
		Result:    result,
		Score:     score,
		CreatedAt: time.Now(),
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int64) *int64 { return &i }

func newRepositories(t *testing.T) map[string]Repository {
	ctx := context.Background()

	sqliteRepo, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "pong.db"), "../../migrations/sqlite")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteRepo.Close(ctx) })

	return map[string]Repository{
		"memory": NewInMemoryRepository(),
		"sqlite": sqliteRepo,
	}
}

func TestRepository_empty(t *testing.T) {
	for name, repo := range newRepositories(t) {
		t.Run(name, func(t *testing.T) {
			stats, err := repo.GetStats(context.Background())
			require.NoError(t, err)
			assert.Equal(t, &models.Stats{}, stats)
		})
	}
}

func TestRepository_RecordResult(t *testing.T) {
	for name, repo := range newRepositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			records := []models.GameRecord{
				newRecord(strPtr("player_win"), intPtr(5)),
				newRecord(strPtr("ai_win"), intPtr(3)),
				newRecord(strPtr("player_win"), intPtr(7)),
				// counts as a game but neither side
				newRecord(strPtr("draw"), nil),
				// score only
				newRecord(nil, intPtr(9)),
				newRecord(nil, intPtr(-4)),
			}

			var stats *models.Stats
			var err error
			for _, record := range records {
				stats, err = repo.RecordResult(ctx, record)
				require.NoError(t, err)
			}

			want := &models.Stats{
				TotalGames:   4,
				PlayerWins:   2,
				AIWins:       1,
				HighestScore: 9,
			}
			assert.Equal(t, want, stats)

			got, err := repo.GetStats(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRepository_negativeScoreFloor(t *testing.T) {
	for name, repo := range newRepositories(t) {
		t.Run(name, func(t *testing.T) {
			stats, err := repo.RecordResult(context.Background(), newRecord(strPtr("ai_win"), intPtr(-3)))
			require.NoError(t, err)
			assert.Equal(t, int64(0), stats.HighestScore)
			assert.Equal(t, int64(1), stats.AIWins)
		})
	}
}

func TestNewSQLiteRepository_missingMigrations(t *testing.T) {
	_, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "pong.db"), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
