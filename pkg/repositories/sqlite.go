package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cbodonnell/pong/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// a single connection serializes writers and keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	err = runMigrations(ctx, migrations, func(ctx context.Context, q string) error {
		_, err := db.ExecContext(ctx, q)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) RecordResult(ctx context.Context, record models.GameRecord) (*models.Stats, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	q := `
	INSERT INTO games (id, result, score, created_at)
	VALUES (?, ?, ?, ?);
	`
	_, err = tx.ExecContext(ctx, q, record.ID.String(), record.Result, record.Score, record.CreatedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to insert game: %v", err)
	}

	stats, err := scanStats(tx.QueryRowContext(ctx, sqliteStatsQuery))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %v", err)
	}

	return stats, nil
}

func (r *SQLiteRepository) GetStats(ctx context.Context) (*models.Stats, error) {
	return scanStats(r.db.QueryRowContext(ctx, sqliteStatsQuery))
}

const sqliteStatsQuery = `
SELECT
	COUNT(result),
	COALESCE(SUM(CASE WHEN result = 'player_win' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN result = 'ai_win' THEN 1 ELSE 0 END), 0),
	MAX(0, COALESCE(MAX(score), 0))
FROM games;
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStats(row rowScanner) (*models.Stats, error) {
	stats := &models.Stats{}
	if err := row.Scan(&stats.TotalGames, &stats.PlayerWins, &stats.AIWins, &stats.HighestScore); err != nil {
		return nil, fmt.Errorf("failed to scan stats: %v", err)
	}
	return stats, nil
}
