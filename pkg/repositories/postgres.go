package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	// conn is not safe for concurrent use
	mu   sync.Mutex
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and runs the migrations in the given directory.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	err = runMigrations(ctx, migrations, func(ctx context.Context, q string) error {
		_, err := conn.Exec(ctx, q)
		return err
	})
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) RecordResult(ctx context.Context, record models.GameRecord) (*models.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	q := `
	INSERT INTO games (id, result, score, created_at) VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, q, record.ID, record.Result, record.Score, record.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert game: %v", err)
	}

	stats, err := scanStats(tx.QueryRow(ctx, postgresStatsQuery))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %v", err)
	}

	return stats, nil
}

func (r *PostgresRepository) GetStats(ctx context.Context) (*models.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return scanStats(r.conn.QueryRow(ctx, postgresStatsQuery))
}

const postgresStatsQuery = `
SELECT
	COUNT(result),
	COUNT(*) FILTER (WHERE result = 'player_win'),
	COUNT(*) FILTER (WHERE result = 'ai_win'),
	GREATEST(0, COALESCE(MAX(score), 0))
FROM games;
`
