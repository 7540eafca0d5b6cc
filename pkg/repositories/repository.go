package repositories

import (
	"context"

	"github.com/cbodonnell/pong/pkg/repositories/models"
)

type Repository interface {
	Close(ctx context.Context) error
	// RecordResult stores a game record and returns the stats including it.
	RecordResult(ctx context.Context, record models.GameRecord) (*models.Stats, error)
	GetStats(ctx context.Context) (*models.Stats, error)
}
