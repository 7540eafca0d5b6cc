package repositories

import (
	"context"
	"sync"

	"github.com/cbodonnell/pong/pkg/repositories/models"
)

// InMemoryRepository keeps running totals only. Records are not retained.
type InMemoryRepository struct {
	mu    sync.RWMutex
	stats models.Stats
}

func NewInMemoryRepository() Repository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) RecordResult(ctx context.Context, record models.GameRecord) (*models.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	applyRecord(&r.stats, record)
	stats := r.stats
	return &stats, nil
}

func (r *InMemoryRepository) GetStats(ctx context.Context) (*models.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := r.stats
	return &stats, nil
}
