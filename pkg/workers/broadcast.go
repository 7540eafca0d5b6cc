package workers

import (
	"context"
	"sync"

	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/repositories/models"
)

// StatsBroadcastWorker fans stats updates out to stream subscribers.
type StatsBroadcastWorker struct {
	statsChan chan models.Stats

	mu          sync.Mutex
	nextID      uint64
	subscribers map[uint64]chan models.Stats
}

type NewStatsBroadcastWorkerOptions struct {
	BufferSize int
}

func NewStatsBroadcastWorker(opts NewStatsBroadcastWorkerOptions) *StatsBroadcastWorker {
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultStatsBufferSize
	}
	return &StatsBroadcastWorker{
		statsChan:   make(chan models.Stats, bufferSize),
		subscribers: make(map[uint64]chan models.Stats),
	}
}

// Publish queues stats for every subscriber without blocking the caller.
func (w *StatsBroadcastWorker) Publish(stats models.Stats) {
	select {
	case w.statsChan <- stats:
	default:
		log.Warn("Stats broadcast buffer full, dropping update")
	}
}

// Subscribe registers a subscriber. The returned function unregisters it and must be called.
// A subscriber that falls behind only sees the most recent stats.
func (w *StatsBroadcastWorker) Subscribe() (<-chan models.Stats, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	ch := make(chan models.Stats, 1)
	w.subscribers[id] = ch

	return ch, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subscribers, id)
	}
}

// Subscribers returns the number of registered subscribers.
func (w *StatsBroadcastWorker) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subscribers)
}

func (w *StatsBroadcastWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case stats := <-w.statsChan:
			w.broadcast(stats)
		}
	}
}

func (w *StatsBroadcastWorker) broadcast(stats models.Stats) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, ch := range w.subscribers {
		// drop the stale update, if any, so the newest always fits
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- stats:
		default:
			log.Warn("Failed to deliver stats to subscriber %d", id)
		}
	}
}
