package workers

import (
	"context"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
)

// DefaultStatsBufferSize is the number of results that may wait for delivery
const DefaultStatsBufferSize = 8

// ResultReporter delivers a finished game result to the stats service.
type ResultReporter interface {
	Report(ctx context.Context, result types.GameResult) error
}

// StatsWorker forwards game results to the stats service off the game loop.
type StatsWorker struct {
	reporter    ResultReporter
	resultsChan chan types.GameResult
}

type NewStatsWorkerOptions struct {
	Reporter   ResultReporter
	BufferSize int
}

// NewStatsWorker creates a new StatsWorker.
// Results submitted before Start is called are buffered up to BufferSize.
func NewStatsWorker(opts NewStatsWorkerOptions) *StatsWorker {
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = DefaultStatsBufferSize
	}
	return &StatsWorker{
		reporter:    opts.Reporter,
		resultsChan: make(chan types.GameResult, bufferSize),
	}
}

// Submit queues a result for delivery. It never blocks: when the buffer is full the result is dropped.
func (w *StatsWorker) Submit(result types.GameResult) {
	select {
	case w.resultsChan <- result:
	default:
		log.Warn("Stats buffer full, dropping result %s with score %d", result.Result, result.Score)
	}
}

func (w *StatsWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case result := <-w.resultsChan:
			w.report(ctx, result)
		}
	}
}

func (w *StatsWorker) report(ctx context.Context, result types.GameResult) {
	if err := w.reporter.Report(ctx, result); err != nil {
		log.Error("Failed to report game result: %v", err)
		return
	}
	log.Debug("Reported game result %s with score %d", result.Result, result.Score)
}
