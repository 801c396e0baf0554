package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionJanitor exposes the subset of application functionality required by the reaper.
type SessionJanitor interface {
	ExpireSessions(ctx context.Context, limit int) ([]uuid.UUID, error)
	CloseWorkspace(id uuid.UUID)
}

// SessionReaper periodically deletes expired sessions and tears down their workspaces.
type SessionReaper struct {
	janitor   SessionJanitor
	interval  time.Duration
	batchSize int
	workers   int
	logger    *slog.Logger

	jobs   chan uuid.UUID
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSessionReaper constructs the reaper worker pool.
func NewSessionReaper(janitor SessionJanitor, interval time.Duration, batchSize, workers int, logger *slog.Logger) *SessionReaper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &SessionReaper{
		janitor:   janitor,
		interval:  interval,
		batchSize: batchSize,
		workers:   workers,
		logger:    logger,
	}
}

// Start launches background reaping. The reaper outlives ctx cancellation and runs until Stop.
func (r *SessionReaper) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel
	r.jobs = make(chan uuid.UUID, r.batchSize)

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx, r.jobs)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx, r.jobs)
}

// Stop waits for all workers to finish.
func (r *SessionReaper) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *SessionReaper) dispatch(ctx context.Context, jobs chan<- uuid.UUID) {
	defer r.wg.Done()
	defer close(jobs)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.reap(ctx, jobs)
		}
	}
}

// reap drains every expired session, one batch at a time.
func (r *SessionReaper) reap(ctx context.Context, jobs chan<- uuid.UUID) {
	for {
		ids, err := r.janitor.ExpireSessions(ctx, r.batchSize)
		if err != nil {
			r.logger.Error("expire sessions failed", slog.String("error", err.Error()))
			return
		}
		if len(ids) > 0 {
			r.logger.Info("expired sessions removed", slog.Int("count", len(ids)))
		}
		for _, id := range ids {
			select {
			case <-ctx.Done():
				return
			case jobs <- id:
			}
		}
		if len(ids) < r.batchSize {
			return
		}
	}
}

func (r *SessionReaper) worker(ctx context.Context, jobs <-chan uuid.UUID) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-jobs:
			if !ok {
				return
			}
			r.janitor.CloseWorkspace(id)
			r.logger.Debug("workspace closed", slog.String("session", id.String()))
		}
	}
}
