package usecase

//go:generate mockgen -source=cleanup_dispatcher.go -destination=../../tests/mock/usecase/cleanup_dispatcher_mock.go -package=usecasemock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"timer-gateway/internal/domain/timer"
	"timer-gateway/internal/pkg/config"

	"github.com/google/uuid"
)

// CleanupDispatcher hands expired timers over for deletion without waiting for it.
type CleanupDispatcher interface {
	Dispatch(token, reservationID string, timers []timer.Record)
}

type cleanupJob struct {
	id            uuid.UUID
	token         string
	reservationID string
	timers        []timer.Record
}

// BackgroundCleanup runs reconciliation jobs on its own workers, detached from the
// request that queued them. Outcomes are only logged.
type BackgroundCleanup struct {
	reconciler TimerReconciler
	workers    int
	timeout    time.Duration
	logger     *slog.Logger

	jobs chan cleanupJob
	wg   sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool
}

func NewBackgroundCleanup(reconciler TimerReconciler, cfg config.CleanupConfig, logger *slog.Logger) *BackgroundCleanup {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BackgroundCleanup{
		reconciler: reconciler,
		workers:    workers,
		timeout:    timeout,
		logger:     logger,
		jobs:       make(chan cleanupJob, queueSize),
	}
}

func (b *BackgroundCleanup) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started || b.closed {
		return
	}
	b.started = true

	for i := 0; i < b.workers; i++ {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			for job := range b.jobs {
				b.run(job)
			}
		}()
	}
}

// Stop stops accepting jobs and waits for queued ones until ctx is done.
func (b *BackgroundCleanup) Stop(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.jobs)
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *BackgroundCleanup) Dispatch(token, reservationID string, timers []timer.Record) {
	if len(timers) == 0 {
		return
	}

	job := cleanupJob{
		id:            uuid.New(),
		token:         token,
		reservationID: reservationID,
		timers:        timers,
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		b.logger.Warn("cleanup stopped, dropping expired timers",
			"job_id", job.id.String(), "reservation_id", reservationID, "count", len(timers))
		return
	}

	select {
	case b.jobs <- job:
		b.logger.Debug("expired timer cleanup queued",
			"job_id", job.id.String(), "reservation_id", reservationID, "count", len(timers))
	default:
		b.logger.Warn("cleanup queue full, dropping expired timers",
			"job_id", job.id.String(), "reservation_id", reservationID, "count", len(timers))
	}
}

func (b *BackgroundCleanup) run(job cleanupJob) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	start := time.Now()
	ok := b.reconciler.Reconcile(ctx, job.token, job.reservationID, job.timers)

	attrs := []any{
		"job_id", job.id.String(),
		"reservation_id", job.reservationID,
		"count", len(job.timers),
		"duration", time.Since(start),
	}
	if !ok {
		b.logger.Warn("expired timer cleanup incomplete", attrs...)
		return
	}
	b.logger.Info("expired timers deleted", attrs...)
}
