package usecase

//go:generate mockgen -source=timer_reconciler.go -destination=../../tests/mock/usecase/timer_reconciler_mock.go -package=usecasemock

import (
	"context"
	"log/slog"

	"timer-gateway/internal/domain/timer"
	"timer-gateway/internal/pkg/config"

	"golang.org/x/sync/errgroup"
)

type TimerReconciler interface {
	// Reconcile deletes every given timer upstream and reports whether all deletes succeeded.
	Reconcile(ctx context.Context, token, reservationID string, timers []timer.Record) bool
}

type timerReconcilerImpl struct {
	timers      TimerAPI
	concurrency int
	logger      *slog.Logger
}

func NewTimerReconciler(timers TimerAPI, cfg config.CleanupConfig, logger *slog.Logger) TimerReconciler {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &timerReconcilerImpl{
		timers:      timers,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (r *timerReconcilerImpl) Reconcile(ctx context.Context, token, reservationID string, timers []timer.Record) bool {
	if token == "" {
		return false
	}
	if len(timers) == 0 {
		return true
	}

	// plain Group: one failed delete must not cancel the others
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for _, t := range timers {
		timerID := t.TimerID.String()
		g.Go(func() error {
			if err := r.timers.DeleteTimer(ctx, token, reservationID, timerID); err != nil {
				r.logger.Error("failed to delete timer",
					"reservation_id", reservationID,
					"timer_id", timerID,
					"error", err.Error(),
				)
				return err
			}
			return nil
		})
	}
	return g.Wait() == nil
}
