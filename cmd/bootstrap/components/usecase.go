package components

import (
	"log/slog"

	"timer-gateway/internal/domain/timer"
	"timer-gateway/internal/pkg/clock"
	"timer-gateway/internal/pkg/config"
	"timer-gateway/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCleanupModule,
	usecaseGatewayModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewClassifier,
)

var usecaseCleanupModule = fx.Module("usecase/cleanup",
	fx.Provide(
		NewTimerReconciler,
		fx.Annotate(
			NewBackgroundCleanup,
			fx.As(new(usecase.CleanupDispatcher)),
		),
	),
)

var usecaseGatewayModule = fx.Module("usecase/gateway",
	fx.Provide(
		usecase.NewContextResolver,
		usecase.NewReservationAggregator,
	),
)

func NewTimerReconciler(timers usecase.TimerAPI, cfg config.Config, logger *slog.Logger) usecase.TimerReconciler {
	return usecase.NewTimerReconciler(timers, cfg.Cleanup, logger)
}

func NewClassifier(cfg config.Config) (*timer.Classifier, error) {
	loc, err := cfg.Timer.Location()
	if err != nil {
		return nil, err
	}
	return timer.NewClassifier(loc), nil
}

// NewBackgroundCleanup ties the cleanup workers to the app lifecycle so queued
// jobs get a chance to finish on shutdown.
func NewBackgroundCleanup(lc fx.Lifecycle, reconciler usecase.TimerReconciler, cfg config.Config, logger *slog.Logger) *usecase.BackgroundCleanup {
	cleanup := usecase.NewBackgroundCleanup(reconciler, cfg.Cleanup, logger)
	lc.Append(fx.StartStopHook(cleanup.Start, cleanup.Stop))
	return cleanup
}
