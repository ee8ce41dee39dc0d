package usecase

//go:generate mockgen -source=reservation_aggregator.go -destination=../../tests/mock/usecase/reservation_aggregator_mock.go -package=usecasemock

import (
	"context"
	"encoding/json"
	"log/slog"

	"timer-gateway/internal/domain/reservation"
	"timer-gateway/internal/domain/timer"
	"timer-gateway/internal/pkg/clock"

	"golang.org/x/sync/errgroup"
)

// StatusSnapshot is the combined view of a reservation returned by GetDetails.
type StatusSnapshot struct {
	LicensePlate string
	State        json.RawMessage
	Temperature  json.RawMessage
	Consumption  json.RawMessage
	Reservations []timer.Record // active timers only
}

type ReservationAggregator interface {
	GetDetails(ctx context.Context, token, reservationID string) (*StatusSnapshot, error)
	GetAllTimers(ctx context.Context, token, reservationID string) ([]timer.Record, error)
	CreateTimer(ctx context.Context, token string, rc reservation.Context, fields timer.CreateFields) (json.RawMessage, error)
	// DeleteAllTimers removes every timer of the reservation, expired or not.
	DeleteAllTimers(ctx context.Context, token, reservationID string) (bool, error)
}

type reservationAggregatorImpl struct {
	reservations ReservationAPI
	timers       TimerAPI
	classifier   *timer.Classifier
	reconciler   TimerReconciler
	cleanup      CleanupDispatcher
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReservationAggregator(
	reservations ReservationAPI,
	timers TimerAPI,
	classifier *timer.Classifier,
	reconciler TimerReconciler,
	cleanup CleanupDispatcher,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationAggregator {
	return &reservationAggregatorImpl{
		reservations: reservations,
		timers:       timers,
		classifier:   classifier,
		reconciler:   reconciler,
		cleanup:      cleanup,
		clock:        clock,
		logger:       logger,
	}
}

func (a *reservationAggregatorImpl) GetDetails(ctx context.Context, token, reservationID string) (*StatusSnapshot, error) {
	if token == "" {
		return nil, ErrMissingCredential
	}

	var (
		plate   reservation.Plate
		records []timer.Record
		state   timer.State
		conf    timer.Configuration
	)

	// The first failing read cancels the others; its error is the one returned.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		plate, err = a.reservations.GetPlate(gctx, token, reservationID)
		return err
	})
	g.Go(func() (err error) {
		records, err = a.timers.ListTimers(gctx, token, reservationID)
		return err
	})
	g.Go(func() (err error) {
		state, err = a.timers.GetTimerState(gctx, token, reservationID)
		return err
	})
	g.Go(func() (err error) {
		conf, err = a.timers.GetTimerConfiguration(gctx, token, reservationID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	expired, active, err := a.classifier.Classify(records, a.clock.Now())
	if err != nil {
		a.logger.Warn("could not classify timers, treating batch as empty",
			"reservation_id", reservationID, "error", err.Error())
	}

	a.cleanup.Dispatch(token, reservationID, expired)

	return &StatusSnapshot{
		LicensePlate: plate.LicensePlate,
		State:        state.State,
		Temperature:  conf.Temperature,
		Consumption:  state.Consumption,
		Reservations: active,
	}, nil
}

func (a *reservationAggregatorImpl) GetAllTimers(ctx context.Context, token, reservationID string) ([]timer.Record, error) {
	if token == "" {
		return nil, ErrMissingCredential
	}
	return a.timers.ListTimers(ctx, token, reservationID)
}

func (a *reservationAggregatorImpl) CreateTimer(ctx context.Context, token string, rc reservation.Context, fields timer.CreateFields) (json.RawMessage, error) {
	if token == "" {
		return nil, ErrMissingCredential
	}
	payload := timer.NewCreatePayload(fields, rc.ParkingPointID)
	return a.timers.CreateTimer(ctx, token, rc.ReservationID, payload)
}

func (a *reservationAggregatorImpl) DeleteAllTimers(ctx context.Context, token, reservationID string) (bool, error) {
	all, err := a.GetAllTimers(ctx, token, reservationID)
	if err != nil {
		return false, err
	}
	return a.reconciler.Reconcile(ctx, token, reservationID, all), nil
}
