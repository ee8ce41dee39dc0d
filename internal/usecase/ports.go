package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports_mock.go -package=usecasemock

import (
	"context"
	"encoding/json"

	"timer-gateway/internal/domain/reservation"
	"timer-gateway/internal/domain/timer"
)

// Upstream reservation service, implemented by infra/upstream.Client
type ReservationAPI interface {
	ListReservations(ctx context.Context, token string) ([]reservation.Context, error)
	GetPlate(ctx context.Context, token, reservationID string) (reservation.Plate, error)
}

// Upstream timer service, implemented by infra/upstream.Client
type TimerAPI interface {
	ListTimers(ctx context.Context, token, reservationID string) ([]timer.Record, error)
	GetTimerState(ctx context.Context, token, reservationID string) (timer.State, error)
	GetTimerConfiguration(ctx context.Context, token, reservationID string) (timer.Configuration, error)
	CreateTimer(ctx context.Context, token, reservationID string, payload timer.CreatePayload) (json.RawMessage, error)
	DeleteTimer(ctx context.Context, token, reservationID, timerID string) error
}

type ContextCache interface {
	Get(ctx context.Context, token string) (reservation.Context, bool, error)
	Set(ctx context.Context, token string, rc reservation.Context) error
}
