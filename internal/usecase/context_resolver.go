package usecase

//go:generate mockgen -source=context_resolver.go -destination=../../tests/mock/usecase/context_resolver_mock.go -package=usecasemock

import (
	"context"
	"log/slog"

	"timer-gateway/internal/domain/reservation"
	"timer-gateway/internal/pkg/errs"
)

var (
	ErrMissingCredential   = errs.ErrMissingCredential
	ErrNoActiveReservation = errs.ErrNoActiveReservation
)

type ContextResolver interface {
	Resolve(ctx context.Context, token string) (reservation.Context, error)
}

type contextResolverImpl struct {
	reservations ReservationAPI
	cache        ContextCache
	logger       *slog.Logger
}

func NewContextResolver(reservations ReservationAPI, cache ContextCache, logger *slog.Logger) ContextResolver {
	return &contextResolverImpl{
		reservations: reservations,
		cache:        cache,
		logger:       logger,
	}
}

// Resolve returns the first reservation the upstream lists for the session.
func (r *contextResolverImpl) Resolve(ctx context.Context, token string) (reservation.Context, error) {
	if token == "" {
		return reservation.Context{}, ErrMissingCredential
	}

	if rc, ok, err := r.cache.Get(ctx, token); err != nil {
		r.logger.Warn("reservation context cache read failed", "error", err.Error())
	} else if ok {
		return rc, nil
	}

	list, err := r.reservations.ListReservations(ctx, token)
	if err != nil {
		return reservation.Context{}, err
	}
	if len(list) == 0 {
		return reservation.Context{}, ErrNoActiveReservation
	}

	rc, err := reservation.NewContext(list[0].ReservationID, list[0].ParkingPointID)
	if err != nil {
		return reservation.Context{}, errs.Mark(err, ErrNoActiveReservation)
	}

	if err := r.cache.Set(ctx, token, rc); err != nil {
		r.logger.Warn("reservation context cache write failed", "error", err.Error())
	}
	return rc, nil
}
