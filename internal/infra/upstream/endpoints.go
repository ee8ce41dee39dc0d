package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"timer-gateway/internal/domain/reservation"
	"timer-gateway/internal/domain/timer"
	"timer-gateway/internal/pkg/flexid"
)

type reservationResp struct {
	ID             flexid.ID `json:"id"`
	ParkingPointID flexid.ID `json:"parkingPointId"`
}

// ListReservations returns the caller's reservations, newest first as the upstream orders them.
func (c *Client) ListReservations(ctx context.Context, token string) ([]reservation.Context, error) {
	var rows []reservationResp
	if err := c.getJSON(ctx, "/reservationapi/reservations", token, &rows); err != nil {
		return nil, err
	}
	out := make([]reservation.Context, 0, len(rows))
	for _, r := range rows {
		out = append(out, reservation.Context{
			ReservationID:  r.ID.String(),
			ParkingPointID: r.ParkingPointID.String(),
		})
	}
	return out, nil
}

func (c *Client) GetPlate(ctx context.Context, token, reservationID string) (reservation.Plate, error) {
	var p reservation.Plate
	err := c.getJSON(ctx, reservationPath(reservationID)+"/plate", token, &p)
	return p, err
}

func (c *Client) ListTimers(ctx context.Context, token, reservationID string) ([]timer.Record, error) {
	var records []timer.Record
	if err := c.getJSON(ctx, timersPath(reservationID), token, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []timer.Record{}
	}
	return records, nil
}

func (c *Client) GetTimerState(ctx context.Context, token, reservationID string) (timer.State, error) {
	var s timer.State
	err := c.getJSON(ctx, timersPath(reservationID)+"/state", token, &s)
	return s, err
}

func (c *Client) GetTimerConfiguration(ctx context.Context, token, reservationID string) (timer.Configuration, error) {
	var cfg timer.Configuration
	err := c.getJSON(ctx, timersPath(reservationID)+"/configuration", token, &cfg)
	return cfg, err
}

// CreateTimer posts the payload and returns the upstream answer untouched.
func (c *Client) CreateTimer(ctx context.Context, token, reservationID string, payload timer.CreatePayload) (json.RawMessage, error) {
	body, err := c.Do(ctx, http.MethodPost, timersPath(reservationID), token, payload)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) DeleteTimer(ctx context.Context, token, reservationID, timerID string) error {
	_, err := c.Do(ctx, http.MethodDelete, timersPath(reservationID)+"/"+url.PathEscape(timerID), token, nil)
	return err
}

func reservationPath(reservationID string) string {
	return fmt.Sprintf("/reservationapi/reservations/%s", url.PathEscape(reservationID))
}

func timersPath(reservationID string) string {
	return fmt.Sprintf("/timerapi/reservations/%s/timers", url.PathEscape(reservationID))
}
