package reservation

import (
	"errors"
)

var ErrEmptyReservationID = errors.New("reservation id cannot be empty")

// Context identifies the caller's active reservation. It is resolved once per request
// and reused for every upstream call made on behalf of that request.
type Context struct {
	ReservationID  string `json:"reservationId"`
	ParkingPointID string `json:"parkingPointId"`
}

func NewContext(reservationID, parkingPointID string) (Context, error) {
	if reservationID == "" {
		return Context{}, ErrEmptyReservationID
	}
	return Context{
		ReservationID:  reservationID,
		ParkingPointID: parkingPointID,
	}, nil
}

type Plate struct {
	LicensePlate string `json:"licensePlate"`
}
