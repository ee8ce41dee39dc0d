package response

import (
	"encoding/json"

	"timer-gateway/internal/domain/timer"
	"timer-gateway/internal/usecase"

	"github.com/jinzhu/copier"
)

// DetailsResponse mirrors the upstream values untouched; only the timer list is filtered.
type DetailsResponse struct {
	LicensePlate string          `json:"licensePlate"`
	State        json.RawMessage `json:"state"`
	Reservations []timer.Record  `json:"reservations"`
	Temperature  json.RawMessage `json:"temperature"`
	Consumption  json.RawMessage `json:"consumption"`
}

func FromStatusSnapshot(s *usecase.StatusSnapshot) (*DetailsResponse, error) {
	resp := &DetailsResponse{}
	if err := copier.Copy(resp, s); err != nil {
		return nil, err
	}
	if resp.Reservations == nil {
		resp.Reservations = []timer.Record{}
	}
	resp.State = orNull(resp.State)
	resp.Temperature = orNull(resp.Temperature)
	resp.Consumption = orNull(resp.Consumption)
	return resp, nil
}

// a missing upstream field encodes as null rather than failing the whole response
func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
