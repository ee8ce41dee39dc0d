package timer

import (
	"encoding/json"

	"timer-gateway/internal/pkg/flexid"
)

// Record is a timer as the upstream returns it. Fields the gateway does not
// interpret are kept and written back unchanged when the record is re-encoded.
type Record struct {
	TimerID flexid.ID `json:"timerId"`
	DateEnd string    `json:"dateEnd"`
	TimeEnd string    `json:"timeEnd"`

	// Passed through as sent; the upstream is not consistent about their types.
	Duration json.RawMessage `json:"duration,omitempty"`
	Eco      json.RawMessage `json:"eco,omitempty"`

	raw json.RawMessage
}

type recordFields Record

func (r *Record) UnmarshalJSON(b []byte) error {
	var f recordFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*r = Record(f)
	r.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	return json.Marshal(recordFields(r))
}

// State is the power state of the charging point for a reservation.
type State struct {
	State       json.RawMessage `json:"state"`
	Consumption json.RawMessage `json:"consumption"`
}

type Configuration struct {
	Temperature json.RawMessage `json:"temperature"`
}
