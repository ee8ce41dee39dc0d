//go:build unit || e2e

package builder

import (
	"encoding/json"
	"strconv"
	"time"

	"timer-gateway/internal/domain/timer"
	"timer-gateway/internal/pkg/flexid"
)

type TimerBuilder struct {
	TimerID  string
	DateEnd  string
	TimeEnd  string
	Duration string
	Eco      bool
}

func NewTimerBuilder() *TimerBuilder {
	return &TimerBuilder{
		TimerID:  "T1",
		DateEnd:  "01.01.2025",
		TimeEnd:  "10:00",
		Duration: "30",
		Eco:      true,
	}
}

func (b *TimerBuilder) WithID(id string) *TimerBuilder {
	b.TimerID = id
	return b
}

// WithEnd sets dateEnd/timeEnd from t, truncated to the minute like the upstream does.
func (b *TimerBuilder) WithEnd(t time.Time) *TimerBuilder {
	b.DateEnd = t.Format("02.01.2006")
	b.TimeEnd = t.Format("15:04")
	return b
}

func (b *TimerBuilder) WithRawEnd(dateEnd, timeEnd string) *TimerBuilder {
	b.DateEnd = dateEnd
	b.TimeEnd = timeEnd
	return b
}

func (b *TimerBuilder) Build() timer.Record {
	return timer.Record{
		TimerID:  flexid.ID(b.TimerID),
		DateEnd:  b.DateEnd,
		TimeEnd:  b.TimeEnd,
		Duration: json.RawMessage(b.Duration),
		Eco:      json.RawMessage(strconv.FormatBool(b.Eco)),
	}
}

// BuildUpstreamJSON renders the record the way the upstream timer API sends it.
func (b *TimerBuilder) BuildUpstreamJSON() map[string]any {
	return map[string]any{
		"timerId":     b.TimerID,
		"dateEnd":     b.DateEnd,
		"timeEnd":     b.TimeEnd,
		"duration":    json.Number(b.Duration),
		"eco":         b.Eco,
		"weekdayMask": timer.DefaultWeekdayMask,
		"charging":    timer.DefaultCharging,
	}
}
