package timer

import (
	"fmt"
	"time"

	"timer-gateway/internal/pkg/errs"
)

// EndLayout reads dateEnd + " " + timeEnd (dd.MM.yyyy HH:mm). Day, month, hour
// and minute may come with or without a leading zero.
const EndLayout = "2.1.2006 15:4"

// Window returns the instant at which the timer ends, reading the upstream
// wall-clock fields in loc.
func Window(r Record, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	end, err := time.ParseInLocation(EndLayout, fmt.Sprintf("%s %s", r.DateEnd, r.TimeEnd), loc)
	if err != nil {
		return time.Time{}, errs.Mark(
			errs.Wrapf(err, "timer %s: parse end %q %q", r.TimerID, r.DateEnd, r.TimeEnd),
			errs.ErrInvalidTimerWindow,
		)
	}
	return end, nil
}
