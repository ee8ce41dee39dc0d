package timer

import (
	"time"
)

type Classifier struct {
	loc *time.Location
}

func NewClassifier(loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.Local
	}
	return &Classifier{loc: loc}
}

// Classify splits records into those that ended strictly before now and those
// that end strictly after now. A record ending exactly at now is in neither set.
//
// If any record has an unparseable end, both sets are empty and the parse error
// is returned; callers treat the batch as unknown rather than failing.
func (c *Classifier) Classify(records []Record, now time.Time) (expired, active []Record, err error) {
	expired = make([]Record, 0, len(records))
	active = make([]Record, 0, len(records))

	for _, r := range records {
		end, werr := Window(r, c.loc)
		if werr != nil {
			return []Record{}, []Record{}, werr
		}
		switch {
		case now.After(end):
			expired = append(expired, r)
		case now.Before(end):
			active = append(active, r)
		}
	}
	return expired, active, nil
}
