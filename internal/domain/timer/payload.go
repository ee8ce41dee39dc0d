package timer

const (
	// Fixed values the upstream expects for timers created through the gateway.
	DefaultCharging    = 0
	DefaultWeekdayMask = 124
)

// CreateFields are the caller-controlled parts of a new timer.
type CreateFields struct {
	DateEnd  string
	TimeEnd  string
	Duration int
	Eco      bool
}

type CreatePayload struct {
	DateEnd        string `json:"dateEnd"`
	TimeEnd        string `json:"timeEnd"`
	Duration       int    `json:"duration"`
	Eco            bool   `json:"eco"`
	ParkingPointID string `json:"parkingPointId"`
	Charging       int    `json:"charging"`
	WeekdayMask    int    `json:"weekdayMask"`
}

func NewCreatePayload(fields CreateFields, parkingPointID string) CreatePayload {
	return CreatePayload{
		DateEnd:        fields.DateEnd,
		TimeEnd:        fields.TimeEnd,
		Duration:       fields.Duration,
		Eco:            fields.Eco,
		ParkingPointID: parkingPointID,
		Charging:       DefaultCharging,
		WeekdayMask:    DefaultWeekdayMask,
	}
}
