package request

import (
	"timer-gateway/internal/domain/timer"
)

// TokenRequest is the part every gateway body shares.
type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type CreateTimerRequest struct {
	Token    string `json:"token" binding:"required"`
	EndDate  string `json:"endDate" binding:"required,datetime=2.1.2006"`
	EndTime  string `json:"endTime" binding:"required,datetime=15:4"`
	Duration int    `json:"duration" binding:"min=0"`
	Eco      bool   `json:"eco"`
}

func (r CreateTimerRequest) ToFields() timer.CreateFields {
	return timer.CreateFields{
		DateEnd:  r.EndDate,
		TimeEnd:  r.EndTime,
		Duration: r.Duration,
		Eco:      r.Eco,
	}
}
