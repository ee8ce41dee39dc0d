//go:build e2e

package gateway_test

import (
	"net/http"
	"testing"
	"time"

	reqdto "timer-gateway/internal/handler/dto/request"
	"timer-gateway/tests/common/builder"
	"timer-gateway/tests/common/httptest"
	"timer-gateway/tests/common/upstreamtest"
	"timer-gateway/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	timerURL   = "/timer"
	detailsURL = "/details"
)

type gatewaySuite struct {
	e2e.SharedSuite
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(gatewaySuite))
}

func (s *gatewaySuite) SetupTest() {
	now := time.Now().UTC()
	s.SetupEnvironment(&upstreamtest.Reservation{
		ID:             "R1",
		ParkingPointID: "P1",
		LicensePlate:   "ABC-123",
		Timers: []map[string]any{
			builder.NewTimerBuilder().WithID("T-old").WithEnd(now.Add(-24 * time.Hour)).BuildUpstreamJSON(),
			builder.NewTimerBuilder().WithID("T-new").WithEnd(now.Add(24 * time.Hour)).BuildUpstreamJSON(),
		},
	})
}

func (s *gatewaySuite) TestDetails() {
	s.Run("active timers returned, expired ones deleted in the background", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, detailsURL, reqdto.TokenRequest{Token: e2e.SessionToken})

		var body struct {
			LicensePlate string           `json:"licensePlate"`
			State        string           `json:"state"`
			Temperature  float64          `json:"temperature"`
			Consumption  float64          `json:"consumption"`
			Reservations []map[string]any `json:"reservations"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ABC-123", body.LicensePlate)
		s.Equal("ON", body.State)
		s.Equal(-4.0, body.Temperature)
		s.Equal(1.25, body.Consumption)
		s.Require().Len(body.Reservations, 1)
		s.Equal("T-new", body.Reservations[0]["timerId"])
		// fields the gateway does not read are passed through
		s.EqualValues(124, body.Reservations[0]["weekdayMask"])

		require.Eventually(s.T(), func() bool {
			return s.Upstream.CallsTo(http.MethodDelete, "/timerapi/reservations/R1/timers/T-old") == 1
		}, 2*time.Second, 10*time.Millisecond)
		s.Equal([]string{"T-new"}, s.Upstream.TimerIDs("R1"))
		s.Zero(s.Upstream.CallsTo(http.MethodDelete, "/timerapi/reservations/R1/timers/T-new"))
	})

	s.Run("reservation context is cached between requests", func() {
		before := s.Upstream.CallsTo(http.MethodGet, "/reservationapi/reservations")

		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, detailsURL, reqdto.TokenRequest{Token: e2e.SessionToken})
			s.Equal(http.StatusOK, rec.Code)
		}

		s.LessOrEqual(s.Upstream.CallsTo(http.MethodGet, "/reservationapi/reservations")-before, 1)
		for _, key := range s.Redis.Keys() {
			s.NotContains(key, e2e.SessionToken)
		}
	})

	s.Run("upstream rejection is relayed", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, detailsURL, reqdto.TokenRequest{Token: "SESSION=stale"})

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.JSONEq(`{"message":"session expired"}`, rec.Body.String())
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, detailsURL, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Token required")
	})
}

func (s *gatewaySuite) TestCreateTimer() {
	req := reqdto.CreateTimerRequest{
		Token:    e2e.SessionToken,
		EndDate:  "01.01.2025",
		EndTime:  "10:00",
		Duration: 30,
		Eco:      true,
	}

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, timerURL, req)

	var created map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &created)
	s.NotEmpty(created["timerId"])

	var posted map[string]any
	for _, c := range s.Upstream.Calls() {
		if c.Method == http.MethodPost {
			posted = c.Body
		}
	}
	assert.Equal(s.T(), map[string]any{
		"dateEnd":        "01.01.2025",
		"timeEnd":        "10:00",
		"duration":       float64(30),
		"eco":            true,
		"parkingPointId": "P1",
		"charging":       float64(0),
		"weekdayMask":    float64(124),
	}, posted)
}

func (s *gatewaySuite) TestDeleteAllTimers() {
	s.Run("every timer removed, ended or not", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, timerURL, reqdto.TokenRequest{Token: e2e.SessionToken})

		s.Equal(http.StatusOK, rec.Code)
		s.Empty(s.Upstream.TimerIDs("R1"))
	})
}

func (s *gatewaySuite) TestDeleteAllTimersPartialFailure() {
	s.Upstream.FailDelete("T-old", http.StatusInternalServerError)

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, timerURL, reqdto.TokenRequest{Token: e2e.SessionToken})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(1, s.Upstream.CallsTo(http.MethodDelete, "/timerapi/reservations/R1/timers/T-old"))
	s.Equal(1, s.Upstream.CallsTo(http.MethodDelete, "/timerapi/reservations/R1/timers/T-new"))
	s.Equal([]string{"T-old"}, s.Upstream.TimerIDs("R1"))
}

func (s *gatewaySuite) TestBanner() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("This is not your tolppa", rec.Body.String())
}
