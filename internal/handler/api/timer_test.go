//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"timer-gateway/internal/domain/reservation"
	"timer-gateway/internal/domain/timer"
	"timer-gateway/internal/handler/api"
	reqdto "timer-gateway/internal/handler/dto/request"
	resdto "timer-gateway/internal/handler/dto/response"
	"timer-gateway/internal/handler/middleware"
	"timer-gateway/internal/infra/upstream"
	"timer-gateway/internal/pkg/errs"
	"timer-gateway/internal/usecase"
	"timer-gateway/tests/common/builder"
	"timer-gateway/tests/common/httptest"
	"timer-gateway/tests/common/testutil"
	usecasemock "timer-gateway/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimerHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockResolver   *usecasemock.MockContextResolver
	mockAggregator *usecasemock.MockReservationAggregator
	handler        *api.TimerHandler
}

var resolvedContext = reservation.Context{ReservationID: "R1", ParkingPointID: "P1"}

func (s *TimerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockResolver = usecasemock.NewMockContextResolver(s.mockCtrl)
	s.mockAggregator = usecasemock.NewMockReservationAggregator(s.mockCtrl)
	s.handler = api.NewTimerHandler(s.mockAggregator)

	requireReservation := middleware.NewReservationContextMiddleware(s.mockResolver).RequireReservation()

	s.router.POST("/timer", requireReservation, s.handler.CreateTimer)
	s.router.POST("/details", requireReservation, s.handler.GetDetails)
	s.router.DELETE("/timer", requireReservation, s.handler.DeleteAllTimers)
}

func (s *TimerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTimerHandlerSuite(t *testing.T) {
	suite.Run(t, new(TimerHandlerTestSuite))
}

func (s *TimerHandlerTestSuite) expectResolved() {
	s.mockResolver.EXPECT().Resolve(gomock.Any(), "tok").Return(resolvedContext, nil).Times(1)
}

// ================================================================================
// TestCreateTimer
// ================================================================================

type testCaseTimer struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *TimerHandlerTestSuite) TestCreateTimer() {
	url := "/timer"
	reqBody := reqdto.CreateTimerRequest{Token: "tok", EndDate: "01.01.2025", EndTime: "10:00", Duration: 30, Eco: true}

	s.Run("success: upstream body is relayed with 200", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().CreateTimer(gomock.Any(), "tok", resolvedContext, timer.CreateFields{
			DateEnd: "01.01.2025", TimeEnd: "10:00", Duration: 30, Eco: true,
		}).Return(json.RawMessage(`{"timerId":"T9","weekdayMask":124}`), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"timerId":"T9","weekdayMask":124}`, rec.Body.String())
	})

	validation := []testCaseTimer{
		{name: "missing field: endDate", mutate: testutil.Field("endDate", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: endTime", mutate: testutil.Field("endTime", nil), expectCode: http.StatusBadRequest},
		{name: "endDate not a date", mutate: testutil.Field("endDate", "2025-01-01"), expectCode: http.StatusBadRequest},
		{name: "endTime not a time", mutate: testutil.Field("endTime", "10am"), expectCode: http.StatusBadRequest},
		{name: "negative duration", mutate: testutil.Field("duration", -1), expectCode: http.StatusBadRequest},
		{name: "duration not a number", mutate: testutil.Field("duration", "thirty"), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				s.expectResolved()
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("success: unpadded end date and time are accepted", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().CreateTimer(gomock.Any(), "tok", resolvedContext, timer.CreateFields{
			DateEnd: "1.1.2025", TimeEnd: "9:05", Duration: 30, Eco: true,
		}).Return(json.RawMessage(`{"timerId":"T10"}`), nil).Times(1)

		unpadded := reqBody
		unpadded.EndDate, unpadded.EndTime = "1.1.2025", "9:05"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, unpadded)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when token is missing, nothing resolved", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("token", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Token required")
	})

	s.Run("error: upstream rejection relayed verbatim", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().CreateTimer(gomock.Any(), "tok", resolvedContext, gomock.Any()).
			Return(nil, &upstream.RejectedError{
				StatusCode:  http.StatusConflict,
				ContentType: "text/plain",
				Body:        []byte("timer overlaps"),
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("timer overlaps", rec.Body.String())
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "text/plain"})
	})
}

// ================================================================================
// TestGetDetails
// ================================================================================

func (s *TimerHandlerTestSuite) TestGetDetails() {
	url := "/details"
	reqBody := reqdto.TokenRequest{Token: "tok"}

	s.Run("success: snapshot rendered with passthrough values", func() {
		active := builder.NewTimerBuilder().WithID("T2").WithRawEnd("02.01.2025", "08:30").Build()
		s.expectResolved()
		s.mockAggregator.EXPECT().GetDetails(gomock.Any(), "tok", "R1").Return(&usecase.StatusSnapshot{
			LicensePlate: "ABC-123",
			State:        json.RawMessage(`"ON"`),
			Temperature:  json.RawMessage(`-3`),
			Consumption:  json.RawMessage(`{"kwh":1.5}`),
			Reservations: []timer.Record{active},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := map[string]any{
			"licensePlate": "ABC-123",
			"state":        "ON",
			"temperature":  float64(-3),
			"consumption":  map[string]any{"kwh": 1.5},
			"reservations": []any{map[string]any{
				"timerId":  "T2",
				"dateEnd":  "02.01.2025",
				"timeEnd":  "08:30",
				"duration": float64(30),
				"eco":      true,
			}},
		}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("details mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: no active timers renders an empty list", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().GetDetails(gomock.Any(), "tok", "R1").
			Return(&usecase.StatusSnapshot{LicensePlate: "ABC-123"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.DetailsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Contains(rec.Body.String(), `"reservations":[]`)
		s.Empty(body.Reservations)
	})

	s.Run("error: 404 when the caller has no reservation", func() {
		s.mockResolver.EXPECT().Resolve(gomock.Any(), "tok").
			Return(reservation.Context{}, errs.ErrNoActiveReservation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No active reservation")
	})

	s.Run("error: 502 when the upstream is unreachable", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().GetDetails(gomock.Any(), "tok", "R1").
			Return(nil, &upstream.TransportError{Method: http.MethodGet, Cause: errors.New("connection refused")}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Upstream unavailable")
	})

	s.Run("error: 502 when the upstream answer cannot be decoded", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().GetDetails(gomock.Any(), "tok", "R1").
			Return(nil, errs.Mark(errors.New("unexpected end of JSON input"), errs.ErrUpstreamDecode)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Upstream unavailable")
	})

	s.Run("error: 500 on anything unexpected", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().GetDetails(gomock.Any(), "tok", "R1").
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 on an empty body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Token required")
	})
}

// ================================================================================
// TestDeleteAllTimers
// ================================================================================

func (s *TimerHandlerTestSuite) TestDeleteAllTimers() {
	url := "/timer"
	reqBody := reqdto.TokenRequest{Token: "tok"}

	s.Run("success: 200 when every timer was deleted", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().DeleteAllTimers(gomock.Any(), "tok", "R1").Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when any delete failed", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().DeleteAllTimers(gomock.Any(), "tok", "R1").Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: listing rejection relayed", func() {
		s.expectResolved()
		s.mockAggregator.EXPECT().DeleteAllTimers(gomock.Any(), "tok", "R1").
			Return(false, &upstream.RejectedError{
				StatusCode:  http.StatusUnauthorized,
				ContentType: "application/json",
				Body:        []byte(`{"message":"session expired"}`),
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody)
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.JSONEq(`{"message":"session expired"}`, rec.Body.String())
	})
}
