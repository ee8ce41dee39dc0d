package api

import (
	"errors"
	"net/http"

	reqdto "timer-gateway/internal/handler/dto/request"
	resdto "timer-gateway/internal/handler/dto/response"
	"timer-gateway/internal/handler/httperr"
	"timer-gateway/internal/handler/middleware"
	"timer-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errMissingReservationContext = errors.New("reservation context not set")

type TimerHandler struct {
	aggregator usecase.ReservationAggregator
}

func NewTimerHandler(aggregator usecase.ReservationAggregator) *TimerHandler {
	return &TimerHandler{
		aggregator: aggregator,
	}
}

// @Summary Create timer
// @Description Create a charging timer on the caller's active reservation
// @Tags timers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTimerRequest true "Timer request"
// @Success 200 {object} map[string]any "Upstream response body"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /timer [post]
func (h *TimerHandler) CreateTimer(c *gin.Context) {
	rc, ok := middleware.GetReservationContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingReservationContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateTimerRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	body, err := h.aggregator.CreateTimer(c.Request.Context(), req.Token, rc, req.ToFields())
	if err != nil {
		httperr.AbortWithFailure(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// @Summary Reservation details
// @Description Plate, charger state, temperature, consumption and the timers that have not ended yet
// @Tags timers
// @Accept json
// @Produce json
// @Param request body reqdto.TokenRequest true "Session token"
// @Success 200 {object} resdto.DetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /details [post]
func (h *TimerHandler) GetDetails(c *gin.Context) {
	rc, ok := middleware.GetReservationContext(c)
	token, tokenOK := middleware.GetSessionToken(c)
	if !ok || !tokenOK {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingReservationContext, "Internal server error", nil)
		return
	}

	snapshot, err := h.aggregator.GetDetails(c.Request.Context(), token, rc.ReservationID)
	if err != nil {
		httperr.AbortWithFailure(c, err)
		return
	}

	response, err := resdto.FromStatusSnapshot(snapshot)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Delete all timers
// @Description Delete every timer of the caller's active reservation, ended or not
// @Tags timers
// @Accept json
// @Param request body reqdto.TokenRequest true "Session token"
// @Success 200 {string} string "OK"
// @Failure 400 {string} string "At least one timer could not be deleted"
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /timer [delete]
func (h *TimerHandler) DeleteAllTimers(c *gin.Context) {
	rc, ok := middleware.GetReservationContext(c)
	token, tokenOK := middleware.GetSessionToken(c)
	if !ok || !tokenOK {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingReservationContext, "Internal server error", nil)
		return
	}

	deleted, err := h.aggregator.DeleteAllTimers(c.Request.Context(), token, rc.ReservationID)
	if err != nil {
		httperr.AbortWithFailure(c, err)
		return
	}

	if !deleted {
		c.String(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}
	c.String(http.StatusOK, http.StatusText(http.StatusOK))
}
