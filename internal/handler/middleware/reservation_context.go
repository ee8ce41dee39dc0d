package middleware

import (
	"net/http"

	"timer-gateway/internal/domain/reservation"
	reqdto "timer-gateway/internal/handler/dto/request"
	"timer-gateway/internal/handler/httperr"
	"timer-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	ctxTokenKey              = "session_token"
	ctxReservationContextKey = "reservation_context"
)

// ReservationContextMiddleware resolves the caller's reservation from the token
// in the JSON body before any gateway route runs.
type ReservationContextMiddleware struct {
	resolver usecase.ContextResolver
}

func NewReservationContextMiddleware(resolver usecase.ContextResolver) *ReservationContextMiddleware {
	return &ReservationContextMiddleware{
		resolver: resolver,
	}
}

func (m *ReservationContextMiddleware) RequireReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		// body is cached so the route handler can bind it again
		var req reqdto.TokenRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Token required", nil)
			return
		}

		rc, err := m.resolver.Resolve(c.Request.Context(), req.Token)
		if err != nil {
			httperr.AbortWithFailure(c, err)
			return
		}

		c.Set(ctxTokenKey, req.Token)
		c.Set(ctxReservationContextKey, rc)
		c.Next()
	}
}

func GetSessionToken(c *gin.Context) (string, bool) {
	token, ok := c.Get(ctxTokenKey)
	if !ok {
		return "", false
	}
	s, ok := token.(string)
	return s, ok && s != ""
}

func GetReservationContext(c *gin.Context) (reservation.Context, bool) {
	v, ok := c.Get(ctxReservationContextKey)
	if !ok {
		return reservation.Context{}, false
	}
	rc, ok := v.(reservation.Context)
	return rc, ok
}
