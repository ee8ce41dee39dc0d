package httperr

import (
	"net/http"

	"timer-gateway/internal/infra/upstream"
	"timer-gateway/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithFailure answers with whatever err maps to. Upstream rejections are
// relayed with their own status, content type and body.
func AbortWithFailure(c *gin.Context, err error) {
	if rejected, ok := upstream.AsRejected(err); ok {
		_ = c.Error(gin.Error{Err: err, Type: gin.ErrorTypePrivate})
		contentType := rejected.ContentType
		if contentType == "" {
			contentType = "text/plain; charset=utf-8"
		}
		c.Data(rejected.StatusCode, contentType, rejected.Body)
		c.Abort()
		return
	}

	switch {
	case upstream.IsTransport(err), errs.Is(err, errs.ErrUpstreamDecode):
		AbortWithError(c, upstream.TransportFallbackStatus, err, "Upstream unavailable", nil)
	case errs.Is(err, errs.ErrMissingCredential):
		AbortWithError(c, http.StatusBadRequest, err, "Token required", nil)
	case errs.Is(err, errs.ErrNoActiveReservation):
		AbortWithError(c, http.StatusNotFound, err, "No active reservation", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
