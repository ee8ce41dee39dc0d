package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportFallbackStatus is what the gateway answers when the upstream could not
// be reached at all.
const TransportFallbackStatus = http.StatusBadGateway

// RejectedError is a non-2xx answer from the upstream. Status and body are kept
// verbatim so they can be relayed to the caller.
type RejectedError struct {
	Method      string
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("upstream %s %s rejected with status %d", e.Method, e.URL, e.StatusCode)
}

// TransportError means no usable response came back: dial failure, timeout,
// cancellation or a truncated body.
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream %s %s: %v", e.Method, e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

func AsRejected(err error) (*RejectedError, bool) {
	var re *RejectedError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
