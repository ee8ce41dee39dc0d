package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"timer-gateway/internal/pkg/config"
	"timer-gateway/internal/pkg/errs"
)

const acceptHeader = "application/json, text/plain, */*"

// HTTPDoer is the subset of *http.Client the client needs.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client issues authenticated calls to the reservation/timer service. The session
// token is forwarded verbatim as the Cookie header.
type Client struct {
	baseURL   string
	userAgent string
	httpc     HTTPDoer
	logger    *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, httpc HTTPDoer, logger *slog.Logger) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = config.DefaultUserAgent
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: ua,
		httpc:     httpc,
		logger:    logger,
	}
}

func NewHTTPClient(cfg config.UpstreamConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// Do performs one call and returns the raw 2xx body. Non-2xx answers come back as
// *RejectedError, calls without a response as *TransportError.
func (c *Client) Do(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "encode upstream request body")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Cause: err}
	}
	req.Header.Set("Cookie", token)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("upstream request", "method", method, "url", url)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("upstream unreachable", "method", method, "url", url, "error", err.Error())
		return nil, &TransportError{Method: method, URL: url, Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Cause: errs.Wrap(err, "read body")}
	}

	c.logger.Info("upstream response", "method", method, "url", url, "status", resp.StatusCode)

	if resp.StatusCode/100 != 2 {
		return nil, &RejectedError{
			Method:      method,
			URL:         url,
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        respBody,
		}
	}
	return respBody, nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	body, err := c.Do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	return decode(body, out, path)
}

func decode(body []byte, out any, path string) error {
	if err := json.Unmarshal(body, out); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s", path), errs.ErrUpstreamDecode)
	}
	return nil
}
