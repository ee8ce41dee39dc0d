package components

import (
	"log/slog"
	"net/http"

	"timer-gateway/internal/infra/upstream"
	"timer-gateway/internal/pkg/config"
	"timer-gateway/internal/usecase"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		fx.Annotate(
			NewHTTPDoer,
			fx.As(new(upstream.HTTPDoer)),
		),
		NewUpstreamClient,
		func(c *upstream.Client) usecase.ReservationAPI { return c },
		func(c *upstream.Client) usecase.TimerAPI { return c },
	),
)

func NewHTTPDoer(cfg config.Config) *http.Client {
	return upstream.NewHTTPClient(cfg.Upstream)
}

func NewUpstreamClient(cfg config.Config, httpc upstream.HTTPDoer, logger *slog.Logger) *upstream.Client {
	return upstream.NewClient(cfg.Upstream, httpc, logger)
}
