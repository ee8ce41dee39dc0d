package components

import (
	"timer-gateway/internal/handler"
	"timer-gateway/internal/handler/api"
	"timer-gateway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTimerHandler,
		middleware.NewReservationContextMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
