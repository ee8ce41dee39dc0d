package bootstrap

import (
	"timer-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.UpstreamModule,
	components.CacheModule,
	components.UseCaseModule,
	components.HandlerModule,
)
