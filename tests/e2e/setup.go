//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"timer-gateway/cmd/bootstrap"
	"timer-gateway/cmd/bootstrap/components"
	"timer-gateway/internal/pkg/config"
	"timer-gateway/tests/common/upstreamtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const SessionToken = "SESSION=e2e-session"

// ------------------------------------------------------------
// Per-suite environment: fake upstream, in-process Redis, full fx graph
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, reservations ...*upstreamtest.Reservation) (*gin.Engine, *upstreamtest.Server, *miniredis.Miniredis, config.Config) {
	gin.SetMode(gin.TestMode)

	upstream := upstreamtest.NewServer(t, SessionToken, reservations...)
	redis := miniredis.RunT(t)

	cfg := createTestConfig(upstream.URL, redis.Addr())
	router, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, upstream, redis, cfg
}

func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.UpstreamModule,
		components.CacheModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, app
}

func createTestConfig(upstreamURL, redisAddr string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Upstream.BaseURL = upstreamURL
	testConfig.Cache.RedisAddr = redisAddr
	return testConfig
}

// ------------------------------------------------------------
// Shared e2e suite setup
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	Upstream *upstreamtest.Server
	Redis    *miniredis.Miniredis
	Config   config.Config
}

// SetupEnvironment is called from SetupTest so every test starts with fresh upstream state.
func (s *SharedSuite) SetupEnvironment(reservations ...*upstreamtest.Reservation) {
	s.Router, s.Upstream, s.Redis, s.Config = setupE2EEnvironment(s.T(), reservations...)
	require.NotNil(s.T(), s.Upstream, "upstream setup failed")
}
