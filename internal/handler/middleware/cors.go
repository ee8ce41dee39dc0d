package middleware

import (
	"log/slog"

	"timer-gateway/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware reflects any origin when no allow-list is configured, so
// credentialed browser calls work from wherever the app is served.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(cfg.AllowOrigins) == 0 {
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "reflect_origin", len(cfg.AllowOrigins) == 0)
	return cors.New(corsCfg)
}
