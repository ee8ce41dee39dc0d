package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"timer-gateway/internal/handler/api"
	"timer-gateway/internal/handler/middleware"
	"timer-gateway/internal/pkg/config"
)

const bannerText = "This is not your tolppa"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, requestLogger *middleware.Logger, timerHandler *api.TimerHandler, reservationMiddleware *middleware.ReservationContextMiddleware) {
	setupMiddleware(engine, cfg, requestLogger)
	setupRoutes(engine, timerHandler, reservationMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, requestLogger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(requestLogger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, timerHandler *api.TimerHandler, reservationMiddleware *middleware.ReservationContextMiddleware) {
	engine.GET("/", banner)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireReservation := reservationMiddleware.RequireReservation()
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/timer", Handler: timerHandler.CreateTimer, Mw: []gin.HandlerFunc{requireReservation}},
		{Method: http.MethodPost, Path: "/details", Handler: timerHandler.GetDetails, Mw: []gin.HandlerFunc{requireReservation}},
		{Method: http.MethodDelete, Path: "/timer", Handler: timerHandler.DeleteAllTimers, Mw: []gin.HandlerFunc{requireReservation}},
	})
}

// @Summary Banner
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func banner(c *gin.Context) {
	c.String(http.StatusOK, bannerText)
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
