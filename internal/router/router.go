package router

import (
	"github.com/gin-gonic/gin"

	"balju/internal/config"
	"balju/internal/handler"
	"balju/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	orderH *handler.OrderHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	orders := v1.Group("/orders")
	orders.POST("/extract", orderH.Extract)
	orders.POST("/extract-sheet", orderH.ExtractSheet)
	orders.POST("/export", orderH.Export)

	return r
}
