package http

import (
	"github.com/gin-gonic/gin"
	"github.com/labelforge/backend/config"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		labels := v1.Group("/labels")
		{
			labels.POST("/compute", handler.ComputeLabel)
			labels.POST("/freeze", handler.FreezeLabel)
			labels.GET("/:labelType/:refId/latest", handler.LatestLabel)
		}

		profiles := v1.Group("/profiles")
		{
			profiles.POST("/search", handler.SearchProfile)
		}
	}

	return router
}
