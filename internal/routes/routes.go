package routes

import (
	"net/http"

	"careerpilot_backend/internal/handlers"
	"careerpilot_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler group under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Token.RegisterRoutes(api)
		appHandlers.Payment.RegisterRoutes(api)
		appHandlers.Assessment.RegisterRoutes(api)
		appHandlers.Resume.RegisterRoutes(api)
		appHandlers.CoverLetter.RegisterRoutes(api)
		appHandlers.Insight.RegisterRoutes(api)
	}

	logger.Info("HTTP routes registered under /api/v1")
}
