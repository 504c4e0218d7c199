package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-chef/backend/internal/api"
	"github.com/pageza/pantry-chef/backend/internal/metrics"
	"github.com/pageza/pantry-chef/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(recipeHandler *api.RecipeHandler, logger *slog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
		middleware.CORS(),
	)

	router.GET("/health", api.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	recipeHandler.RegisterRoutes(router)

	return router
}
