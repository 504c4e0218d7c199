package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-chef/backend/internal/metrics"
	"github.com/pageza/pantry-chef/backend/internal/types"
)

// ErrorHandler recovers from panics and returns a JSON error response
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				metrics.PanicRecoveries.Inc()
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					"error", fmt.Sprintf("%v", err),
					"request_id", c.GetString(RequestIDKey),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
				SetCORSHeaders(c.Writer.Header())
				c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
					Error:   "Internal Server Error",
					Message: "An unexpected error occurred",
				})
			}
		}()

		c.Next()
	}
}
