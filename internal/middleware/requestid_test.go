package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	var seen string
	r := newTestEngine(RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(RequestIDKey)
		c.Status(http.StatusOK)
	})

	t.Run("should keep a valid incoming id", func(t *testing.T) {
		id := uuid.New().String()
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, id)
		r.ServeHTTP(rr, req)

		assert.Equal(t, id, seen)
		assert.Equal(t, id, rr.Header().Get(RequestIDHeader))
	})

	t.Run("should replace an invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		r.ServeHTTP(rr, req)

		_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", seen)
	})
}
