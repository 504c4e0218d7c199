package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func assertCORS(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", h.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", h.Get("Access-Control-Allow-Headers"))
}

func TestCORS(t *testing.T) {
	reached := false
	r := newTestEngine(CORS())
	r.Any("/recipes", func(c *gin.Context) {
		reached = true
		c.String(http.StatusTeapot, "handled")
	})

	t.Run("should answer preflight without reaching handler", func(t *testing.T) {
		reached = false
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/recipes", nil)
		req.Header.Set("Origin", "https://example.com")
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
		assert.False(t, reached)
		assertCORS(t, rr.Header())
	})

	t.Run("should add headers without an Origin header", func(t *testing.T) {
		reached = false
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/recipes", nil))

		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.True(t, reached)
		assertCORS(t, rr.Header())
	})
}
