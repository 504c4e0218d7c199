package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSHeaders are attached to every response, success or error
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

// SetCORSHeaders writes the permissive CORS headers onto h
func SetCORSHeaders(h http.Header) {
	for k, v := range CORSHeaders {
		h.Set(k, v)
	}
}

// CORS middleware to handle cross-origin requests
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		SetCORSHeaders(c.Writer.Header())

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.Header("Content-Type", "application/json")
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
