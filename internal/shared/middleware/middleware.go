package middleware

import (
	"time"

	"keepsake/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request through the structured logger.
func RequestLogger() gin.HandlerFunc {
	return RequestLoggerWith(logger.GetDefault())
}

// RequestLoggerWith logs requests through the provided logger.
func RequestLoggerWith(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.LogHTTPRequest(c, time.Since(start))
	}
}

// SessionKey copies the sessionKey query parameter into the request context
// so downstream handlers and logs can pick it up without re-parsing.
func SessionKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.Query("sessionKey"); key != "" {
			c.Set("session_key", key)
		}
		c.Next()
	}
}

// CORS middleware
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
