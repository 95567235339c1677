package ratelimit

import (
	"fmt"
	"net/http"
	"strings"

	"keepsake/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-IP request limits.
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			// A broken limiter must not take the API down with it.
			c.Next()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(path string) RateLimitType {
	if strings.Contains(path, "/orders") {
		return RateLimitTypeOrder
	}
	return RateLimitTypeDefault
}
