package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
)

type RateLimitResult struct {
	Allowed bool
	// RetryAfter is how long until the window resets, set when not allowed.
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (RateLimitResult, error)
}

// RateLimit allows limit requests per client and route within window. When
// the limiter itself fails the request is let through.
func RateLimit(limiter RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s:%s", c.Request.Method, c.FullPath(), c.ClientIP())

		result, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.Error(c.Request.Context(), "rate limiter unavailable", err, map[string]any{
				"key": key,
			})
			c.Next()
			return
		}
		if !result.Allowed {
			logger.Warn(c.Request.Context(), "rate limit exceeded", map[string]any{
				"key":   key,
				"limit": limit,
			})
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(result.RetryAfter, window)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
				"code":  "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}

// retryAfterSeconds rounds up to whole seconds, falling back to the full
// window when the limiter gave no hint.
func retryAfterSeconds(retryAfter, window time.Duration) int {
	if retryAfter <= 0 {
		retryAfter = window
	}
	return max(1, int(math.Ceil(retryAfter.Seconds())))
}
