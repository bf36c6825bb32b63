package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/orderplacement/internal/core/logger"
)

// LogRequest attaches the request id to the request context, so every log
// line written while serving the request carries it, then logs the request.
// It must run after RequestID.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := logger.WithAttributes(c.Request.Context(), map[string]any{
			"request_id": GetRequestID(c),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		attrs := map[string]any{
			"http.method":        c.Request.Method,
			"http.path":          c.Request.URL.Path,
			"http.route":         c.FullPath(),
			"http.status_code":   status,
			"http.duration_ms":   time.Since(start).Milliseconds(),
			"http.client_ip":     c.ClientIP(),
			"http.request_size":  c.Request.ContentLength,
			"http.response_size": c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			attrs["http.errors"] = c.Errors.String()
		}

		level := logger.LogLevelInfo
		if status >= 500 {
			level = logger.LogLevelError
		} else if status >= 400 {
			level = logger.LogLevelWarn
		}

		logger.Log(ctx, logger.LogEntry{
			Level:      level,
			Message:    "HTTP Request",
			Attributes: attrs,
			Timestamp:  time.Now(),
		})
	}
}
