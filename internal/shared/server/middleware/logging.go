package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-scanner/internal/shared/telemetry"
)

// FileNameKey is set by handlers that receive an upload.
const FileNameKey = "fileName"

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if name := c.GetString(FileNameKey); name != "" {
			fields["filename"] = name
		}
		telemetry.Info("request.complete", fields)
	}
}
