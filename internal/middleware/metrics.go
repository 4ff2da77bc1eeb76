package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-academic-engine/internal/service"
)

// Metrics records request count and latency per method, route template and status.
// Requests are labelled with the gin route (for example /api/v1/classes/:classId/schedule)
// rather than the raw URL, and requests that match no route share the "unmatched" label.
// A nil service disables recording.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, status, duration)
	}
}
