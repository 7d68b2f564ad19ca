package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ademsari/coursehub/internal/pkg/metrics"
)

// Metrics records a counter and a duration histogram per request,
// labelled by route template, method and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start).Seconds()

		metrics.RequestsTotal.WithLabelValues(path, c.Request.Method, status).Inc()
		metrics.RequestDuration.WithLabelValues(path, c.Request.Method, status).Observe(elapsed)
	}
}
