package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"remixjokes/src/infra/metrics"
)

// Metrics observes request latency by method, route pattern and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.RequestDuration.
			WithLabelValues(c.Request.Method, routeOf(c), strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
