package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/infra/metrics"
)

// MetricsMiddleware counts every request by method, route template, and
// status. The route template (not the raw path) keeps cardinality bounded.
func MetricsMiddleware(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		reg.HTTPRequests.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
