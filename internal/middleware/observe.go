package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/pkg/metrics"
)

// Observe records request metrics and writes one access-log line per request.
func Observe(log *zap.Logger, col *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		col.InFlightGauge.Inc()

		c.Next()

		col.InFlightGauge.Dec()

		elapsed := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		col.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		col.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(elapsed.Seconds())

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", elapsed),
			zap.String("request_id", GetRequestID(c)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
