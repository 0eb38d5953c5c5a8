package middleware

import (
	"time"

	"immo-media/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs one line when it completes.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			log.Error("[HTTP] %s %s %d %s request_id=%s ip=%s errors=%s",
				c.Request.Method, c.Request.URL.Path, status, latency, requestID, c.ClientIP(), c.Errors.String())
		case status >= 400:
			log.Warn("[HTTP] %s %s %d %s request_id=%s ip=%s",
				c.Request.Method, c.Request.URL.Path, status, latency, requestID, c.ClientIP())
		default:
			log.Info("[HTTP] %s %s %d %s request_id=%s",
				c.Request.Method, c.Request.URL.Path, status, latency, requestID)
		}
	}
}
