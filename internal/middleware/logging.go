package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/eventi-api/internal/logger"
)

// RequestLogger returns a middleware function that logs request details
func RequestLogger() gin.HandlerFunc {
	log := logger.HTTP()

	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		status := c.Writer.Status()

		logFn := log.Info
		if status >= 400 {
			logFn = log.Error
		} else if status >= 300 {
			logFn = log.Warn
		}

		logFn("Request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
			"remote_addr", c.ClientIP(),
		)
	}
}
