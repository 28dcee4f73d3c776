package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line when a request arrives and one when it completes.
// Must be registered after RequestID so the ID is available.
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}

	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)
		path := c.Request.URL.Path

		logger.Printf("Incoming request: %s %s | RequestId: %s | RemoteIp: %s",
			c.Request.Method, path, requestID, c.ClientIP())

		c.Next()

		logger.Printf("Response: %s %s | Status: %d | Duration: %dms | RequestId: %s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start).Milliseconds(), requestID)
	}
}
