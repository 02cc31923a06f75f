package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"famledger/internal/logger"
)

const requestIDKey = "requestID"

// RequestLogging returns a Gin middleware that tags each request with a
// unique ID and logs method, path, status, latency, and client IP. When the
// request is authenticated the owning user ID is logged too.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.New().String()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if uid, ok := c.Get("userID"); ok {
			fields = append(fields, "user_id", uid)
		}
		logger.Get().Infow("request", fields...)
	}
}
