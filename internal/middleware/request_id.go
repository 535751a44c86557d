package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextRequestID = "request_id"

// RequestID tags every request with a uuid, honoring an X-Request-ID header
// when the caller already set one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(contextRequestID)
}
