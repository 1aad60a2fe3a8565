package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wellness-assistant/pkg/log"
)

const maxRequestIDLen = 128

// RequestID reuses the caller's X-Request-ID or generates one, stores it on the
// request context for the logger and echoes it back.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
