package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wardrobe-catalog/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses an incoming X-Request-ID or generates one, echoes it back
// and stores it on the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
