package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/suPer8Hu/rag-mentor/internal/common"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID tags every request with a ULID (or propagates the caller's id).
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			if v, err := common.NewULID(); err == nil {
				id = v
			}
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
