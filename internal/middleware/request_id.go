package middleware

import (
	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(common.ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
