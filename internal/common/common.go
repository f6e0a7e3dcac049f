package common

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextUserIDKey    = "auth_user_id" // Key to store the acting user ID in context
	ContextRequestIDKey = "request_id"
)

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userIDInterface, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		return 0, errors.New("user ID in context is not of type uint")
	}
	return userID, nil
}
