package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/pkg/token"
	"github.com/gin-gonic/gin"
)

// UserLookup reports whether a user account exists.
type UserLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// AuthMiddleware validates the bearer token and stores the acting user ID in the context.
func AuthMiddleware(jwtSecret string, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		exists, err := users.Exists(c.Request.Context(), claims.UserID)
		if err != nil || !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found or inactive"})
			return
		}

		c.Set(common.ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
