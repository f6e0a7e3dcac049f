package rmiddleware

import (
	"context"
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/pkg/responses"
	"github.com/gin-gonic/gin"
)

// RoleLookup resolves a user's current role.
type RoleLookup interface {
	RoleOf(ctx context.Context, id uint) (string, error)
}

const UserRoleKey = "user_role"

func RoleMiddleware(lookup RoleLookup, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := common.GetUserIDFromContext(c)
		if err != nil {
			responses.Unauthorized(c, "Unauthorized: "+err.Error())
			return
		}

		userRole, err := lookup.RoleOf(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, common.ErrUserNotFound) {
				responses.Forbidden(c, "User role not found")
				return
			}
			_ = c.Error(err)
			responses.InternalServerError(c, "Failed to get user role")
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(userRole, requiredRole) {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			responses.Forbidden(c, "")
			return
		}

		c.Set(UserRoleKey, userRole)
		c.Next()
	}
}

// VenueOwnerOrAdminMiddleware gates venue, field and schedule mutations.
func VenueOwnerOrAdminMiddleware(lookup RoleLookup) gin.HandlerFunc {
	return RoleMiddleware(lookup, "venue", "admin")
}
