package user

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/pkg/responses"
	"github.com/DhavalSuthar-24/kickoff/pkg/validator"
	"github.com/gin-gonic/gin"
)

// UserController handles profile requests
type UserController struct {
	repo UserRepository
}

// NewUserController creates a new user controller
func NewUserController(repo UserRepository) *UserController {
	return &UserController{repo: repo}
}

// GetMe godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=User}
// @Failure 401 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/me [get]
// @Security Bearer
func (uc *UserController) GetMe(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	u, err := uc.repo.GetByID(c.Request.Context(), userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved", u)
}

// UpdateMe godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param profile body UpdateProfileInput true "Profile fields"
// @Success 200 {object} responses.SuccessResponse{data=User}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /users/me [put]
// @Security Bearer
func (uc *UserController) UpdateMe(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	u, err := uc.repo.UpdateProfile(c.Request.Context(), userID, input)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile updated", u)
}

// GetUser godoc
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=PublicProfile}
// @Failure 404 {object} responses.ErrorResponse
// @Router /users/{id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "invalid user ID")
		return
	}

	u, err := uc.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved", u.Public())
}
