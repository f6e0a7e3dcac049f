package auth

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/pkg/responses"
	"github.com/DhavalSuthar-24/kickoff/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *Service
}

func NewAuthController(service *Service) *AuthController {
	return &AuthController{service: service}
}

// @Summary      Register a new user
// @Description  Create an athlete account with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "User registration details"
// @Success      201   {object} responses.SuccessResponse{data=user.User}
// @Failure      400   {object} responses.ErrorResponse "Validation error or weak password"
// @Failure      409   {object} responses.ErrorResponse "Email already registered"
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	u, err := ac.service.Register(c.Request.Context(), req)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User registered successfully", u)
}

// @Summary      Log in
// @Description  Exchange email and password for a bearer access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Credentials"
// @Success      200   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse
// @Failure      401   {object} responses.ErrorResponse "Invalid email or password"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	resp, err := ac.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			responses.Unauthorized(c, err.Error())
			return
		}
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Login successful", resp)
}
