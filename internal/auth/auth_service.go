package auth

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"github.com/DhavalSuthar-24/kickoff/pkg/token"
	"github.com/DhavalSuthar-24/kickoff/pkg/utils"
	"go.uber.org/zap"
)

var ErrWeakPassword = common.NewAppError(common.KindValidation, "weak_password",
	"password must be at least 8 characters and contain an uppercase letter and a digit")

// TokenSettings configures issued access tokens.
type TokenSettings struct {
	Secret        string
	ExpiryMinutes int
}

// Service registers users and issues access tokens.
type Service struct {
	users    user.UserRepository
	settings TokenSettings
	logger   *zap.Logger
}

func NewService(users user.UserRepository, settings TokenSettings, logger *zap.Logger) *Service {
	return &Service{users: users, settings: settings, logger: logger}
}

// Register creates an athlete account.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*user.User, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		Email:    req.Email,
		PassHash: hash,
		Role:     user.RoleAthlete,
		FullName: req.FullName,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.Uint("user_id", u.ID))
	return u, nil
}

// Login verifies credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(u.PassHash, req.Password) {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, err := token.GenerateJWT(u.ID, string(u.Role), s.settings.Secret, s.settings.ExpiryMinutes)
	if err != nil {
		return nil, fmt.Errorf("access token generation failed: %w", err)
	}
	return &AuthResponse{AccessToken: accessToken, TokenType: "bearer", User: u}, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
