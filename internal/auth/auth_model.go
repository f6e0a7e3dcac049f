package auth

import "github.com/DhavalSuthar-24/kickoff/internal/user"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255" example:"ana@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"Password123"`
	FullName string `json:"full_name" binding:"omitempty,max=255" example:"Ana Diaz"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"Password123"`
}

type AuthResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        *user.User `json:"user"`
}
