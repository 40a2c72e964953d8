package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	FullName string `json:"fullName" validate:"omitempty,max=100"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest changes the caller's own account. Omitted fields are left untouched.
type UpdateProfileRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	FullName *string `json:"fullName" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

// GoogleExchangeRequest carries the authorization code returned by Google.
type GoogleExchangeRequest struct {
	Code string `json:"code" validate:"required"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

func ToAuthResponse(r *domain.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		User:      ToUserResponse(&r.User),
	}
}
