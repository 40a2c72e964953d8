package services

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// IdentityVerifier resolves a bearer credential into the current identity of its account.
// Failures wrap apperrors.ErrTokenExpired, ErrTokenInvalid or ErrTokenUnknown.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.Identity, error)
}

// TokenSvcFacade issues access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// AuthSvcFacade covers registration, sign-in and the caller's own account.
type AuthSvcFacade interface {
	IdentityVerifier

	Register(ctx context.Context, caller domain.Caller, req dto.RegisterRequest) (*domain.AuthResult, error)
	Login(ctx context.Context, caller domain.Caller, req dto.LoginRequest) (*domain.AuthResult, error)
	Logout(ctx context.Context, caller domain.Caller) error
	Profile(ctx context.Context, caller domain.Caller) (*domain.User, error)
	UpdateProfile(ctx context.Context, caller domain.Caller, req dto.UpdateProfileRequest) (*domain.User, error)

	// EnsureAdmin creates the bootstrap admin account when no account with that username exists.
	EnsureAdmin(ctx context.Context, username, email, password string) error
}

// GoogleOAuthSvcFacade signs in with a Google authorization code.
type GoogleOAuthSvcFacade interface {
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// SignInWithCode exchanges the code, validates the ID token and signs in the matching account,
	// creating it on first use.
	SignInWithCode(ctx context.Context, caller domain.Caller, code string) (*domain.AuthResult, error)
}
