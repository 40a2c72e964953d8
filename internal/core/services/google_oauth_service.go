package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/policy"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const maxUsernameLength = 50

// googleProfile is the verified subset of Google ID token claims we rely on.
type googleProfile struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}

// googleOAuthService signs users in with Google and hands the account over to the auth service.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	auth         *authService
	// fetchProfile exchanges an authorization code for a verified profile.
	fetchProfile func(ctx context.Context, code string) (*googleProfile, error)
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, auth *authService) portssvc.GoogleOAuthSvcFacade {
	s := &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		auth: auth,
	}
	s.fetchProfile = s.exchangeAndValidate
	return s
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.RandomHex(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
func (s *googleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleOAuthService) exchangeAndValidate(ctx context.Context, code string) (*googleProfile, error) {
	if !s.cfg.GoogleOAuthEnabled() {
		return nil, apperrors.NewAppError(http.StatusServiceUnavailable, "google sign-in is not configured", nil)
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			return nil, apperrors.NewBadRequestError("invalid or expired authorization code")
		}
		return nil, apperrors.NewGatewayTimeoutError("failed to communicate with Google")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperrors.NewInternalServerError("id token missing from Google response")
	}
	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "invalid Google ID token", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	return &googleProfile{Subject: payload.Subject, Email: email, Name: name, EmailVerified: verified}, nil
}

// SignInWithCode finds the account by verified email, creating it on first use, and signs it in.
func (s *googleOAuthService) SignInWithCode(ctx context.Context, caller domain.Caller, code string) (*domain.AuthResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, apperrors.NewValidationError("code", "code is required")
	}
	profile, err := s.fetchProfile(ctx, code)
	if err != nil {
		s.auth.LogWarn(ctx, "Google code exchange failed", slog.String("error", err.Error()))
		return nil, err
	}
	if profile.Email == "" || profile.Subject == "" {
		return nil, apperrors.NewUnauthorizedError("Google account has no usable email")
	}
	if !profile.EmailVerified {
		return nil, apperrors.NewUnauthorizedError("Google email address is not verified")
	}
	email := strings.ToLower(profile.Email)

	user, err := s.auth.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrNotFound):
		user, err = s.createGoogleUser(ctx, caller, email, profile.Name)
		if err != nil {
			return nil, err
		}
	default:
		s.auth.LogError(ctx, err, "Failed to look up Google user")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.auth.Authorize(ctx, caller, policy.ActionLogin, policy.Evaluate(nil, policy.ActionLogin, policy.Account(user))); err != nil {
		return nil, err
	}
	return s.auth.completeSignIn(ctx, caller, user, "User logged in with Google")
}

// createGoogleUser registers an account for a first-time Google user. The random password
// is never disclosed, so the account can only sign in through Google until a password is set.
func (s *googleOAuthService) createGoogleUser(ctx context.Context, caller domain.Caller, email, name string) (*domain.User, error) {
	username, err := s.availableUsername(ctx, email)
	if err != nil {
		return nil, err
	}
	password, err := utils.RandomHex(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		name = username
	}
	user, err := s.auth.createUser(ctx, username, email, password, name, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	s.auth.RecordActivity(ctx, user.UserID, caller.IPAddress, domain.ActionRegister, "User registered with Google: "+user.Username)
	return user, nil
}

// availableUsername derives a username from the email local part, suffixing it until unused.
func (s *googleOAuthService) availableUsername(ctx context.Context, email string) (string, error) {
	base := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		base = email[:at]
	}
	if len(base) > maxUsernameLength-9 {
		base = base[:maxUsernameLength-9]
	}
	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		_, err := s.auth.userRepo.FindUserByUsername(ctx, candidate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check username availability: %w", err)
		}
		suffix, err := utils.RandomHex(4)
		if err != nil {
			return "", err
		}
		candidate = base + "_" + strings.ToLower(suffix)
	}
	return "", apperrors.NewConflictError("could not allocate a username")
}
