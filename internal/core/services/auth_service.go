package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/policy"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/google/uuid"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   *tokenService
}

// NewAuthService creates the credential and identity service.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, activityRepo portsrepo.ActivityWriter, tokens *tokenService) portssvc.AuthSvcFacade {
	return &authService{
		BaseService: BaseService{ActivityLog: activityRepo},
		userRepo:    userRepo,
		tokens:      tokens,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Register(ctx context.Context, caller domain.Caller, req dto.RegisterRequest) (*domain.AuthResult, error) {
	if err := s.Authorize(ctx, caller, policy.ActionRegister, policy.Evaluate(caller.Identity, policy.ActionRegister, policy.Resource{})); err != nil {
		return nil, err
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if err := s.ensureUnused(ctx, "username", req.Username, s.userRepo.FindUserByUsername); err != nil {
		return nil, err
	}
	if err := s.ensureUnused(ctx, "email", req.Email, s.userRepo.FindUserByEmail); err != nil {
		return nil, err
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		fullName = req.Username
	}
	user, err := s.createUser(ctx, req.Username, req.Email, req.Password, fullName, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	s.RecordActivity(ctx, user.UserID, caller.IPAddress, domain.ActionRegister, "User registered: "+user.Username)
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))

	return s.issue(ctx, user)
}

// ensureUnused fails with a conflict when find locates an account.
func (s *authService) ensureUnused(ctx context.Context, field, value string, find func(context.Context, string) (*domain.User, error)) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return apperrors.NewConflictError(field + " already registered")
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to check "+field+" availability")
		return fmt.Errorf("failed to check %s availability: %w", field, err)
	}
}

func (s *authService) createUser(ctx context.Context, username, email, password, fullName string, role domain.Role) (*domain.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("username or email already registered")
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *authService) issue(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(ctx, user)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, err
	}
	return &domain.AuthResult{User: *user, Token: token, ExpiresAt: expiresAt}, nil
}

// Login verifies credentials. A failed attempt writes no activity and leaves last_login untouched.
func (s *authService) Login(ctx context.Context, caller domain.Caller, req dto.LoginRequest) (*domain.AuthResult, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// The disabled-account answer is given before the password is checked.
	if err := s.Authorize(ctx, caller, policy.ActionLogin, policy.Evaluate(nil, policy.ActionLogin, policy.Account(user))); err != nil {
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login failed: wrong password", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.completeSignIn(ctx, caller, user, "User logged in")
}

// completeSignIn stamps last_login, records LOGIN and issues a token.
func (s *authService) completeSignIn(ctx context.Context, caller domain.Caller, user *domain.User, description string) (*domain.AuthResult, error) {
	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to update last login", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}
	user.LastLogin = &now

	s.RecordActivity(ctx, user.UserID, caller.IPAddress, domain.ActionLogin, description)
	return s.issue(ctx, user)
}

func (s *authService) Logout(ctx context.Context, caller domain.Caller) error {
	if err := s.Authorize(ctx, caller, policy.ActionLogout, policy.Evaluate(caller.Identity, policy.ActionLogout, policy.Resource{})); err != nil {
		return err
	}
	s.RecordActivity(ctx, caller.UserID(), caller.IPAddress, domain.ActionLogout, "User logged out")
	return nil
}

func (s *authService) Profile(ctx context.Context, caller domain.Caller) (*domain.User, error) {
	if err := s.Authorize(ctx, caller, policy.ActionReadProfile, policy.Evaluate(caller.Identity, policy.ActionReadProfile, policy.Resource{})); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, caller.UserID())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, caller domain.Caller, req dto.UpdateProfileRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, caller, policy.ActionUpdateProfile, policy.Evaluate(caller.Identity, policy.ActionUpdateProfile, policy.Resource{})); err != nil {
		return nil, err
	}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		req.Email = &email
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.Profile(ctx, caller)
	if err != nil {
		return nil, err
	}

	var changed []string
	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.FindUserByEmail(ctx, *req.Email)
		if err == nil && existing.UserID != user.UserID {
			return nil, apperrors.NewConflictError("email already registered")
		}
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email availability: %w", err)
		}
		user.Email = *req.Email
		changed = append(changed, "email")
	}
	if req.FullName != nil && strings.TrimSpace(*req.FullName) != user.FullName {
		user.FullName = strings.TrimSpace(*req.FullName)
		changed = append(changed, "fullName")
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		changed = append(changed, "password")
	}
	if len(changed) == 0 {
		return user, nil
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("email already registered")
		}
		s.LogError(ctx, err, "Failed to update profile", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.RecordActivity(ctx, user.UserID, caller.IPAddress, domain.ActionUpdateProfile, "Profile updated: "+strings.Join(changed, ", "))
	return user, nil
}

// VerifyToken resolves a bearer token into the account's current identity,
// so a role change or deactivation takes effect without waiting for expiry.
func (s *authService) VerifyToken(ctx context.Context, token string) (*domain.Identity, error) {
	userID, err := s.tokens.parseAccessToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrTokenUnknown
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}
	return user.Identity(), nil
}

func (s *authService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}
	user, err := s.createUser(ctx, username, strings.ToLower(email), password, "Administrator", domain.RoleAdmin)
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Bootstrap admin created", slog.String("user_id", user.UserID))
	return nil
}
