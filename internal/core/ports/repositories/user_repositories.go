package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)


	// CountUsers counts accounts per role.
	CountUsers(ctx context.Context) (domain.UserCounts, error)

	// ListUserStats lists every account with its transaction summary, newest account first.
	ListUserStats(ctx context.Context) ([]domain.UserStats, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's profile fields (email, full name, password hash).
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateLastLogin stamps a successful login.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

// UserLifecycleManager defines operations for managing user lifecycle.
// Both operations never touch admin rows; a missing or admin target yields apperrors.ErrNotFound.
type UserLifecycleManager interface {
	// ToggleUserActive flips is_active and returns the updated user.
	ToggleUserActive(ctx context.Context, userID string) (*domain.User, error)

	// DeleteUser removes the account; its transactions cascade and its activity rows keep a null actor.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
