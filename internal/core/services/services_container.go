package services

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	tokens := NewTokenService(cfg)
	container.Auth = NewAuthService(repos.UserRepo, repos.ActivityRepo, tokens)

	// Google sign-in reuses the auth service's account creation and sign-in steps.
	container.GoogleOAuth = NewGoogleOAuthService(cfg, container.Auth.(*authService))

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.ActivityRepo)
	container.Admin = NewAdminService(repos.UserRepo, repos.TransactionRepo, repos.ActivityRepo)

	return container
}
