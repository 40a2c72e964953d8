package services

import (
	"context"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

// GoogleProfile exposes the verified Google profile to external tests.
type GoogleProfile = googleProfile

// StubGoogleProfile replaces the code exchange of a Google OAuth service.
func StubGoogleProfile(svc portssvc.GoogleOAuthSvcFacade, fn func(ctx context.Context, code string) (*GoogleProfile, error)) {
	svc.(*googleOAuthService).fetchProfile = fn
}
