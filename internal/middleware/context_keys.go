package middleware

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type of every value this package stores in a request context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	identityCtxKey = contextKey("identity")
)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// GetLoggerFromContext retrieves the request-scoped logger from the Gin context.
func GetLoggerFromContext(c *gin.Context) *slog.Logger {
	return GetLoggerFromCtx(c.Request.Context())
}

// GetIdentityFromContext retrieves the identity resolved by the auth middleware.
func GetIdentityFromContext(c *gin.Context) (*domain.Identity, bool) {
	id, ok := c.Request.Context().Value(identityCtxKey).(*domain.Identity)
	return id, ok && id != nil
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	id, ok := GetIdentityFromContext(c)
	if !ok {
		return "", false
	}
	return id.UserID, true
}

// CallerFromContext builds the explicit caller passed into every service call.
// An unauthenticated request yields an anonymous caller.
func CallerFromContext(c *gin.Context) domain.Caller {
	id, _ := GetIdentityFromContext(c)
	return domain.Caller{Identity: id, IPAddress: c.ClientIP()}
}
