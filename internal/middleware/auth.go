package middleware

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token into an identity and rejects the request without one.
// It only establishes who the caller is; whether the caller may act is decided by the services.
func AuthMiddleware(verifier portssvc.IdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortWithError(c, apperrors.NewDenyError(apperrors.ReasonUnauthenticated))
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			abortWithError(c, apperrors.ErrTokenInvalid)
			return
		}

		identity, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			abortWithError(c, err)
			return
		}

		enrichedLogger := logger.With(
			slog.String("user_id", identity.UserID),
			slog.String("role", string(identity.Role)),
		)
		ctx := context.WithValue(c.Request.Context(), identityCtxKey, identity)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	status, code, msg := apperrors.ToHTTP(err)
	c.AbortWithStatusJSON(status, dto.Fail(code, msg))
}
