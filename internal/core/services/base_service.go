package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/policy"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ActivityLog portsrepo.ActivityWriter
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize turns a policy decision into an error, logging denials.
func (s *BaseService) Authorize(ctx context.Context, caller domain.Caller, action policy.Action, d policy.Decision) error {
	if d.Allowed {
		return nil
	}
	s.LogInfo(ctx, "Access denied",
		slog.String("action", string(action)),
		slog.String("reason", string(d.Reason)),
		slog.String("caller_id", caller.UserID()),
	)
	return d.Err()
}

// RecordActivity appends one audit record for a completed mutation.
// A failed append is logged and swallowed: the mutation it describes has already happened.
func (s *BaseService) RecordActivity(ctx context.Context, actorID, ip string, action domain.ActivityAction, description string) {
	if s.ActivityLog == nil {
		return
	}
	record := domain.ActivityRecord{
		ActivityID:  uuid.NewString(),
		UserID:      &actorID,
		Action:      action,
		Description: description,
		IPAddress:   ip,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.ActivityLog.AppendActivity(ctx, record); err != nil {
		s.LogWarn(ctx, "Failed to record activity",
			slog.String("action", string(action)),
			slog.String("user_id", actorID),
			slog.String("error", err.Error()),
		)
	}
}
