package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// UserAdminSvc manages accounts on behalf of an admin.
type UserAdminSvc interface {
	ListUsers(ctx context.Context, caller domain.Caller) ([]domain.UserStats, error)
	GetUserDetail(ctx context.Context, caller domain.Caller, userID string) (*domain.UserDetail, error)
	ToggleUserStatus(ctx context.Context, caller domain.Caller, userID string) (*domain.User, error)
	DeleteUser(ctx context.Context, caller domain.Caller, userID string) error
}

// ActivityAdminSvc exposes the activity log to admins.
type ActivityAdminSvc interface {
	ListActivities(ctx context.Context, caller domain.Caller, params dto.ListActivitiesParams) ([]domain.ActivityRecord, error)
	ActivityStats(ctx context.Context, caller domain.Caller) ([]domain.ActivityStat, error)
	Dashboard(ctx context.Context, caller domain.Caller) (*domain.DashboardStats, error)
}

// AdminSvcFacade combines all admin service interfaces.
type AdminSvcFacade interface {
	UserAdminSvc
	ActivityAdminSvc
}
