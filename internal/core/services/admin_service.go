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
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
)

const (
	userDetailActivityLimit = 20
	dashboardRecentLimit    = 10
	// DefaultActivityLimit applies when an activity listing asks for no limit.
	DefaultActivityLimit = 100
)

type adminService struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
	activityRepo portsrepo.ActivityRepositoryFacade
}

// NewAdminService creates the admin account and activity service.
func NewAdminService(userRepo portsrepo.UserRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, activityRepo portsrepo.ActivityRepositoryFacade) portssvc.AdminSvcFacade {
	return &adminService{
		BaseService:  BaseService{ActivityLog: activityRepo},
		userRepo:     userRepo,
		txnRepo:      txnRepo,
		activityRepo: activityRepo,
	}
}

var _ portssvc.AdminSvcFacade = (*adminService)(nil)

func (s *adminService) requireAdmin(ctx context.Context, caller domain.Caller, action policy.Action) error {
	return s.Authorize(ctx, caller, action, policy.Evaluate(caller.Identity, action, policy.Resource{}))
}

func (s *adminService) ListUsers(ctx context.Context, caller domain.Caller) ([]domain.UserStats, error) {
	if err := s.requireAdmin(ctx, caller, policy.ActionListUsers); err != nil {
		return nil, err
	}
	stats, err := s.userRepo.ListUserStats(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return stats, nil
}

func (s *adminService) findUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		s.LogError(ctx, err, "Failed to load user", slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *adminService) GetUserDetail(ctx context.Context, caller domain.Caller, userID string) (*domain.UserDetail, error) {
	if err := s.requireAdmin(ctx, caller, policy.ActionReadUser); err != nil {
		return nil, err
	}
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	txns, _, err := s.txnRepo.ListTransactions(ctx, domain.TransactionFilter{OwnerID: &user.UserID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list user transactions", slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to list user transactions: %w", err)
	}
	activities, err := s.activityRepo.ListActivities(ctx, domain.ActivityFilter{UserID: &user.UserID, Limit: userDetailActivityLimit})
	if err != nil {
		s.LogError(ctx, err, "Failed to list user activities", slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to list user activities: %w", err)
	}

	return &domain.UserDetail{
		User:         *user,
		Transactions: txns,
		Summary:      accounting.Summarize(txns),
		Categories:   accounting.SummarizeByCategory(txns),
		Activities:   activities,
	}, nil
}

// loadMutableAccount authenticates the caller, loads the target and applies the account rules.
func (s *adminService) loadMutableAccount(ctx context.Context, caller domain.Caller, action policy.Action, userID string) (*domain.User, error) {
	if err := s.Authorize(ctx, caller, action, policy.Authenticate(caller.Identity)); err != nil {
		return nil, err
	}
	target, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, caller, action, policy.Evaluate(caller.Identity, action, policy.Account(target))); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *adminService) ToggleUserStatus(ctx context.Context, caller domain.Caller, userID string) (*domain.User, error) {
	if _, err := s.loadMutableAccount(ctx, caller, policy.ActionToggleUser, userID); err != nil {
		return nil, err
	}
	updated, err := s.userRepo.ToggleUserActive(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		s.LogError(ctx, err, "Failed to toggle user status", slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to toggle user status: %w", err)
	}

	state := "deactivated"
	if updated.IsActive {
		state = "activated"
	}
	s.RecordActivity(ctx, caller.UserID(), caller.IPAddress, domain.ActionToggleUserStatus,
		fmt.Sprintf("User %s %s", updated.Username, state))
	return updated, nil
}

func (s *adminService) DeleteUser(ctx context.Context, caller domain.Caller, userID string) error {
	target, err := s.loadMutableAccount(ctx, caller, policy.ActionDeleteUser, userID)
	if err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("user not found")
		}
		s.LogError(ctx, err, "Failed to delete user", slog.String("target_user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.RecordActivity(ctx, caller.UserID(), caller.IPAddress, domain.ActionDeleteUser, "Deleted user: "+target.Username)
	return nil
}

// toActivityFilter converts query parameters into an activity filter.
func toActivityFilter(params dto.ListActivitiesParams) (domain.ActivityFilter, error) {
	if err := validateRequest(params); err != nil {
		return domain.ActivityFilter{}, err
	}
	f := domain.ActivityFilter{Limit: params.Limit}
	if f.Limit == 0 {
		f.Limit = DefaultActivityLimit
	}
	if params.UserID != "" {
		id := params.UserID
		f.UserID = &id
	}
	if a := strings.ToUpper(strings.TrimSpace(params.Action)); a != "" {
		action := domain.ActivityAction(a)
		f.Action = &action
	}
	if params.StartDate != "" {
		d, _ := time.Parse(domain.DateLayout, params.StartDate)
		f.DateFrom = &d
	}
	if params.EndDate != "" {
		d, _ := time.Parse(domain.DateLayout, params.EndDate)
		f.DateTo = &d
	}
	return f, nil
}

func (s *adminService) ListActivities(ctx context.Context, caller domain.Caller, params dto.ListActivitiesParams) ([]domain.ActivityRecord, error) {
	if err := s.requireAdmin(ctx, caller, policy.ActionListActivities); err != nil {
		return nil, err
	}
	filter, err := toActivityFilter(params)
	if err != nil {
		return nil, err
	}
	records, err := s.activityRepo.ListActivities(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activities")
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return records, nil
}

func (s *adminService) ActivityStats(ctx context.Context, caller domain.Caller) ([]domain.ActivityStat, error) {
	if err := s.requireAdmin(ctx, caller, policy.ActionListActivities); err != nil {
		return nil, err
	}
	stats, err := s.activityRepo.ActivityStatsByAction(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute activity stats")
		return nil, fmt.Errorf("failed to compute activity stats: %w", err)
	}
	return stats, nil
}

func (s *adminService) Dashboard(ctx context.Context, caller domain.Caller) (*domain.DashboardStats, error) {
	if err := s.requireAdmin(ctx, caller, policy.ActionReadDashboard); err != nil {
		return nil, err
	}

	counts, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count users")
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	global, err := s.txnRepo.GlobalSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute global summary")
		return nil, fmt.Errorf("failed to compute global summary: %w", err)
	}
	today, err := s.activityRepo.CountActivitiesToday(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count today's activities")
		return nil, fmt.Errorf("failed to count activities: %w", err)
	}
	recent, err := s.activityRepo.ListRecentActivities(ctx, dashboardRecentLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent activities")
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}
	stats, err := s.userRepo.ListUserStats(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list user stats")
		return nil, fmt.Errorf("failed to list user stats: %w", err)
	}

	return &domain.DashboardStats{
		Users:            counts,
		Transactions:     global,
		TodayActivities:  today,
		RecentActivities: recent,
		UserStats:        stats,
	}, nil
}
