package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func userOrNil(v any) *domain.User {
	if v == nil {
		return nil
	}
	return v.(*domain.User)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (domain.UserCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UserCounts), args.Error(1)
}

func (m *MockUserRepository) ListUserStats(ctx context.Context) ([]domain.UserStats, error) {
	args := m.Called(ctx)
	var stats []domain.UserStats
	if args.Get(0) != nil {
		stats = args.Get(0).([]domain.UserStats)
	}
	return stats, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func (m *MockUserRepository) ToggleUserActive(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return m.Called(ctx, transactionID).Error(0)
}

func (m *MockTransactionRepository) SummaryByUser(ctx context.Context, userID string) (domain.Summary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Summary), args.Error(1)
}

func (m *MockTransactionRepository) GlobalSummary(ctx context.Context) (domain.GlobalSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.GlobalSummary), args.Error(1)
}

func (m *MockTransactionRepository) CategorySummaryByUser(ctx context.Context, userID string) ([]domain.CategorySummary, error) {
	args := m.Called(ctx, userID)
	var out []domain.CategorySummary
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.CategorySummary)
	}
	return out, args.Error(1)
}

func (m *MockTransactionRepository) DailySummary(ctx context.Context, days int) ([]domain.DailySummary, error) {
	args := m.Called(ctx, days)
	var out []domain.DailySummary
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.DailySummary)
	}
	return out, args.Error(1)
}

// --- Mock ActivityRepository ---
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) AppendActivity(ctx context.Context, record domain.ActivityRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockActivityRepository) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityRecord, error) {
	args := m.Called(ctx, filter)
	var out []domain.ActivityRecord
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.ActivityRecord)
	}
	return out, args.Error(1)
}

func (m *MockActivityRepository) ListRecentActivities(ctx context.Context, n int) ([]domain.ActivityRecord, error) {
	args := m.Called(ctx, n)
	var out []domain.ActivityRecord
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.ActivityRecord)
	}
	return out, args.Error(1)
}

func (m *MockActivityRepository) CountActivitiesToday(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) ActivityStatsByAction(ctx context.Context) ([]domain.ActivityStat, error) {
	args := m.Called(ctx)
	var out []domain.ActivityStat
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.ActivityStat)
	}
	return out, args.Error(1)
}

// activityWith matches an appended record by action.
func activityWith(action domain.ActivityAction) any {
	return mock.MatchedBy(func(r domain.ActivityRecord) bool { return r.Action == action })
}

func adminCaller() domain.Caller {
	return domain.Authenticated(&domain.Identity{UserID: "admin-1", Username: "admin", Role: domain.RoleAdmin, IsActive: true}, "10.0.0.1")
}

func userCaller(id string) domain.Caller {
	return domain.Authenticated(&domain.Identity{UserID: id, Username: "user-" + id, Role: domain.RoleUser, IsActive: true}, "10.0.0.2")
}
