package handlers_test

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) VerifyToken(ctx context.Context, token string) (*domain.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, caller domain.Caller, req dto.RegisterRequest) (*domain.AuthResult, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, caller domain.Caller, req dto.LoginRequest) (*domain.AuthResult, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, caller domain.Caller) error {
	return m.Called(ctx, caller).Error(0)
}

func (m *MockAuthService) Profile(ctx context.Context, caller domain.Caller) (*domain.User, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, caller domain.Caller, req dto.UpdateProfileRequest) (*domain.User, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	return m.Called(ctx, username, email, password).Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) ListMine(ctx context.Context, caller domain.Caller, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	args := m.Called(ctx, caller, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionService) ListAll(ctx context.Context, caller domain.Caller, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	args := m.Called(ctx, caller, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionPage), args.Error(1)
}

func (m *MockTransactionService) Get(ctx context.Context, caller domain.Caller, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, caller, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Create(ctx context.Context, caller domain.Caller, req dto.TransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Update(ctx context.Context, caller domain.Caller, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, caller, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) Delete(ctx context.Context, caller domain.Caller, transactionID string) error {
	return m.Called(ctx, caller, transactionID).Error(0)
}

func (m *MockTransactionService) MySummary(ctx context.Context, caller domain.Caller) (*domain.Summary, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockTransactionService) MyCategorySummary(ctx context.Context, caller domain.Caller) ([]domain.CategorySummary, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySummary), args.Error(1)
}

func (m *MockTransactionService) GlobalSummary(ctx context.Context, caller domain.Caller) (*domain.GlobalSummary, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GlobalSummary), args.Error(1)
}

func (m *MockTransactionService) DailySummary(ctx context.Context, caller domain.Caller, days int) ([]domain.DailySummary, error) {
	args := m.Called(ctx, caller, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailySummary), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock AdminService ---
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListUsers(ctx context.Context, caller domain.Caller) ([]domain.UserStats, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserStats), args.Error(1)
}

func (m *MockAdminService) GetUserDetail(ctx context.Context, caller domain.Caller, userID string) (*domain.UserDetail, error) {
	args := m.Called(ctx, caller, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserDetail), args.Error(1)
}

func (m *MockAdminService) ToggleUserStatus(ctx context.Context, caller domain.Caller, userID string) (*domain.User, error) {
	args := m.Called(ctx, caller, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, caller domain.Caller, userID string) error {
	return m.Called(ctx, caller, userID).Error(0)
}

func (m *MockAdminService) ListActivities(ctx context.Context, caller domain.Caller, params dto.ListActivitiesParams) ([]domain.ActivityRecord, error) {
	args := m.Called(ctx, caller, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityRecord), args.Error(1)
}

func (m *MockAdminService) ActivityStats(ctx context.Context, caller domain.Caller) ([]domain.ActivityStat, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityStat), args.Error(1)
}

func (m *MockAdminService) Dashboard(ctx context.Context, caller domain.Caller) (*domain.DashboardStats, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

var _ portssvc.AdminSvcFacade = (*MockAdminService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) SignInWithCode(ctx context.Context, caller domain.Caller, code string) (*domain.AuthResult, error) {
	args := m.Called(ctx, caller, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)
