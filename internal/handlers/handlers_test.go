package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/handlers"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	userIdentity  = &domain.Identity{UserID: "u-1", Username: "alice", Role: domain.RoleUser, IsActive: true}
	adminIdentity = &domain.Identity{UserID: "admin-1", Username: "admin", Role: domain.RoleAdmin, IsActive: true}
)

type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuth        *MockAuthService
	mockTransaction *MockTransactionService
	mockAdmin       *MockAdminService
	mockGoogle      *MockGoogleOAuthService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockAuth = new(MockAuthService)
	suite.mockTransaction = new(MockTransactionService)
	suite.mockAdmin = new(MockAdminService)
	suite.mockGoogle = new(MockGoogleOAuthService)

	suite.mockAuth.On("VerifyToken", mock.Anything, userToken).Return(userIdentity, nil).Maybe()
	suite.mockAuth.On("VerifyToken", mock.Anything, adminToken).Return(adminIdentity, nil).Maybe()
	suite.mockAuth.On("VerifyToken", mock.Anything, mock.Anything).Return(nil, apperrors.ErrTokenInvalid).Maybe()

	limiter, err := middleware.NewRateLimiter("2-M")
	suite.Require().NoError(err)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Auth:        suite.mockAuth,
		Transaction: suite.mockTransaction,
		Admin:       suite.mockAdmin,
		GoogleOAuth: suite.mockGoogle,
	}, limiter)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockTransaction.AssertExpectations(suite.T())
	suite.mockAdmin.AssertExpectations(suite.T())
	suite.mockGoogle.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, path, token string, body any) (*httptest.ResponseRecorder, dto.Response) {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var resp dto.Response
	if w.Body.Len() > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func callerWith(id *domain.Identity) any {
	return mock.MatchedBy(func(c domain.Caller) bool {
		return c.Identity != nil && c.Identity.UserID == id.UserID
	})
}

func (suite *HandlerTestSuite) TestHome() {
	w, resp := suite.do(http.MethodGet, "/", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(resp.Success)
}

func (suite *HandlerTestSuite) TestHealth() {
	for _, path := range []string{"/health", "/api/v1/health"} {
		w, resp := suite.do(http.MethodGet, path, "", nil)
		suite.Equal(http.StatusOK, w.Code, path)
		suite.True(resp.Success, path)
	}
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	result := &domain.AuthResult{
		User:      domain.User{UserID: "u-1", Username: "alice", Role: domain.RoleUser, IsActive: true},
		Token:     "jwt",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	suite.mockAuth.On("Login", mock.Anything, mock.MatchedBy(func(c domain.Caller) bool { return c.Identity == nil }),
		dto.LoginRequest{Username: "alice", Password: "secret123"}).Return(result, nil).Once()

	w, resp := suite.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "alice", "password": "secret123"})

	suite.Equal(http.StatusOK, w.Code)
	suite.True(resp.Success)
	data := resp.Data.(map[string]any)
	suite.Equal("jwt", data["token"])
}

func (suite *HandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockAuth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidCredentials).Once()

	w, resp := suite.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "alice", "password": "nope"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.False(resp.Success)
	suite.Equal(apperrors.CodeInvalidCredentials, resp.Code)
}

func (suite *HandlerTestSuite) TestLogin_DisabledAccount() {
	suite.mockAuth.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewDenyError(apperrors.ReasonInactiveAccount)).Once()

	w, resp := suite.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "alice", "password": "secret123"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(string(apperrors.ReasonInactiveAccount), resp.Code)
}

func (suite *HandlerTestSuite) TestLogin_MalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	suite.mockAuth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidCredentials).Times(2)

	for i := 0; i < 2; i++ {
		w, _ := suite.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "alice", "password": "x"})
		suite.Equal(http.StatusUnauthorized, w.Code)
	}
	w, resp := suite.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "alice", "password": "x"})

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.Equal(apperrors.CodeRateLimited, resp.Code)
}

func (suite *HandlerTestSuite) TestRegister_Conflict() {
	suite.mockAuth.On("Register", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConflictError("username already registered")).Once()

	w, resp := suite.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "alice", "email": "a@b.com", "password": "secret123"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("username already registered", resp.Message)
}

func (suite *HandlerTestSuite) TestVerify() {
	w, resp := suite.do(http.MethodGet, "/api/v1/auth/verify", userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("u-1", resp.Data.(map[string]any)["id"])
}

func (suite *HandlerTestSuite) TestProtectedRoute_NoToken() {
	w, resp := suite.do(http.MethodGet, "/api/v1/transactions", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(string(apperrors.ReasonUnauthenticated), resp.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "ListMine", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestProtectedRoute_BadToken() {
	w, resp := suite.do(http.MethodGet, "/api/v1/transactions", "forged", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("invalid token", resp.Message)
}

func (suite *HandlerTestSuite) TestListMine() {
	next := "tok"
	page := &domain.TransactionPage{
		Transactions: []domain.Transaction{{
			TransactionID: "t-1", UserID: "u-1", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Type: domain.Outflow, Category: "Food", Amount: decimal.NewFromInt(50000),
		}},
		Summary:   domain.Summary{TotalOutflow: decimal.NewFromInt(50000), Balance: decimal.NewFromInt(-50000), TransactionCount: 1},
		NextToken: &next,
	}
	suite.mockTransaction.On("ListMine", mock.Anything, callerWith(userIdentity), mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Type == "outflow" && p.Limit == 1 && p.StartDate == "2025-01-01"
	})).Return(page, nil).Once()

	w, resp := suite.do(http.MethodGet, "/api/v1/transactions?type=outflow&limit=1&startDate=2025-01-01", userToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Require().NotNil(resp.Count)
	suite.Equal(1, *resp.Count)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("tok", *resp.NextToken)
	txns := resp.Data.(map[string]any)["transactions"].([]any)
	suite.Equal("2025-01-01", txns[0].(map[string]any)["date"])
}

func (suite *HandlerTestSuite) TestListMine_BadLimit() {
	w, _ := suite.do(http.MethodGet, "/api/v1/transactions?limit=abc", userToken, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction() {
	created := &domain.Transaction{TransactionID: "t-1", UserID: "u-1", Type: domain.Inflow, Category: "Salary", Amount: decimal.NewFromInt(100)}
	suite.mockTransaction.On("Create", mock.Anything, callerWith(userIdentity), mock.MatchedBy(func(r dto.TransactionRequest) bool {
		return r.Amount != nil && r.Amount.Equal(decimal.NewFromInt(100)) && r.Category == "Salary"
	})).Return(created, nil).Once()

	w, resp := suite.do(http.MethodPost, "/api/v1/transactions", userToken,
		gin.H{"date": "2025-01-01", "type": "inflow", "category": "Salary", "amount": 100})

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(resp.Success)
}

func (suite *HandlerTestSuite) TestCreateTransaction_ValidationError() {
	suite.mockTransaction.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("amount", "amount must be greater than 0")).Once()

	w, resp := suite.do(http.MethodPost, "/api/v1/transactions", userToken,
		gin.H{"date": "2025-01-01", "type": "inflow", "category": "Salary", "amount": 0})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(apperrors.CodeValidation, resp.Code)
}

func (suite *HandlerTestSuite) TestGetTransaction_NotOwner() {
	suite.mockTransaction.On("Get", mock.Anything, callerWith(userIdentity), "t-2").
		Return(nil, apperrors.NewDenyError(apperrors.ReasonNotOwner)).Once()

	w, resp := suite.do(http.MethodGet, "/api/v1/transactions/t-2", userToken, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal(string(apperrors.ReasonNotOwner), resp.Code)
}

func (suite *HandlerTestSuite) TestDeleteTransaction_NotFound() {
	suite.mockTransaction.On("Delete", mock.Anything, mock.Anything, "missing").
		Return(apperrors.NewNotFoundError("transaction not found")).Once()

	w, resp := suite.do(http.MethodDelete, "/api/v1/transactions/missing", userToken, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("transaction not found", resp.Message)
}

func (suite *HandlerTestSuite) TestSummaryRoutesDoNotHitIDRoute() {
	suite.mockTransaction.On("MySummary", mock.Anything, mock.Anything).Return(&domain.Summary{}, nil).Once()
	suite.mockTransaction.On("MyCategorySummary", mock.Anything, mock.Anything).Return([]domain.CategorySummary{}, nil).Once()

	w, _ := suite.do(http.MethodGet, "/api/v1/transactions/summary", userToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	w, _ = suite.do(http.MethodGet, "/api/v1/transactions/summary/category", userToken, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestDailySummary_BothRoutes() {
	suite.mockTransaction.On("DailySummary", mock.Anything, callerWith(adminIdentity), 7).Return([]domain.DailySummary{}, nil).Twice()

	for _, path := range []string{"/api/v1/transactions/daily-summary?days=7", "/api/v1/admin/summary/daily?days=7"} {
		w, resp := suite.do(http.MethodGet, path, adminToken, nil)
		suite.Equal(http.StatusOK, w.Code, path)
		suite.True(resp.Success, path)
	}
}

func (suite *HandlerTestSuite) TestAdminDashboard_ForbiddenForUser() {
	suite.mockAdmin.On("Dashboard", mock.Anything, callerWith(userIdentity)).
		Return(nil, apperrors.NewDenyError(apperrors.ReasonAdminRequired)).Once()

	w, resp := suite.do(http.MethodGet, "/api/v1/admin/dashboard", userToken, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal(string(apperrors.ReasonAdminRequired), resp.Code)
}

func (suite *HandlerTestSuite) TestToggleUserStatus() {
	suite.mockAdmin.On("ToggleUserStatus", mock.Anything, callerWith(adminIdentity), "u-1").
		Return(&domain.User{UserID: "u-1", Username: "alice", IsActive: false}, nil).Once()

	w, resp := suite.do(http.MethodPut, "/api/v1/admin/users/u-1/toggle-status", adminToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("User deactivated", resp.Message)
}

func (suite *HandlerTestSuite) TestDeleteUser_ProtectedAdmin() {
	suite.mockAdmin.On("DeleteUser", mock.Anything, callerWith(adminIdentity), "admin-2").
		Return(apperrors.NewDenyError(apperrors.ReasonProtectedAdminResource)).Once()

	w, resp := suite.do(http.MethodDelete, "/api/v1/admin/users/admin-2", adminToken, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("cannot modify admin", resp.Message)
}

func (suite *HandlerTestSuite) TestListActivities() {
	suite.mockAdmin.On("ListActivities", mock.Anything, callerWith(adminIdentity), dto.ListActivitiesParams{Action: "LOGIN", Limit: 5}).
		Return([]domain.ActivityRecord{{ActivityID: "a-1", Action: domain.ActionLogin}}, nil).Once()

	w, resp := suite.do(http.MethodGet, "/api/v1/admin/activities?action=LOGIN&limit=5", adminToken, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(1, *resp.Count)
}

func (suite *HandlerTestSuite) TestGoogleExchange() {
	result := &domain.AuthResult{User: domain.User{UserID: "u-3"}, Token: "jwt"}
	suite.mockGoogle.On("SignInWithCode", mock.Anything, mock.Anything, "auth-code").Return(result, nil).Once()

	w, resp := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", "", gin.H{"code": "auth-code"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("jwt", resp.Data.(map[string]any)["token"])
}

func (suite *HandlerTestSuite) TestGoogleLoginURL() {
	suite.mockGoogle.On("GenerateStateString", mock.Anything).Return("state-1", nil).Once()
	suite.mockGoogle.On("GetGoogleLoginURL", mock.Anything, "state-1").Return("https://accounts.google.com/o/oauth2/auth?state=state-1").Once()

	w, resp := suite.do(http.MethodGet, "/api/v1/auth/google/login-url", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("state-1", resp.Data.(map[string]any)["state"])
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
