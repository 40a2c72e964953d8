package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "finance-tracker-test",
	}
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockActivityRepo *MockActivityRepository
	service          portssvc.AuthSvcFacade
	ctx              context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockActivityRepo = new(MockActivityRepository)
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.mockActivityRepo, services.NewTokenService(testConfig()))
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) existingUser(password string, active bool) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       "u-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		FullName:     "Alice",
		Role:         domain.RoleUser,
		IsActive:     active,
	}
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Username: " alice ", Email: "Alice@Example.com", Password: "secret123"}

	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "alice@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice" && u.Email == "alice@example.com" && u.Role == domain.RoleUser &&
			u.IsActive && u.FullName == "alice" && u.PasswordHash != "secret123" &&
			utils.CheckPasswordHash("secret123", u.PasswordHash)
	})).Return(nil).Once()
	suite.mockActivityRepo.On("AppendActivity", mock.Anything, activityWith(domain.ActionRegister)).Return(nil).Once()

	result, err := suite.service.Register(suite.ctx, domain.Anonymous("1.1.1.1"), req)

	suite.Require().NoError(err)
	suite.NotEmpty(result.Token)
	suite.Equal("alice", result.User.Username)
	suite.True(result.ExpiresAt.After(time.Now()))
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateUsername() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(&domain.User{UserID: "u-1"}, nil).Once()

	_, err := suite.service.Register(suite.ctx, domain.Anonymous(""), dto.RegisterRequest{Username: "alice", Email: "a@b.com", Password: "secret123"})

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)
	suite.Contains(appErr.Message, "username")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "a@b.com").Return(&domain.User{UserID: "u-2"}, nil).Once()

	_, err := suite.service.Register(suite.ctx, domain.Anonymous(""), dto.RegisterRequest{Username: "alice", Email: "a@b.com", Password: "secret123"})

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)
	suite.Contains(appErr.Message, "email")
}

func (suite *AuthServiceTestSuite) TestRegister_ValidationErrors() {
	cases := []dto.RegisterRequest{
		{Username: "", Email: "a@b.com", Password: "secret123"},
		{Username: "alice", Email: "not-an-email", Password: "secret123"},
		{Username: "alice", Email: "a@b.com", Password: "12345"},
	}
	for _, req := range cases {
		_, err := suite.service.Register(suite.ctx, domain.Anonymous(""), req)
		suite.ErrorIs(err, apperrors.ErrValidation, "%+v", req)
	}
}

func (suite *AuthServiceTestSuite) TestRegister_SaveError() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "a@b.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.Register(suite.ctx, domain.Anonymous(""), dto.RegisterRequest{Username: "alice", Email: "a@b.com", Password: "secret123"})

	suite.ErrorIs(err, assert.AnError)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	user := suite.existingUser("secret123", true)
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", mock.Anything, "u-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockActivityRepo.On("AppendActivity", mock.Anything, mock.MatchedBy(func(r domain.ActivityRecord) bool {
		return r.Action == domain.ActionLogin && r.IPAddress == "1.1.1.1" && r.UserID != nil && *r.UserID == "u-1"
	})).Return(nil).Once()

	result, err := suite.service.Login(suite.ctx, domain.Anonymous("1.1.1.1"), dto.LoginRequest{Username: "alice", Password: "secret123"})

	suite.Require().NoError(err)
	suite.NotEmpty(result.Token)
	suite.NotNil(result.User.LastLogin)
}

func (suite *AuthServiceTestSuite) TestVerifyToken_Malformed() {
	identity, err := suite.service.VerifyToken(suite.ctx, "garbage")

	suite.Nil(identity)
	suite.ErrorIs(err, apperrors.ErrTokenInvalid)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	user := suite.existingUser("secret123", true)
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(user, nil).Once()

	_, err := suite.service.Login(suite.ctx, domain.Anonymous(""), dto.LoginRequest{Username: "alice", Password: "wrong-pass"})

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "AppendActivity", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(suite.ctx, domain.Anonymous(""), dto.LoginRequest{Username: "ghost", Password: "secret123"})

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveAccount() {
	user := suite.existingUser("secret123", false)
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(user, nil).Once()

	_, err := suite.service.Login(suite.ctx, domain.Anonymous(""), dto.LoginRequest{Username: "alice", Password: "secret123"})

	var denyErr *apperrors.DenyError
	suite.Require().ErrorAs(err, &denyErr)
	suite.Equal(apperrors.ReasonInactiveAccount, denyErr.Reason)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_ActivityFailureDoesNotFailLogin() {
	user := suite.existingUser("secret123", true)
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", mock.Anything, "u-1", mock.Anything).Return(nil).Once()
	suite.mockActivityRepo.On("AppendActivity", mock.Anything, mock.Anything).Return(errors.New("activity store down")).Once()

	result, err := suite.service.Login(suite.ctx, domain.Anonymous(""), dto.LoginRequest{Username: "alice", Password: "secret123"})

	suite.Require().NoError(err)
	suite.NotEmpty(result.Token)
}

func (suite *AuthServiceTestSuite) TestVerifyToken_ReflectsCurrentAccount() {
	user := suite.existingUser("secret123", true)
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "alice").Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", mock.Anything, "u-1", mock.Anything).Return(nil).Once()
	suite.mockActivityRepo.On("AppendActivity", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := suite.service.Login(suite.ctx, domain.Anonymous(""), dto.LoginRequest{Username: "alice", Password: "secret123"})
	suite.Require().NoError(err)

	deactivated := *user
	deactivated.IsActive = false
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-1").Return(&deactivated, nil).Once()

	identity, err := suite.service.VerifyToken(suite.ctx, result.Token)
	suite.Require().NoError(err)
	suite.Equal("u-1", identity.UserID)
	suite.False(identity.IsActive)
}

func (suite *AuthServiceTestSuite) TestVerifyToken_DeletedAccount() {
	token, err := utils.GenerateJWT("u-9", "bob", "bob@example.com", "user", "test-secret", time.Hour, "finance-tracker-test")
	suite.Require().NoError(err)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-9").Return(nil, apperrors.ErrNotFound).Once()

	_, err = suite.service.VerifyToken(suite.ctx, token)

	suite.ErrorIs(err, apperrors.ErrTokenUnknown)
}

func (suite *AuthServiceTestSuite) TestVerifyToken_Expired() {
	token, err := utils.GenerateJWT("u-9", "bob", "bob@example.com", "user", "test-secret", -time.Minute, "finance-tracker-test")
	suite.Require().NoError(err)

	_, err = suite.service.VerifyToken(suite.ctx, token)

	suite.ErrorIs(err, apperrors.ErrTokenExpired)
}

func (suite *AuthServiceTestSuite) TestLogout_RecordsActivity() {
	suite.mockActivityRepo.On("AppendActivity", mock.Anything, activityWith(domain.ActionLogout)).Return(nil).Once()

	suite.NoError(suite.service.Logout(suite.ctx, userCaller("u-1")))
}

func (suite *AuthServiceTestSuite) TestLogout_Anonymous() {
	err := suite.service.Logout(suite.ctx, domain.Anonymous(""))

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestUpdateProfile_ChangesEmailAndPassword() {
	user := suite.existingUser("secret123", true)
	newEmail := "NEW@example.com"
	newPassword := "another-secret"
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-1").Return(user, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" && utils.CheckPasswordHash(newPassword, u.PasswordHash)
	})).Return(nil).Once()
	suite.mockActivityRepo.On("AppendActivity", mock.Anything, mock.MatchedBy(func(r domain.ActivityRecord) bool {
		return r.Action == domain.ActionUpdateProfile && r.Description == "Profile updated: email, password"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProfile(suite.ctx, userCaller("u-1"), dto.UpdateProfileRequest{Email: &newEmail, Password: &newPassword})

	suite.Require().NoError(err)
	suite.Equal("new@example.com", updated.Email)
}

func (suite *AuthServiceTestSuite) TestUpdateProfile_EmailTaken() {
	user := suite.existingUser("secret123", true)
	taken := "taken@example.com"
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-1").Return(user, nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, taken).Return(&domain.User{UserID: "u-2"}, nil).Once()

	_, err := suite.service.UpdateProfile(suite.ctx, userCaller("u-1"), dto.UpdateProfileRequest{Email: &taken})

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(409, appErr.Code)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestUpdateProfile_NoChanges() {
	user := suite.existingUser("secret123", true)
	same := user.FullName
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-1").Return(user, nil).Once()

	updated, err := suite.service.UpdateProfile(suite.ctx, userCaller("u-1"), dto.UpdateProfileRequest{FullName: &same})

	suite.Require().NoError(err)
	suite.Equal("Alice", updated.FullName)
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "AppendActivity", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestEnsureAdmin() {
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "root").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "root" && u.Role == domain.RoleAdmin && u.IsActive
	})).Return(nil).Once()

	suite.NoError(suite.service.EnsureAdmin(suite.ctx, "root", "Root@Example.com", "admin-secret"))

	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "root").Return(&domain.User{UserID: "a-1"}, nil).Once()
	suite.NoError(suite.service.EnsureAdmin(suite.ctx, "root", "root@example.com", "admin-secret"))
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
