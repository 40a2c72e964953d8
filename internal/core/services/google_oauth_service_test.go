package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoogleOAuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo     *MockUserRepository
	mockActivityRepo *MockActivityRepository
	service          portssvc.GoogleOAuthSvcFacade
	ctx              context.Context
}

func (suite *GoogleOAuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockActivityRepo = new(MockActivityRepository)
	cfg := testConfig()
	cfg.GoogleClientID = "client-id"
	cfg.GoogleClientSecret = "client-secret"
	cfg.GoogleRedirectURL = "http://localhost:3000/auth/google/callback"

	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{
		UserRepo:        suite.mockUserRepo,
		TransactionRepo: new(MockTransactionRepository),
		ActivityRepo:    suite.mockActivityRepo,
	})
	suite.service = container.GoogleOAuth
	suite.ctx = context.Background()
}

func (suite *GoogleOAuthServiceTestSuite) TearDownTest() {
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

func (suite *GoogleOAuthServiceTestSuite) stubProfile(p *services.GoogleProfile, err error) {
	services.StubGoogleProfile(suite.service, func(ctx context.Context, code string) (*services.GoogleProfile, error) {
		return p, err
	})
}

func (suite *GoogleOAuthServiceTestSuite) TestLoginURLAndState() {
	state, err := suite.service.GenerateStateString(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(state, 64)

	url := suite.service.GetGoogleLoginURL(suite.ctx, state)
	suite.True(strings.HasPrefix(url, "https://accounts.google.com/"))
	suite.Contains(url, "state="+state)
	suite.Contains(url, "client_id=client-id")
}

func (suite *GoogleOAuthServiceTestSuite) TestSignIn_ExistingUser() {
	suite.stubProfile(&services.GoogleProfile{Subject: "g-1", Email: "Alice@Example.com", EmailVerified: true}, nil)
	existing := &domain.User{UserID: "u-1", Username: "alice", Email: "alice@example.com", Role: domain.RoleUser, IsActive: true}
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "alice@example.com").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", mock.Anything, "u-1", mock.Anything).Return(nil).Once()
	suite.mockActivityRepo.On("AppendActivity", mock.Anything, activityWith(domain.ActionLogin)).Return(nil).Once()

	result, err := suite.service.SignInWithCode(suite.ctx, domain.Anonymous(""), "code")

	suite.Require().NoError(err)
	suite.Equal("u-1", result.User.UserID)
	suite.NotEmpty(result.Token)
}

func (suite *GoogleOAuthServiceTestSuite) TestSignIn_CreatesUser() {
	suite.stubProfile(&services.GoogleProfile{Subject: "g-2", Email: "carol@example.com", Name: "Carol", EmailVerified: true}, nil)
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "carol@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", mock.Anything, "carol").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "carol" && u.FullName == "Carol" && u.Role == domain.RoleUser && u.PasswordHash != ""
	})).Return(nil).Once()
	suite.mockUserRepo.On("UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockActivityRepo.On("AppendActivity", mock.Anything, activityWith(domain.ActionRegister)).Return(nil).Once()
	suite.mockActivityRepo.On("AppendActivity", mock.Anything, activityWith(domain.ActionLogin)).Return(nil).Once()

	result, err := suite.service.SignInWithCode(suite.ctx, domain.Anonymous(""), "code")

	suite.Require().NoError(err)
	suite.Equal("carol", result.User.Username)
}

func (suite *GoogleOAuthServiceTestSuite) TestSignIn_InactiveAccount() {
	suite.stubProfile(&services.GoogleProfile{Subject: "g-1", Email: "bob@example.com", EmailVerified: true}, nil)
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "bob@example.com").
		Return(&domain.User{UserID: "u-2", Role: domain.RoleUser, IsActive: false}, nil).Once()

	_, err := suite.service.SignInWithCode(suite.ctx, domain.Anonymous(""), "code")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *GoogleOAuthServiceTestSuite) TestSignIn_UnverifiedEmail() {
	suite.stubProfile(&services.GoogleProfile{Subject: "g-1", Email: "bob@example.com"}, nil)

	_, err := suite.service.SignInWithCode(suite.ctx, domain.Anonymous(""), "code")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *GoogleOAuthServiceTestSuite) TestSignIn_ExchangeFailure() {
	suite.stubProfile(nil, apperrors.NewBadRequestError("invalid or expired authorization code"))

	_, err := suite.service.SignInWithCode(suite.ctx, domain.Anonymous(""), "code")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GoogleOAuthServiceTestSuite) TestSignIn_MissingCode() {
	_, err := suite.service.SignInWithCode(suite.ctx, domain.Anonymous(""), " ")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestGoogleOAuthService(t *testing.T) {
	suite.Run(t, new(GoogleOAuthServiceTestSuite))
}
