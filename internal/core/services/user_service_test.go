package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cardledger/cardledger_backend/internal/apperrors"
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/core/services"
	"github.com/cardledger/cardledger_backend/internal/dto"
	"github.com/cardledger/cardledger_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// MockProfileService is a mock type for the ProfileSvcFacade interface.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) CreateProfile(ctx context.Context, userID string, name string, currencyCode string) (*domain.Profile, error) {
	args := m.Called(ctx, userID, name, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockUserRepository
	mockProfileSvc *MockProfileService
	service        portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockProfileSvc = new(MockProfileService)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockProfileSvc)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPasswordAndCreatesProfile() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Email:        "jo@example.com",
		Name:         "Jo",
		Password:     "correct horse",
		CurrencyCode: "EUR",
	}

	var savedUser domain.User
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			savedUser = args.Get(1).(domain.User)
		}).Return(nil).Once()
	suite.mockProfileSvc.On("CreateProfile", ctx, mock.AnythingOfType("string"), "Jo", "EUR").
		Return(&domain.Profile{Name: "Jo", CurrencyCode: "EUR"}, nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(req.Email, user.Email)
	suite.NotEqual(req.Password, savedUser.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, savedUser.PasswordHash))
	suite.mockProfileSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Email: "jo@example.com", Name: "Jo", Password: "correct horse"}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockProfileSvc.AssertNotCalled(suite.T(), "CreateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingUser() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "jo@example.com", Name: "Jo"}

	suite.mockRepo.On("FindUserByEmail", ctx, existing.Email).Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, existing.Email, "Jo")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_FirstSignIn() {
	ctx := context.Background()
	email := "new@example.com"

	suite.mockRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == email && u.PasswordHash == ""
	})).Return(nil).Once()
	suite.mockProfileSvc.On("CreateProfile", ctx, mock.AnythingOfType("string"), "New Person", "").
		Return(&domain.Profile{}, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, email, "New Person")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("UpdateRefreshToken", ctx, userID, "", (*time.Time)(nil)).Return(nil).Once()

	suite.Require().NoError(suite.service.ClearRefreshToken(ctx, userID))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
