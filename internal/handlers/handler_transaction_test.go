package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cardledger/cardledger_backend/internal/apperrors"
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/core/services"
	"github.com/cardledger/cardledger_backend/internal/dto"
	"github.com/cardledger/cardledger_backend/internal/handlers"
	"github.com/cardledger/cardledger_backend/internal/middleware"
	"github.com/cardledger/cardledger_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.LedgerApplication, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerApplication), args.Error(1)
}

func (m *MockLedgerService) EditTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.LedgerApplication, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerApplication), args.Error(1)
}

func (m *MockLedgerService) DeleteTransaction(ctx context.Context, userID string, transactionID string) (*domain.LedgerApplication, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerApplication), args.Error(1)
}

func (m *MockLedgerService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Test Suite Setup ---

type TransactionHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockLedger *MockLedgerService
	cfg        *config.Config
	userID     string
	authHeader string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockLedger = new(MockLedgerService)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "cardledger-backend",
		IsProduction:      true, // keeps swagger routes out of the test router
	}
	suite.userID = uuid.NewString()
	suite.authHeader = "Bearer " + suite.generateToken(suite.userID)

	svcContainer := &portssvc.ServiceContainer{Ledger: suite.mockLedger}
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(testLogger()))
	handlers.RegisterRoutes(suite.router, suite.cfg, svcContainer)
}

func (suite *TransactionHandlerTestSuite) generateToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    suite.cfg.JWTIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.cfg.JWTSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *TransactionHandlerTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Applied() {
	cardID := uuid.NewString()
	app := &domain.LedgerApplication{
		State:              domain.Applied,
		TransactionWritten: true,
		Transaction: &domain.Transaction{
			TransactionID:   uuid.NewString(),
			UserID:          suite.userID,
			CardID:          cardID,
			Amount:          decimal.NewFromInt(75),
			TransactionType: domain.Expense,
			Category:        "groceries",
		},
		CardsUpdated: map[string]decimal.Decimal{cardID: decimal.NewFromInt(75)},
	}

	suite.mockLedger.On("CreateTransaction", mock.Anything, suite.userID, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.CardID == cardID && req.Amount.Equal(decimal.NewFromInt(75))
	})).Return(app, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"cardID":          cardID,
		"transactionType": "expense",
		"amount":          "75",
		"category":        "groceries",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.LedgerApplicationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.Applied, resp.State)
	suite.Require().NotNil(resp.Transaction)
	suite.True(resp.Transaction.Magnitude.Equal(decimal.NewFromInt(75)))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_LimitExceeded_422() {
	suite.mockLedger.On("CreateTransaction", mock.Anything, suite.userID, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(&domain.LedgerApplication{State: domain.Rejected}, fmt.Errorf("card x: %w", services.ErrLimitExceeded)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"cardID":          uuid.NewString(),
		"transactionType": "expense",
		"amount":          "10000",
		"category":        "shopping",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_PartiallyApplied_500WithOutcome() {
	cardID := uuid.NewString()
	app := &domain.LedgerApplication{
		State:              domain.PartiallyApplied,
		TransactionWritten: true,
		Transaction: &domain.Transaction{
			TransactionID:   uuid.NewString(),
			CardID:          cardID,
			Amount:          decimal.NewFromInt(75),
			TransactionType: domain.Expense,
			Category:        "groceries",
		},
	}
	suite.mockLedger.On("CreateTransaction", mock.Anything, suite.userID, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(app, fmt.Errorf("%w: connection reset", services.ErrPartialApplication)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"cardID":          cardID,
		"transactionType": "expense",
		"amount":          "75",
		"category":        "groceries",
	})

	suite.Equal(http.StatusInternalServerError, w.Code)

	var resp dto.LedgerApplicationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.PartiallyApplied, resp.State)
	suite.True(resp.TransactionWritten)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingFields_400() {
	w := suite.doJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"transactionType": "expense",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound_404() {
	transactionID := uuid.NewString()
	suite.mockLedger.On("GetTransactionByID", mock.Anything, suite.userID, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/transactions/"+transactionID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Applied() {
	transactionID := uuid.NewString()
	cardID := uuid.NewString()
	app := &domain.LedgerApplication{
		State:              domain.Applied,
		TransactionWritten: true,
		CardsUpdated:       map[string]decimal.Decimal{cardID: decimal.Zero},
	}
	suite.mockLedger.On("DeleteTransaction", mock.Anything, suite.userID, transactionID).Return(app, nil).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/transactions/"+transactionID, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestMissingAuth_401() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
