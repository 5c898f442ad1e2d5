package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cardledger/cardledger_backend/internal/apperrors"
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/core/services"
	"github.com/cardledger/cardledger_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCardRepository
	service  portssvc.CardSvcFacade
	userID   string
}

func (suite *CardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCardRepository)
	suite.service = services.NewCardService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *CardServiceTestSuite) ownedCard() *domain.Card {
	return &domain.Card{
		CardID:         uuid.NewString(),
		UserID:         suite.userID,
		Nickname:       "Everyday",
		LastFourDigits: "4242",
		ExpiryMonth:    4,
		ExpiryYear:     28,
		CreditLimit:    decimal.NewFromInt(1000),
		CurrentBalance: decimal.NewFromInt(200),
	}
}

func (suite *CardServiceTestSuite) TestCreateCard_Success() {
	ctx := context.Background()
	req := dto.CreateCardRequest{
		Nickname:       "Everyday",
		LastFourDigits: "4242",
		ExpiryMonth:    4,
		ExpiryYear:     28,
		CreditLimit:    decimal.NewFromInt(1500),
	}

	suite.mockRepo.On("SaveCard", ctx, mock.AnythingOfType("domain.Card")).Return(nil).Once()

	card, err := suite.service.CreateCard(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(card.CardID)
	suite.Equal(suite.userID, card.UserID)
	suite.True(card.CurrentBalance.IsZero())
	suite.True(card.AvailableCredit().Equal(decimal.NewFromInt(1500)))
	suite.Equal(suite.userID, card.CreatedBy)
	suite.WithinDuration(time.Now(), card.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestCreateCard_NonPositiveLimit_Validation() {
	ctx := context.Background()
	req := dto.CreateCardRequest{
		Nickname:       "Bad",
		LastFourDigits: "0000",
		ExpiryMonth:    1,
		CreditLimit:    decimal.Zero,
	}

	_, err := suite.service.CreateCard(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCard", mock.Anything, mock.Anything)
}

func (suite *CardServiceTestSuite) TestCreateCard_BalanceOverLimit_Validation() {
	ctx := context.Background()
	req := dto.CreateCardRequest{
		Nickname:       "Bad",
		LastFourDigits: "0000",
		ExpiryMonth:    1,
		CreditLimit:    decimal.NewFromInt(100),
		CurrentBalance: decimal.NewFromInt(150),
	}

	_, err := suite.service.CreateCard(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CardServiceTestSuite) TestGetCard_ForeignOwner_NotFound() {
	ctx := context.Background()
	card := suite.ownedCard()
	card.UserID = uuid.NewString()

	suite.mockRepo.On("FindCardByID", ctx, card.CardID).Return(card, nil).Once()

	_, err := suite.service.GetCardByID(ctx, suite.userID, card.CardID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CardServiceTestSuite) TestUpdateCard_BalanceOverride() {
	ctx := context.Background()
	card := suite.ownedCard()
	newBalance := decimal.NewFromInt(900)

	suite.mockRepo.On("FindCardByID", ctx, card.CardID).Return(card, nil).Once()
	suite.mockRepo.On("UpdateCard", ctx, mock.MatchedBy(func(c domain.Card) bool {
		return c.CurrentBalance.Equal(newBalance) && c.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCard(ctx, suite.userID, card.CardID, dto.UpdateCardRequest{CurrentBalance: &newBalance})

	suite.Require().NoError(err)
	suite.True(updated.CurrentBalance.Equal(newBalance))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CardServiceTestSuite) TestUpdateCard_ShrinkLimitBelowBalance_Validation() {
	ctx := context.Background()
	card := suite.ownedCard() // balance 200
	newLimit := decimal.NewFromInt(100)

	suite.mockRepo.On("FindCardByID", ctx, card.CardID).Return(card, nil).Once()

	_, err := suite.service.UpdateCard(ctx, suite.userID, card.CardID, dto.UpdateCardRequest{CreditLimit: &newLimit})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCard", mock.Anything, mock.Anything)
}

func (suite *CardServiceTestSuite) TestDeleteCard_Success() {
	ctx := context.Background()
	card := suite.ownedCard()

	suite.mockRepo.On("FindCardByID", ctx, card.CardID).Return(card, nil).Once()
	suite.mockRepo.On("DeleteCard", ctx, card.CardID).Return(nil).Once()

	err := suite.service.DeleteCard(ctx, suite.userID, card.CardID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CardServiceTestSuite))
}
