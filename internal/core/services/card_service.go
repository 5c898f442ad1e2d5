package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cardledger/cardledger_backend/internal/apperrors"
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/dto"
	"github.com/cardledger/cardledger_backend/internal/middleware"
	"github.com/google/uuid"
)

type cardService struct {
	cardRepo portsrepo.CardRepositoryFacade
}

// NewCardService creates a new service for card lifecycle operations.
func NewCardService(cardRepo portsrepo.CardRepositoryFacade) portssvc.CardSvcFacade {
	return &cardService{cardRepo: cardRepo}
}

var _ portssvc.CardSvcFacade = (*cardService)(nil)

// validateCardNumbers checks the constraints binding tags cannot express:
// decimal positivity and the balance/limit relation.
func validateCardNumbers(card domain.Card) error {
	if !card.CreditLimit.IsPositive() {
		return fmt.Errorf("credit limit must be positive: %w", apperrors.ErrValidation)
	}
	if card.CurrentBalance.IsNegative() {
		return fmt.Errorf("balance must not be negative: %w", apperrors.ErrValidation)
	}
	if card.CurrentBalance.GreaterThan(card.CreditLimit) {
		return fmt.Errorf("balance must not exceed credit limit: %w", apperrors.ErrValidation)
	}
	return nil
}

// CreateCard registers a new card for the user.
func (s *cardService) CreateCard(ctx context.Context, userID string, req dto.CreateCardRequest) (*domain.Card, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	card := domain.Card{
		CardID:         uuid.NewString(),
		UserID:         userID,
		Nickname:       req.Nickname,
		LastFourDigits: req.LastFourDigits,
		ExpiryMonth:    req.ExpiryMonth,
		ExpiryYear:     req.ExpiryYear,
		CreditLimit:    req.CreditLimit,
		CurrentBalance: req.CurrentBalance,
		StatementDay:   req.StatementDay,
		DueDay:         req.DueDay,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := validateCardNumbers(card); err != nil {
		return nil, err
	}

	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	logger.Info("Card created", slog.String("card_id", card.CardID))
	return &card, nil
}

// GetCardByID retrieves one card owned by the user.
func (s *cardService) GetCardByID(ctx context.Context, userID string, cardID string) (*domain.Card, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.UserID != userID {
		return nil, fmt.Errorf("card %s: %w", cardID, apperrors.ErrNotFound)
	}
	return card, nil
}

// ListCards retrieves all cards owned by the user.
func (s *cardService) ListCards(ctx context.Context, userID string) ([]domain.Card, error) {
	return s.cardRepo.ListCardsByUser(ctx, userID)
}

// UpdateCard edits a card's own fields. Setting CurrentBalance here is the
// manual-correction escape hatch: it bypasses the ledger reconciliation and
// is validated against the merged credit limit instead.
func (s *cardService) UpdateCard(ctx context.Context, userID string, cardID string, req dto.UpdateCardRequest) (*domain.Card, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	card, err := s.GetCardByID(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	updated := *card
	if req.Nickname != nil {
		updated.Nickname = *req.Nickname
	}
	if req.LastFourDigits != nil {
		updated.LastFourDigits = *req.LastFourDigits
	}
	if req.ExpiryMonth != nil {
		updated.ExpiryMonth = *req.ExpiryMonth
	}
	if req.ExpiryYear != nil {
		updated.ExpiryYear = *req.ExpiryYear
	}
	if req.CreditLimit != nil {
		updated.CreditLimit = *req.CreditLimit
	}
	if req.CurrentBalance != nil {
		updated.CurrentBalance = *req.CurrentBalance
	}
	if req.StatementDay != nil {
		updated.StatementDay = req.StatementDay
	}
	if req.DueDay != nil {
		updated.DueDay = req.DueDay
	}
	if err := validateCardNumbers(updated); err != nil {
		return nil, err
	}

	now := time.Now()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.cardRepo.UpdateCard(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update card %s: %w", cardID, err)
	}

	logger.Info("Card updated", slog.String("card_id", cardID))
	return &updated, nil
}

// DeleteCard removes a card and every transaction logged against it.
func (s *cardService) DeleteCard(ctx context.Context, userID string, cardID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetCardByID(ctx, userID, cardID); err != nil {
		return err
	}
	if err := s.cardRepo.DeleteCard(ctx, cardID); err != nil {
		return fmt.Errorf("failed to delete card %s: %w", cardID, err)
	}

	logger.Info("Card deleted", slog.String("card_id", cardID))
	return nil
}
