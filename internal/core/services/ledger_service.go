package services

import (
	"context"
	"errors"
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
	"github.com/shopspring/decimal"
)

var (
	// ErrLimitExceeded is returned when a mutation would raise a card's
	// balance past its credit limit. Nothing is written in that case.
	ErrLimitExceeded = errors.New("transaction would exceed the card's credit limit")
	// ErrUnknownCategory is returned when the category id is not in the set
	// matching the transaction type.
	ErrUnknownCategory = errors.New("unknown category for transaction type")
	// ErrInvalidAmount is returned when the amount magnitude is not positive.
	ErrInvalidAmount = errors.New("transaction amount must be positive")
	// ErrPartialApplication is returned alongside a PartiallyApplied outcome:
	// the transaction row moved but a card balance write failed, so the
	// cached balance no longer matches the sum of the card's transactions.
	ErrPartialApplication = errors.New("ledger mutation partially applied")
)

type ledgerService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	cardRepo        portsrepo.CardRepositoryFacade
}

// NewLedgerService creates the service owning the ledger update protocol:
// every transaction mutation reconciles the owning card's cached balance.
func NewLedgerService(transactionRepo portsrepo.TransactionRepositoryFacade, cardRepo portsrepo.CardRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{transactionRepo: transactionRepo, cardRepo: cardRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ownedCard loads a card and checks it belongs to userID. A card owned by
// someone else is reported as not found, same as a missing one.
func (s *ledgerService) ownedCard(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	card, err := s.cardRepo.FindCardByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.UserID != userID {
		// Resources owned by someone else look missing, not forbidden.
		return nil, fmt.Errorf("card %s: %w", cardID, apperrors.ErrNotFound)
	}
	return card, nil
}

// ownedTransaction loads a transaction and checks ownership the same way.
func (s *ledgerService) ownedTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.UserID != userID {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return txn, nil
}

// guardIncrease applies the credit-limit guard: a projected balance is
// rejected only when the mutation raises the balance AND the result exceeds
// the limit. Decreases are never guarded, and there is no lower bound, so
// overpaying into negative balance is allowed.
func guardIncrease(card *domain.Card, projected decimal.Decimal) error {
	if projected.GreaterThan(card.CurrentBalance) && projected.GreaterThan(card.CreditLimit) {
		return fmt.Errorf("card %s: balance %s would exceed limit %s: %w",
			card.CardID, projected.String(), card.CreditLimit.String(), ErrLimitExceeded)
	}
	return nil
}

// CreateTransaction validates the request, guards the projected balance and
// then performs the two-phase write: transaction row first, card balance
// second.
func (s *ledgerService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.LedgerApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	magnitude := req.Amount.Abs()
	if !magnitude.IsPositive() {
		return rejected(), ErrInvalidAmount
	}
	if !domain.IsKnownCategory(req.TransactionType, req.Category) {
		return rejected(), fmt.Errorf("category %q: %w", req.Category, ErrUnknownCategory)
	}

	card, err := s.ownedCard(ctx, userID, req.CardID)
	if err != nil {
		return rejected(), err
	}

	signed := req.TransactionType.SignedAmount(magnitude)
	projected := card.CurrentBalance.Add(signed)
	if err := guardIncrease(card, projected); err != nil {
		logger.Warn("Transaction rejected by credit limit guard",
			slog.String("card_id", card.CardID),
			slog.String("projected_balance", projected.String()))
		return rejected(), err
	}

	now := time.Now()
	transactionDate := req.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = now
	}
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		CardID:          card.CardID,
		Amount:          signed,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		Notes:           req.Notes,
		TransactionDate: transactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
		CardNickname: card.Nickname,
		CardLastFour: card.LastFourDigits,
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return rejected(), fmt.Errorf("failed to save transaction: %w", err)
	}

	app := &domain.LedgerApplication{
		State:              domain.PartiallyApplied,
		Transaction:        &txn,
		TransactionWritten: true,
		CardsUpdated:       map[string]decimal.Decimal{},
	}
	if err := s.cardRepo.UpdateCardBalance(ctx, card.CardID, projected, userID, now); err != nil {
		logger.Error("Card balance update failed after transaction write",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("card_id", card.CardID),
			slog.String("error", err.Error()))
		return app, fmt.Errorf("%w: %v", ErrPartialApplication, err)
	}
	app.State = domain.Applied
	app.CardsUpdated[card.CardID] = projected

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("card_id", card.CardID),
		slog.String("new_balance", projected.String()))
	return app, nil
}

// EditTransaction recomputes the signed amount from the merged fields and
// reconciles every touched card. Reassigning the transaction to another card
// debits the old card and credits the new one; each card whose balance would
// rise is guarded before any write.
func (s *ledgerService) EditTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.LedgerApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.ownedTransaction(ctx, userID, transactionID)
	if err != nil {
		return rejected(), err
	}

	updated := *existing
	if req.TransactionType != nil {
		updated.TransactionType = *req.TransactionType
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.TransactionDate != nil {
		updated.TransactionDate = *req.TransactionDate
	}

	magnitude := existing.Magnitude()
	if req.Amount != nil {
		magnitude = req.Amount.Abs()
		if !magnitude.IsPositive() {
			return rejected(), ErrInvalidAmount
		}
	}
	updated.Amount = updated.TransactionType.SignedAmount(magnitude)

	if !domain.IsKnownCategory(updated.TransactionType, updated.Category) {
		return rejected(), fmt.Errorf("category %q: %w", updated.Category, ErrUnknownCategory)
	}

	oldCard, err := s.ownedCard(ctx, userID, existing.CardID)
	if err != nil {
		return rejected(), err
	}
	newCard := oldCard
	if req.CardID != nil && *req.CardID != existing.CardID {
		newCard, err = s.ownedCard(ctx, userID, *req.CardID)
		if err != nil {
			return rejected(), err
		}
		updated.CardID = newCard.CardID
	}
	updated.CardNickname = newCard.Nickname
	updated.CardLastFour = newCard.LastFourDigits

	// Project every touched balance up front so all guards run before the
	// first write.
	type balanceMove struct {
		card      *domain.Card
		projected decimal.Decimal
	}
	var moves []balanceMove
	if newCard.CardID == oldCard.CardID {
		delta := updated.Amount.Sub(existing.Amount)
		if !delta.IsZero() {
			moves = append(moves, balanceMove{oldCard, oldCard.CurrentBalance.Add(delta)})
		}
	} else {
		moves = append(moves,
			balanceMove{oldCard, oldCard.CurrentBalance.Sub(existing.Amount)},
			balanceMove{newCard, newCard.CurrentBalance.Add(updated.Amount)},
		)
	}
	for _, m := range moves {
		if err := guardIncrease(m.card, m.projected); err != nil {
			logger.Warn("Transaction edit rejected by credit limit guard",
				slog.String("transaction_id", transactionID),
				slog.String("card_id", m.card.CardID))
			return rejected(), err
		}
	}

	now := time.Now()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, updated); err != nil {
		return rejected(), fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	app := &domain.LedgerApplication{
		State:              domain.PartiallyApplied,
		Transaction:        &updated,
		TransactionWritten: true,
		CardsUpdated:       map[string]decimal.Decimal{},
	}
	for _, m := range moves {
		if err := s.cardRepo.UpdateCardBalance(ctx, m.card.CardID, m.projected, userID, now); err != nil {
			logger.Error("Card balance update failed after transaction edit",
				slog.String("transaction_id", transactionID),
				slog.String("card_id", m.card.CardID),
				slog.String("error", err.Error()))
			return app, fmt.Errorf("%w: %v", ErrPartialApplication, err)
		}
		app.CardsUpdated[m.card.CardID] = m.projected
	}
	app.State = domain.Applied

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return app, nil
}

// DeleteTransaction reverses the transaction's effect on its card and then
// removes the row. Deleting a payment raises the balance, so the guard runs
// here too.
func (s *ledgerService) DeleteTransaction(ctx context.Context, userID string, transactionID string) (*domain.LedgerApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.ownedTransaction(ctx, userID, transactionID)
	if err != nil {
		return rejected(), err
	}
	card, err := s.ownedCard(ctx, userID, existing.CardID)
	if err != nil {
		return rejected(), err
	}

	projected := card.CurrentBalance.Sub(existing.Amount)
	if err := guardIncrease(card, projected); err != nil {
		logger.Warn("Transaction deletion rejected by credit limit guard",
			slog.String("transaction_id", transactionID),
			slog.String("card_id", card.CardID))
		return rejected(), err
	}

	now := time.Now()
	if err := s.cardRepo.UpdateCardBalance(ctx, card.CardID, projected, userID, now); err != nil {
		return rejected(), fmt.Errorf("failed to update card balance for deletion of %s: %w", transactionID, err)
	}

	app := &domain.LedgerApplication{
		State:        domain.PartiallyApplied,
		Transaction:  existing,
		CardsUpdated: map[string]decimal.Decimal{card.CardID: projected},
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		logger.Error("Transaction row deletion failed after balance reversal",
			slog.String("transaction_id", transactionID),
			slog.String("card_id", card.CardID),
			slog.String("error", err.Error()))
		return app, fmt.Errorf("%w: %v", ErrPartialApplication, err)
	}
	app.State = domain.Applied
	app.TransactionWritten = true

	logger.Info("Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("card_id", card.CardID),
		slog.String("new_balance", projected.String()))
	return app, nil
}

// GetTransactionByID retrieves one transaction owned by the user.
func (s *ledgerService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	return s.ownedTransaction(ctx, userID, transactionID)
}

// ListTransactions retrieves the user's transactions matching the filters.
func (s *ledgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionListFilter{
		CardID:          params.CardID,
		TransactionType: domain.TransactionType(params.TransactionType),
		Category:        params.Category,
		Limit:           params.Limit,
		Offset:          params.Offset,
	}
	if params.From != nil {
		filter.From = *params.From
	}
	if params.To != nil {
		filter.To = *params.To
	}
	return s.transactionRepo.ListTransactionsByUser(ctx, userID, filter)
}

// rejected is the outcome for mutations stopped before any write.
func rejected() *domain.LedgerApplication {
	return &domain.LedgerApplication{State: domain.Rejected}
}
