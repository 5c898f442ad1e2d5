package repositories

import (
	"context"
	"time"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CardRepositoryFacade defines persistence operations for cards.
type CardRepositoryFacade interface {
	// SaveCard inserts a new card row.
	SaveCard(ctx context.Context, card domain.Card) error
	// FindCardByID retrieves a card by its ID.
	// Returns apperrors.ErrNotFound when no row matches.
	FindCardByID(ctx context.Context, cardID string) (*domain.Card, error)
	// ListCardsByUser retrieves all cards owned by a user, newest first.
	ListCardsByUser(ctx context.Context, userID string) ([]domain.Card, error)
	// UpdateCard persists edits to a card's own fields.
	UpdateCard(ctx context.Context, card domain.Card) error
	// UpdateCardBalance moves a card's cached balance to newBalance and
	// refreshes its update audit fields. This is the second half of every
	// transaction mutation.
	UpdateCardBalance(ctx context.Context, cardID string, newBalance decimal.Decimal, updatedBy string, updatedAt time.Time) error
	// DeleteCard removes a card and, in the same database transaction, the
	// transactions that reference it.
	DeleteCard(ctx context.Context, cardID string) error
}
