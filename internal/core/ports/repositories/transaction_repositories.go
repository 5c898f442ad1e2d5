package repositories

import (
	"context"
	"time"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
)

// TransactionListFilter narrows a transaction listing. Zero values mean
// "no constraint" for the corresponding field.
type TransactionListFilter struct {
	CardID          string
	TransactionType domain.TransactionType
	Category        string
	From            time.Time
	To              time.Time
	Limit           int
	Offset          int
}

// TransactionRepositoryFacade defines persistence operations for transactions.
type TransactionRepositoryFacade interface {
	// SaveTransaction inserts a new transaction row.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// FindTransactionByID retrieves a transaction by ID, with the referenced
	// card's nickname and last four digits expanded.
	// Returns apperrors.ErrNotFound when no row matches.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListTransactionsByUser retrieves a user's transactions matching the
	// filter, newest transaction date first, with card details expanded.
	ListTransactionsByUser(ctx context.Context, userID string, filter TransactionListFilter) ([]domain.Transaction, error)
	// UpdateTransaction persists edits to an existing transaction row.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	// DeleteTransaction removes a transaction row by ID.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
