package services

import (
	"context"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/cardledger/cardledger_backend/internal/dto"
)

// LedgerSvcFacade is the ledger update protocol: every transaction mutation
// reconciles the owning card's cached balance, and mutations that would push
// a balance past the credit limit are rejected before any write.
//
// The transaction write and the card write are sequential store calls, not
// one atomic unit. Each operation therefore returns a LedgerApplication that
// distinguishes fully applied, partially applied (with which half succeeded),
// and rejected-before-any-write outcomes; a non-nil error accompanies
// anything short of fully applied.
type LedgerSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.LedgerApplication, error)
	EditTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.LedgerApplication, error)
	DeleteTransaction(ctx context.Context, userID string, transactionID string) (*domain.LedgerApplication, error)
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}
