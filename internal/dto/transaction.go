package dto

import (
	"time"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to log a transaction.
// Amount is the user-entered magnitude; the service takes its absolute value
// before sign-encoding, so a stray sign from the caller is harmless.
type CreateTransactionRequest struct {
	CardID          string                 `json:"cardID" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=expense payment"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	Category        string                 `json:"category" binding:"required"`
	Notes           string                 `json:"notes"`
	TransactionDate time.Time              `json:"transactionDate"`
}

// UpdateTransactionRequest defines the data allowed for editing a
// transaction. Pointers distinguish omitted fields from zero-value updates;
// omitted fields keep their current value. CardID supports reassigning the
// transaction to another card owned by the same user.
type UpdateTransactionRequest struct {
	CardID          *string                 `json:"cardID"`
	TransactionType *domain.TransactionType `json:"transactionType" binding:"omitempty,oneof=expense payment"`
	Amount          *decimal.Decimal        `json:"amount"`
	Category        *string                 `json:"category"`
	Notes           *string                 `json:"notes"`
	TransactionDate *time.Time              `json:"transactionDate"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	CardID          string     `form:"cardID"`
	TransactionType string     `form:"type" binding:"omitempty,oneof=expense payment"`
	Category        string     `form:"category"`
	From            *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To              *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit           int        `form:"limit,default=20"`
	Offset          int        `form:"offset,default=0"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	CardID          string                 `json:"cardID"`
	Amount          decimal.Decimal        `json:"amount"`    // Signed as stored
	Magnitude       decimal.Decimal        `json:"magnitude"` // Absolute value for display
	TransactionType domain.TransactionType `json:"transactionType"`
	Category        string                 `json:"category"`
	Notes           string                 `json:"notes,omitempty"`
	TransactionDate time.Time              `json:"transactionDate"`
	CardNickname    string                 `json:"cardNickname,omitempty"`
	CardLastFour    string                 `json:"cardLastFour,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		CardID:          txn.CardID,
		Amount:          txn.Amount,
		Magnitude:       txn.Magnitude(),
		TransactionType: txn.TransactionType,
		Category:        txn.Category,
		Notes:           txn.Notes,
		TransactionDate: txn.TransactionDate,
		CardNickname:    txn.CardNickname,
		CardLastFour:    txn.CardLastFour,
		CreatedAt:       txn.CreatedAt,
		LastUpdatedAt:   txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// LedgerApplicationResponse reports the outcome of a ledger mutation,
// including which writes landed when the outcome is partial.
type LedgerApplicationResponse struct {
	State              domain.ApplyState          `json:"state"`
	Transaction        *TransactionResponse       `json:"transaction,omitempty"`
	TransactionWritten bool                       `json:"transactionWritten"`
	CardsUpdated       map[string]decimal.Decimal `json:"cardsUpdated,omitempty"`
}

// ToLedgerApplicationResponse converts a domain.LedgerApplication to its DTO.
func ToLedgerApplicationResponse(app *domain.LedgerApplication) LedgerApplicationResponse {
	resp := LedgerApplicationResponse{
		State:              app.State,
		TransactionWritten: app.TransactionWritten,
		CardsUpdated:       app.CardsUpdated,
	}
	if app.Transaction != nil {
		txnResp := ToTransactionResponse(app.Transaction)
		resp.Transaction = &txnResp
	}
	return resp
}
