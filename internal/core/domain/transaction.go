package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction raises or lowers a card's
// outstanding balance.
type TransactionType string

const (
	Expense TransactionType = "expense"
	Payment TransactionType = "payment"
)

// SignedAmount applies the ledger sign convention to a positive magnitude:
// expenses are stored positive, payments negative. This is what makes
// "sum of transaction amounts = card balance" hold without a per-type branch
// at read time.
func (t TransactionType) SignedAmount(magnitude decimal.Decimal) decimal.Decimal {
	if t == Payment {
		return magnitude.Neg()
	}
	return magnitude
}

// Transaction represents a single expense or payment logged against one card.
// Amount carries the sign convention above; its absolute value is the
// user-entered magnitude.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`        // Owner, FK -> users.user_id
	CardID          string          `json:"cardID"`        // FK -> cards.card_id
	Amount          decimal.Decimal `json:"amount"`        // Signed; see TransactionType
	TransactionType TransactionType `json:"transactionType"`
	Category        string          `json:"category"` // Category ID from the set matching the type
	Notes           string          `json:"notes"`    // Optional free text
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields

	// CardNickname and CardLastFour are populated on reads that expand the
	// referenced card; they are not persisted on the transaction row.
	CardNickname string `json:"cardNickname,omitempty"`
	CardLastFour string `json:"cardLastFour,omitempty"`
}

// Magnitude returns the unsigned amount of the transaction.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}
