package domain

import (
	"github.com/shopspring/decimal"
)

// Card represents a registered credit card within the core domain.
// CurrentBalance is a cached aggregate: it must equal the sum of the signed
// amounts of the card's transactions, and every transaction mutation is
// responsible for reconciling it incrementally.
type Card struct {
	CardID         string          `json:"cardID"` // Primary Key (UUID)
	UserID         string          `json:"userID"` // Owner, FK -> users.user_id
	Nickname       string          `json:"nickname"`
	LastFourDigits string          `json:"lastFourDigits"` // Exactly 4 numeric characters
	ExpiryMonth    int             `json:"expiryMonth"`    // 1-12
	ExpiryYear     int             `json:"expiryYear"`     // 0-99 (two digit year)
	CreditLimit    decimal.Decimal `json:"creditLimit"`    // Positive
	CurrentBalance decimal.Decimal `json:"currentBalance"` // Must not exceed CreditLimit
	StatementDay   *int            `json:"statementDay,omitempty"` // 1-31, optional
	DueDay         *int            `json:"dueDay,omitempty"`       // 1-31, optional
	AuditFields
}

// AvailableCredit returns the derived headroom on the card. It is a display
// value and is never stored.
func (c Card) AvailableCredit() decimal.Decimal {
	return c.CreditLimit.Sub(c.CurrentBalance)
}
