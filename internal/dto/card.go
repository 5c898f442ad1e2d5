package dto

import (
	"time"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCardRequest defines the data needed to register a new card.
type CreateCardRequest struct {
	Nickname       string          `json:"nickname" binding:"required"`
	LastFourDigits string          `json:"lastFourDigits" binding:"required,len=4,numeric"`
	ExpiryMonth    int             `json:"expiryMonth" binding:"required,min=1,max=12"`
	ExpiryYear     int             `json:"expiryYear" binding:"min=0,max=99"`
	CreditLimit    decimal.Decimal `json:"creditLimit" binding:"required"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	StatementDay   *int            `json:"statementDay" binding:"omitempty,min=1,max=31"`
	DueDay         *int            `json:"dueDay" binding:"omitempty,min=1,max=31"`
}

// UpdateCardRequest defines the data allowed for editing a card's own fields.
// Pointers distinguish omitted fields from zero-value updates. CurrentBalance
// is the manual-correction escape hatch: it directly overrides the derived
// balance and is validated against the (possibly updated) credit limit.
type UpdateCardRequest struct {
	Nickname       *string          `json:"nickname"`
	LastFourDigits *string          `json:"lastFourDigits" binding:"omitempty,len=4,numeric"`
	ExpiryMonth    *int             `json:"expiryMonth" binding:"omitempty,min=1,max=12"`
	ExpiryYear     *int             `json:"expiryYear" binding:"omitempty,min=0,max=99"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
	StatementDay   *int             `json:"statementDay" binding:"omitempty,min=1,max=31"`
	DueDay         *int             `json:"dueDay" binding:"omitempty,min=1,max=31"`
}

// CardResponse defines the data returned for a card.
type CardResponse struct {
	CardID          string          `json:"cardID"`
	Nickname        string          `json:"nickname"`
	LastFourDigits  string          `json:"lastFourDigits"`
	ExpiryMonth     int             `json:"expiryMonth"`
	ExpiryYear      int             `json:"expiryYear"`
	CreditLimit     decimal.Decimal `json:"creditLimit"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	AvailableCredit decimal.Decimal `json:"availableCredit"`
	StatementDay    *int            `json:"statementDay,omitempty"`
	DueDay          *int            `json:"dueDay,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToCardResponse converts a domain.Card to CardResponse DTO.
func ToCardResponse(card *domain.Card) CardResponse {
	return CardResponse{
		CardID:          card.CardID,
		Nickname:        card.Nickname,
		LastFourDigits:  card.LastFourDigits,
		ExpiryMonth:     card.ExpiryMonth,
		ExpiryYear:      card.ExpiryYear,
		CreditLimit:     card.CreditLimit,
		CurrentBalance:  card.CurrentBalance,
		AvailableCredit: card.AvailableCredit(),
		StatementDay:    card.StatementDay,
		DueDay:          card.DueDay,
		CreatedAt:       card.CreatedAt,
		LastUpdatedAt:   card.LastUpdatedAt,
	}
}

// ListCardsResponse wraps the list of cards.
type ListCardsResponse struct {
	Cards []CardResponse `json:"cards"`
}

// ToListCardsResponse converts a slice of domain.Card to ListCardsResponse.
func ToListCardsResponse(cards []domain.Card) ListCardsResponse {
	res := make([]CardResponse, len(cards))
	for i, card := range cards {
		res[i] = ToCardResponse(&card)
	}
	return ListCardsResponse{Cards: res}
}
