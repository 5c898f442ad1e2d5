package dto

import (
	"time"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
)

// UpdateProfileRequest defines the data allowed for updating a profile.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	CurrencyCode *string `json:"currencyCode" binding:"omitempty,len=3,supported_currency"`
}

// ProfileResponse defines the data returned for a profile.
type ProfileResponse struct {
	UserID         string    `json:"userID"`
	Name           string    `json:"name"`
	CurrencyCode   string    `json:"currencyCode"`
	CurrencySymbol string    `json:"currencySymbol"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	symbol := ""
	if cur, ok := domain.CurrencyByCode(p.CurrencyCode); ok {
		symbol = cur.Symbol
	}
	return ProfileResponse{
		UserID:         p.UserID,
		Name:           p.Name,
		CurrencyCode:   p.CurrencyCode,
		CurrencySymbol: symbol,
		LastUpdatedAt:  p.LastUpdatedAt,
	}
}
