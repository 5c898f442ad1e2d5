package services

import (
	"context"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/cardledger/cardledger_backend/internal/dto"
)

// CardSvcFacade defines card lifecycle operations. UpdateCard is the direct
// edit path: it may override the derived balance as a manual correction and
// validates 0 <= balance <= limit on its own, independent of the ledger
// protocol.
type CardSvcFacade interface {
	CreateCard(ctx context.Context, userID string, req dto.CreateCardRequest) (*domain.Card, error)
	GetCardByID(ctx context.Context, userID string, cardID string) (*domain.Card, error)
	ListCards(ctx context.Context, userID string) ([]domain.Card, error)
	UpdateCard(ctx context.Context, userID string, cardID string, req dto.UpdateCardRequest) (*domain.Card, error)
	DeleteCard(ctx context.Context, userID string, cardID string) error
}
