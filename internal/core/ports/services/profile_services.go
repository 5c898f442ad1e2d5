package services

import (
	"context"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/cardledger/cardledger_backend/internal/dto"
)

// ProfileSvcFacade defines profile operations. A profile is created once,
// alongside registration, and read on login for currency formatting.
type ProfileSvcFacade interface {
	CreateProfile(ctx context.Context, userID string, name string, currencyCode string) (*domain.Profile, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.Profile, error)
}
