package repositories

import (
	"context"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
)

// ProfileRepositoryFacade defines persistence operations for user profiles.
type ProfileRepositoryFacade interface {
	// SaveProfile inserts the profile row created alongside a new user.
	SaveProfile(ctx context.Context, profile domain.Profile) error
	// FindProfileByUserID retrieves the profile for a user.
	// Returns apperrors.ErrNotFound when no row matches.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	// UpdateProfile persists edits to a profile.
	UpdateProfile(ctx context.Context, profile domain.Profile) error
}
