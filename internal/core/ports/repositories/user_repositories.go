package repositories

import (
	"context"
	"time"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	// SaveUser inserts a new user row.
	// Returns apperrors.ErrDuplicate when the email is already registered.
	SaveUser(ctx context.Context, user domain.User) error
	// FindUserByID retrieves a non-deleted user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail retrieves a non-deleted user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUser persists edits to a user's mutable fields.
	UpdateUser(ctx context.Context, user domain.User) error
	// UpdateRefreshToken stores the hash and expiry of a newly issued
	// refresh token. A nil expiry with an empty hash clears the token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error
	// MarkUserDeleted soft deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error
}
