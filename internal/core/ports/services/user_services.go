package services

import (
	"context"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/cardledger/cardledger_backend/internal/dto"
)

// UserSvcFacade defines user identity operations backing authentication.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	// ClearRefreshToken revokes the user's stored refresh token on logout.
	ClearRefreshToken(ctx context.Context, userID string) error
	// FindOrCreateOAuthUser resolves the local user for a verified external
	// identity, creating user and profile rows on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, email string, name string) (*domain.User, error)
}
