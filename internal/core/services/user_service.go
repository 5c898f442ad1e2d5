package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cardledger/cardledger_backend/internal/apperrors"
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/dto"
	"github.com/cardledger/cardledger_backend/internal/middleware"
	"github.com/cardledger/cardledger_backend/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	userRepo   portsrepo.UserRepositoryFacade
	profileSvc portssvc.ProfileSvcFacade
}

// NewUserService creates a new service for user identity operations. The
// profile service is needed because registration creates the 1:1 profile
// row in the same flow.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, profileSvc portssvc.ProfileSvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, profileSvc: profileSvc}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new account and its profile.
func (s *userService) CreateUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("email already registered: %w", err)
		}
		return nil, err
	}

	if _, err := s.profileSvc.CreateProfile(ctx, user.UserID, user.Name, req.CurrencyCode); err != nil {
		logger.Error("Profile creation failed after user registration",
			slog.String("user_id", user.UserID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByEmail retrieves a user by email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// UpdateUser edits a user's mutable fields.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *user
	if req.Name != nil {
		updated.Name = *req.Name
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser soft deletes a user.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now()); err != nil {
		return err
	}
	logger.Info("User deleted", slog.String("user_id", userID))
	return nil
}

// ClearRefreshToken revokes the user's refresh token on logout.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil)
}

// FindOrCreateOAuthUser resolves the local user for a verified external
// identity. First sign-in creates the user (no password hash) and profile.
func (s *userService) FindOrCreateOAuthUser(ctx context.Context, email string, name string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	newUser := domain.User{
		UserID: uuid.NewString(),
		Email:  email,
		Name:   name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, err
	}
	if _, err := s.profileSvc.CreateProfile(ctx, newUser.UserID, newUser.Name, ""); err != nil {
		logger.Error("Profile creation failed after OAuth sign-up",
			slog.String("user_id", newUser.UserID),
			slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("User created via OAuth", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
