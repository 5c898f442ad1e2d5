package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cardledger/cardledger_backend/internal/apperrors"
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/cardledger/cardledger_backend/internal/dto"
	"github.com/cardledger/cardledger_backend/internal/middleware"
)

// defaultCurrencyCode seeds profiles registered without a preference.
const defaultCurrencyCode = "USD"

type profileService struct {
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates a new service for profile operations.
func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return defaultCurrencyCode, nil
	}
	if !domain.IsSupportedCurrency(code) {
		return "", fmt.Errorf("unsupported currency %q: %w", code, apperrors.ErrValidation)
	}
	return code, nil
}

// CreateProfile creates the user's 1:1 profile row. Called alongside
// registration and on first OAuth sign-in.
func (s *profileService) CreateProfile(ctx context.Context, userID string, name string, currencyCode string) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	code, err := normalizeCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := domain.Profile{
		UserID:       userID,
		Name:         name,
		CurrencyCode: code,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile for user %s: %w", userID, err)
	}

	logger.Info("Profile created", slog.String("user_id", userID))
	return &profile, nil
}

// GetProfile retrieves the user's profile.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profileRepo.FindProfileByUserID(ctx, userID)
}

// UpdateProfile edits the user's display name and preferred currency.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *profile
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.CurrencyCode != nil {
		code, err := normalizeCurrency(*req.CurrencyCode)
		if err != nil {
			return nil, err
		}
		updated.CurrencyCode = code
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.profileRepo.UpdateProfile(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update profile for user %s: %w", userID, err)
	}

	logger.Info("Profile updated", slog.String("user_id", userID))
	return &updated, nil
}
