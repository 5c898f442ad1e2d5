package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardledger/cardledger_backend/internal/apperrors"
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new repository for profile data.
func NewProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &profileRepository{pool: pool}
}

var _ portsrepo.ProfileRepositoryFacade = (*profileRepository)(nil)

// SaveProfile inserts the profile row created alongside a new user.
func (r *profileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, name, currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		profile.UserID,
		profile.Name,
		profile.CurrencyCode,
		profile.CreatedAt,
		profile.CreatedBy,
		profile.LastUpdatedAt,
		profile.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile for user %s: %w", profile.UserID, err)
	}
	return nil
}

// FindProfileByUserID retrieves the profile for a user.
func (r *profileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT user_id, name, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM profiles
		WHERE user_id = $1;
	`
	var profile domain.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.CurrencyCode,
		&profile.CreatedAt,
		&profile.CreatedBy,
		&profile.LastUpdatedAt,
		&profile.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// UpdateProfile persists edits to a profile.
func (r *profileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $2, currency_code = $3, last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		profile.UserID,
		profile.Name,
		profile.CurrencyCode,
		profile.LastUpdatedAt,
		profile.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile for user %s: %w", profile.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
