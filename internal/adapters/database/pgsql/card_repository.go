package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cardledger/cardledger_backend/internal/apperrors"
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type cardRepository struct {
	pool *pgxpool.Pool
}

// NewCardRepository creates a new repository for card data.
func NewCardRepository(pool *pgxpool.Pool) portsrepo.CardRepositoryFacade {
	return &cardRepository{pool: pool}
}

var _ portsrepo.CardRepositoryFacade = (*cardRepository)(nil)

const cardColumns = `card_id, user_id, nickname, last_four_digits, expiry_month, expiry_year, credit_limit, current_balance, statement_day, due_day, created_at, created_by, last_updated_at, last_updated_by`

func scanCard(row pgx.Row) (*domain.Card, error) {
	var card domain.Card
	if err := row.Scan(
		&card.CardID,
		&card.UserID,
		&card.Nickname,
		&card.LastFourDigits,
		&card.ExpiryMonth,
		&card.ExpiryYear,
		&card.CreditLimit,
		&card.CurrentBalance,
		&card.StatementDay,
		&card.DueDay,
		&card.CreatedAt,
		&card.CreatedBy,
		&card.LastUpdatedAt,
		&card.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	return &card, nil
}

// SaveCard inserts a new card row.
func (r *cardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	query := `
		INSERT INTO cards (` + cardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		card.CardID,
		card.UserID,
		card.Nickname,
		card.LastFourDigits,
		card.ExpiryMonth,
		card.ExpiryYear,
		card.CreditLimit,
		card.CurrentBalance,
		card.StatementDay,
		card.DueDay,
		card.CreatedAt,
		card.CreatedBy,
		card.LastUpdatedAt,
		card.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save card %s: %w", card.CardID, err)
	}
	return nil
}

// FindCardByID retrieves a card by its ID.
func (r *cardRepository) FindCardByID(ctx context.Context, cardID string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE card_id = $1;`

	card, err := scanCard(r.pool.QueryRow(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find card by ID %s: %w", cardID, err)
	}
	return card, nil
}

// ListCardsByUser retrieves all cards owned by a user, newest first.
func (r *cardRepository) ListCardsByUser(ctx context.Context, userID string) ([]domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards for user %s: %w", userID, err)
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card row for user %s: %w", userID, err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows for user %s: %w", userID, err)
	}
	return cards, nil
}

// UpdateCard persists edits to a card's own fields.
func (r *cardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	query := `
		UPDATE cards
		SET nickname = $2, last_four_digits = $3, expiry_month = $4, expiry_year = $5,
			credit_limit = $6, current_balance = $7, statement_day = $8, due_day = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE card_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		card.CardID,
		card.Nickname,
		card.LastFourDigits,
		card.ExpiryMonth,
		card.ExpiryYear,
		card.CreditLimit,
		card.CurrentBalance,
		card.StatementDay,
		card.DueDay,
		card.LastUpdatedAt,
		card.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update card %s: %w", card.CardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateCardBalance moves a card's cached balance and refreshes its audit
// fields. This is the second half of every transaction mutation.
func (r *cardRepository) UpdateCardBalance(ctx context.Context, cardID string, newBalance decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE cards
		SET current_balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE card_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, cardID, newBalance, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update balance for card %s: %w", cardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCard removes a card and its transactions within a DB transaction.
// The schema's ON DELETE CASCADE would cover the transactions too; the
// explicit delete keeps the cascade decision visible in code.
func (r *cardRepository) DeleteCard(ctx context.Context, cardID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE card_id = $1;`, cardID); err != nil {
		return fmt.Errorf("failed to delete transactions for card %s: %w", cardID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM cards WHERE card_id = $1;`, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete card %s: %w", cardID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete of card %s: %w", cardID, err)
	}
	return nil
}
