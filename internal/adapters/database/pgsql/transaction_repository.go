package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cardledger/cardledger_backend/internal/apperrors"
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &transactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

const transactionSelect = `
	SELECT t.transaction_id, t.user_id, t.card_id, t.amount, t.transaction_type,
		t.category, t.notes, t.transaction_date,
		t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
		c.nickname, c.last_four_digits
	FROM transactions t
	JOIN cards c ON c.card_id = t.card_id
`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.CardID,
		&txn.Amount,
		&txn.TransactionType,
		&txn.Category,
		&txn.Notes,
		&txn.TransactionDate,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
		&txn.CardNickname,
		&txn.CardLastFour,
	); err != nil {
		return nil, err
	}
	return &txn, nil
}

// SaveTransaction inserts a new transaction row.
func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, card_id, amount, transaction_type, category, notes, transaction_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.UserID,
		txn.CardID,
		txn.Amount,
		txn.TransactionType,
		txn.Category,
		txn.Notes,
		txn.TransactionDate,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction with its card details expanded.
func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1;`

	txn, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactionsByUser retrieves a user's transactions matching the filter,
// newest transaction date first.
func (r *transactionRepository) ListTransactionsByUser(ctx context.Context, userID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(transactionSelect)
	sb.WriteString(` WHERE t.user_id = $1`)

	args := []interface{}{userID}
	addArg := func(clause string, value interface{}) {
		args = append(args, value)
		sb.WriteString(" AND " + clause + "$" + strconv.Itoa(len(args)))
	}

	if filter.CardID != "" {
		addArg("t.card_id = ", filter.CardID)
	}
	if filter.TransactionType != "" {
		addArg("t.transaction_type = ", filter.TransactionType)
	}
	if filter.Category != "" {
		addArg("t.category = ", filter.Category)
	}
	if !filter.From.IsZero() {
		addArg("t.transaction_date >= ", filter.From)
	}
	if !filter.To.IsZero() {
		addArg("t.transaction_date <= ", filter.To)
	}

	sb.WriteString(" ORDER BY t.transaction_date DESC, t.transaction_id")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(";")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for user %s: %w", userID, err)
		}
		transactions = append(transactions, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for user %s: %w", userID, err)
	}
	return transactions, nil
}

// UpdateTransaction persists edits to an existing transaction row.
func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET card_id = $2, amount = $3, transaction_type = $4, category = $5,
			notes = $6, transaction_date = $7, last_updated_at = $8, last_updated_by = $9
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.CardID,
		txn.Amount,
		txn.TransactionType,
		txn.Category,
		txn.Notes,
		txn.TransactionDate,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction row by ID.
func (r *transactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
