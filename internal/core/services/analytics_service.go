package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	portsrepo "github.com/cardledger/cardledger_backend/internal/core/ports/repositories"
	portssvc "github.com/cardledger/cardledger_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// percentagePlaces is the rounding applied to breakdown percentages.
const percentagePlaces = 2

var oneHundred = decimal.NewFromInt(100)

type analyticsService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	now             func() time.Time
}

// NewAnalyticsService creates a new service computing spending summaries.
func NewAnalyticsService(transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.AnalyticsSvcFacade {
	return &analyticsService{transactionRepo: transactionRepo, now: time.Now}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// windowStart computes the inclusive lower bound for the range ending at now.
func windowStart(now time.Time, analyticsRange domain.AnalyticsRange) (time.Time, error) {
	switch analyticsRange {
	case domain.RangeWeek:
		return now.AddDate(0, 0, -7), nil
	case domain.RangeMonth:
		return now.AddDate(0, -1, 0), nil
	case domain.RangeYear:
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown analytics range %q", analyticsRange)
	}
}

// GetSpendingSummary aggregates the user's transactions over the window:
// expense and payment magnitude totals, plus a per-category breakdown of
// expenses with each category's share of the expense total.
func (s *analyticsService) GetSpendingSummary(ctx context.Context, userID string, analyticsRange domain.AnalyticsRange) (*domain.SpendingSummary, error) {
	now := s.now()
	from, err := windowStart(now, analyticsRange)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByUser(ctx, userID, portsrepo.TransactionListFilter{
		From: from,
		To:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for summary: %w", err)
	}

	summary := &domain.SpendingSummary{
		Range:         analyticsRange,
		From:          from,
		To:            now,
		TotalExpenses: decimal.Zero,
		TotalPayments: decimal.Zero,
		Breakdown:     []domain.CategorySpend{},
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		magnitude := txn.Magnitude()
		switch txn.TransactionType {
		case domain.Expense:
			summary.TotalExpenses = summary.TotalExpenses.Add(magnitude)
			byCategory[txn.Category] = byCategory[txn.Category].Add(magnitude)
		case domain.Payment:
			summary.TotalPayments = summary.TotalPayments.Add(magnitude)
		}
	}

	// No expenses means no breakdown; dividing by a zero total is never
	// attempted.
	if summary.TotalExpenses.IsZero() {
		return summary, nil
	}

	for categoryID, total := range byCategory {
		label := categoryID
		if category, ok := domain.CategoryByID(domain.Expense, categoryID); ok {
			label = category.Label
		}
		summary.Breakdown = append(summary.Breakdown, domain.CategorySpend{
			CategoryID: categoryID,
			Label:      label,
			Total:      total,
			Percentage: total.Mul(oneHundred).DivRound(summary.TotalExpenses, percentagePlaces),
		})
	}
	sort.Slice(summary.Breakdown, func(i, j int) bool {
		a, b := summary.Breakdown[i], summary.Breakdown[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.CategoryID < b.CategoryID
	})

	return summary, nil
}
