package services

import (
	"context"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
)

// AnalyticsSvcFacade computes time-windowed aggregates over a user's
// transactions.
type AnalyticsSvcFacade interface {
	GetSpendingSummary(ctx context.Context, userID string, analyticsRange domain.AnalyticsRange) (*domain.SpendingSummary, error)
}
