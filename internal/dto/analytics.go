package dto

import (
	"github.com/cardledger/cardledger_backend/internal/core/domain"
)

// AnalyticsParams defines query parameters for the spending summary.
type AnalyticsParams struct {
	Range string `form:"range,default=month" binding:"omitempty,oneof=week month year"`
}

// SpendingSummaryResponse wraps the aggregated spending summary. The
// display totals are rendered in the profile's preferred currency.
type SpendingSummaryResponse struct {
	Summary              domain.SpendingSummary `json:"summary"`
	DisplayTotalExpenses string                 `json:"displayTotalExpenses,omitempty"`
	DisplayTotalPayments string                 `json:"displayTotalPayments,omitempty"`
}
