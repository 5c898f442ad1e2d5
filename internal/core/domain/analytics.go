package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRange selects the time window for a spending summary. The window
// is [now - range, now], inclusive of now.
type AnalyticsRange string

const (
	RangeWeek  AnalyticsRange = "week"
	RangeMonth AnalyticsRange = "month"
	RangeYear  AnalyticsRange = "year"
)

// CategorySpend is one row of the expense-category breakdown.
type CategorySpend struct {
	CategoryID string          `json:"categoryID"`
	Label      string          `json:"label"`
	Total      decimal.Decimal `json:"total"`      // Sum of expense magnitudes
	Percentage decimal.Decimal `json:"percentage"` // Share of total expenses, 0-100
}

// SpendingSummary aggregates a user's transactions over a time window.
// TotalPayments is reported as a positive magnitude.
type SpendingSummary struct {
	Range         AnalyticsRange  `json:"range"`
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	// Breakdown covers expense transactions only, sorted descending by
	// Total. Empty when there are no expenses in the window.
	Breakdown []CategorySpend `json:"breakdown"`
}
