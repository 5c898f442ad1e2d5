package utils

import (
	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrency renders an amount with the currency's symbol prefixed,
// rounded to two decimal places.
// Example: amount 12.345 with USD returns "$12.35".
func FormatWithCurrency(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol + amount.Round(2).String()
}

// FormatWithPrecision formats an amount with the given precision.
// This is a convenience function when no currency context is available.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
