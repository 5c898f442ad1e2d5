package domain_test

import (
	"testing"

	"github.com/cardledger/cardledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionType_SignedAmount(t *testing.T) {
	tests := []struct {
		name      string
		txnType   domain.TransactionType
		magnitude decimal.Decimal
		want      decimal.Decimal
	}{
		{
			name:      "expense is stored positive",
			txnType:   domain.Expense,
			magnitude: decimal.NewFromInt(150),
			want:      decimal.NewFromInt(150),
		},
		{
			name:      "payment is stored negative",
			txnType:   domain.Payment,
			magnitude: decimal.NewFromInt(150),
			want:      decimal.NewFromInt(-150),
		},
		{
			name:      "fractional magnitude keeps precision",
			txnType:   domain.Payment,
			magnitude: decimal.RequireFromString("0.01"),
			want:      decimal.RequireFromString("-0.01"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.txnType.SignedAmount(tt.magnitude)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestTransaction_Magnitude(t *testing.T) {
	expense := domain.Transaction{Amount: decimal.NewFromInt(75), TransactionType: domain.Expense}
	payment := domain.Transaction{Amount: decimal.NewFromInt(-75), TransactionType: domain.Payment}

	assert.True(t, expense.Magnitude().Equal(decimal.NewFromInt(75)))
	assert.True(t, payment.Magnitude().Equal(decimal.NewFromInt(75)))
}

func TestIsKnownCategory(t *testing.T) {
	assert.True(t, domain.IsKnownCategory(domain.Expense, "groceries"))
	assert.True(t, domain.IsKnownCategory(domain.Payment, "salary"))
	// Category sets do not cross transaction types.
	assert.False(t, domain.IsKnownCategory(domain.Expense, "salary"))
	assert.False(t, domain.IsKnownCategory(domain.Payment, "groceries"))
	assert.False(t, domain.IsKnownCategory(domain.Expense, "unknown"))
}

func TestCard_AvailableCredit(t *testing.T) {
	card := domain.Card{
		CreditLimit:    decimal.NewFromInt(1000),
		CurrentBalance: decimal.NewFromInt(250),
	}
	assert.True(t, card.AvailableCredit().Equal(decimal.NewFromInt(750)))

	// Overpaid card has headroom above the limit.
	card.CurrentBalance = decimal.NewFromInt(-50)
	assert.True(t, card.AvailableCredit().Equal(decimal.NewFromInt(1050)))
}
