package domain

import "github.com/shopspring/decimal"

// ApplyState classifies the outcome of a ledger mutation. Transaction and
// card writes are two sequential store calls, not one atomic unit, so a
// mutation can land in a partially-applied state when the second call fails.
// Callers get that told to them explicitly instead of having it hidden.
type ApplyState string

const (
	// Applied means every store write of the mutation succeeded.
	Applied ApplyState = "APPLIED"
	// PartiallyApplied means at least one write succeeded before a later
	// write failed; the transaction row and card balances are inconsistent
	// until corrected.
	PartiallyApplied ApplyState = "PARTIALLY_APPLIED"
	// Rejected means the mutation failed validation or a guard before any
	// write was issued.
	Rejected ApplyState = "REJECTED"
)

// LedgerApplication reports what a ledger mutation actually did.
type LedgerApplication struct {
	State ApplyState `json:"state"`
	// Transaction is the row written (create/edit) or removed (delete), when
	// the mutation got that far.
	Transaction *Transaction `json:"transaction,omitempty"`
	// TransactionWritten reports whether the transaction-row write succeeded.
	TransactionWritten bool `json:"transactionWritten"`
	// CardsUpdated maps card ID to the balance the card was moved to, for
	// each card write that succeeded.
	CardsUpdated map[string]decimal.Decimal `json:"cardsUpdated,omitempty"`
}

// FullyApplied reports whether the mutation completed without leaving an
// inconsistency window.
func (a LedgerApplication) FullyApplied() bool {
	return a.State == Applied
}
