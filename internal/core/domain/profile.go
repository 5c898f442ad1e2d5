package domain

// Profile holds per-user display preferences, 1:1 with the user identity.
// It is read on login to drive currency formatting and is not otherwise part
// of the ledger protocol.
type Profile struct {
	UserID       string `json:"userID"` // Primary Key, FK -> users.user_id
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"` // Preferred display currency
	AuditFields
}
