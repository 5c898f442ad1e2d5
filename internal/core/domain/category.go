package domain

// Category is a static reference triple; the expense and payment sets are
// immutable configuration, not user data.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// ExpenseCategories is the fixed category set selectable for expense
// transactions.
var ExpenseCategories = []Category{
	{ID: "food_dining", Label: "Food & Dining", Icon: "food"},
	{ID: "shopping", Label: "Shopping", Icon: "shopping"},
	{ID: "transportation", Label: "Transportation", Icon: "car"},
	{ID: "entertainment", Label: "Entertainment", Icon: "movie"},
	{ID: "utilities", Label: "Utilities", Icon: "lightning-bolt"},
	{ID: "health", Label: "Health", Icon: "medical-bag"},
	{ID: "groceries", Label: "Groceries", Icon: "cart"},
	{ID: "travel", Label: "Travel", Icon: "airplane"},
	{ID: "education", Label: "Education", Icon: "school"},
	{ID: "bills", Label: "Bills", Icon: "file-document"},
	{ID: "rent", Label: "Rent", Icon: "home"},
	{ID: "investment", Label: "Investment", Icon: "chart-line"},
	{ID: "gifts", Label: "Gifts", Icon: "gift"},
	{ID: "personal_care", Label: "Personal Care", Icon: "face-man"},
	{ID: "expense_other", Label: "Other", Icon: "dots-horizontal"},
}

// PaymentCategories is the fixed category set selectable for payment
// transactions.
var PaymentCategories = []Category{
	{ID: "salary", Label: "Salary", Icon: "cash"},
	{ID: "refund", Label: "Refund", Icon: "cash-refund"},
	{ID: "investment_return", Label: "Investment Return", Icon: "chart-line"},
	{ID: "gift", Label: "Gift", Icon: "gift"},
	{ID: "payment_other", Label: "Other", Icon: "dots-horizontal"},
}

// CategoriesForType returns the category set matching the transaction type.
func CategoriesForType(t TransactionType) []Category {
	if t == Payment {
		return PaymentCategories
	}
	return ExpenseCategories
}

// IsKnownCategory reports whether id belongs to the category set matching the
// transaction type.
func IsKnownCategory(t TransactionType, id string) bool {
	for _, c := range CategoriesForType(t) {
		if c.ID == id {
			return true
		}
	}
	return false
}

// CategoryByID looks up a category by id within the set matching the type.
func CategoryByID(t TransactionType, id string) (Category, bool) {
	for _, c := range CategoriesForType(t) {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
