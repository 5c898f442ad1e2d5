package domain

// Currency represents a supported display currency. The set is static
// reference data used for profile preferences and formatting.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO-ish 3-letter code
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// SupportedCurrencies lists the currencies a profile may select.
var SupportedCurrencies = []Currency{
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound"},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{CurrencyCode: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{CurrencyCode: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	{CurrencyCode: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{CurrencyCode: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	{CurrencyCode: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
	{CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{CurrencyCode: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{CurrencyCode: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	{CurrencyCode: "MXN", Symbol: "$", Name: "Mexican Peso"},
	{CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{CurrencyCode: "THB", Symbol: "฿", Name: "Thai Baht"},
	{CurrencyCode: "ZAR", Symbol: "R", Name: "South African Rand"},
}

// CurrencyByCode looks up a supported currency by its code.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range SupportedCurrencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return Currency{}, false
}

// IsSupportedCurrency reports whether code is in the supported set.
func IsSupportedCurrency(code string) bool {
	_, ok := CurrencyByCode(code)
	return ok
}
