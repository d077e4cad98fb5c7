package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency describes a display currency. The selected code only affects
// formatting; stored amounts are plain decimals with no attached unit.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Flag   string `json:"flag"`
}

// Currencies is the fixed catalogue a user can pick from at first run.
var Currencies = []Currency{
	{Code: "KMF", Symbol: "FC", Name: "Comorian franc", Flag: "🇰🇲"},
	{Code: "MGA", Symbol: "Ar", Name: "Malagasy ariary", Flag: "🇲🇬"},
	{Code: "EUR", Symbol: "€", Name: "Euro", Flag: "🇪🇺"},
	{Code: "USD", Symbol: "$", Name: "US dollar", Flag: "🇺🇸"},
	{Code: "GBP", Symbol: "£", Name: "Pound sterling", Flag: "🇬🇧"},
	{Code: "ZAR", Symbol: "R", Name: "South African rand", Flag: "🇿🇦"},
}

// FindCurrency looks up a catalogue entry by code.
func FindCurrency(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// IsValidCurrencyCode checks if the code is part of the catalogue
func IsValidCurrencyCode(code string) bool {
	_, ok := FindCurrency(code)
	return ok
}

// FormatAmount renders an amount for display in the given currency. Symbol
// placement and decimal precision follow the currency conventions: EUR and
// GBP trail the symbol with two decimals, USD leads with two decimals, and
// the remaining catalogue currencies use whole units. An empty or unknown
// code falls back to a bare franc suffix.
func FormatAmount(amount decimal.Decimal, code string) string {
	currency, ok := FindCurrency(code)
	if !ok {
		return fmt.Sprintf("%s F", amount.StringFixed(2))
	}

	switch currency.Code {
	case "EUR", "GBP":
		return fmt.Sprintf("%s %s", amount.StringFixed(2), currency.Symbol)
	case "USD":
		return fmt.Sprintf("%s%s", currency.Symbol, amount.StringFixed(2))
	default:
		return fmt.Sprintf("%s %s", amount.StringFixed(0), currency.Symbol)
	}
}
