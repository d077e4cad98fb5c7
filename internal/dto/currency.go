package dto

// Currency Request DTOs

// SelectCurrencyRequest contains the currency code to select
type SelectCurrencyRequest struct {
	Code string `json:"code" validate:"required,currency_code"`
}

// Currency Response DTOs

// CurrencyResponse represents one catalogue entry
type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Flag   string `json:"flag"`
}

// SelectedCurrencyResponse represents the current selection. Selected is
// false until the user picks a currency at first run.
type SelectedCurrencyResponse struct {
	Selected bool              `json:"selected"`
	Currency *CurrencyResponse `json:"currency,omitempty"`
}

// CatalogueResponse lists the currencies a user can pick from
type CatalogueResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}
