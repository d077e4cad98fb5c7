package services

import (
	"errors"

	"wallet-api/internal/models"
	"wallet-api/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency code")
)

// currencyService implements CurrencyServiceInterface. The selection is a
// single process-wide code chosen at first run; it only affects display
// formatting, never stored amounts.
type currencyService struct {
	repo repositories.LedgerRepositoryInterface
}

// NewCurrencyService creates a currency service over the document store
func NewCurrencyService(repo repositories.LedgerRepositoryInterface) CurrencyServiceInterface {
	return &currencyService{repo: repo}
}

// Selected returns the chosen currency, or false when none is set yet
func (s *currencyService) Selected() (models.Currency, bool) {
	code := s.repo.LoadCurrency()
	if code == "" {
		return models.Currency{}, false
	}
	return models.FindCurrency(code)
}

// Select stores the currency selection after checking it against the catalogue
func (s *currencyService) Select(code string) (models.Currency, error) {
	currency, ok := models.FindCurrency(code)
	if !ok {
		return models.Currency{}, ErrUnknownCurrency
	}

	s.repo.SaveCurrency(code)
	return currency, nil
}

// Format renders an amount in the selected currency
func (s *currencyService) Format(amount decimal.Decimal) string {
	return models.FormatAmount(amount, s.repo.LoadCurrency())
}

// Catalogue returns the currencies a user can pick from
func (s *currencyService) Catalogue() []models.Currency {
	return models.Currencies
}
