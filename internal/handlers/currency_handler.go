package handlers

import (
	"net/http"
	"strings"

	"wallet-api/internal/dto"
	"wallet-api/internal/errors"
	"wallet-api/internal/models"
	"wallet-api/internal/services"

	"github.com/labstack/echo/v4"
)

// CurrencyHandler handles display currency HTTP requests
type CurrencyHandler struct {
	currencyService services.CurrencyServiceInterface
}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler(currencyService services.CurrencyServiceInterface) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// GetCatalogue returns the currencies a user can pick from
//
// Method: GET /api/v1/currencies
func (h *CurrencyHandler) GetCatalogue(c echo.Context) error {
	catalogue := h.currencyService.Catalogue()

	currencies := make([]dto.CurrencyResponse, 0, len(catalogue))
	for _, currency := range catalogue {
		currencies = append(currencies, toCurrencyResponse(currency))
	}

	return c.JSON(http.StatusOK, dto.CatalogueResponse{Currencies: currencies})
}

// GetSelected returns the current currency selection
//
// Method: GET /api/v1/currencies/selected
//
// Selected is false until the user picks a currency at first run.
func (h *CurrencyHandler) GetSelected(c echo.Context) error {
	currency, ok := h.currencyService.Selected()
	if !ok {
		return c.JSON(http.StatusOK, dto.SelectedCurrencyResponse{Selected: false})
	}

	response := toCurrencyResponse(currency)
	return c.JSON(http.StatusOK, dto.SelectedCurrencyResponse{
		Selected: true,
		Currency: &response,
	})
}

// SelectCurrency stores the display currency selection
//
// Method: PUT /api/v1/currencies/selected
//
// Changing the selection only affects formatting; stored amounts are never
// converted.
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body
//   - 422: CURRENCY_001 - Code not in the catalogue
func (h *CurrencyHandler) SelectCurrency(c echo.Context) error {
	var req dto.SelectCurrencyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	currency, err := h.currencyService.Select(strings.ToUpper(req.Code))
	if err != nil {
		return SendError(c, errors.CurrencyUnknownCode)
	}

	response := toCurrencyResponse(currency)
	return c.JSON(http.StatusOK, dto.SelectedCurrencyResponse{
		Selected: true,
		Currency: &response,
	})
}

func toCurrencyResponse(currency models.Currency) dto.CurrencyResponse {
	return dto.CurrencyResponse{
		Code:   currency.Code,
		Symbol: currency.Symbol,
		Name:   currency.Name,
		Flag:   currency.Flag,
	}
}
