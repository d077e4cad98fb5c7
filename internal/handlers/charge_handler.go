package handlers

import (
	"net/http"

	"wallet-api/internal/dto"
	"wallet-api/internal/errors"
	"wallet-api/internal/models"
	"wallet-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ChargeHandler handles fixed charge HTTP requests
type ChargeHandler struct {
	ledgerService services.LedgerServiceInterface
}

// NewChargeHandler creates a new fixed charge handler
func NewChargeHandler(ledgerService services.LedgerServiceInterface) *ChargeHandler {
	return &ChargeHandler{ledgerService: ledgerService}
}

// ListCharges returns all fixed charges with their monthly total
//
// Method: GET /api/v1/charges
func (h *ChargeHandler) ListCharges(c echo.Context) error {
	ledger := h.ledgerService.Ledger()

	charges := make([]dto.FixedChargeResponse, 0, len(ledger.FixedCharges))
	for i := range ledger.FixedCharges {
		charges = append(charges, toFixedChargeResponse(&ledger.FixedCharges[i]))
	}

	return c.JSON(http.StatusOK, dto.ListFixedChargesResponse{
		FixedCharges: charges,
		Total:        len(charges),
		MonthlyTotal: ledger.TotalFixedCharges().String(),
	})
}

// CreateCharge adds a new recurring monthly charge
//
// Method: POST /api/v1/charges
//
// Success Response: 201 Created
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body or CHARGE_002 - Invalid charge amount
func (h *ChargeHandler) CreateCharge(c echo.Context) error {
	var req dto.CreateFixedChargeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	charge := models.FixedCharge{
		Name:       req.Name,
		Amount:     decimal.NewFromFloat(req.Amount),
		PaymentDay: req.PaymentDay,
	}

	created, err := h.ledgerService.AddFixedCharge(charge)
	if err != nil {
		if err == models.ErrInvalidChargeAmount {
			return SendError(c, errors.ChargeInvalidAmount)
		}
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusCreated, toFixedChargeResponse(created))
}

// UpdateCharge edits an existing fixed charge
//
// Method: PATCH /api/v1/charges/:id
//
// Error Responses:
//   - 400: VALIDATION_003 - Invalid charge ID format
//   - 404: CHARGE_001 - Fixed charge not found
func (h *ChargeHandler) UpdateCharge(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Charge ID must be a valid UUID"))
	}

	var req dto.UpdateFixedChargeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	update := services.FixedChargeUpdate{
		Name:       req.Name,
		PaymentDay: req.PaymentDay,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		update.Amount = &amount
	}

	updated, err := h.ledgerService.UpdateFixedCharge(id, update)
	if err != nil {
		switch err {
		case services.ErrFixedChargeNotFound:
			return SendError(c, errors.ChargeNotFound)
		case models.ErrInvalidChargeAmount:
			return SendError(c, errors.ChargeInvalidAmount)
		default:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
	}

	return c.JSON(http.StatusOK, toFixedChargeResponse(updated))
}

// DeleteCharge removes a fixed charge by id
//
// Method: DELETE /api/v1/charges/:id
//
// Deleting an unknown id succeeds with no effect.
func (h *ChargeHandler) DeleteCharge(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Charge ID must be a valid UUID"))
	}

	h.ledgerService.DeleteFixedCharge(id)
	return c.NoContent(http.StatusNoContent)
}
