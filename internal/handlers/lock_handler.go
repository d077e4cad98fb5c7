package handlers

import (
	stderrors "errors"
	"net/http"

	"wallet-api/internal/dto"
	"wallet-api/internal/errors"
	"wallet-api/internal/models"
	"wallet-api/internal/services"

	"github.com/labstack/echo/v4"
)

// LockHandler handles device-lock HTTP requests
type LockHandler struct {
	lockService services.LockServiceInterface
}

// NewLockHandler creates a new lock handler
func NewLockHandler(lockService services.LockServiceInterface) *LockHandler {
	return &LockHandler{lockService: lockService}
}

// GetStatus describes the current lock configuration
//
// Method: GET /api/v1/lock/status
func (h *LockHandler) GetStatus(c echo.Context) error {
	status := h.lockService.Status()

	return c.JSON(http.StatusOK, dto.LockStatusResponse{
		Enabled:         status.Enabled,
		PinConfigured:   status.PinConfigured,
		DeviceAvailable: status.DeviceAvailable,
	})
}

// SetPin configures the numeric fallback PIN
//
// Method: PUT /api/v1/lock/pin
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body or PIN format
func (h *LockHandler) SetPin(c echo.Context) error {
	var req dto.SetPinRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.lockService.SetPin(req.Pin); err != nil {
		if stderrors.Is(err, services.ErrPinInvalid) {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("PIN must be 4 to 8 digits"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "PIN configured"})
}

// UnlockWithPin checks the fallback PIN and issues a session token
//
// Method: POST /api/v1/lock/unlock/pin
//
// Error Responses:
//   - 401: LOCK_005 - Incorrect PIN
//   - 404: LOCK_006 - No PIN configured yet
func (h *LockHandler) UnlockWithPin(c echo.Context) error {
	var req dto.UnlockPinRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	token, expiresAt, err := h.lockService.UnlockWithPin(req.Pin)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrPinNotSet):
			return SendError(c, errors.LockPinNotSet)
		case stderrors.Is(err, services.ErrPinIncorrect):
			return SendError(c, errors.LockPinIncorrect)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.SessionTokenResponse{
		Token:     token,
		TokenType: "Bearer",
		Method:    models.UnlockMethodPin,
		ExpiresAt: expiresAt,
	})
}

// UnlockWithDevice judges the outcome of the platform credential prompt
//
// Method: POST /api/v1/lock/unlock/device
//
// A successful prompt and a "no security method configured" outcome both
// unlock the wallet; any other outcome keeps it locked for retry.
//
// Error Responses:
//   - 401: LOCK_004 - Authentication failed
func (h *LockHandler) UnlockWithDevice(c echo.Context) error {
	var req dto.UnlockDeviceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	result := services.AuthResult{
		Success:      req.Success,
		Code:         req.Code,
		NotAvailable: req.NotAvailable,
	}

	token, expiresAt, err := h.lockService.UnlockWithDevice(result)
	if err != nil {
		return SendError(c, errors.LockAuthFailed)
	}

	method := models.UnlockMethodDevice
	if req.NotAvailable {
		method = models.UnlockMethodNone
	}

	return c.JSON(http.StatusOK, dto.SessionTokenResponse{
		Token:     token,
		TokenType: "Bearer",
		Method:    method,
		ExpiresAt: expiresAt,
	})
}
