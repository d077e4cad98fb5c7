package handlers

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"wallet-api/internal/dto"
	"wallet-api/internal/errors"
	"wallet-api/internal/services"

	"github.com/labstack/echo/v4"
)

// Backup uploads larger than this are rejected before parsing.
const maxImportSize = 10 << 20

// BackupHandler handles backup and restore HTTP requests
type BackupHandler struct {
	backupService services.BackupServiceInterface
	ledgerService services.LedgerServiceInterface
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(
	backupService services.BackupServiceInterface,
	ledgerService services.LedgerServiceInterface,
) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
		ledgerService: ledgerService,
	}
}

// Export downloads the whole ledger document as a JSON file
//
// Method: GET /api/v1/backup/export
//
// Success Response: 200 OK with Content-Disposition attachment
func (h *BackupHandler) Export(c echo.Context) error {
	filename, data, err := h.backupService.Export()
	if err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/json", data)
}

// Import replaces the whole ledger document with an uploaded backup file
//
// Method: POST /api/v1/backup/import
//
// The body is the raw backup JSON. The current document is left unchanged
// when the upload is rejected.
//
// Error Responses:
//   - 400: BACKUP_001 - Body is not valid JSON
//   - 422: BACKUP_002 - JSON does not match the ledger document shape
func (h *BackupHandler) Import(c echo.Context) error {
	data, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportSize))
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Failed to read request body"))
	}

	if err := h.backupService.Import(data); err != nil {
		switch {
		case stderrors.Is(err, services.ErrBackupInvalidJSON):
			return SendError(c, errors.BackupInvalidFile)
		case stderrors.Is(err, services.ErrBackupInvalidShape):
			return SendError(c, errors.BackupInvalidShape, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	ledger := h.ledgerService.Ledger()
	return c.JSON(http.StatusOK, dto.ImportResponse{
		Message:      "backup restored successfully",
		Transactions: len(ledger.Transactions),
		Goals:        len(ledger.Goals),
		FixedCharges: len(ledger.FixedCharges),
	})
}

// Email sends the current backup file to the given address
//
// Method: POST /api/v1/backup/email
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body or address
//   - 502: BACKUP_003 - Relay rejected or unreachable
func (h *BackupHandler) Email(c echo.Context) error {
	var req dto.EmailBackupRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.backupService.EmailBackup(req.To); err != nil {
		if stderrors.Is(err, services.ErrRelayNotConfigured) {
			return SendError(c, errors.BackupRelayFailed, errors.WithDetails("Email relay is not configured"))
		}
		return SendError(c, errors.BackupRelayFailed)
	}

	return c.JSON(http.StatusOK, dto.EmailBackupResponse{
		Message: "backup email sent",
		To:      req.To,
	})
}
