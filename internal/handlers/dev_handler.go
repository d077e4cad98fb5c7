package handlers

import (
	"net/http"

	"wallet-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleData services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleData services.SampleDataServiceInterface) *DevHandler {
	return &DevHandler{sampleData: sampleData}
}

// SeedSampleData replaces the ledger with generated demo data
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 40, max: 1000)
//
// Success Response: 200 OK with the generated document counts
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	count := getIntQueryParam(c, "count", 40)
	if count < 1 {
		count = 1
	}
	if count > 1000 {
		count = 1000
	}

	ledger := h.sampleData.Seed(count)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "sample data generated successfully",
		"transactions":  len(ledger.Transactions),
		"goals":         len(ledger.Goals),
		"fixed_charges": len(ledger.FixedCharges),
	})
}
