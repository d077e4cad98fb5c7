package handlers

import (
	"net/http"
	"time"

	"wallet-api/internal/dto"
	"wallet-api/internal/errors"
	"wallet-api/internal/models"
	"wallet-api/internal/services"

	"github.com/labstack/echo/v4"
)

// StatsHandler handles monthly statistics HTTP requests
type StatsHandler struct {
	statsService services.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService services.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats returns the aggregated statistics for one calendar month
//
// Method: GET /api/v1/stats
//
// Query parameters:
//   - month: Calendar month to aggregate (YYYY-MM, default: current month)
//
// Error Responses:
//   - 400: VALIDATION_005 - Invalid month format
func (h *StatsHandler) GetStats(c echo.Context) error {
	month, err := parseMonthParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	stats := h.statsService.ComputeStats(month)

	label := month
	if label.IsZero() {
		label = time.Now()
	}

	return c.JSON(http.StatusOK, toStatsResponse(stats, label))
}

// GetTips returns qualitative advice derived from the current month
//
// Method: GET /api/v1/stats/tips
func (h *StatsHandler) GetTips(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.TipsResponse{
		Tips: h.statsService.FinancialTips(),
	})
}

func toStatsResponse(stats *models.Stats, month time.Time) dto.StatsResponse {
	shares := make([]dto.CategoryShareResponse, 0, len(stats.ExpensesByCategory))
	for _, share := range stats.ExpensesByCategory {
		shares = append(shares, dto.CategoryShareResponse{
			Category:   share.Category,
			Amount:     share.Amount.String(),
			Percentage: share.Percentage.StringFixed(1),
		})
	}

	return dto.StatsResponse{
		Month:              month.Format("2006-01"),
		TotalIncome:        stats.TotalIncome.String(),
		TotalExpenses:      stats.TotalExpenses.String(),
		TotalFixedCharges:  stats.TotalFixedCharges.String(),
		AvailableBalance:   stats.AvailableBalance.String(),
		Balance:            stats.Balance.String(),
		ExpensesByCategory: shares,
		Transactions:       toTransactionResponses(stats.Transactions),
	}
}
