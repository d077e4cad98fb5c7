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

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	ledgerService services.LedgerServiceInterface
	adviceService services.AdviceServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(
	ledgerService services.LedgerServiceInterface,
	adviceService services.AdviceServiceInterface,
) *GoalHandler {
	return &GoalHandler{
		ledgerService: ledgerService,
		adviceService: adviceService,
	}
}

// ListGoals returns all savings goals with their derived progress
//
// Method: GET /api/v1/goals
func (h *GoalHandler) ListGoals(c echo.Context) error {
	ledger := h.ledgerService.Ledger()

	goals := make([]dto.GoalResponse, 0, len(ledger.Goals))
	for i := range ledger.Goals {
		goals = append(goals, toGoalResponse(&ledger.Goals[i]))
	}

	return c.JSON(http.StatusOK, dto.ListGoalsResponse{
		Goals: goals,
		Total: len(goals),
	})
}

// CreateGoal adds a new savings goal
//
// Method: POST /api/v1/goals
//
// Success Response: 201 Created
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body or GOAL_002 - Invalid target amount
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	goal := models.Goal{
		Name:         req.Name,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		Deadline:     req.Deadline,
	}

	created, err := h.ledgerService.AddGoal(goal)
	if err != nil {
		if err == models.ErrInvalidTargetAmount {
			return SendError(c, errors.GoalInvalidTarget)
		}
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	response := toGoalResponse(created)
	return c.JSON(http.StatusCreated, response)
}

// UpdateGoal edits the name, target or deadline of an existing goal
//
// Method: PATCH /api/v1/goals/:id
//
// The current amount cannot be edited here; contributions go through
// POST /api/v1/goals/:id/contributions so the matching expense is recorded.
//
// Error Responses:
//   - 400: VALIDATION_003 - Invalid goal ID format
//   - 404: GOAL_001 - Goal not found
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	var req dto.UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	update := services.GoalUpdate{
		Name:     req.Name,
		Deadline: req.Deadline,
	}
	if req.TargetAmount != nil {
		target := decimal.NewFromFloat(*req.TargetAmount)
		update.TargetAmount = &target
	}

	updated, err := h.ledgerService.UpdateGoal(id, update)
	if err != nil {
		switch err {
		case services.ErrGoalNotFound:
			return SendError(c, errors.GoalNotFound)
		case models.ErrInvalidTargetAmount:
			return SendError(c, errors.GoalInvalidTarget)
		default:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
	}

	return c.JSON(http.StatusOK, toGoalResponse(updated))
}

// Contribute advances a goal's saved amount and records the matching
// savings expense in the same document write
//
// Method: POST /api/v1/goals/:id/contributions
//
// Success Response: 200 OK with the updated goal and the recorded expense
//
// Error Responses:
//   - 400: VALIDATION_003 - Invalid goal ID format
//   - 404: GOAL_001 - Goal not found
//   - 422: GOAL_003 - Non-positive contribution amount
func (h *GoalHandler) Contribute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	var req dto.ContributionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	goal, transaction, err := h.ledgerService.ApplyGoalContribution(id, decimal.NewFromFloat(req.Amount))
	if err != nil {
		switch err {
		case services.ErrGoalNotFound:
			return SendError(c, errors.GoalNotFound)
		case models.ErrInvalidContribution:
			return SendError(c, errors.GoalInvalidContribution)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.ContributionResponse{
		Goal:        toGoalResponse(goal),
		Transaction: toTransactionResponse(transaction),
	})
}

// DeleteGoal removes a goal by id
//
// Method: DELETE /api/v1/goals/:id
//
// Deleting an unknown id succeeds with no effect. Previously recorded
// contribution expenses stay in the ledger.
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	h.ledgerService.DeleteGoal(id)
	return c.NoContent(http.StatusNoContent)
}

// GetAdvice returns the saving pace needed to reach a goal by its deadline
//
// Method: GET /api/v1/goals/:id/advice
//
// Success Response: 200 OK with per-day/week/month amounts, or 204 when the
// goal is already reached and there is nothing to recommend
//
// Error Responses:
//   - 400: VALIDATION_003 - Invalid goal ID format
//   - 404: GOAL_001 - Goal not found
func (h *GoalHandler) GetAdvice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Goal ID must be a valid UUID"))
	}

	ledger := h.ledgerService.Ledger()
	goal := ledger.FindGoal(id)
	if goal == nil {
		return SendError(c, errors.GoalNotFound)
	}

	advice := h.adviceService.CalculateSavingsAdvice(goal.TargetAmount, goal.CurrentAmount, goal.Deadline)
	if advice == nil {
		return c.NoContent(http.StatusNoContent)
	}

	best := h.adviceService.BestAdvice(advice)

	return c.JSON(http.StatusOK, dto.SavingsAdviceResponse{
		RemainingAmount: advice.RemainingAmount.String(),
		DaysLeft:        advice.DaysLeft,
		PerDay:          advice.PerDay.StringFixed(2),
		PerWeek:         advice.PerWeek.StringFixed(2),
		PerMonth:        advice.PerMonth.StringFixed(2),
		IsUrgent:        advice.IsUrgent,
		Message:         advice.Message,
		Best: dto.BestAdviceResponse{
			Amount: best.Amount.StringFixed(2),
			Period: best.Period,
		},
	})
}
