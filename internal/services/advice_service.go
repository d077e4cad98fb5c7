package services

import (
	"fmt"
	"time"

	"wallet-api/internal/models"

	"github.com/shopspring/decimal"
)

// Deadlines closer than this are flagged urgent.
const urgentThresholdDays = 30

// adviceService implements AdviceServiceInterface
type adviceService struct {
	now func() time.Time
}

// NewAdviceService creates a savings advice service
func NewAdviceService() AdviceServiceInterface {
	return &adviceService{now: time.Now}
}

// CalculateSavingsAdvice computes the saving pace needed to reach a goal
// target by its deadline. Returns nil when the goal is already met.
func (s *adviceService) CalculateSavingsAdvice(targetAmount, currentAmount decimal.Decimal, deadline time.Time) *models.SavingsAdvice {
	remaining := targetAmount.Sub(currentAmount)
	if !remaining.IsPositive() {
		return nil
	}

	today := s.now()
	daysLeft := fullDaysBetween(today, deadline)

	// Deadline already passed: nothing sensible to recommend per period.
	if daysLeft < 0 {
		return &models.SavingsAdvice{
			RemainingAmount: remaining,
			DaysLeft:        0,
			PerDay:          decimal.Zero,
			PerWeek:         decimal.Zero,
			PerMonth:        decimal.Zero,
			IsUrgent:        true,
			Message:         "Deadline has passed",
		}
	}

	// Less than one full day remaining: the whole amount is due today.
	if daysLeft == 0 {
		return &models.SavingsAdvice{
			RemainingAmount: remaining,
			DaysLeft:        0,
			PerDay:          remaining,
			PerWeek:         decimal.Zero,
			PerMonth:        decimal.Zero,
			IsUrgent:        true,
			Message:         "Last day!",
		}
	}

	weeksLeft := daysLeft / 7
	if weeksLeft == 0 {
		weeksLeft = 1
	}
	monthsLeft := calendarMonthsBetween(today, deadline)
	if monthsLeft == 0 {
		monthsLeft = 1
	}

	return &models.SavingsAdvice{
		RemainingAmount: remaining,
		DaysLeft:        daysLeft,
		PerDay:          remaining.Div(decimal.NewFromInt(int64(daysLeft))),
		PerWeek:         remaining.Div(decimal.NewFromInt(int64(weeksLeft))),
		PerMonth:        remaining.Div(decimal.NewFromInt(int64(monthsLeft))),
		IsUrgent:        daysLeft < urgentThresholdDays,
		Message:         adviceMessage(daysLeft, monthsLeft),
	}
}

// BestAdvice picks the per-period amount most useful to display given how
// much time remains.
func (s *adviceService) BestAdvice(advice *models.SavingsAdvice) models.BestAdvice {
	switch {
	case advice.DaysLeft < 7:
		return models.BestAdvice{Amount: advice.PerDay, Period: models.AdvicePeriodDay}
	case advice.DaysLeft < 60:
		return models.BestAdvice{Amount: advice.PerWeek, Period: models.AdvicePeriodWeek}
	default:
		return models.BestAdvice{Amount: advice.PerMonth, Period: models.AdvicePeriodMonth}
	}
}

func adviceMessage(daysLeft, monthsLeft int) string {
	switch {
	case daysLeft == 1:
		return "Only one day left!"
	case daysLeft < 7:
		return fmt.Sprintf("Only %d days left", daysLeft)
	case daysLeft < urgentThresholdDays:
		return "Less than a month to reach your goal"
	case monthsLeft == 1:
		return "One month to get there"
	default:
		return fmt.Sprintf("%d months to reach your goal", monthsLeft)
	}
}

// fullDaysBetween counts full 24-hour periods from a to b, truncated toward
// zero. Negative when b is in the past.
func fullDaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// calendarMonthsBetween counts full calendar months from a to b. Never
// negative; the callers handle past deadlines before getting here.
func calendarMonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
