package models

import "github.com/shopspring/decimal"

// Advice granularity periods returned by BestAdvice.
const (
	AdvicePeriodDay   = "day"
	AdvicePeriodWeek  = "week"
	AdvicePeriodMonth = "month"
)

// SavingsAdvice is the saving pace needed to reach a goal target by its
// deadline. It is a pure function of target, current amount, deadline and
// the current date; nothing here is persisted.
type SavingsAdvice struct {
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	DaysLeft        int             `json:"daysLeft"`
	PerDay          decimal.Decimal `json:"perDay"`
	PerWeek         decimal.Decimal `json:"perWeek"`
	PerMonth        decimal.Decimal `json:"perMonth"`
	IsUrgent        bool            `json:"isUrgent"`
	Message         string          `json:"message"`
}

// BestAdvice is the single per-period amount most useful to display given
// how much time remains. A display-granularity heuristic, not an optimizer.
type BestAdvice struct {
	Amount decimal.Decimal `json:"amount"`
	Period string          `json:"period"`
}
