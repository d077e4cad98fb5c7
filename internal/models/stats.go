package models

import "github.com/shopspring/decimal"

// CategoryShare is one entry of the expense breakdown: the total spent on a
// category and its percentage share of all expenses in the window.
type CategoryShare struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Stats is the derived view over the ledger for one calendar month.
//
// Aggregation rule: income and expense totals are windowed to the calendar
// month containing the reference date. Fixed charges are deducted once as a
// flat monthly total, never per elapsed month. AvailableBalance is month
// income minus the fixed-charge total; Balance further subtracts month
// expenses.
type Stats struct {
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	TotalFixedCharges  decimal.Decimal `json:"totalFixedCharges"`
	AvailableBalance   decimal.Decimal `json:"availableBalance"`
	Balance            decimal.Decimal `json:"balance"`
	ExpensesByCategory []CategoryShare `json:"expensesByCategory"`
	// Transactions holds the month-windowed entries for display, newest first.
	Transactions []Transaction `json:"transactions"`
}

// TopCategory returns the largest expense category of the window, or false
// when no expense was recorded.
func (s *Stats) TopCategory() (CategoryShare, bool) {
	if len(s.ExpensesByCategory) == 0 {
		return CategoryShare{}, false
	}

	top := s.ExpensesByCategory[0]
	for _, share := range s.ExpensesByCategory[1:] {
		if share.Amount.GreaterThan(top.Amount) {
			top = share
		}
	}
	return top, true
}
