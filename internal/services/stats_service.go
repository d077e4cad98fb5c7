package services

import (
	"fmt"
	"sort"
	"time"

	"wallet-api/internal/models"
	"wallet-api/internal/repositories"

	"github.com/shopspring/decimal"
)

// statsService implements StatsServiceInterface.
//
// Aggregation rule (the single authoritative one): income and expense
// totals are windowed to the calendar month containing the reference date,
// and the fixed-charge total is deducted once per month as a flat amount.
type statsService struct {
	repo    repositories.LedgerRepositoryInterface
	metrics MetricsRecorderInterface
	now     func() time.Time
}

// NewStatsService creates a stats service over the document store
func NewStatsService(repo repositories.LedgerRepositoryInterface, metrics MetricsRecorderInterface) StatsServiceInterface {
	return &statsService{
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

// ComputeStats derives the monthly statistics for the calendar month
// containing referenceMonth. A zero reference means the current month.
func (s *statsService) ComputeStats(referenceMonth time.Time) *models.Stats {
	started := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime("stats.compute", time.Since(started))
	}()

	if referenceMonth.IsZero() {
		referenceMonth = s.now()
	}

	ledger := s.repo.LoadLedger()

	monthTransactions := make([]models.Transaction, 0)
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, transaction := range ledger.Transactions {
		if !transaction.InMonth(referenceMonth) {
			continue
		}
		monthTransactions = append(monthTransactions, transaction)

		switch {
		case transaction.IsIncome():
			totalIncome = totalIncome.Add(transaction.Amount)
		case transaction.IsExpense():
			totalExpenses = totalExpenses.Add(transaction.Amount)
			byCategory[transaction.Category] = byCategory[transaction.Category].Add(transaction.Amount)
		}
	}

	// Newest first for display.
	sort.SliceStable(monthTransactions, func(i, j int) bool {
		return monthTransactions[i].Date.After(monthTransactions[j].Date)
	})

	totalFixedCharges := ledger.TotalFixedCharges()
	availableBalance := totalIncome.Sub(totalFixedCharges)
	balance := availableBalance.Sub(totalExpenses)

	return &models.Stats{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		TotalFixedCharges:  totalFixedCharges,
		AvailableBalance:   availableBalance,
		Balance:            balance,
		ExpensesByCategory: buildCategoryShares(byCategory, totalExpenses),
		Transactions:       monthTransactions,
	}
}

// buildCategoryShares turns the per-category totals into a breakdown sorted
// by amount, largest first. Percentage shares are only computed when the
// expense total is positive.
func buildCategoryShares(byCategory map[string]decimal.Decimal, totalExpenses decimal.Decimal) []models.CategoryShare {
	shares := make([]models.CategoryShare, 0, len(byCategory))
	hundred := decimal.NewFromInt(100)

	for category, amount := range byCategory {
		share := models.CategoryShare{
			Category:   category,
			Amount:     amount,
			Percentage: decimal.Zero,
		}
		if totalExpenses.IsPositive() {
			share.Percentage = amount.Div(totalExpenses).Mul(hundred)
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Amount.GreaterThan(shares[j].Amount)
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}

// FinancialTips returns qualitative advice derived from the current month's
// statistics.
func (s *statsService) FinancialTips() []string {
	stats := s.ComputeStats(s.now())
	tips := make([]string, 0, 3)

	if stats.Balance.IsNegative() {
		tips = append(tips, "Your expenses exceed your income this month. Try to cut back on spending.")
	}

	if stats.TotalIncome.IsPositive() {
		savingsRate := stats.Balance.Div(stats.TotalIncome).Mul(decimal.NewFromInt(100))
		if savingsRate.LessThan(decimal.NewFromInt(10)) {
			tips = append(tips, "Try to save at least 10% of your income every month.")
		} else if savingsRate.GreaterThanOrEqual(decimal.NewFromInt(20)) {
			tips = append(tips, "Excellent! You are saving more than 20% of your income!")
		}
	}

	if top, ok := stats.TopCategory(); ok {
		tips = append(tips, fmt.Sprintf("Top spending category: %s (%s%% of your expenses)",
			top.Category, top.Percentage.StringFixed(0)))
	}

	if len(tips) == 0 {
		tips = append(tips, "Start recording your transactions to receive personalized advice!")
	}

	return tips
}
