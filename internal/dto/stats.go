package dto

// Stats Response DTOs

// CategoryShareResponse is one category's slice of the month's expenses
type CategoryShareResponse struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Percentage string `json:"percentage"`
}

// StatsResponse represents the aggregated statistics for one calendar month
type StatsResponse struct {
	Month              string                  `json:"month"`
	TotalIncome        string                  `json:"totalIncome"`
	TotalExpenses      string                  `json:"totalExpenses"`
	TotalFixedCharges  string                  `json:"totalFixedCharges"`
	AvailableBalance   string                  `json:"availableBalance"`
	Balance            string                  `json:"balance"`
	ExpensesByCategory []CategoryShareResponse `json:"expensesByCategory"`
	Transactions       []TransactionResponse   `json:"transactions"`
}

// TipsResponse carries qualitative advice derived from the month's statistics
type TipsResponse struct {
	Tips []string `json:"tips"`
}
