package models

// BudgetSnapshot bundles everything one analysis request needs: income,
// the expense list, the savings goal and the currency symbol. It is
// built fresh per request and never mutated afterwards.
type BudgetSnapshot struct {
	Income      float64
	Expenses    []ExpenseEntry
	SavingsGoal float64
	Currency    string
}

// BudgetViolation marks a category whose spending exceeds its limit.
type BudgetViolation struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Spent    float64 `json:"spent"`
	OverBy   float64 `json:"over_by"`
}

// BudgetSummary is the aggregated view of a profile's finances, used
// both for the dashboard and as prompt context.
type BudgetSummary struct {
	MonthlyIncome      float64            `json:"monthly_income"`
	TotalSpent         float64            `json:"total_spent"`
	RemainingBalance   float64            `json:"remaining_balance"`
	SpendingByCategory map[string]float64 `json:"spending_by_category"`
	BudgetViolations   []BudgetViolation  `json:"budget_violations"`
	SavingsGoal        float64            `json:"savings_goal"`
	SavingsSaved       float64            `json:"savings_saved"`
	SavingsProgressPct float64            `json:"savings_progress_pct"`
	Currency           string             `json:"currency"`
}
