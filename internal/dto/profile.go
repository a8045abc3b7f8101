package dto

import "pocketsmart/internal/models"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
}

// SetupRequest uses pointers so omitted fields leave the profile
// untouched.
type SetupRequest struct {
	Name          string   `json:"name,omitempty"`
	MonthlyIncome *float64 `json:"monthly_income,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	SavingsGoal   *float64 `json:"savings_goal,omitempty"`
}

type ProfileResponse struct {
	Profile models.Profile `json:"profile"`
}

type AddExpenseRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Date        string  `json:"date,omitempty"`
}

type ExpenseListResponse struct {
	Expenses []models.ExpenseEntry `json:"expenses"`
	Count    int                   `json:"count"`
}

type SetLimitsRequest struct {
	Limits map[string]float64 `json:"limits"`
}

type UpdateSavingsRequest struct {
	SavingsSaved *float64 `json:"savings_saved,omitempty"`
	SavingsGoal  *float64 `json:"savings_goal,omitempty"`
}

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type DashboardResponse struct {
	Summary              models.BudgetSummary `json:"summary"`
	TopCategories        []CategoryAmount     `json:"top_categories"`
	FinancialHealthScore int                  `json:"financial_health_score"`
	HealthLabel          string               `json:"health_label"`
	TotalExpensesCount   int                  `json:"total_expenses_count"`
}
