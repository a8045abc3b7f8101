package dto

type ExpenseInput struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

type AnalyzeRequest struct {
	Income      float64        `json:"income"`
	Expenses    []ExpenseInput `json:"expenses"`
	SavingsGoal float64        `json:"savings_goal"`
	Currency    string         `json:"currency"`
	Focus       string         `json:"focus,omitempty"`
}

type AnalyzeResponse struct {
	HealthScore *int     `json:"health_score,omitempty"`
	Narrative   string   `json:"narrative"`
	Suggestions []string `json:"suggestions"`
	Unavailable bool     `json:"unavailable,omitempty"`
}

type ChatRequest struct {
	Message string          `json:"message"`
	Context *AnalyzeRequest `json:"context,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ProfileAnalyzeRequest struct {
	Focus string `json:"focus,omitempty"`
}

type ForecastRequest struct {
	DaysElapsed int `json:"days_elapsed"`
	TotalDays   int `json:"total_days"`
}
