package models

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatTurn is one side of a chat exchange, kept only as in-memory
// conversation context.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Profile holds the demo user's session state. It is the only mutable
// state in the service and exists purely in memory.
type Profile struct {
	UserID        string             `json:"user_id"`
	Name          string             `json:"name"`
	MonthlyIncome float64            `json:"monthly_income"`
	Currency      string             `json:"currency"`
	SavingsGoal   float64            `json:"savings_goal"`
	SavingsSaved  float64            `json:"savings_saved"`
	BudgetLimits  map[string]float64 `json:"budget_limits"`
	Expenses      []ExpenseEntry     `json:"expenses"`
	ChatHistory   []ChatTurn         `json:"-"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Snapshot freezes the profile's financial fields for one analysis
// request.
func (p *Profile) Snapshot() BudgetSnapshot {
	expenses := make([]ExpenseEntry, len(p.Expenses))
	copy(expenses, p.Expenses)
	return BudgetSnapshot{
		Income:      p.MonthlyIncome,
		Expenses:    expenses,
		SavingsGoal: p.SavingsGoal,
		Currency:    p.Currency,
	}
}
