package service

import (
	"testing"

	"pocketsmart/internal/models"
)

func profileWith(income float64, limits map[string]float64, expenses ...models.ExpenseEntry) *models.Profile {
	return &models.Profile{
		UserID:        "u1",
		Name:          "User",
		MonthlyIncome: income,
		Currency:      "$",
		BudgetLimits:  limits,
		Expenses:      expenses,
	}
}

func TestBuildSummary(t *testing.T) {
	p := profileWith(3000,
		map[string]float64{"Food": 300},
		models.ExpenseEntry{Category: "Food", Amount: 400},
		models.ExpenseEntry{Category: "Food", Amount: 50},
		models.ExpenseEntry{Category: "Transport", Amount: 150},
	)
	p.SavingsGoal = 500
	p.SavingsSaved = 125

	s := BuildSummary(p)

	if s.TotalSpent != 600 {
		t.Errorf("TotalSpent = %v, want 600", s.TotalSpent)
	}
	if s.RemainingBalance != 2400 {
		t.Errorf("RemainingBalance = %v, want 2400", s.RemainingBalance)
	}
	if s.SpendingByCategory["Food"] != 450 {
		t.Errorf("Food spending = %v, want 450", s.SpendingByCategory["Food"])
	}
	if len(s.BudgetViolations) != 1 {
		t.Fatalf("violations = %v, want exactly one", s.BudgetViolations)
	}
	v := s.BudgetViolations[0]
	if v.Category != "Food" || v.OverBy != 150 {
		t.Errorf("violation = %+v, want Food over by 150", v)
	}
	if s.SavingsProgressPct != 25 {
		t.Errorf("SavingsProgressPct = %v, want 25", s.SavingsProgressPct)
	}
}

func TestBuildSummary_ZeroGoal(t *testing.T) {
	p := profileWith(1000, nil)
	s := BuildSummary(p)
	if s.SavingsProgressPct != 0 {
		t.Errorf("progress with zero goal = %v, want 0", s.SavingsProgressPct)
	}
}

func TestHeuristicHealthScore(t *testing.T) {
	tests := []struct {
		name       string
		income     float64
		spent      float64
		violations int
		want       int
	}{
		{"no income", 0, 500, 0, 100},
		{"frugal", 1000, 200, 0, 95},
		{"half spent", 1000, 600, 0, 75},
		{"most spent", 1000, 800, 0, 55},
		{"nearly all", 1000, 950, 0, 30},
		{"overspent", 1000, 1100, 0, 10},
		{"violations subtract", 1000, 200, 2, 65},
		{"floor at ten", 1000, 950, 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.BudgetSummary{
				MonthlyIncome: tt.income,
				TotalSpent:    tt.spent,
			}
			for i := 0; i < tt.violations; i++ {
				s.BudgetViolations = append(s.BudgetViolations, models.BudgetViolation{})
			}
			if got := HeuristicHealthScore(s); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHealthLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Excellent"},
		{75, "Good"},
		{55, "Fair"},
		{10, "Poor"},
	}
	for _, tt := range tests {
		if got := HealthLabel(tt.score); got != tt.want {
			t.Errorf("HealthLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestTopCategories(t *testing.T) {
	s := models.BudgetSummary{
		SpendingByCategory: map[string]float64{
			"Food":      450,
			"Transport": 150,
			"Fun":       90,
			"Books":     30,
		},
	}
	top := TopCategories(s, 2)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	if top[0].Category != "Food" || top[1].Category != "Transport" {
		t.Errorf("top = %v, want Food then Transport", top)
	}
}
