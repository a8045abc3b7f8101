package service

import (
	"math"
	"sort"

	"pocketsmart/internal/models"
)

// BuildSummary aggregates a profile into the budget summary used by the
// dashboard and as prompt context.
func BuildSummary(p *models.Profile) models.BudgetSummary {
	byCategory := make(map[string]float64)
	var totalSpent float64
	for _, e := range p.Expenses {
		byCategory[e.Category] += e.Amount
		totalSpent += e.Amount
	}

	violations := []models.BudgetViolation{}
	for cat, limit := range p.BudgetLimits {
		spent := byCategory[cat]
		if spent > limit {
			violations = append(violations, models.BudgetViolation{
				Category: cat,
				Limit:    limit,
				Spent:    spent,
				OverBy:   round2(spent - limit),
			})
		}
	}
	sort.Slice(violations, func(i, j int) bool {
		return violations[i].Category < violations[j].Category
	})

	var progress float64
	if p.SavingsGoal > 0 {
		progress = math.Round(p.SavingsSaved/p.SavingsGoal*1000) / 10
	}

	return models.BudgetSummary{
		MonthlyIncome:      p.MonthlyIncome,
		TotalSpent:         round2(totalSpent),
		RemainingBalance:   round2(p.MonthlyIncome - totalSpent),
		SpendingByCategory: byCategory,
		BudgetViolations:   violations,
		SavingsGoal:        p.SavingsGoal,
		SavingsSaved:       p.SavingsSaved,
		SavingsProgressPct: progress,
		Currency:           p.Currency,
	}
}

// CategoryAmount is one entry of the dashboard's top-spending list.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// TopCategories returns the n largest spending categories, descending.
func TopCategories(summary models.BudgetSummary, n int) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(summary.SpendingByCategory))
	for cat, amount := range summary.SpendingByCategory {
		out = append(out, CategoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount == out[j].Amount {
			return out[i].Category < out[j].Category
		}
		return out[i].Amount > out[j].Amount
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// HeuristicHealthScore rates budget health 0-100 from the spend/income
// ratio, with a 15 point penalty per budget violation (floor 10). This
// is the deterministic dashboard score, independent of the AI-derived
// one.
func HeuristicHealthScore(summary models.BudgetSummary) int {
	score := 100
	if summary.MonthlyIncome > 0 {
		ratio := summary.TotalSpent / summary.MonthlyIncome
		switch {
		case ratio > 1.0:
			score = 10
		case ratio > 0.9:
			score = 30
		case ratio > 0.7:
			score = 55
		case ratio > 0.5:
			score = 75
		default:
			score = 95
		}
		if n := len(summary.BudgetViolations); n > 0 {
			score -= 15 * n
			if score < 10 {
				score = 10
			}
		}
	}
	return score
}

// HealthLabel maps a score to its display label.
func HealthLabel(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Fair"
	default:
		return "Poor"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
