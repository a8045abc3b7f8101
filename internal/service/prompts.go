package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"pocketsmart/internal/models"
)

var ErrInvalidInput = errors.New("invalid input")

// analysisInstruction asks the model for the structure the normalizer
// knows how to pick apart: a "Score: N" line plus bulleted suggestions.
const analysisInstruction = `Respond with:
1. A line "Score: N" rating overall budget health from 0 to 100.
2. Key observations about the spending above.
3. Up to 3 actionable saving suggestions as bullet points ("- ...").
Keep it under 300 words. Use only the numbers provided above, never invent amounts.`

// BuildAnalysisPrompt turns a budget snapshot into the analysis prompt.
// The output deterministically contains every provided numeric field
// formatted with the snapshot's currency symbol, and one line per
// expense. Data absent from the snapshot is never referenced.
func BuildAnalysisPrompt(s models.BudgetSnapshot, focus string) (string, error) {
	if err := validateSnapshot(s); err != nil {
		return "", err
	}
	if focus == "" {
		focus = "general"
	}

	var b strings.Builder
	b.WriteString("You are PocketSmart AI, a warm, practical personal finance assistant.\n\n")
	fmt.Fprintf(&b, "Monthly income: %s\n", formatAmount(s.Currency, s.Income))
	fmt.Fprintf(&b, "Savings goal: %s\n", formatAmount(s.Currency, s.SavingsGoal))
	fmt.Fprintf(&b, "Expenses (%d):\n", len(s.Expenses))
	for _, e := range s.Expenses {
		fmt.Fprintf(&b, "- %s: %s", e.Category, formatAmount(s.Currency, e.Amount))
		if e.Description != "" {
			fmt.Fprintf(&b, " (%s)", e.Description)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nPerform a detailed %s spending analysis.\n", focus)
	b.WriteString(analysisInstruction)

	return b.String(), nil
}

// BuildChatSystemPrompt is the system preamble for chat, carrying the
// user's budget summary so replies can quote real numbers.
func BuildChatSystemPrompt(name string, summary models.BudgetSummary) string {
	cur := summary.Currency
	var b strings.Builder
	b.WriteString("You are PocketSmart AI, a warm, practical personal finance assistant.\n\n")
	fmt.Fprintf(&b, "USER: %s | Income: %s/mo\n", name, formatAmount(cur, summary.MonthlyIncome))
	fmt.Fprintf(&b, "Spent: %s | Remaining: %s\n",
		formatAmount(cur, summary.TotalSpent), formatAmount(cur, summary.RemainingBalance))
	if len(summary.SpendingByCategory) > 0 {
		b.WriteString("Spending by category:\n")
		for _, c := range TopCategories(summary, len(summary.SpendingByCategory)) {
			fmt.Fprintf(&b, "- %s: %s\n", c.Category, formatAmount(cur, c.Amount))
		}
	}
	for _, v := range summary.BudgetViolations {
		fmt.Fprintf(&b, "Over budget in %s: %s spent against a %s limit\n",
			v.Category, formatAmount(cur, v.Spent), formatAmount(cur, v.Limit))
	}
	fmt.Fprintf(&b, "Savings: %s / %s (%.1f%%)\n",
		formatAmount(cur, summary.SavingsSaved), formatAmount(cur, summary.SavingsGoal), summary.SavingsProgressPct)
	fmt.Fprintf(&b, "\nBe concise, friendly and specific with numbers. Use the %s currency symbol.\n", cur)
	return b.String()
}

// BuildChatPrompt assembles the full chat prompt from the system
// preamble, recent history and the new message.
func BuildChatPrompt(system string, history []models.ChatTurn, message string) string {
	var b strings.Builder
	if system != "" {
		b.WriteString(system)
		b.WriteString("\n")
	}
	for _, turn := range history {
		switch turn.Role {
		case models.ChatRoleAssistant:
			fmt.Fprintf(&b, "Assistant: %s\n", turn.Content)
		default:
			fmt.Fprintf(&b, "User: %s\n", turn.Content)
		}
	}
	fmt.Fprintf(&b, "User: %s", message)
	return b.String()
}

// recommendationPrompts keys the JSON-array prompt by recommendation
// type. Each asks for ONLY a JSON array so parsing stays mechanical.
func BuildRecommendationPrompt(recType string, summary models.BudgetSummary) string {
	cur := summary.Currency
	balance := formatAmount(cur, summary.RemainingBalance)

	var body string
	switch recType {
	case "home":
		body = fmt.Sprintf(`Home upgrade budget = %s. Recommend 5 furniture/decor items.
Return ONLY a valid JSON array:
[{"title":"name","category":"Furniture/Decor/Lighting","estimated_price":100,"platform":"Amazon/IKEA/Wayfair","description":"2 sentences.","priority":"high","tip":"saving tip"}]`, balance)
	case "party":
		body = fmt.Sprintf(`Party budget = %s. Smart allocation plan with 5 tips.
Return ONLY a valid JSON array:
[{"title":"tip","category":"venue/food/decor/entertainment","estimated_cost":100,"description":"2 sentences.","priority":"high"}]`, balance)
	case "jewelry":
		body = fmt.Sprintf(`Jewelry budget = %s. Recommend 5 occasion-based pieces.
Return ONLY a valid JSON array:
[{"title":"item","occasion":"wedding/casual/formal/festive","estimated_price":100,"style_tip":"outfit advice","where_to_buy":"platform","description":"2 sentences.","priority":"high"}]`, balance)
	default:
		body = `Give 5 personalized money-saving recommendations.
Return ONLY a valid JSON array:
[{"title":"title","category":"category","potential_savings":50,"description":"2-3 sentences.","priority":"high"}]`
	}

	return BuildChatSystemPrompt("User", summary) + "\n" + body
}

// BuildForecastPrompt asks for a short spending forecast narrative.
func BuildForecastPrompt(summary models.BudgetSummary, daysElapsed int, projected float64) string {
	cur := summary.Currency
	return fmt.Sprintf(`%s
Spent %s in %d days. Projected monthly spend: %s.
Write 2 short paragraphs: a forecast and one concrete improvement tip. Under 150 words.`,
		BuildChatSystemPrompt("User", summary),
		formatAmount(cur, summary.TotalSpent), daysElapsed, formatAmount(cur, projected))
}

func validateSnapshot(s models.BudgetSnapshot) error {
	if !isFiniteNonNegative(s.Income) {
		return fmt.Errorf("%w: income must be a non-negative number", ErrInvalidInput)
	}
	if !isFiniteNonNegative(s.SavingsGoal) {
		return fmt.Errorf("%w: savings goal must be a non-negative number", ErrInvalidInput)
	}
	for _, e := range s.Expenses {
		if !isFiniteNonNegative(e.Amount) {
			return fmt.Errorf("%w: expense amount for %q must be a non-negative number", ErrInvalidInput, e.Category)
		}
	}
	return nil
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// formatAmount renders a monetary value as symbol-prefixed text with no
// separator, e.g. "$3000" or "$400.5".
func formatAmount(currency string, v float64) string {
	return currency + strconv.FormatFloat(v, 'f', -1, 64)
}
