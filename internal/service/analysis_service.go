package service

import (
	"context"

	"pocketsmart/internal/models"

	"go.uber.org/zap"
)

// AnalysisService runs the one-shot pipeline: build prompt, call the
// AI gateway, normalize the reply. Each request is stateless.
type AnalysisService struct {
	llm    *LLMService
	logger *zap.Logger
}

func NewAnalysisService(llm *LLMService, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		llm:    llm,
		logger: logger,
	}
}

// AnalyzeSnapshot produces the AI commentary for one budget snapshot.
// Invalid numeric input is the only error; provider failures resolve
// to the flagged unavailable placeholder.
func (s *AnalysisService) AnalyzeSnapshot(ctx context.Context, snapshot models.BudgetSnapshot, focus string) (*models.AnalysisResult, error) {
	prompt, err := BuildAnalysisPrompt(snapshot, focus)
	if err != nil {
		return nil, err
	}

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("Analysis unavailable", zap.Error(err))
		return &models.AnalysisResult{
			Narrative:   AnalysisUnavailableText,
			Suggestions: []string{},
			Unavailable: true,
		}, nil
	}

	result := &models.AnalysisResult{Suggestions: []string{}}
	switch n := NormalizeAnalysis(raw).(type) {
	case StructuredResult:
		result.HealthScore = n.Score
		result.Narrative = n.Narrative
		if n.Suggestions != nil {
			result.Suggestions = n.Suggestions
		}
	case RawTextResult:
		result.Narrative = n.Text
	}
	return result, nil
}

// Chat answers a free-form message, optionally grounded in a budget
// snapshot or prior conversation turns.
func (s *AnalysisService) Chat(ctx context.Context, system string, history []models.ChatTurn, message string) (string, error) {
	prompt := BuildChatPrompt(system, history, message)

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return NormalizeChat(raw), nil
}

// ChatSystemFromSnapshot builds the chat preamble for a one-shot chat
// request carrying snapshot context.
func ChatSystemFromSnapshot(snapshot models.BudgetSnapshot) string {
	profile := models.Profile{
		Name:          "User",
		MonthlyIncome: snapshot.Income,
		Currency:      snapshot.Currency,
		SavingsGoal:   snapshot.SavingsGoal,
		Expenses:      snapshot.Expenses,
	}
	return BuildChatSystemPrompt(profile.Name, BuildSummary(&profile))
}
