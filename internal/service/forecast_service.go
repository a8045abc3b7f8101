package service

import (
	"context"
	"fmt"

	"pocketsmart/internal/models"

	"go.uber.org/zap"
)

// Forecast projects month-end spending from the pace so far, plus an
// AI-written assessment.
type Forecast struct {
	DaysElapsed             int     `json:"days_elapsed"`
	SpentSoFar              float64 `json:"spent_so_far"`
	DailyAvgSpend           float64 `json:"daily_avg_spend"`
	ProjectedMonthlySpend   float64 `json:"projected_monthly_spend"`
	ProjectedMonthlySavings float64 `json:"projected_monthly_savings"`
	AIAssessment            string  `json:"ai_assessment,omitempty"`
}

type ForecastService struct {
	llm    *LLMService
	logger *zap.Logger
}

func NewForecastService(llm *LLMService, logger *zap.Logger) *ForecastService {
	return &ForecastService{
		llm:    llm,
		logger: logger,
	}
}

// Project computes the spending projection. Pure arithmetic, no
// provider call.
func Project(summary models.BudgetSummary, daysElapsed, totalDays int) Forecast {
	var dailyAvg float64
	if daysElapsed > 0 {
		dailyAvg = summary.TotalSpent / float64(daysElapsed)
	}
	projected := dailyAvg * float64(totalDays)

	return Forecast{
		DaysElapsed:             daysElapsed,
		SpentSoFar:              round2(summary.TotalSpent),
		DailyAvgSpend:           round2(dailyAvg),
		ProjectedMonthlySpend:   round2(projected),
		ProjectedMonthlySavings: round2(summary.MonthlyIncome - projected),
	}
}

// Forecast runs the projection and asks the model for a short written
// assessment of it.
func (s *ForecastService) Forecast(ctx context.Context, summary models.BudgetSummary, daysElapsed, totalDays int) (*Forecast, error) {
	if daysElapsed <= 0 || totalDays <= 0 {
		return nil, fmt.Errorf("%w: days must be positive", ErrInvalidInput)
	}

	fc := Project(summary, daysElapsed, totalDays)

	text, err := s.llm.Generate(ctx, BuildForecastPrompt(summary, daysElapsed, fc.ProjectedMonthlySpend))
	if err != nil {
		s.logger.Warn("Forecast assessment unavailable", zap.Error(err))
		fc.AIAssessment = AnalysisUnavailableText
	} else {
		fc.AIAssessment = NormalizeChat(text)
	}
	return &fc, nil
}
