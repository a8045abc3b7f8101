package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"pocketsmart/internal/models"

	"go.uber.org/zap"
)

// RecommendationSet is the outcome of a recommendation request: a
// parsed JSON array when the model honored the format, otherwise the
// cleaned raw text.
type RecommendationSet struct {
	Type    string
	Items   []map[string]interface{}
	RawText string
}

type RecommendationService struct {
	llm    *LLMService
	logger *zap.Logger
}

func NewRecommendationService(llm *LLMService, logger *zap.Logger) *RecommendationService {
	return &RecommendationService{
		llm:    llm,
		logger: logger,
	}
}

// Generate asks the model for type-keyed recommendations and parses
// the JSON array it was instructed to return. A malformed reply
// degrades to raw text rather than failing.
func (s *RecommendationService) Generate(ctx context.Context, recType string, summary models.BudgetSummary) (*RecommendationSet, error) {
	prompt := BuildRecommendationPrompt(recType, summary)

	raw, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	set := &RecommendationSet{Type: recType}
	items, perr := ParseRecommendationJSON(raw)
	if perr != nil {
		s.logger.Warn("Recommendations not valid JSON, returning raw text", zap.Error(perr))
		set.RawText = NormalizeChat(raw)
		return set, nil
	}
	set.Items = items

	s.logger.Info("Recommendations generated",
		zap.String("type", recType),
		zap.Int("count", len(items)),
	)
	return set, nil
}

// ParseRecommendationJSON extracts a JSON array from model output that
// may be wrapped in markdown fences or surrounded by commentary.
func ParseRecommendationJSON(raw string) ([]map[string]interface{}, error) {
	content := strings.TrimSpace(raw)

	jsonStart := strings.Index(content, "[")
	jsonEnd := strings.LastIndex(content, "]")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, errors.New("no JSON array in model output")
	}
	jsonStr := content[jsonStart : jsonEnd+1]

	var items []map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
		// Retry after stripping markdown code fences.
		jsonStr = strings.TrimSpace(jsonStr)
		jsonStr = strings.TrimPrefix(jsonStr, "```json")
		jsonStr = strings.TrimPrefix(jsonStr, "```")
		jsonStr = strings.TrimSuffix(jsonStr, "```")
		jsonStr = strings.TrimSpace(jsonStr)

		if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
			return nil, err
		}
	}
	return items, nil
}
