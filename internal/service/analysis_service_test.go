package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"pocketsmart/internal/models"

	"go.uber.org/zap"
)

func TestAnalysisService_EndToEnd(t *testing.T) {
	gw := newTestGateway(&stubGenerator{text: "Score: 80. Reduce Food spending."}, nil)
	svc := NewAnalysisService(gw, zap.NewNop())

	result, err := svc.AnalyzeSnapshot(context.Background(), sampleSnapshot(), "general")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HealthScore == nil || *result.HealthScore != 80 {
		t.Errorf("HealthScore = %v, want 80", result.HealthScore)
	}
	if result.Narrative != "Reduce Food spending." {
		t.Errorf("Narrative = %q", result.Narrative)
	}
	if !reflect.DeepEqual(result.Suggestions, []string{"Reduce Food spending"}) {
		t.Errorf("Suggestions = %v", result.Suggestions)
	}
	if result.Unavailable {
		t.Error("result should not be flagged unavailable")
	}
}

func TestAnalysisService_RawTextDegradation(t *testing.T) {
	gw := newTestGateway(&stubGenerator{text: "Everything looks reasonable overall"}, nil)
	svc := NewAnalysisService(gw, zap.NewNop())

	result, err := svc.AnalyzeSnapshot(context.Background(), sampleSnapshot(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HealthScore != nil {
		t.Errorf("HealthScore = %v, want absent", result.HealthScore)
	}
	if result.Narrative != "Everything looks reasonable overall" {
		t.Errorf("Narrative = %q, want the full raw text", result.Narrative)
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want none", result.Suggestions)
	}
}

func TestAnalysisService_ProviderDown(t *testing.T) {
	gw := newTestGateway(&stubGenerator{err: errors.New("down")}, nil)
	svc := NewAnalysisService(gw, zap.NewNop())

	result, err := svc.AnalyzeSnapshot(context.Background(), sampleSnapshot(), "")
	if err != nil {
		t.Fatalf("provider failure should resolve to a placeholder, got error %v", err)
	}
	if !result.Unavailable {
		t.Error("result should be flagged unavailable")
	}
	if result.Narrative != AnalysisUnavailableText {
		t.Errorf("Narrative = %q, want %q", result.Narrative, AnalysisUnavailableText)
	}
	if result.HealthScore != nil || len(result.Suggestions) != 0 {
		t.Errorf("placeholder should carry no score or suggestions: %+v", result)
	}
}

func TestAnalysisService_InvalidInput(t *testing.T) {
	gw := newTestGateway(&stubGenerator{text: "never called"}, nil)
	svc := NewAnalysisService(gw, zap.NewNop())

	snapshot := models.BudgetSnapshot{Income: -100, Currency: "$"}
	if _, err := svc.AnalyzeSnapshot(context.Background(), snapshot, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestAnalysisService_Chat(t *testing.T) {
	gw := newTestGateway(&stubGenerator{text: "You have **$2400** left this month."}, nil)
	svc := NewAnalysisService(gw, zap.NewNop())

	reply, err := svc.Chat(context.Background(), "system", nil, "how much is left?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "You have $2400 left this month." {
		t.Errorf("reply = %q, markdown should be stripped", reply)
	}
}
