package service

import (
	"context"
	"errors"
	"testing"

	"pocketsmart/internal/models"

	"go.uber.org/zap"
)

func TestParseRecommendationJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{
			name: "bare array",
			raw:  `[{"title":"Cook at home","potential_savings":50}]`,
			want: 1,
		},
		{
			name: "fenced array",
			raw:  "```json\n[{\"title\":\"a\"},{\"title\":\"b\"}]\n```",
			want: 2,
		},
		{
			name: "commentary around array",
			raw:  `Sure! Here you go: [{"title":"x"}] Hope that helps.`,
			want: 1,
		},
		{
			name:    "no array",
			raw:     "I cannot produce recommendations right now.",
			wantErr: true,
		},
		{
			name:    "broken json",
			raw:     `[{"title": }]`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseRecommendationJSON(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got %v", items)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(items) != tt.want {
				t.Errorf("len = %d, want %d", len(items), tt.want)
			}
		})
	}
}

func TestRecommendationService_FallsBackToRawText(t *testing.T) {
	gw := newTestGateway(&stubGenerator{text: "just buy less stuff"}, nil)
	svc := NewRecommendationService(gw, zap.NewNop())

	set, err := svc.Generate(context.Background(), "general", models.BudgetSummary{Currency: "$"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Items != nil {
		t.Errorf("items should be nil for unparseable output, got %v", set.Items)
	}
	if set.RawText != "just buy less stuff" {
		t.Errorf("RawText = %q", set.RawText)
	}
}

func TestRecommendationService_ParsesItems(t *testing.T) {
	gw := newTestGateway(&stubGenerator{text: `[{"title":"Meal prep","potential_savings":80}]`}, nil)
	svc := NewRecommendationService(gw, zap.NewNop())

	set, err := svc.Generate(context.Background(), "general", models.BudgetSummary{Currency: "$"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Items) != 1 {
		t.Fatalf("items = %v, want 1", set.Items)
	}
	if set.Items[0]["title"] != "Meal prep" {
		t.Errorf("title = %v", set.Items[0]["title"])
	}
}

func TestRecommendationService_ProviderDown(t *testing.T) {
	gw := newTestGateway(&stubGenerator{err: errors.New("down")}, nil)
	svc := NewRecommendationService(gw, zap.NewNop())

	if _, err := svc.Generate(context.Background(), "general", models.BudgetSummary{}); !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("want ErrProviderUnavailable, got %v", err)
	}
}
