package service

import (
	"reflect"
	"testing"
)

func TestNormalizeAnalysis_ScoreExtraction(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantScore int
	}{
		{"colon form", "Score: 72. You are doing fine.", 72},
		{"prose form", "Your health score is 45 this month. Spending is high.", 45},
		{"out of 100", "I rate your budget 88/100. Keep going.", 88},
		{"bold markdown", "**Score: 63.** Watch the food budget.", 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := NormalizeAnalysis(tt.raw).(StructuredResult)
			if !ok {
				t.Fatalf("want StructuredResult, got %T", NormalizeAnalysis(tt.raw))
			}
			if res.Score == nil {
				t.Fatal("score not extracted")
			}
			if *res.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", *res.Score, tt.wantScore)
			}
		})
	}
}

func TestNormalizeAnalysis_NoScorePattern(t *testing.T) {
	raw := "You are spending a lot on restaurants lately, consider cooking at home more often"
	res, ok := NormalizeAnalysis(raw).(RawTextResult)
	if !ok {
		t.Fatalf("want RawTextResult, got %T", NormalizeAnalysis(raw))
	}
	if res.Text != raw {
		t.Errorf("narrative should be the full text, got %q", res.Text)
	}
}

func TestNormalizeAnalysis_EndToEndExample(t *testing.T) {
	res, ok := NormalizeAnalysis("Score: 80. Reduce Food spending.").(StructuredResult)
	if !ok {
		t.Fatal("want StructuredResult")
	}
	if res.Score == nil || *res.Score != 80 {
		t.Errorf("score = %v, want 80", res.Score)
	}
	if res.Narrative != "Reduce Food spending." {
		t.Errorf("narrative = %q, want %q", res.Narrative, "Reduce Food spending.")
	}
	if !reflect.DeepEqual(res.Suggestions, []string{"Reduce Food spending"}) {
		t.Errorf("suggestions = %v, want [Reduce Food spending]", res.Suggestions)
	}
}

func TestNormalizeAnalysis_Bullets(t *testing.T) {
	raw := `Score: 55. Spending outpaces income.
- Cancel unused subscriptions.
- Cook at home twice a week.
3) Move 10% of income to savings.`

	res, ok := NormalizeAnalysis(raw).(StructuredResult)
	if !ok {
		t.Fatal("want StructuredResult")
	}
	want := []string{
		"Cancel unused subscriptions",
		"Cook at home twice a week",
		"Move 10% of income to savings",
	}
	if !reflect.DeepEqual(res.Suggestions, want) {
		t.Errorf("suggestions = %v, want %v", res.Suggestions, want)
	}
}

func TestNormalizeAnalysis_BulletsWithoutScore(t *testing.T) {
	raw := "Some thoughts:\n- Trim the transport budget.\n- Set a grocery limit."
	res, ok := NormalizeAnalysis(raw).(StructuredResult)
	if !ok {
		t.Fatal("want StructuredResult when bullets are present")
	}
	if res.Score != nil {
		t.Errorf("score should be absent, got %d", *res.Score)
	}
	if len(res.Suggestions) != 2 {
		t.Errorf("suggestions = %v, want 2 items", res.Suggestions)
	}
}

func TestNormalizeAnalysis_ImplausibleScoreIgnored(t *testing.T) {
	raw := "Score: 250. Something is off."
	if _, ok := NormalizeAnalysis(raw).(RawTextResult); !ok {
		t.Errorf("scores outside 0-100 should not be extracted")
	}
}

func TestNormalizeChat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Hello there.", "Hello there."},
		{"bold stripped", "You spent **too much** on food.", "You spent too much on food."},
		{"fences stripped", "```\nplain advice\n```", "plain advice"},
		{"heading stripped", "## Summary\nAll good.", "Summary\nAll good."},
		{"whitespace trimmed", "  padded \n", "padded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeChat(tt.raw); got != tt.want {
				t.Errorf("NormalizeChat(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
