package models

// AnalysisResult is what an analysis request ultimately returns to the
// client. HealthScore is best-effort: it is extracted from the model's
// free text and absent when no score pattern was recognized.
type AnalysisResult struct {
	HealthScore *int     `json:"health_score,omitempty"`
	Narrative   string   `json:"narrative"`
	Suggestions []string `json:"suggestions"`
	Unavailable bool     `json:"unavailable,omitempty"`
}
