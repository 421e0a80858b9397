package domain

// SummaryRequest carries the text snippet and the model chosen by the user.
// Text is truncated to the configured snippet cap before it reaches a model.
type SummaryRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// SummaryResult holds the generated summary, one bullet per line.
type SummaryResult struct {
	ModelID      string   `json:"model_id"`
	BulletPoints []string `json:"bullet_points"`
}

// ModelInfo describes one entry of the fixed model catalog.
type ModelInfo struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
}
