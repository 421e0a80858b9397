package service

import (
	"context"
	"strings"
	"time"

	"pdf-summarizer/internal/domain"
	"pdf-summarizer/internal/summarizer"
)

// SummaryService turns a bounded text snippet into a bullet-point summary
// using a model from the registry.
type SummaryService struct {
	registry   domain.ModelRegistry
	logger     domain.Logger
	snippetCap int
}

// NewSummaryService creates a new summary service instance
func NewSummaryService(registry domain.ModelRegistry, cfg domain.Config, logger domain.Logger) *SummaryService {
	return &SummaryService{
		registry:   registry,
		logger:     logger,
		snippetCap: cfg.GetSnippetCap(),
	}
}

// Models returns the selectable model catalog.
func (s *SummaryService) Models() []domain.ModelInfo {
	return s.registry.Models()
}

// Summarize truncates the text to the snippet cap, runs the model and splits
// its output into bullets. Empty or whitespace-only input is rejected before
// any model is touched.
func (s *SummaryService) Summarize(ctx context.Context, text, modelID string) (*domain.SummaryResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}

	snippet := truncateRunes(text, s.snippetCap)

	model, err := s.registry.Model(ctx, modelID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := model.Summarize(ctx, snippet)
	if err != nil {
		s.logger.Error("Summarization failed", err, "model", modelID)
		return nil, err
	}

	bullets := summarizer.SplitBullets(raw)
	s.logger.Info("Summary generated",
		"model", modelID,
		"snippet_chars", len(snippet),
		"bullets", len(bullets),
		"duration_ms", time.Since(start).Milliseconds())

	return &domain.SummaryResult{ModelID: modelID, BulletPoints: bullets}, nil
}

// RenderDownload joins bullets into the plain-text download body.
func (s *SummaryService) RenderDownload(bullets []string) string {
	var sb strings.Builder
	for _, b := range bullets {
		sb.WriteString("- ")
		sb.WriteString(b)
		sb.WriteString("\n")
	}
	return sb.String()
}

func truncateRunes(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
