package service

import (
	"context"

	"pdf-summarizer/internal/domain"
)

// Mock implementations shared by service tests.

type mockConfig struct {
	maxFileSize  int64
	snippetCap   int
	previewChars int
}

func (c *mockConfig) GetServerPort() string                 { return "8080" }
func (c *mockConfig) GetMaxFileSize() int64                 { return c.maxFileSize }
func (c *mockConfig) GetLogLevel() string                   { return "error" }
func (c *mockConfig) GetAllowedOrigins() []string           { return nil }
func (c *mockConfig) GetSnippetCap() int                    { return c.snippetCap }
func (c *mockConfig) GetPreviewChars() int                  { return c.previewChars }
func (c *mockConfig) GetOCRMinTextChars() int               { return 100 }
func (c *mockConfig) GetOCRDPI() float64                    { return 300 }
func (c *mockConfig) GetOCRLanguages() []string             { return []string{"eng"} }
func (c *mockConfig) GetOCRPageWorkers() int                { return 2 }
func (c *mockConfig) GetModelCatalog() []domain.ModelInfo   { return nil }
func (c *mockConfig) GetHFInferenceURL() string             { return "" }
func (c *mockConfig) GetOllamaURL() string                  { return "" }
func (c *mockConfig) GetVertexProjectID() string            { return "" }
func (c *mockConfig) GetVertexLocation() string             { return "" }

type mockLogger struct{}

func (mockLogger) Info(msg string, fields ...interface{})             {}
func (mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (mockLogger) Debug(msg string, fields ...interface{})            {}
func (mockLogger) Warn(msg string, fields ...interface{})             {}

type mockExtractor struct {
	result   *domain.ExtractionResult
	err      error
	received []byte
}

func (m *mockExtractor) Extract(ctx context.Context, pdfBytes []byte) (*domain.ExtractionResult, error) {
	m.received = pdfBytes
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockSummaryModel struct {
	output   string
	err      error
	received string
}

func (m *mockSummaryModel) Summarize(ctx context.Context, text string) (string, error) {
	m.received = text
	if m.err != nil {
		return "", m.err
	}
	return m.output, nil
}

type mockRegistry struct {
	model  domain.SummaryModel
	err    error
	models []domain.ModelInfo
}

func (m *mockRegistry) Model(ctx context.Context, modelID string) (domain.SummaryModel, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.model, nil
}

func (m *mockRegistry) Models() []domain.ModelInfo {
	return m.models
}
