package handler

import (
	"context"
	"strings"

	"pdf-summarizer/internal/domain"
)

// Mock implementations for handler testing

type mockConfig struct {
	maxFileSize  int64
	previewChars int
}

func (c *mockConfig) GetServerPort() string               { return "8080" }
func (c *mockConfig) GetMaxFileSize() int64               { return c.maxFileSize }
func (c *mockConfig) GetLogLevel() string                 { return "error" }
func (c *mockConfig) GetAllowedOrigins() []string         { return []string{"*"} }
func (c *mockConfig) GetSnippetCap() int                  { return 1000 }
func (c *mockConfig) GetPreviewChars() int                { return c.previewChars }
func (c *mockConfig) GetOCRMinTextChars() int             { return 100 }
func (c *mockConfig) GetOCRDPI() float64                  { return 300 }
func (c *mockConfig) GetOCRLanguages() []string           { return []string{"eng"} }
func (c *mockConfig) GetOCRPageWorkers() int              { return 2 }
func (c *mockConfig) GetModelCatalog() []domain.ModelInfo { return nil }
func (c *mockConfig) GetHFInferenceURL() string           { return "" }
func (c *mockConfig) GetOllamaURL() string                { return "" }
func (c *mockConfig) GetVertexProjectID() string          { return "" }
func (c *mockConfig) GetVertexLocation() string           { return "" }

type mockHandlerLogger struct{}

func (mockHandlerLogger) Info(msg string, fields ...interface{})             {}
func (mockHandlerLogger) Error(msg string, err error, fields ...interface{}) {}
func (mockHandlerLogger) Debug(msg string, fields ...interface{})            {}
func (mockHandlerLogger) Warn(msg string, fields ...interface{})             {}

type mockDocumentService struct {
	result *domain.ExtractionResult
	err    error
	upload *domain.DocumentUpload
}

func (m *mockDocumentService) ProcessUpload(ctx context.Context, upload *domain.DocumentUpload) (*domain.ExtractionResult, error) {
	m.upload = upload
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockSummaryService struct {
	result *domain.SummaryResult
	err    error
	models []domain.ModelInfo

	gotText    string
	gotModelID string
}

func (m *mockSummaryService) Summarize(ctx context.Context, text, modelID string) (*domain.SummaryResult, error) {
	m.gotText = text
	m.gotModelID = modelID
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockSummaryService) RenderDownload(bullets []string) string {
	return "- " + strings.Join(bullets, "\n- ") + "\n"
}

func (m *mockSummaryService) Models() []domain.ModelInfo {
	return m.models
}
