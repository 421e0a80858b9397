package domain

import "context"

// Extractor turns raw PDF bytes into an ExtractionResult, deciding between
// direct text extraction and the OCR fallback.
type Extractor interface {
	Extract(ctx context.Context, pdfBytes []byte) (*ExtractionResult, error)
}

// SummaryModel is one loaded model, retained for the process lifetime.
type SummaryModel interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// ModelRegistry resolves a model id to a loaded model, loading lazily on
// first use and caching the handle per id.
type ModelRegistry interface {
	Model(ctx context.Context, modelID string) (SummaryModel, error)
	Models() []ModelInfo
}

// DocumentService validates an upload and runs extraction.
type DocumentService interface {
	ProcessUpload(ctx context.Context, upload *DocumentUpload) (*ExtractionResult, error)
}

// SummaryService produces bullet-point summaries of text snippets.
type SummaryService interface {
	Summarize(ctx context.Context, text, modelID string) (*SummaryResult, error)
	RenderDownload(bullets []string) string
	Models() []ModelInfo
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAllowedOrigins() []string

	GetSnippetCap() int
	GetPreviewChars() int

	GetOCRMinTextChars() int
	GetOCRDPI() float64
	GetOCRLanguages() []string
	GetOCRPageWorkers() int

	GetModelCatalog() []ModelInfo
	GetHFInferenceURL() string
	GetOllamaURL() string
	GetVertexProjectID() string
	GetVertexLocation() string
}
