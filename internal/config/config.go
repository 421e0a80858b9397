package config

import (
	"os"
	"strconv"
	"strings"

	"pdf-summarizer/internal/domain"
)

// Default model catalog: hf entries are served by the local inference
// sidecar, ollama entries by a local Ollama daemon, vertex entries by
// Vertex AI. The set is fixed at startup; ids are what the UI offers.
const defaultModels = "t5-small=hf,distilbart-cnn=hf,llama3:instruct=ollama,gemini-1.5-flash=vertex"

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	MaxFileSize    int64
	LogLevel       string
	AllowedOrigins []string

	SnippetCap   int
	PreviewChars int

	OCRMinTextChars int
	OCRDPI          float64
	OCRLanguages    []string
	OCRPageWorkers  int

	Models          []domain.ModelInfo
	HFInferenceURL  string
	OllamaURL       string
	VertexProjectID string
	VertexLocation  string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:     getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		SnippetCap:   getEnvIntOrDefault("SNIPPET_CAP", 1000),
		PreviewChars: getEnvIntOrDefault("PREVIEW_CHARS", 1000),

		OCRMinTextChars: getEnvIntOrDefault("OCR_MIN_TEXT_CHARS", 100),
		OCRDPI:          getEnvFloatOrDefault("OCR_DPI", 300),
		OCRLanguages:    splitList(getEnvOrDefault("OCR_LANGUAGES", "eng")),
		OCRPageWorkers:  getEnvIntOrDefault("OCR_PAGE_WORKERS", 4),

		Models:          parseModelCatalog(getEnvOrDefault("MODELS", defaultModels)),
		HFInferenceURL:  getEnvOrDefault("HF_INFERENCE_URL", "http://localhost:8000/summarize"),
		OllamaURL:       getEnvOrDefault("OLLAMA_URL", "http://localhost:11434"),
		VertexProjectID: getEnvOrDefault("VERTEX_PROJECT_ID", ""),
		VertexLocation:  getEnvOrDefault("VERTEX_LOCATION", "us-central1"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAllowedOrigins returns the CORS origin allowlist
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetSnippetCap returns the maximum rune count passed into a model
func (c *AppConfig) GetSnippetCap() int {
	return c.SnippetCap
}

// GetPreviewChars returns the rune count of the extracted-text preview
func (c *AppConfig) GetPreviewChars() int {
	return c.PreviewChars
}

// GetOCRMinTextChars returns the sufficiency threshold for direct extraction
func (c *AppConfig) GetOCRMinTextChars() int {
	return c.OCRMinTextChars
}

// GetOCRDPI returns the rasterization resolution for the OCR fallback
func (c *AppConfig) GetOCRDPI() float64 {
	return c.OCRDPI
}

// GetOCRLanguages returns the recognition language hints
func (c *AppConfig) GetOCRLanguages() []string {
	return c.OCRLanguages
}

// GetOCRPageWorkers returns the max concurrent OCR page recognitions
func (c *AppConfig) GetOCRPageWorkers() int {
	return c.OCRPageWorkers
}

// GetModelCatalog returns the fixed set of selectable models
func (c *AppConfig) GetModelCatalog() []domain.ModelInfo {
	return c.Models
}

// GetHFInferenceURL returns the summarization sidecar endpoint
func (c *AppConfig) GetHFInferenceURL() string {
	return c.HFInferenceURL
}

// GetOllamaURL returns the Ollama daemon base URL
func (c *AppConfig) GetOllamaURL() string {
	return c.OllamaURL
}

// GetVertexProjectID returns the GCP project for Vertex AI models
func (c *AppConfig) GetVertexProjectID() string {
	return c.VertexProjectID
}

// GetVertexLocation returns the GCP region for Vertex AI models
func (c *AppConfig) GetVertexLocation() string {
	return c.VertexLocation
}

// parseModelCatalog parses "id=provider" pairs separated by commas.
// Entries without a provider are ignored.
func parseModelCatalog(raw string) []domain.ModelInfo {
	var models []domain.ModelInfo
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, provider, ok := strings.Cut(entry, "=")
		id = strings.TrimSpace(id)
		provider = strings.TrimSpace(provider)
		if !ok || id == "" || provider == "" {
			continue
		}
		models = append(models, domain.ModelInfo{ID: id, Provider: provider})
	}
	return models
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
