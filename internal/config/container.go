package config

import (
	"pdf-summarizer/internal/domain"
	"pdf-summarizer/internal/extractor"
	"pdf-summarizer/internal/service"
	"pdf-summarizer/internal/summarizer"
	"pdf-summarizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config   domain.Config
	Logger   domain.Logger
	Registry domain.ModelRegistry

	DocumentService domain.DocumentService
	SummaryService  domain.SummaryService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	// Extraction pipeline
	recognizer := extractor.NewTesseractRecognizer(cfg.GetOCRLanguages(), cfg.GetOCRDPI())
	coordinator := extractor.NewCoordinator(recognizer, cfg, appLogger)

	// Model registry; providers load lazily so unused backends cost nothing.
	registry := summarizer.NewRegistry(
		cfg.GetModelCatalog(),
		[]summarizer.Provider{
			summarizer.NewHFProvider(cfg.GetHFInferenceURL()),
			summarizer.NewOllamaProvider(cfg.GetOllamaURL()),
			summarizer.NewVertexProvider(cfg.GetVertexProjectID(), cfg.GetVertexLocation()),
		},
		appLogger,
	)

	return &Container{
		Config:          cfg,
		Logger:          appLogger,
		Registry:        registry,
		DocumentService: service.NewDocumentService(coordinator, cfg, appLogger),
		SummaryService:  service.NewSummaryService(registry, cfg, appLogger),
	}
}
