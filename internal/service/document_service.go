package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"pdf-summarizer/internal/domain"
)

var pdfMagic = []byte("%PDF-")

// DocumentService validates uploaded files and runs extraction. It holds no
// state between requests; the uploaded bytes live only for the duration of
// one call.
type DocumentService struct {
	extractor   domain.Extractor
	logger      domain.Logger
	maxFileSize int64
}

// NewDocumentService creates a new document service instance
func NewDocumentService(extractor domain.Extractor, cfg domain.Config, logger domain.Logger) *DocumentService {
	return &DocumentService{
		extractor:   extractor,
		logger:      logger,
		maxFileSize: cfg.GetMaxFileSize(),
	}
}

// ProcessUpload validates the upload and returns the extraction result.
func (s *DocumentService) ProcessUpload(ctx context.Context, upload *domain.DocumentUpload) (*domain.ExtractionResult, error) {
	if err := s.validate(upload); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.extractor.Extract(ctx, upload.Data)
	if err != nil {
		s.logger.Error("Extraction failed", err, "filename", upload.Filename, "size", upload.Size)
		return nil, err
	}

	s.logger.Info("Document extracted",
		"filename", upload.Filename,
		"pages", result.PageCount,
		"chars", result.CharCount,
		"words", result.WordCount,
		"method", result.Method,
		"duration_ms", time.Since(start).Milliseconds())
	return result, nil
}

func (s *DocumentService) validate(upload *domain.DocumentUpload) error {
	if upload == nil || len(upload.Data) == 0 {
		return fmt.Errorf("%w: empty upload", domain.ErrInvalidFile)
	}
	if s.maxFileSize > 0 && upload.Size > s.maxFileSize {
		return fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidFile, s.maxFileSize)
	}
	if ext := strings.ToLower(filepath.Ext(upload.Filename)); ext != "" && ext != ".pdf" {
		return fmt.Errorf("%w: unsupported extension %s", domain.ErrInvalidFile, ext)
	}
	// Content-Type from the browser is advisory; the magic bytes decide.
	if !bytes.HasPrefix(upload.Data, pdfMagic) {
		return fmt.Errorf("%w: not a PDF", domain.ErrInvalidFile)
	}
	return nil
}
