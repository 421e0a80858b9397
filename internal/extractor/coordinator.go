// Package extractor recovers plain text from PDF documents, preferring the
// embedded text layer and falling back to OCR for scanned documents.
package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"

	"pdf-summarizer/internal/domain"
)

// Recognizer runs character recognition on one rasterized page image (PNG).
type Recognizer interface {
	Recognize(ctx context.Context, pageImage []byte) (string, error)
}

// Coordinator implements domain.Extractor. It attempts direct text-layer
// extraction first and switches the whole document to OCR when the direct
// pass yields fewer visible characters than the configured threshold.
type Coordinator struct {
	recognizer   Recognizer
	logger       domain.Logger
	minTextChars int
	dpi          float64
	pageWorkers  int
}

// NewCoordinator creates an extraction coordinator from static configuration.
func NewCoordinator(recognizer Recognizer, cfg domain.Config, logger domain.Logger) *Coordinator {
	workers := cfg.GetOCRPageWorkers()
	if workers < 1 {
		workers = 1
	}
	return &Coordinator{
		recognizer:   recognizer,
		logger:       logger,
		minTextChars: cfg.GetOCRMinTextChars(),
		dpi:          cfg.GetOCRDPI(),
		pageWorkers:  workers,
	}
}

// Extract returns the unified text of the document plus basic statistics.
// Fails with domain.ErrUnreadablePDF when the bytes cannot be parsed as a
// PDF and with domain.ErrOCRFailure when the fallback pass breaks; there is
// no partial result in either case.
func (c *Coordinator) Extract(ctx context.Context, pdfBytes []byte) (*domain.ExtractionResult, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadablePDF, err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if numPages == 0 {
		// Nothing to extract and nothing to be insufficient about, so the
		// OCR fallback never applies to an empty document.
		return buildResult("", 0, domain.MethodDirect), nil
	}

	pages := c.pageTexts(doc, numPages)
	fullText := strings.Join(pages, "")
	if visibleRuneCount(fullText) >= c.minTextChars {
		return buildResult(fullText, numPages, domain.MethodDirect), nil
	}

	c.logger.Info("Direct extraction insufficient, falling back to OCR",
		"pages", numPages, "visible_chars", visibleRuneCount(fullText), "threshold", c.minTextChars)

	ocrPages, err := c.recognizePages(ctx, doc, numPages)
	if err != nil {
		return nil, err
	}
	fullText = strings.Join(ocrPages, "\n")
	return buildResult(fullText, numPages, domain.MethodOCR), nil
}
