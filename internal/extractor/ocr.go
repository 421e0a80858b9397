package extractor

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"golang.org/x/sync/errgroup"

	"pdf-summarizer/internal/domain"
)

// recognizePages rasterizes every page at the configured resolution and runs
// recognition with bounded parallelism. Rasterization stays sequential
// because the MuPDF handle is not safe for concurrent use; recognition runs
// one Tesseract client per page.
func (c *Coordinator) recognizePages(ctx context.Context, doc *fitz.Document, numPages int) ([]string, error) {
	images := make([][]byte, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		img, err := doc.ImageDPI(pageNum, c.dpi)
		if err != nil {
			return nil, fmt.Errorf("%w: rasterize page %d: %v", domain.ErrOCRFailure, pageNum+1, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: encode page %d: %v", domain.ErrOCRFailure, pageNum+1, err)
		}
		images[pageNum] = buf.Bytes()
	}

	texts := make([]string, numPages)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.pageWorkers)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		pageNum := pageNum
		g.Go(func() error {
			text, err := c.recognizer.Recognize(gctx, images[pageNum])
			if err != nil {
				return fmt.Errorf("%w: page %d: %v", domain.ErrOCRFailure, pageNum+1, err)
			}
			texts[pageNum] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for pageNum, text := range texts {
		c.logger.Debug("OCR page done", "page", pageNum+1, "total", numPages, "chars", len(text))
	}
	return texts, nil
}

// TesseractRecognizer implements Recognizer with a gosseract client per call.
// gosseract clients are not safe for concurrent use, so each recognition
// gets its own.
type TesseractRecognizer struct {
	languages []string
	dpi       int
}

// NewTesseractRecognizer creates a Tesseract-backed page recognizer.
func NewTesseractRecognizer(languages []string, dpi float64) *TesseractRecognizer {
	return &TesseractRecognizer{
		languages: append([]string(nil), languages...),
		dpi:       int(dpi),
	}
}

// Recognize returns the recognized text of one PNG page image.
func (r *TesseractRecognizer) Recognize(ctx context.Context, pageImage []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(pageImage); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(r.languages) > 0 {
		if err := client.SetLanguage(r.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if r.dpi > 0 {
		if err := client.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(r.dpi)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
