package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"

	"pdf-summarizer/internal/domain"
)

// pageTexts reads the embedded text layer of every page in page order.
// A page whose text cannot be read contributes an empty string; only a
// document that cannot be opened at all is fatal, and that is handled by
// the caller when opening.
func (c *Coordinator) pageTexts(doc *fitz.Document, numPages int) []string {
	pages := make([]string, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			c.logger.Warn("Failed to read text layer from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}
		pages[pageNum] = normalizeLineBreaks(text)
	}
	return pages
}

func normalizeLineBreaks(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func buildResult(fullText string, pageCount int, method domain.ExtractionMethod) *domain.ExtractionResult {
	return &domain.ExtractionResult{
		FullText:  fullText,
		PageCount: pageCount,
		WordCount: len(strings.Fields(fullText)),
		CharCount: utf8.RuneCountInString(fullText),
		Method:    method,
	}
}

// visibleRuneCount counts non-whitespace runes, the signal used to judge
// whether the direct text layer is sufficient.
func visibleRuneCount(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
