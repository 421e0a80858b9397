// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"pdf-summarizer/internal/domain"
)

// DocumentHandler handles PDF upload and extraction requests
type DocumentHandler struct {
	documentService domain.DocumentService
	logger          domain.Logger
	maxFileSize     int64
	previewChars    int
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService domain.DocumentService, cfg domain.Config, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		logger:          logger,
		maxFileSize:     cfg.GetMaxFileSize(),
		previewChars:    cfg.GetPreviewChars(),
	}
}

// extractResponse is the extraction result plus a bounded preview so the UI
// can show the beginning of the text without shipping the whole document
// back a second time.
type extractResponse struct {
	*domain.ExtractionResult
	Preview string `json:"preview"`
}

// ExtractDocument accepts one multipart PDF upload and returns the extracted
// text with its statistics.
func (h *DocumentHandler) ExtractDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload", err, "filename", header.Filename)
		writeError(w, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	upload := &domain.DocumentUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}

	result, err := h.documentService.ProcessUpload(r.Context(), upload)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{
		ExtractionResult: result,
		Preview:          previewOf(result.FullText, h.previewChars),
	})
}

func previewOf(text string, chars int) string {
	if chars <= 0 || utf8.RuneCountInString(text) <= chars {
		return text
	}
	return string([]rune(text)[:chars]) + "..."
}
