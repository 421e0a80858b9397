package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-summarizer/internal/domain"
)

func multipartPDF(t *testing.T, fieldName, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func newDocumentHandler(svc *mockDocumentService) *DocumentHandler {
	return NewDocumentHandler(svc, &mockConfig{maxFileSize: 1 << 20, previewChars: 10}, mockHandlerLogger{})
}

func TestExtractDocument_Success(t *testing.T) {
	svc := &mockDocumentService{
		result: &domain.ExtractionResult{
			FullText:  "a fairly long extracted text body",
			PageCount: 3,
			WordCount: 6,
			CharCount: 33,
			Method:    domain.MethodDirect,
		},
	}
	h := newDocumentHandler(svc)

	body, contentType := multipartPDF(t, "file", "report.pdf", []byte("%PDF-1.4 data"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ExtractDocument(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		FullText  string `json:"full_text"`
		PageCount int    `json:"page_count"`
		Method    string `json:"method_used"`
		Preview   string `json:"preview"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PageCount != 3 || resp.Method != "DIRECT" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Preview != "a fairly l..." {
		t.Fatalf("expected truncated preview, got %q", resp.Preview)
	}
	if svc.upload == nil || svc.upload.Filename != "report.pdf" {
		t.Fatalf("service did not receive the upload: %+v", svc.upload)
	}
}

func TestExtractDocument_MissingFileField(t *testing.T) {
	h := newDocumentHandler(&mockDocumentService{})

	body, contentType := multipartPDF(t, "attachment", "report.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ExtractDocument(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExtractDocument_UnreadablePDF(t *testing.T) {
	h := newDocumentHandler(&mockDocumentService{err: domain.ErrUnreadablePDF})

	body, contentType := multipartPDF(t, "file", "broken.pdf", []byte("%PDF-1.4 broken"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ExtractDocument(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "could not be read") {
		t.Fatalf("expected rejection message, got %s", rec.Body.String())
	}
}

func TestExtractDocument_InvalidFile(t *testing.T) {
	h := newDocumentHandler(&mockDocumentService{err: domain.ErrInvalidFile})

	body, contentType := multipartPDF(t, "file", "photo.png", []byte("not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/extract", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ExtractDocument(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPreviewOf(t *testing.T) {
	if got := previewOf("short", 10); got != "short" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := previewOf("0123456789abc", 10); got != "0123456789..." {
		t.Fatalf("expected truncation with ellipsis, got %q", got)
	}
	if got := previewOf("anything", 0); got != "anything" {
		t.Fatalf("expected no cap when chars <= 0, got %q", got)
	}
}
