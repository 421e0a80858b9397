package handler

import (
	"encoding/json"
	"net/http"

	"pdf-summarizer/internal/domain"
)

const downloadFilename = "summary.txt"

// SummaryHandler handles summarization and download requests
type SummaryHandler struct {
	summaryService domain.SummaryService
	logger         domain.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService domain.SummaryService, logger domain.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// ListModels returns the fixed model catalog for the UI's selector.
func (h *SummaryHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]domain.ModelInfo{"models": h.summaryService.Models()})
}

// CreateSummary summarizes the posted text snippet with the chosen model.
func (h *SummaryHandler) CreateSummary(w http.ResponseWriter, r *http.Request) {
	var req domain.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.ModelID == "" {
		writeError(w, http.StatusBadRequest, "model_id is required")
		return
	}

	result, err := h.summaryService.Summarize(r.Context(), req.Text, req.ModelID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DownloadSummary renders posted bullets as a plain-text attachment.
func (h *SummaryHandler) DownloadSummary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BulletPoints []string `json:"bullet_points"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if len(req.BulletPoints) == 0 {
		writeError(w, http.StatusBadRequest, "Nothing to download")
		return
	}

	body := h.summaryService.RenderDownload(req.BulletPoints)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+downloadFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
