package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pdf-summarizer/internal/domain"
	apperrors "pdf-summarizer/pkg/errors"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// respondError maps domain errors onto structured HTTP error responses.
// Every error is terminal for the current request; the client recovers by
// acting again.
func respondError(w http.ResponseWriter, err error) {
	appErr := toAppError(err)
	writeJSON(w, appErr.StatusCode, appErr)
}

func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidFile):
		return apperrors.NewValidationError("Invalid file", err.Error())
	case errors.Is(err, domain.ErrEmptyInput):
		return apperrors.NewValidationError("Nothing to summarize")
	case errors.Is(err, domain.ErrUnreadablePDF):
		return apperrors.NewExtractionError("The PDF could not be read; it may be corrupt or password-protected", err)
	case errors.Is(err, domain.ErrOCRFailure):
		return apperrors.NewRecognitionError("Character recognition failed for this document", err)
	case errors.Is(err, domain.ErrUnknownModel):
		return apperrors.NewNotFoundError("Unknown model")
	case errors.Is(err, domain.ErrModelUnavailable):
		return apperrors.NewModelError("The selected model could not be loaded; try again or pick a different model", err)
	default:
		return apperrors.NewInternalError("Internal server error", err)
	}
}
