package domain

import "errors"

// Domain errors
var (
	// ErrUnreadablePDF means the document could not be opened or parsed at all
	// (corrupt bytes, encrypted file). Fatal for the request, no partial result.
	ErrUnreadablePDF = errors.New("unreadable pdf")

	// ErrOCRFailure means rasterization or recognition failed. The request is
	// rejected rather than silently returning empty text.
	ErrOCRFailure = errors.New("ocr failed")

	// ErrModelUnavailable means the requested model could not be loaded.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrUnknownModel means the model id is not in the configured catalog.
	ErrUnknownModel = errors.New("unknown model")

	// ErrEmptyInput guards summarization: nothing to summarize.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidFile rejects uploads that are not PDFs or exceed the size cap.
	ErrInvalidFile = errors.New("invalid file")
)
