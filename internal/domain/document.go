package domain

// ExtractionMethod identifies how text was recovered from a document.
type ExtractionMethod string

const (
	// MethodDirect means the text layer embedded in the PDF was read as-is.
	MethodDirect ExtractionMethod = "DIRECT"
	// MethodOCR means pages were rasterized and run through character recognition.
	MethodOCR ExtractionMethod = "OCR"
)

// DocumentUpload represents one uploaded PDF, alive for a single request.
type DocumentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// ExtractionResult is the unified output of text extraction plus basic stats.
// CharCount always equals the rune length of FullText; WordCount is the
// whitespace-delimited token count of FullText.
type ExtractionResult struct {
	FullText  string           `json:"full_text"`
	PageCount int              `json:"page_count"`
	WordCount int              `json:"word_count"`
	CharCount int              `json:"char_count"`
	Method    ExtractionMethod `json:"method_used"`
}
