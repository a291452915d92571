package llm

import (
	"context"
	"encoding/json"
)

// ExtractRequest carries the OCR text and the resolved document type into the
// extraction call.
type ExtractRequest struct {
	OCRText      string
	DocumentType string
	FileNameHint string
}

// Classification is the result of the "classify this text" call.
type Classification struct {
	DocumentType string  `json:"document_type"`
	Confidence   float32 `json:"confidence,omitempty"`
	Rationale    string  `json:"rationale,omitempty"`
}

// FieldExtractor converts OCR text into type-specific structured fields.
// The returned RawMessage is validated against the document type's schema;
// the second return is the raw model output for diagnostics.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (json.RawMessage, []byte, error)
}

// Classifier resolves a best-guess document type from raw OCR text.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}
