package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents one uploaded file and its processing state, for transfer
// between layers.
type Document struct {
	ID             uuid.UUID                  `json:"id"`
	FileName       string                     `json:"file_name"`
	FileURL        string                     `json:"file_url"`
	FileType       string                     `json:"file_type"`
	FileSize       int64                      `json:"file_size"`
	DocumentType   string                     `json:"document_type"`
	Status         string                     `json:"status"`
	OCRText        *string                    `json:"ocr_text,omitempty"`
	OCRPages       json.RawMessage            `json:"ocr_pages,omitempty"`
	PageCount      int                        `json:"page_count"`
	Confidence     *float32                   `json:"confidence,omitempty"`
	OCRCompletedAt *time.Time                 `json:"ocr_completed_at,omitempty"`
	ParsedData     map[string]json.RawMessage `json:"parsed_data,omitempty"`
	ParsedAt       *time.Time                 `json:"parsed_at,omitempty"`
	Error          *ProcessingError           `json:"error,omitempty"`
	UploadedBy     *uuid.UUID                 `json:"uploaded_by,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// ProcessingError holds the failure detail persisted on a failed document.
// Present iff Status == "failed".
type ProcessingError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Stage   string `json:"stage"`
}

// DocumentFilter narrows List queries.
type DocumentFilter struct {
	Status       string
	DocumentType string
	UploadedBy   *uuid.UUID
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
}
