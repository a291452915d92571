package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one immutable action recorded against a document.
type AuditEntry struct {
	ID         uuid.UUID  `json:"id"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	FileName   string     `json:"file_name"`
	Action     string     `json:"action"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	ActorName  string     `json:"actor_name"`
	Detail     string     `json:"detail"`
	CreatedAt  time.Time  `json:"created_at"`
}
