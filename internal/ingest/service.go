// Package ingest registers uploads and hands them to the background queue.
// Validation failures are rejected here, before the pipeline ever starts.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/async"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/repository"
)

// Service handles upload and reprocess business logic.
type Service struct {
	docs   repository.DocumentRepository
	audit  repository.AuditRepository
	queue  async.Queue
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, audit repository.AuditRepository, q async.Queue, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, audit: audit, queue: q, logger: logger}
}

// UploadRequest represents upload registration parameters. The file itself
// lives elsewhere; FileURL is the reference handed to the OCR collaborator.
type UploadRequest struct {
	FileName     string
	FileURL      string
	FileSize     int64
	DocumentType string // optional hint; empty means "other" and triggers classification
	UploadedBy   *uuid.UUID
	ActorName    string
}

// Upload validates the request, creates the document in processing state and
// enqueues it. The caller gets the created record back immediately; processing
// runs in the background.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*entity.Document, error) {
	fileType, err := ValidateUpload(req)
	if err != nil {
		s.logger.Warn("upload rejected", "file_name", req.FileName, "error", err)
		return nil, err
	}

	docType := string(constants.Other)
	if req.DocumentType != "" {
		if dt, ok := constants.CanonicalizeType(req.DocumentType); ok {
			docType = string(dt)
		}
	}

	doc, err := s.docs.Create(ctx, repository.CreateDocumentRequest{
		FileName:     req.FileName,
		FileURL:      req.FileURL,
		FileType:     fileType,
		FileSize:     req.FileSize,
		DocumentType: docType,
		UploadedBy:   req.UploadedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.auditLog(ctx, doc, req.UploadedBy, req.ActorName, constants.ActionUploaded,
		fmt.Sprintf("%s (%d bytes, %s)", doc.FileName, doc.FileSize, doc.FileType))

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  doc.ID,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("enqueue failed after upload", "document_id", doc.ID, "error", err)
	}

	s.logger.Info("upload registered", "document_id", doc.ID, "file_name", doc.FileName, "document_type", doc.DocumentType)
	return doc, nil
}

// Reprocess re-runs the pipeline from the top for an existing document. The
// pipeline itself transitions a failed record back through processing.
func (s *Service) Reprocess(ctx context.Context, documentID uuid.UUID, actorID *uuid.UUID, actorName string) (*entity.Document, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  doc.ID,
		Force:       true,
		SubmittedAt: time.Now(),
	}); err != nil {
		s.logger.Error("enqueue failed for reprocess", "document_id", doc.ID, "error", err)
		return nil, err
	}

	s.auditLog(ctx, doc, actorID, actorName, constants.ActionReprocess,
		fmt.Sprintf("reprocess requested while %s", doc.Status))
	s.logger.Info("reprocess queued", "document_id", doc.ID, "status", doc.Status)
	return doc, nil
}

// auditLog is best-effort; upload success is never rolled back over it.
func (s *Service) auditLog(ctx context.Context, doc *entity.Document, actorID *uuid.UUID, actorName, action, detail string) {
	id := doc.ID
	if err := s.audit.Log(ctx, repository.LogEntryRequest{
		DocumentID: &id,
		FileName:   doc.FileName,
		Action:     action,
		ActorID:    actorID,
		ActorName:  actorName,
		Detail:     detail,
	}); err != nil {
		s.logger.Warn("ingest.audit.skipped", "document_id", doc.ID, "action", action, "error", err)
	}
}
