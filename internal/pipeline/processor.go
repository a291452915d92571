// Package pipeline drives one document from processing to a terminal outcome
// by chaining the OCR and AI-extraction collaborators and persisting their
// results at two checkpoints. Collaborator failures are converted into a
// persisted failed status and never returned to the caller; persistence
// failures propagate.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/common"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/llm"
	"github.com/paperbase/paperbase/internal/ocr"
	"github.com/paperbase/paperbase/internal/repository"
)

// Processor coordinates OCR, type classification and field extraction.
type Processor struct {
	logger     *slog.Logger
	docs       repository.DocumentRepository
	audit      repository.AuditRepository
	ocr        ocr.Recognizer
	classifier llm.Classifier
	extractor  llm.FieldExtractor
}

func NewProcessor(
	logger *slog.Logger,
	docs repository.DocumentRepository,
	audit repository.AuditRepository,
	recognizer ocr.Recognizer,
	classifier llm.Classifier,
	extractor llm.FieldExtractor,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:     logger,
		docs:       docs,
		audit:      audit,
		ocr:        recognizer,
		classifier: classifier,
		extractor:  extractor,
	}
}

// Process runs the full chain for one document. Re-invocation on a completed
// or failed record is allowed and simply redoes the work from the top; a
// failed record passes back through processing first. There is no retry of
// either remote call and no locking: concurrent invocations for the same id
// are last-write-wins.
func (p *Processor) Process(ctx context.Context, documentID uuid.UUID) error {
	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	if doc.Status != string(constants.StatusProcessing) {
		if err := p.docs.MarkProcessing(ctx, documentID); err != nil {
			return fmt.Errorf("reset to processing: %w", err)
		}
		p.logAudit(ctx, doc, constants.ActionReprocess,
			fmt.Sprintf("reprocessing from status %s", doc.Status))
		doc.Status = string(constants.StatusProcessing)
	}

	// Step 1 — OCR. A success persists the text and layout; status stays
	// processing (a crash after this checkpoint leaves a legal transient state).
	ocrRes, err := p.runOCR(ctx, doc)
	if err != nil {
		return p.settle(ctx, doc, err)
	}
	p.logger.Info("pipeline.ocr.ok",
		"document_id", documentID,
		"pages", ocrRes.PageCount,
		"confidence", ocrRes.Confidence,
	)

	// Step 2 — type resolution. Classification runs only when the type is
	// still unknown; an upload-time type is used as-is.
	docType, err := p.resolveType(ctx, doc, ocrRes.Text)
	if err != nil {
		return p.settle(ctx, doc, err)
	}

	// Step 3 — extraction. A success completes the document.
	if err := p.runParse(ctx, doc, ocrRes.Text, docType); err != nil {
		return p.settle(ctx, doc, err)
	}
	p.logger.Info("pipeline.process.ok", "document_id", documentID, "document_type", string(docType))
	return nil
}

// settle converts stage-tagged collaborator failures into a persisted failed
// status. Anything else (store writes) propagates to the caller.
func (p *Processor) settle(ctx context.Context, doc *entity.Document, err error) error {
	var stageErr *common.StageError
	if !errors.As(err, &stageErr) {
		p.logger.Error("pipeline.persist.failed", "document_id", doc.ID, "error", err)
		return err
	}

	msg := stageErr.Cause.Error()
	if mErr := p.docs.MarkFailed(ctx, doc.ID, stageErr.Stage, stageErr.Code, msg); mErr != nil {
		p.logger.Error("pipeline.mark_failed.errored", "document_id", doc.ID, "error", mErr)
		return mErr
	}
	p.logAudit(ctx, doc, constants.ActionProcessFailed,
		fmt.Sprintf("stage %s: %s", stageErr.Stage, msg))
	p.logger.Error("pipeline.process.failed",
		"document_id", doc.ID,
		"stage", string(stageErr.Stage),
		"error", msg,
	)
	return nil
}

// logAudit is best-effort: a failed audit write never fails the pipeline.
func (p *Processor) logAudit(ctx context.Context, doc *entity.Document, action, detail string) {
	id := doc.ID
	if err := p.audit.Log(ctx, repository.LogEntryRequest{
		DocumentID: &id,
		FileName:   doc.FileName,
		Action:     action,
		Detail:     detail,
	}); err != nil {
		p.logger.Warn("pipeline.audit.skipped", "document_id", doc.ID, "action", action, "error", err)
	}
}
