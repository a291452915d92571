package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paperbase/paperbase/gen/ent"
	"github.com/paperbase/paperbase/gen/ent/auditlog"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/utils"
)

// LogEntryRequest describes one action to append to the audit log.
type LogEntryRequest struct {
	DocumentID *uuid.UUID
	FileName   string
	Action     string
	ActorID    *uuid.UUID
	ActorName  string
	Detail     string
}

// AuditRepository appends to and reads the append-only audit log. Log is
// best-effort from the pipeline's perspective: callers decide whether a write
// failure matters.
type AuditRepository interface {
	Log(ctx context.Context, req LogEntryRequest) error
	ListByDocument(ctx context.Context, documentID uuid.UUID, limit int) ([]*entity.AuditEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditEntry, error)
}

type auditRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAuditRepository(client *ent.Client, logger *slog.Logger) AuditRepository {
	return &auditRepository{client: client, logger: logger}
}

func (r *auditRepository) Log(ctx context.Context, req LogEntryRequest) error {
	builder := r.client.AuditLog.Create().
		SetFileName(req.FileName).
		SetAction(req.Action).
		SetDetail(req.Detail)
	if req.DocumentID != nil {
		builder = builder.SetDocumentID(*req.DocumentID)
	}
	if req.ActorID != nil {
		builder = builder.SetActorID(*req.ActorID)
	}
	if req.ActorName != "" {
		builder = builder.SetActorName(req.ActorName)
	}

	if _, err := builder.Save(ctx); err != nil {
		r.logger.Warn("audit log write failed", "action", req.Action, "file_name", req.FileName, "error", err)
		return err
	}
	return nil
}

func (r *auditRepository) ListByDocument(ctx context.Context, documentID uuid.UUID, limit int) ([]*entity.AuditEntry, error) {
	q := r.client.AuditLog.Query().
		Where(auditlog.DocumentID(documentID)).
		Order(ent.Desc(auditlog.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	entries, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list audit entries", "document_id", documentID, "error", err)
		return nil, err
	}

	result := make([]*entity.AuditEntry, len(entries))
	for i, e := range entries {
		result[i] = utils.ToAuditEntry(e)
	}
	return result, nil
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]*entity.AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	entries, err := r.client.AuditLog.Query().
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recent audit entries", "error", err)
		return nil, err
	}

	result := make([]*entity.AuditEntry, len(entries))
	for i, e := range entries {
		result[i] = utils.ToAuditEntry(e)
	}
	return result, nil
}
