// Package server exposes the gRPC surface. Handlers validate input, call the
// domain services and translate results to wire types; business rules live
// below this layer.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paperbase/paperbase/constants"
	docsv1 "github.com/paperbase/paperbase/gen/proto/docs/v1"
	"github.com/paperbase/paperbase/internal/common"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/ingest"
	"github.com/paperbase/paperbase/internal/repository"
	"github.com/paperbase/paperbase/internal/utils"
)

type DocumentsService struct {
	docsv1.UnimplementedDocumentsServiceServer
	ingestor *ingest.Service
	docs     repository.DocumentRepository
	audit    repository.AuditRepository
	logger   *slog.Logger
}

func NewDocumentsService(ing *ingest.Service, docs repository.DocumentRepository, audit repository.AuditRepository, logger *slog.Logger) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{ingestor: ing, docs: docs, audit: audit, logger: logger}
}

func (s *DocumentsService) UploadDocument(ctx context.Context, req *docsv1.UploadDocumentRequest) (*docsv1.UploadDocumentResponse, error) {
	upload := ingest.UploadRequest{
		FileName:     strings.TrimSpace(req.GetFileName()),
		FileURL:      strings.TrimSpace(req.GetFileUrl()),
		FileSize:     req.GetFileSize(),
		DocumentType: req.GetDocumentType(),
		ActorName:    req.GetActorName(),
	}
	if ub := strings.TrimSpace(req.GetUploadedBy()); ub != "" {
		id, err := uuid.Parse(ub)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "uploaded_by must be a UUID")
		}
		upload.UploadedBy = &id
	}

	doc, err := s.ingestor.Upload(ctx, upload)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			return nil, status.Error(codes.InvalidArgument, appErr.Message)
		}
		s.logger.Error("upload failed", "file_name", upload.FileName, "error", err)
		return nil, status.Error(codes.Internal, "upload failed")
	}
	return &docsv1.UploadDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsService) GetDocument(ctx context.Context, req *docsv1.GetDocumentRequest) (*docsv1.GetDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, docNotFoundOrInternal(s.logger, "get", id, err)
	}
	return &docsv1.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsService) ListDocuments(ctx context.Context, req *docsv1.ListDocumentsRequest) (*docsv1.ListDocumentsResponse, error) {
	filter := entity.DocumentFilter{
		Status:       req.GetStatus(),
		DocumentType: req.GetDocumentType(),
		Limit:        int(req.GetLimit()),
		Offset:       int(req.GetOffset()),
	}
	if ub := strings.TrimSpace(req.GetUploadedBy()); ub != "" {
		id, err := uuid.Parse(ub)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "uploaded_by must be a UUID")
		}
		filter.UploadedBy = &id
	}
	var err error
	if filter.From, err = parseYMDPtr(req.GetFromDate()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if filter.To, err = parseYMDPtr(req.GetToDate()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	docs, err := s.docs.List(ctx, filter)
	if err != nil {
		s.logger.Error("list documents failed", "error", err)
		return nil, status.Error(codes.Internal, "list documents failed")
	}
	out := make([]*docsv1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &docsv1.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentsService) UpdateDocument(ctx context.Context, req *docsv1.UpdateDocumentRequest) (*docsv1.UpdateDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	dt, ok := constants.CanonicalizeType(req.GetDocumentType())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown document_type %q", req.GetDocumentType())
	}
	docType := string(dt)

	doc, err := s.docs.UpdateFields(ctx, id, repository.UpdateDocumentRequest{DocumentType: &docType})
	if err != nil {
		return nil, docNotFoundOrInternal(s.logger, "update", id, err)
	}

	s.logAudit(ctx, doc, req.GetActorId(), req.GetActorName(), constants.ActionEdited,
		fmt.Sprintf("document_type set to %s", docType))
	return &docsv1.UpdateDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsService) DeleteDocument(ctx context.Context, req *docsv1.DeleteDocumentRequest) (*docsv1.DeleteDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, docNotFoundOrInternal(s.logger, "delete", id, err)
	}
	if err := s.docs.Delete(ctx, id); err != nil {
		return nil, docNotFoundOrInternal(s.logger, "delete", id, err)
	}

	// The document row is gone; the entry records only the name and actor.
	if err := s.audit.Log(ctx, repository.LogEntryRequest{
		FileName:  doc.FileName,
		Action:    constants.ActionDeleted,
		ActorID:   parseIDPtr(req.GetActorId()),
		ActorName: req.GetActorName(),
		Detail:    fmt.Sprintf("deleted while %s", doc.Status),
	}); err != nil {
		s.logger.Warn("server.audit.skipped", "document_id", id, "action", constants.ActionDeleted, "error", err)
	}
	s.logger.Info("document deleted", "document_id", id, "file_name", doc.FileName)
	return &docsv1.DeleteDocumentResponse{}, nil
}

func (s *DocumentsService) ReprocessDocument(ctx context.Context, req *docsv1.ReprocessDocumentRequest) (*docsv1.ReprocessDocumentResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	doc, err := s.ingestor.Reprocess(ctx, id, parseIDPtr(req.GetActorId()), req.GetActorName())
	if err != nil {
		return nil, docNotFoundOrInternal(s.logger, "reprocess", id, err)
	}
	return &docsv1.ReprocessDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentsService) ListAuditLog(ctx context.Context, req *docsv1.ListAuditLogRequest) (*docsv1.ListAuditLogResponse, error) {
	limit := int(req.GetLimit())

	var entries []*entity.AuditEntry
	var err error
	if raw := strings.TrimSpace(req.GetDocumentId()); raw != "" {
		id, perr := parseID(raw)
		if perr != nil {
			return nil, perr
		}
		entries, err = s.audit.ListByDocument(ctx, id, limit)
	} else {
		entries, err = s.audit.ListRecent(ctx, limit)
	}
	if err != nil {
		s.logger.Error("list audit log failed", "error", err)
		return nil, status.Error(codes.Internal, "list audit log failed")
	}

	out := make([]*docsv1.AuditEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, utils.ToPBAuditEntry(e))
	}
	return &docsv1.ListAuditLogResponse{Entries: out}, nil
}

// logAudit is best-effort; a failed audit write never fails the request.
func (s *DocumentsService) logAudit(ctx context.Context, doc *entity.Document, actorID, actorName, action, detail string) {
	id := doc.ID
	if err := s.audit.Log(ctx, repository.LogEntryRequest{
		DocumentID: &id,
		FileName:   doc.FileName,
		Action:     action,
		ActorID:    parseIDPtr(actorID),
		ActorName:  actorName,
		Detail:     detail,
	}); err != nil {
		s.logger.Warn("server.audit.skipped", "document_id", doc.ID, "action", action, "error", err)
	}
}

func docNotFoundOrInternal(logger *slog.Logger, op string, id uuid.UUID, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return status.Errorf(codes.NotFound, "document %s not found", id)
	}
	logger.Error(op+" document failed", "document_id", id, "error", err)
	return status.Errorf(codes.Internal, "%s document failed", op)
}
