package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/gen/ent"
	"github.com/paperbase/paperbase/gen/ent/document"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/utils"
)

// CreateDocumentRequest wraps parameters for registering an uploaded file.
type CreateDocumentRequest struct {
	FileName     string
	FileURL      string
	FileType     string
	FileSize     int64
	DocumentType string
	UploadedBy   *uuid.UUID
}

// OCROutcome is the payload persisted onto a document after a successful OCR
// call. It does not change the document status.
type OCROutcome struct {
	Text       string
	Pages      json.RawMessage
	PageCount  int
	Confidence float32
}

// UpdateDocumentRequest carries the user-editable fields.
type UpdateDocumentRequest struct {
	DocumentType *string
}

type DocumentRepository interface {
	Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	List(ctx context.Context, filter entity.DocumentFilter) ([]*entity.Document, error)
	UpdateFields(ctx context.Context, id uuid.UUID, req UpdateDocumentRequest) (*entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// pipeline checkpoints
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	UpdateOCRResult(ctx context.Context, id uuid.UUID, out OCROutcome) error
	SetDocumentType(ctx context.Context, id uuid.UUID, docType string) error
	UpdateParsedData(ctx context.Context, id uuid.UUID, docType string, fields json.RawMessage) error
	MarkFailed(ctx context.Context, id uuid.UUID, stage constants.Stage, code, message string) error

	// reporting aggregates
	StatusCounts(ctx context.Context) (map[string]int, error)
	TypeCounts(ctx context.Context) (map[string]int, error)
	MonthlyUploadCounts(ctx context.Context, year int) (map[time.Month]int, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req CreateDocumentRequest) (*entity.Document, error) {
	builder := r.client.Document.Create().
		SetFileName(req.FileName).
		SetFileURL(req.FileURL).
		SetFileType(req.FileType).
		SetFileSize(req.FileSize).
		SetStatus(string(constants.StatusProcessing))
	if req.DocumentType != "" {
		builder = builder.SetDocumentType(req.DocumentType)
	}
	if req.UploadedBy != nil {
		builder = builder.SetUploadedBy(*req.UploadedBy)
	}

	doc, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("document create failed", "file_name", req.FileName, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", doc.ID, "file_name", doc.FileName, "document_type", doc.DocumentType)
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) List(ctx context.Context, filter entity.DocumentFilter) ([]*entity.Document, error) {
	q := r.client.Document.Query()
	if filter.Status != "" {
		q = q.Where(document.Status(filter.Status))
	}
	if filter.DocumentType != "" {
		q = q.Where(document.DocumentType(filter.DocumentType))
	}
	if filter.UploadedBy != nil {
		q = q.Where(document.UploadedBy(*filter.UploadedBy))
	}
	if filter.From != nil {
		q = q.Where(document.CreatedAtGTE(*filter.From))
	}
	if filter.To != nil {
		q = q.Where(document.CreatedAtLTE(*filter.To))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	docs, err := q.Order(ent.Desc(document.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}

func (r *documentRepository) UpdateFields(ctx context.Context, id uuid.UUID, req UpdateDocumentRequest) (*entity.Document, error) {
	builder := r.client.Document.UpdateOneID(id)
	if req.DocumentType != nil {
		builder = builder.SetDocumentType(*req.DocumentType)
	}
	doc, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("document update failed", "document_id", id, "error", err)
		return nil, notFound(err)
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Document.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("document delete failed", "document_id", id, "error", err)
		return notFound(err)
	}
	r.logger.Info("document deleted", "document_id", id)
	return nil
}

// MarkProcessing moves a document back into processing and clears any prior
// failure detail. This is the only transition out of failed.
func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.StatusProcessing)).
		ClearErrorMessage().
		ClearErrorCode().
		ClearErrorStage().
		Save(ctx)
	if err != nil {
		r.logger.Error("document mark processing failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document reset to processing", "document_id", id)
	return nil
}

func (r *documentRepository) UpdateOCRResult(ctx context.Context, id uuid.UUID, out OCROutcome) error {
	_, err := r.client.Document.UpdateOneID(id).
		SetOcrText(out.Text).
		SetOcrPages(out.Pages).
		SetPageCount(out.PageCount).
		SetConfidence(out.Confidence).
		SetOcrCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("document ocr update failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document ocr result stored", "document_id", id, "pages", out.PageCount)
	return nil
}

func (r *documentRepository) SetDocumentType(ctx context.Context, id uuid.UUID, docType string) error {
	_, err := r.client.Document.UpdateOneID(id).
		SetDocumentType(docType).
		Save(ctx)
	if err != nil {
		r.logger.Error("document type update failed", "document_id", id, "document_type", docType, "error", err)
		return err
	}
	r.logger.Info("document type resolved", "document_id", id, "document_type", docType)
	return nil
}

// UpdateParsedData stores the structured result under the resolved type key and
// completes the document. Read-modify-write on the JSON map: concurrent
// invocations for the same id are last-write-wins.
func (r *documentRepository) UpdateParsedData(ctx context.Context, id uuid.UUID, docType string, fields json.RawMessage) error {
	doc, err := r.client.Document.Get(ctx, id)
	if err != nil {
		return err
	}
	parsed := doc.ParsedData
	if parsed == nil {
		parsed = make(map[string]json.RawMessage, 1)
	}
	parsed[docType] = fields

	_, err = r.client.Document.UpdateOneID(id).
		SetParsedData(parsed).
		SetParsedAt(time.Now()).
		SetStatus(string(constants.StatusCompleted)).
		ClearErrorMessage().
		ClearErrorCode().
		ClearErrorStage().
		Save(ctx)
	if err != nil {
		r.logger.Error("document parsed data update failed", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document completed", "document_id", id, "document_type", docType)
	return nil
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, stage constants.Stage, code, message string) error {
	_, err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetErrorStage(string(stage)).
		SetErrorCode(code).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("document mark failed errored", "document_id", id, "error", err)
		return err
	}
	r.logger.Warn("document failed", "document_id", id, "stage", string(stage), "error", message)
	return nil
}

func (r *documentRepository) StatusCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.client.Document.Query().
		GroupBy(document.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *documentRepository) TypeCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		DocumentType string `json:"document_type"`
		Count        int    `json:"count"`
	}
	err := r.client.Document.Query().
		GroupBy(document.FieldDocumentType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.DocumentType] = row.Count
	}
	return out, nil
}

// MonthlyUploadCounts buckets created_at by month for one year. Bucketing runs
// in Go to stay dialect-neutral between postgres and sqlite.
func (r *documentRepository) MonthlyUploadCounts(ctx context.Context, year int) (map[time.Month]int, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var rows []struct {
		CreatedAt time.Time `json:"created_at"`
	}
	err := r.client.Document.Query().
		Where(document.CreatedAtGTE(from), document.CreatedAtLT(to)).
		Select(document.FieldCreatedAt).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	out := make(map[time.Month]int)
	for _, row := range rows {
		out[row.CreatedAt.UTC().Month()]++
	}
	return out, nil
}
