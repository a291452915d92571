package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/async"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/repository"
)

type fakeDocs struct {
	created  []repository.CreateDocumentRequest
	existing map[uuid.UUID]*entity.Document
}

func (f *fakeDocs) Create(_ context.Context, req repository.CreateDocumentRequest) (*entity.Document, error) {
	f.created = append(f.created, req)
	return &entity.Document{
		ID:           uuid.New(),
		FileName:     req.FileName,
		FileURL:      req.FileURL,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		DocumentType: req.DocumentType,
		Status:       string(constants.StatusProcessing),
		UploadedBy:   req.UploadedBy,
	}, nil
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := f.existing[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return d, nil
}

func (f *fakeDocs) List(context.Context, entity.DocumentFilter) ([]*entity.Document, error) {
	return nil, nil
}
func (f *fakeDocs) UpdateFields(context.Context, uuid.UUID, repository.UpdateDocumentRequest) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDocs) Delete(context.Context, uuid.UUID) error         { return nil }
func (f *fakeDocs) MarkProcessing(context.Context, uuid.UUID) error { return nil }
func (f *fakeDocs) UpdateOCRResult(context.Context, uuid.UUID, repository.OCROutcome) error {
	return nil
}
func (f *fakeDocs) SetDocumentType(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeDocs) UpdateParsedData(context.Context, uuid.UUID, string, json.RawMessage) error {
	return nil
}
func (f *fakeDocs) MarkFailed(context.Context, uuid.UUID, constants.Stage, string, string) error {
	return nil
}
func (f *fakeDocs) StatusCounts(context.Context) (map[string]int, error) { return nil, nil }
func (f *fakeDocs) TypeCounts(context.Context) (map[string]int, error)   { return nil, nil }
func (f *fakeDocs) MonthlyUploadCounts(context.Context, int) (map[time.Month]int, error) {
	return nil, nil
}

type fakeAudit struct {
	entries []repository.LogEntryRequest
}

func (f *fakeAudit) Log(_ context.Context, req repository.LogEntryRequest) error {
	f.entries = append(f.entries, req)
	return nil
}
func (f *fakeAudit) ListByDocument(context.Context, uuid.UUID, int) ([]*entity.AuditEntry, error) {
	return nil, nil
}
func (f *fakeAudit) ListRecent(context.Context, int) ([]*entity.AuditEntry, error) {
	return nil, nil
}

type fakeQueue struct {
	jobs []async.Job
	err  error
}

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) Shutdown(context.Context) {}

func TestUploadRegistersAndEnqueues(t *testing.T) {
	docs := &fakeDocs{}
	audit := &fakeAudit{}
	queue := &fakeQueue{}
	s := NewService(docs, audit, queue, nil)

	uploader := uuid.New()
	doc, err := s.Upload(context.Background(), UploadRequest{
		FileName:     "statement.pdf",
		FileURL:      "https://files.local/statement.pdf",
		FileSize:     1024,
		DocumentType: "Receipt", // synonym, canonicalized
		UploadedBy:   &uploader,
		ActorName:    "ops",
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if doc.Status != string(constants.StatusProcessing) {
		t.Errorf("status = %q, want processing", doc.Status)
	}
	if len(docs.created) != 1 {
		t.Fatalf("created %d documents, want 1", len(docs.created))
	}
	if docs.created[0].DocumentType != string(constants.Invoice) {
		t.Errorf("document_type = %q, want canonical invoice", docs.created[0].DocumentType)
	}
	if docs.created[0].FileType != "PDF" {
		t.Errorf("file_type = %q, want PDF", docs.created[0].FileType)
	}
	if len(queue.jobs) != 1 || queue.jobs[0].DocumentID != doc.ID {
		t.Errorf("queue jobs = %+v, want one for %s", queue.jobs, doc.ID)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != constants.ActionUploaded {
		t.Errorf("audit = %+v, want one uploaded entry", audit.entries)
	}
}

func TestUploadWithoutTypeDefaultsToOther(t *testing.T) {
	docs := &fakeDocs{}
	s := NewService(docs, &fakeAudit{}, &fakeQueue{}, nil)

	if _, err := s.Upload(context.Background(), UploadRequest{
		FileName: "mystery.png",
		FileURL:  "https://files.local/mystery.png",
		FileSize: 500,
	}); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if docs.created[0].DocumentType != string(constants.Other) {
		t.Errorf("document_type = %q, want other", docs.created[0].DocumentType)
	}
}

func TestUploadRejectsInvalidRequest(t *testing.T) {
	docs := &fakeDocs{}
	queue := &fakeQueue{}
	s := NewService(docs, &fakeAudit{}, queue, nil)

	_, err := s.Upload(context.Background(), UploadRequest{
		FileName: "malware.exe",
		FileURL:  "https://files.local/malware.exe",
		FileSize: 10,
	})
	if err == nil {
		t.Fatal("want validation error")
	}
	if len(docs.created) != 0 {
		t.Error("rejected upload must not create a record")
	}
	if len(queue.jobs) != 0 {
		t.Error("rejected upload must not enqueue")
	}
}

func TestReprocessEnqueuesForce(t *testing.T) {
	id := uuid.New()
	docs := &fakeDocs{existing: map[uuid.UUID]*entity.Document{
		id: {ID: id, FileName: "a.pdf", Status: string(constants.StatusFailed)},
	}}
	audit := &fakeAudit{}
	queue := &fakeQueue{}
	s := NewService(docs, audit, queue, nil)

	actor := uuid.New()
	doc, err := s.Reprocess(context.Background(), id, &actor, "admin")
	if err != nil {
		t.Fatalf("Reprocess: %v", err)
	}
	if doc.ID != id {
		t.Errorf("returned document %s, want %s", doc.ID, id)
	}
	if len(queue.jobs) != 1 || !queue.jobs[0].Force {
		t.Errorf("queue jobs = %+v, want one forced job", queue.jobs)
	}
	if len(audit.entries) != 1 || audit.entries[0].Action != constants.ActionReprocess {
		t.Errorf("audit = %+v, want one reprocess entry", audit.entries)
	}
	if audit.entries[0].ActorName != "admin" {
		t.Errorf("actor name = %q", audit.entries[0].ActorName)
	}
}

func TestReprocessUnknownDocument(t *testing.T) {
	s := NewService(&fakeDocs{existing: map[uuid.UUID]*entity.Document{}}, &fakeAudit{}, &fakeQueue{}, nil)
	if _, err := s.Reprocess(context.Background(), uuid.New(), nil, ""); err == nil {
		t.Fatal("want error for unknown document")
	}
}
