package async

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/llm"
	"github.com/paperbase/paperbase/internal/ocr"
	"github.com/paperbase/paperbase/internal/pipeline"
	"github.com/paperbase/paperbase/internal/repository"
)

// memDocs is the minimal DocumentRepository needed to drive the pipeline
// through the queue; it records terminal statuses under a lock so the test
// can observe worker completion.
type memDocs struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*entity.Document
	done chan uuid.UUID
}

func newMemDocs(done chan uuid.UUID, docs ...*entity.Document) *memDocs {
	m := make(map[uuid.UUID]*entity.Document, len(docs))
	for _, d := range docs {
		m[d.ID] = d
	}
	return &memDocs{byID: m, done: done}
}

func (f *memDocs) Create(context.Context, repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *memDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *d
	return &cp, nil
}

func (f *memDocs) List(context.Context, entity.DocumentFilter) ([]*entity.Document, error) {
	return nil, nil
}

func (f *memDocs) UpdateFields(context.Context, uuid.UUID, repository.UpdateDocumentRequest) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *memDocs) Delete(context.Context, uuid.UUID) error { return nil }

func (f *memDocs) MarkProcessing(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[id].Status = string(constants.StatusProcessing)
	f.byID[id].Error = nil
	return nil
}

func (f *memDocs) UpdateOCRResult(_ context.Context, id uuid.UUID, out repository.OCROutcome) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.byID[id]
	d.OCRText = &out.Text
	d.PageCount = out.PageCount
	return nil
}

func (f *memDocs) SetDocumentType(_ context.Context, id uuid.UUID, docType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[id].DocumentType = docType
	return nil
}

func (f *memDocs) UpdateParsedData(_ context.Context, id uuid.UUID, docType string, fields json.RawMessage) error {
	f.mu.Lock()
	d := f.byID[id]
	if d.ParsedData == nil {
		d.ParsedData = make(map[string]json.RawMessage)
	}
	d.ParsedData[docType] = fields
	d.Status = string(constants.StatusCompleted)
	f.mu.Unlock()
	f.done <- id
	return nil
}

func (f *memDocs) MarkFailed(_ context.Context, id uuid.UUID, stage constants.Stage, code, message string) error {
	f.mu.Lock()
	d := f.byID[id]
	d.Status = string(constants.StatusFailed)
	d.Error = &entity.ProcessingError{Message: message, Code: code, Stage: string(stage)}
	f.mu.Unlock()
	f.done <- id
	return nil
}

func (f *memDocs) StatusCounts(context.Context) (map[string]int, error) { return nil, nil }
func (f *memDocs) TypeCounts(context.Context) (map[string]int, error)   { return nil, nil }
func (f *memDocs) MonthlyUploadCounts(context.Context, int) (map[time.Month]int, error) {
	return nil, nil
}

func (f *memDocs) status(id uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id].Status
}

type noopAudit struct{}

func (noopAudit) Log(context.Context, repository.LogEntryRequest) error { return nil }
func (noopAudit) ListByDocument(context.Context, uuid.UUID, int) ([]*entity.AuditEntry, error) {
	return nil, nil
}
func (noopAudit) ListRecent(context.Context, int) ([]*entity.AuditEntry, error) { return nil, nil }

type stubOCR struct{ err error }

func (s stubOCR) Recognize(context.Context, ocr.Request) (ocr.Result, error) {
	if s.err != nil {
		return ocr.Result{}, s.err
	}
	return ocr.Result{Text: "text", PageCount: 1, Confidence: 0.9}, nil
}

type stubClassifier struct{}

func (stubClassifier) Classify(context.Context, string) (llm.Classification, error) {
	return llm.Classification{DocumentType: "invoice"}, nil
}

type stubExtractor struct{}

func (stubExtractor) ExtractFields(context.Context, llm.ExtractRequest) (json.RawMessage, []byte, error) {
	return json.RawMessage(`{"amount":500}`), nil, nil
}

func waitFor(t *testing.T, done chan uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for job %d of %d", i+1, n)
		}
	}
}

func processingDoc() *entity.Document {
	return &entity.Document{
		ID:           uuid.New(),
		FileName:     "a.pdf",
		FileURL:      "https://files.local/a.pdf",
		FileType:     "PDF",
		DocumentType: string(constants.Invoice),
		Status:       string(constants.StatusProcessing),
	}
}

func TestQueueProcessesJobs(t *testing.T) {
	done := make(chan uuid.UUID, 4)
	d1, d2 := processingDoc(), processingDoc()
	docs := newMemDocs(done, d1, d2)
	proc := pipeline.NewProcessor(nil, docs, noopAudit{}, stubOCR{}, stubClassifier{}, stubExtractor{})

	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8))
	defer q.Shutdown(context.Background())

	for _, d := range []*entity.Document{d1, d2} {
		if err := q.Enqueue(context.Background(), Job{DocumentID: d.ID, SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	waitFor(t, done, 2)

	for _, d := range []*entity.Document{d1, d2} {
		if got := docs.status(d.ID); got != string(constants.StatusCompleted) {
			t.Errorf("document %s status = %q, want completed", d.ID, got)
		}
	}
}

func TestQueueWorkerFailureIsIsolated(t *testing.T) {
	done := make(chan uuid.UUID, 2)
	d := processingDoc()
	docs := newMemDocs(done, d)
	proc := pipeline.NewProcessor(nil, docs, noopAudit{},
		stubOCR{err: errors.New("ocr upstream down")}, stubClassifier{}, stubExtractor{})

	q := NewProcessorQueue(proc, nil, WithWorkers(1))
	defer q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{DocumentID: d.ID}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	waitFor(t, done, 1)

	if got := docs.status(d.ID); got != string(constants.StatusFailed) {
		t.Errorf("status = %q, want failed", got)
	}
}

func TestQueueShutdownDrainsAndRejectsLateJobs(t *testing.T) {
	done := make(chan uuid.UUID, 2)
	d := processingDoc()
	docs := newMemDocs(done, d)
	proc := pipeline.NewProcessor(nil, docs, noopAudit{}, stubOCR{}, stubClassifier{}, stubExtractor{})

	q := NewProcessorQueue(proc, nil, WithWorkers(1))
	if err := q.Enqueue(context.Background(), Job{DocumentID: d.ID}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	waitFor(t, done, 1)

	q.Shutdown(context.Background())
	// Enqueue after shutdown is a no-op, not a panic.
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Errorf("Enqueue after shutdown: %v", err)
	}
	// Idempotent shutdown.
	q.Shutdown(context.Background())
}
