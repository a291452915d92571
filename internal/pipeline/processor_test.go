package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/llm"
	"github.com/paperbase/paperbase/internal/ocr"
	"github.com/paperbase/paperbase/internal/repository"
)

// fakeDocs is an in-memory DocumentRepository mirroring the store's
// transition semantics, so processor tests can assert on persisted state.
type fakeDocs struct {
	byID       map[uuid.UUID]*entity.Document
	failMarks  error
	failOCRSet error
}

func newFakeDocs(docs ...*entity.Document) *fakeDocs {
	m := make(map[uuid.UUID]*entity.Document, len(docs))
	for _, d := range docs {
		m[d.ID] = d
	}
	return &fakeDocs{byID: m}
}

func (f *fakeDocs) Create(context.Context, repository.CreateDocumentRequest) (*entity.Document, error) {
	panic("not used in pipeline tests")
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDocs) List(context.Context, entity.DocumentFilter) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocs) UpdateFields(context.Context, uuid.UUID, repository.UpdateDocumentRequest) (*entity.Document, error) {
	panic("not used in pipeline tests")
}

func (f *fakeDocs) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakeDocs) MarkProcessing(_ context.Context, id uuid.UUID) error {
	if f.failMarks != nil {
		return f.failMarks
	}
	d := f.byID[id]
	d.Status = string(constants.StatusProcessing)
	d.Error = nil
	return nil
}

func (f *fakeDocs) UpdateOCRResult(_ context.Context, id uuid.UUID, out repository.OCROutcome) error {
	if f.failOCRSet != nil {
		return f.failOCRSet
	}
	d := f.byID[id]
	now := time.Now()
	d.OCRText = &out.Text
	d.OCRPages = out.Pages
	d.PageCount = out.PageCount
	d.Confidence = &out.Confidence
	d.OCRCompletedAt = &now
	return nil
}

func (f *fakeDocs) SetDocumentType(_ context.Context, id uuid.UUID, docType string) error {
	f.byID[id].DocumentType = docType
	return nil
}

func (f *fakeDocs) UpdateParsedData(_ context.Context, id uuid.UUID, docType string, fields json.RawMessage) error {
	d := f.byID[id]
	if d.ParsedData == nil {
		d.ParsedData = make(map[string]json.RawMessage)
	}
	d.ParsedData[docType] = fields
	now := time.Now()
	d.ParsedAt = &now
	d.Status = string(constants.StatusCompleted)
	d.Error = nil
	return nil
}

func (f *fakeDocs) MarkFailed(_ context.Context, id uuid.UUID, stage constants.Stage, code, message string) error {
	if f.failMarks != nil {
		return f.failMarks
	}
	d := f.byID[id]
	d.Status = string(constants.StatusFailed)
	d.Error = &entity.ProcessingError{Message: message, Code: code, Stage: string(stage)}
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

func (f *fakeAudit) actions() []string {
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeOCR struct {
	res ocr.Result
	err error
}

func (f fakeOCR) Recognize(context.Context, ocr.Request) (ocr.Result, error) {
	return f.res, f.err
}

type fakeClassifier struct {
	cls    llm.Classification
	err    error
	called bool
}

func (f *fakeClassifier) Classify(context.Context, string) (llm.Classification, error) {
	f.called = true
	return f.cls, f.err
}

type fakeExtractor struct {
	fields json.RawMessage
	err    error
	gotReq llm.ExtractRequest
}

func (f *fakeExtractor) ExtractFields(_ context.Context, req llm.ExtractRequest) (json.RawMessage, []byte, error) {
	f.gotReq = req
	return f.fields, nil, f.err
}

func newDoc(docType, status string) *entity.Document {
	return &entity.Document{
		ID:           uuid.New(),
		FileName:     "contract-007.pdf",
		FileURL:      "https://files.local/contract-007.pdf",
		FileType:     "PDF",
		FileSize:     4096,
		DocumentType: docType,
		Status:       status,
	}
}

func TestProcessCompletesTypedDocument(t *testing.T) {
	doc := newDoc(string(constants.Invoice), string(constants.StatusProcessing))
	docs := newFakeDocs(doc)
	audit := &fakeAudit{}
	classifier := &fakeClassifier{}
	extractor := &fakeExtractor{fields: json.RawMessage(`{"total_amount":500,"currency":"USD"}`)}

	p := NewProcessor(nil, docs, audit,
		fakeOCR{res: ocr.Result{Text: "INVOICE\nTotal: $500", PageCount: 2, Confidence: 0.91}},
		classifier, extractor)

	if err := p.Process(context.Background(), doc.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got := docs.byID[doc.ID]
	if got.Status != string(constants.StatusCompleted) {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.OCRText == nil || *got.OCRText != "INVOICE\nTotal: $500" {
		t.Errorf("ocr text not persisted: %v", got.OCRText)
	}
	if got.PageCount != 2 {
		t.Errorf("page count = %d, want 2", got.PageCount)
	}
	if got.Error != nil {
		t.Errorf("completed document must carry no error, got %+v", got.Error)
	}
	if _, ok := got.ParsedData[string(constants.Invoice)]; !ok {
		t.Errorf("parsed_data missing %q key: %v", constants.Invoice, got.ParsedData)
	}
	if got.ParsedAt == nil {
		t.Error("parsed_at not set")
	}
	if classifier.called {
		t.Error("classifier must not run for an upload-typed document")
	}
	if extractor.gotReq.DocumentType != string(constants.Invoice) {
		t.Errorf("extractor called with type %q, want invoice", extractor.gotReq.DocumentType)
	}
}

func TestProcessOCRFailurePersistsFailedState(t *testing.T) {
	doc := newDoc(string(constants.Invoice), string(constants.StatusProcessing))
	docs := newFakeDocs(doc)
	audit := &fakeAudit{}

	p := NewProcessor(nil, docs, audit,
		fakeOCR{err: errors.New("upstream timeout")},
		&fakeClassifier{}, &fakeExtractor{})

	// Collaborator failures settle into the record, not the return value.
	if err := p.Process(context.Background(), doc.ID); err != nil {
		t.Fatalf("Process returned %v, want nil after absorbed failure", err)
	}

	got := docs.byID[doc.ID]
	if got.Status != string(constants.StatusFailed) {
		t.Fatalf("status = %q, want failed", got.Status)
	}
	if got.Error == nil {
		t.Fatal("failed document must carry error detail")
	}
	if got.Error.Stage != string(constants.StageOCR) {
		t.Errorf("error stage = %q, want ocr", got.Error.Stage)
	}
	if got.Error.Code != "OCR_FAILED" {
		t.Errorf("error code = %q, want OCR_FAILED", got.Error.Code)
	}
	if got.OCRText != nil {
		t.Error("failed OCR must not persist text")
	}
	if got.ParsedData != nil {
		t.Error("failed OCR must not persist parsed data")
	}
}

func TestProcessExtractionFailureKeepsOCRResult(t *testing.T) {
	doc := newDoc(string(constants.Certificate), string(constants.StatusProcessing))
	docs := newFakeDocs(doc)
	audit := &fakeAudit{}

	p := NewProcessor(nil, docs, audit,
		fakeOCR{res: ocr.Result{Text: "CERTIFICATE OF COMPLETION", PageCount: 1, Confidence: 0.88}},
		&fakeClassifier{},
		&fakeExtractor{err: errors.New("model refused")})

	if err := p.Process(context.Background(), doc.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got := docs.byID[doc.ID]
	if got.Status != string(constants.StatusFailed) {
		t.Fatalf("status = %q, want failed", got.Status)
	}
	if got.Error == nil || got.Error.Stage != string(constants.StageAIParse) {
		t.Fatalf("error stage = %+v, want ai_parse", got.Error)
	}
	// The OCR checkpoint survives the later stage failing.
	if got.OCRText == nil || *got.OCRText == "" {
		t.Error("ocr text from the successful first stage must remain")
	}
	if len(got.ParsedData) != 0 {
		t.Errorf("parsed_data must stay empty, got %v", got.ParsedData)
	}
}

func TestProcessClassifiesUntypedDocument(t *testing.T) {
	doc := newDoc(string(constants.Other), string(constants.StatusProcessing))
	docs := newFakeDocs(doc)
	audit := &fakeAudit{}
	classifier := &fakeClassifier{cls: llm.Classification{
		DocumentType: "invoice", Confidence: 0.93, Rationale: "totals and line items",
	}}
	extractor := &fakeExtractor{fields: json.RawMessage(`{"total_amount":500}`)}

	p := NewProcessor(nil, docs, audit,
		fakeOCR{res: ocr.Result{Text: "Total: $500", PageCount: 1, Confidence: 0.9}},
		classifier, extractor)

	if err := p.Process(context.Background(), doc.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got := docs.byID[doc.ID]
	if got.DocumentType != string(constants.Invoice) {
		t.Errorf("document_type = %q, want invoice", got.DocumentType)
	}
	if got.Status != string(constants.StatusCompleted) {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if extractor.gotReq.DocumentType != string(constants.Invoice) {
		t.Errorf("extraction ran against %q, want the classified type", extractor.gotReq.DocumentType)
	}
	if _, ok := got.ParsedData[string(constants.Invoice)]; !ok {
		t.Errorf("parsed_data keyed by %v, want invoice", got.ParsedData)
	}
}

func TestProcessClassifierFailureIsAIParseStage(t *testing.T) {
	doc := newDoc(string(constants.Other), string(constants.StatusProcessing))
	docs := newFakeDocs(doc)

	p := NewProcessor(nil, docs, &fakeAudit{},
		fakeOCR{res: ocr.Result{Text: "illegible", PageCount: 1}},
		&fakeClassifier{err: errors.New("model unavailable")},
		&fakeExtractor{})

	if err := p.Process(context.Background(), doc.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got := docs.byID[doc.ID]
	if got.Status != string(constants.StatusFailed) {
		t.Fatalf("status = %q, want failed", got.Status)
	}
	if got.Error == nil || got.Error.Stage != string(constants.StageAIParse) {
		t.Errorf("error = %+v, want stage ai_parse", got.Error)
	}
}

func TestProcessUnknownClassificationLabelFallsBackToOther(t *testing.T) {
	doc := newDoc(string(constants.Other), string(constants.StatusProcessing))
	docs := newFakeDocs(doc)
	extractor := &fakeExtractor{fields: json.RawMessage(`{"summary":"misc"}`)}

	p := NewProcessor(nil, docs, &fakeAudit{},
		fakeOCR{res: ocr.Result{Text: "something", PageCount: 1}},
		&fakeClassifier{cls: llm.Classification{DocumentType: "shopping_list"}},
		extractor)

	if err := p.Process(context.Background(), doc.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got := docs.byID[doc.ID]
	if got.Status != string(constants.StatusCompleted) {
		t.Fatalf("status = %q, want completed despite unknown label", got.Status)
	}
	if got.DocumentType != string(constants.Other) {
		t.Errorf("document_type = %q, want other", got.DocumentType)
	}
	if _, ok := got.ParsedData[string(constants.Other)]; !ok {
		t.Errorf("parsed_data keyed by %v, want other", got.ParsedData)
	}
}

func TestProcessReprocessesFailedDocument(t *testing.T) {
	doc := newDoc(string(constants.Invoice), string(constants.StatusFailed))
	doc.Error = &entity.ProcessingError{Message: "upstream timeout", Code: "OCR_FAILED", Stage: string(constants.StageOCR)}
	docs := newFakeDocs(doc)
	audit := &fakeAudit{}

	p := NewProcessor(nil, docs, audit,
		fakeOCR{res: ocr.Result{Text: "now legible", PageCount: 1, Confidence: 0.95}},
		&fakeClassifier{},
		&fakeExtractor{fields: json.RawMessage(`{"total_amount":12}`)})

	if err := p.Process(context.Background(), doc.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	got := docs.byID[doc.ID]
	if got.Status != string(constants.StatusCompleted) {
		t.Fatalf("status = %q, want completed after reprocess", got.Status)
	}
	if got.Error != nil {
		t.Errorf("error must be cleared on reprocess, got %+v", got.Error)
	}

	var sawReprocess bool
	for _, a := range audit.actions() {
		if a == constants.ActionReprocess {
			sawReprocess = true
		}
	}
	if !sawReprocess {
		t.Errorf("audit actions %v missing %q", audit.actions(), constants.ActionReprocess)
	}
}

func TestProcessPersistenceErrorsPropagate(t *testing.T) {
	doc := newDoc(string(constants.Invoice), string(constants.StatusProcessing))
	docs := newFakeDocs(doc)
	docs.failOCRSet = errors.New("connection reset")

	p := NewProcessor(nil, docs, &fakeAudit{},
		fakeOCR{res: ocr.Result{Text: "text", PageCount: 1}},
		&fakeClassifier{},
		&fakeExtractor{fields: json.RawMessage(`{}`)})

	if err := p.Process(context.Background(), doc.ID); err == nil {
		t.Fatal("Process must propagate store write failures")
	}

	// Not a collaborator failure: the record must not be marked failed.
	if got := docs.byID[doc.ID]; got.Status != string(constants.StatusProcessing) {
		t.Errorf("status = %q, want processing left untouched", got.Status)
	}
}

func TestProcessAuditTrailForSuccess(t *testing.T) {
	doc := newDoc(string(constants.Invoice), string(constants.StatusProcessing))
	docs := newFakeDocs(doc)
	audit := &fakeAudit{}

	p := NewProcessor(nil, docs, audit,
		fakeOCR{res: ocr.Result{Text: "x", PageCount: 1}},
		&fakeClassifier{},
		&fakeExtractor{fields: json.RawMessage(`{}`)})

	if err := p.Process(context.Background(), doc.ID); err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := []string{constants.ActionOCRCompleted, constants.ActionProcessCompleted}
	got := audit.actions()
	if len(got) != len(want) {
		t.Fatalf("audit actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("audit action[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
