package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/repository"
)

// fakeDocs serves canned aggregates and document lists.
type fakeDocs struct {
	docs      []*entity.Document
	byStatus  map[string]int
	byType    map[string]int
	monthly   map[time.Month]int
	listErr   error
	countsErr error
	gotFilter entity.DocumentFilter
}

func (f *fakeDocs) Create(context.Context, repository.CreateDocumentRequest) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDocs) GetByID(context.Context, uuid.UUID) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDocs) List(_ context.Context, filter entity.DocumentFilter) ([]*entity.Document, error) {
	f.gotFilter = filter
	return f.docs, f.listErr
}
func (f *fakeDocs) UpdateFields(context.Context, uuid.UUID, repository.UpdateDocumentRequest) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeDocs) Delete(context.Context, uuid.UUID) error            { return nil }
func (f *fakeDocs) MarkProcessing(context.Context, uuid.UUID) error    { return nil }
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
func (f *fakeDocs) StatusCounts(context.Context) (map[string]int, error) {
	return f.byStatus, f.countsErr
}
func (f *fakeDocs) TypeCounts(context.Context) (map[string]int, error) { return f.byType, nil }
func (f *fakeDocs) MonthlyUploadCounts(context.Context, int) (map[time.Month]int, error) {
	return f.monthly, nil
}

func TestSummary(t *testing.T) {
	docs := &fakeDocs{
		byStatus: map[string]int{"completed": 7, "failed": 2, "processing": 1},
		byType:   map[string]int{"invoice": 6, "other": 4},
		monthly:  map[time.Month]int{time.January: 3, time.February: 7},
	}
	s := NewService(docs, nil)

	sum, err := s.Summary(context.Background(), 2026)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Total != 10 {
		t.Errorf("total = %d, want 10", sum.Total)
	}
	if sum.Year != 2026 {
		t.Errorf("year = %d, want 2026", sum.Year)
	}
	if sum.ByStatus["failed"] != 2 {
		t.Errorf("failed count = %d, want 2", sum.ByStatus["failed"])
	}
	if sum.MonthlyUploads[time.February] != 7 {
		t.Errorf("february = %d, want 7", sum.MonthlyUploads[time.February])
	}
}

func TestSummaryDefaultsToCurrentYear(t *testing.T) {
	s := NewService(&fakeDocs{byStatus: map[string]int{}}, nil)
	sum, err := s.Summary(context.Background(), 0)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if want := time.Now().UTC().Year(); sum.Year != want {
		t.Errorf("year = %d, want %d", sum.Year, want)
	}
}

func TestSummaryPropagatesStoreErrors(t *testing.T) {
	s := NewService(&fakeDocs{countsErr: errors.New("connection refused")}, nil)
	if _, err := s.Summary(context.Background(), 2026); err == nil {
		t.Fatal("want error from store")
	}
}

func TestExportDocumentsXLSX(t *testing.T) {
	parsedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	docs := &fakeDocs{docs: []*entity.Document{
		{
			ID:           uuid.New(),
			FileName:     "invoice-001.pdf",
			DocumentType: "invoice",
			Status:       "completed",
			PageCount:    3,
			FileSize:     2048,
			CreatedAt:    time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			ParsedAt:     &parsedAt,
		},
		{
			ID:           uuid.New(),
			FileName:     "blurry-scan.jpg",
			DocumentType: "other",
			Status:       "failed",
			PageCount:    0,
			FileSize:     9000,
			CreatedAt:    time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC),
			Error:        &entity.ProcessingError{Message: "document contains no recognizable text", Code: "OCR_FAILED", Stage: "ocr"},
		},
	}}
	s := NewService(docs, nil)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	data, err := s.ExportDocumentsXLSX(context.Background(), entity.DocumentFilter{From: &from})
	if err != nil {
		t.Fatalf("ExportDocumentsXLSX: %v", err)
	}
	if docs.gotFilter.From == nil || !docs.gotFilter.From.Equal(from) {
		t.Errorf("filter not passed through: %+v", docs.gotFilter)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Documents")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "File Name" || rows[0][7] != "Failure Stage" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "invoice-001.pdf" || rows[1][2] != "completed" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][7] != "ocr" {
		t.Errorf("failed row stage = %q, want ocr", rows[2][7])
	}
}

func TestExportDocumentsXLSXEmpty(t *testing.T) {
	s := NewService(&fakeDocs{}, nil)
	data, err := s.ExportDocumentsXLSX(context.Background(), entity.DocumentFilter{})
	if err != nil {
		t.Fatalf("ExportDocumentsXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Documents")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 140); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := "aaaaaaaaaaaaaaaaaaaa"
	if got := truncate(long, 10); len([]rune(got)) != 10 {
		t.Errorf("truncate length = %d, want 10 runes", len([]rune(got)))
	}
}
