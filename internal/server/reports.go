package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	docsv1 "github.com/paperbase/paperbase/gen/proto/docs/v1"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/report"
)

type ReportsService struct {
	docsv1.UnimplementedReportsServiceServer
	reports *report.Service
	logger  *slog.Logger
}

func NewReportsService(reports *report.Service, logger *slog.Logger) *ReportsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportsService{reports: reports, logger: logger}
}

func (s *ReportsService) GetSummary(ctx context.Context, req *docsv1.GetSummaryRequest) (*docsv1.GetSummaryResponse, error) {
	sum, err := s.reports.Summary(ctx, int(req.GetYear()))
	if err != nil {
		s.logger.Error("summary failed", "year", req.GetYear(), "error", err)
		return nil, status.Error(codes.Internal, "summary failed")
	}

	out := &docsv1.GetSummaryResponse{
		Total:          int32(sum.Total),
		ByStatus:       make(map[string]int32, len(sum.ByStatus)),
		ByType:         make(map[string]int32, len(sum.ByType)),
		MonthlyUploads: make(map[int32]int32, len(sum.MonthlyUploads)),
		Year:           int32(sum.Year),
	}
	for k, v := range sum.ByStatus {
		out.ByStatus[k] = int32(v)
	}
	for k, v := range sum.ByType {
		out.ByType[k] = int32(v)
	}
	for m, v := range sum.MonthlyUploads {
		out.MonthlyUploads[int32(m)] = int32(v)
	}
	return out, nil
}

func (s *ReportsService) ExportDocuments(ctx context.Context, req *docsv1.ExportDocumentsRequest) (*docsv1.ExportDocumentsResponse, error) {
	filter := entity.DocumentFilter{
		Status:       req.GetStatus(),
		DocumentType: req.GetDocumentType(),
	}
	var err error
	if filter.From, err = parseYMDPtr(req.GetFromDate()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if filter.To, err = parseYMDPtr(req.GetToDate()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	data, err := s.reports.ExportDocumentsXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}

	name := fmt.Sprintf("documents-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	s.logger.Info("export produced", "file_name", name, "bytes", len(data))
	return &docsv1.ExportDocumentsResponse{Xlsx: data, FileName: name}, nil
}
