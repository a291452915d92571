// Package report assembles database aggregations and XLSX exports over the
// document store.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/paperbase/paperbase/internal/repository"
)

// Summary is the headline reporting view: document counts sliced by status,
// type and upload month.
type Summary struct {
	Total          int                `json:"total"`
	ByStatus       map[string]int     `json:"by_status"`
	ByType         map[string]int     `json:"by_type"`
	MonthlyUploads map[time.Month]int `json:"monthly_uploads"`
	Year           int                `json:"year"`
}

// Service is a thin façade over repositories that produces summaries and XLSX
// bytes for exports.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// Summary aggregates counts for the given year (monthly buckets) plus overall
// status/type splits.
func (s *Service) Summary(ctx context.Context, year int) (*Summary, error) {
	start := time.Now()
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	byStatus, err := s.docs.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	byType, err := s.docs.TypeCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("type counts: %w", err)
	}
	monthly, err := s.docs.MonthlyUploadCounts(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("monthly upload counts: %w", err)
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}

	s.logger.Info("report.summary.ok",
		"total", total,
		"year", year,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Summary{
		Total:          total,
		ByStatus:       byStatus,
		ByType:         byType,
		MonthlyUploads: monthly,
		Year:           year,
	}, nil
}
