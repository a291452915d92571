// Command reprocess re-runs the processing pipeline for documents from the
// command line, without going through the gRPC server. Useful after an OCR
// or extraction outage: pass explicit ids, or -failed to sweep everything
// that is currently in the failed state.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/common"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/llm/openai"
	"github.com/paperbase/paperbase/internal/ocr"
	"github.com/paperbase/paperbase/internal/pipeline"
	"github.com/paperbase/paperbase/internal/repository"
)

func main() {
	allFailed := flag.Bool("failed", false, "reprocess every document currently in failed state")
	timeout := flag.Duration("timeout", 5*time.Minute, "per-document processing timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if !*allFailed && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: reprocess [-failed] [-timeout 5m] [document-id ...]")
		os.Exit(2)
	}

	ctx := context.Background()
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	docRepo := repository.NewDocumentRepository(entc, logger)
	auditRepo := repository.NewAuditRepository(entc, logger)
	recognizer := ocr.NewClient(ocr.Config{
		BaseURL: cfg.OCR.BaseURL,
		APIKey:  cfg.OCR.APIKey,
		Timeout: cfg.OCR.Timeout,
	}, logger)
	aiClient := openai.NewClient(openai.Config{
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
		Lenient:     true,
	}, logger)
	proc := pipeline.NewProcessor(logger, docRepo, auditRepo, recognizer, aiClient, aiClient)

	ids, err := collectIDs(ctx, docRepo, *allFailed, flag.Args())
	if err != nil {
		logger.Error("collecting document ids", "error", err)
		os.Exit(1)
	}
	if len(ids) == 0 {
		logger.Info("nothing to reprocess")
		return
	}

	var failed int
	for _, id := range ids {
		runCtx, cancel := context.WithTimeout(ctx, *timeout)
		err := proc.Process(runCtx, id)
		cancel()
		if err != nil {
			failed++
			logger.Error("reprocess failed", "document_id", id, "error", err)
			continue
		}
		logger.Info("reprocess done", "document_id", id)
	}

	logger.Info("reprocess sweep complete", "total", len(ids), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func collectIDs(ctx context.Context, docs repository.DocumentRepository, allFailed bool, args []string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if allFailed {
		list, err := docs.List(ctx, entity.DocumentFilter{Status: string(constants.StatusFailed)})
		if err != nil {
			return nil, err
		}
		for _, d := range list {
			ids = append(ids, d.ID)
		}
	}
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid document id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
