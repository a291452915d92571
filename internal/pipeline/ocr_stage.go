package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/common"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/ocr"
	"github.com/paperbase/paperbase/internal/repository"
)

// runOCR calls the OCR collaborator with the document's file reference and
// persists the returned text, layout regions and page count onto the record.
// Collaborator failures come back stage-tagged; nothing is written on failure.
func (p *Processor) runOCR(ctx context.Context, doc *entity.Document) (ocr.Result, error) {
	res, err := p.ocr.Recognize(ctx, ocr.Request{
		FileURL:  doc.FileURL,
		FileType: doc.FileType,
	})
	if err != nil {
		return ocr.Result{}, common.NewStageError(constants.StageOCR, "OCR_FAILED", err)
	}

	pages, err := json.Marshal(res.Pages)
	if err != nil {
		return ocr.Result{}, common.NewStageError(constants.StageOCR, "OCR_FAILED",
			fmt.Errorf("encode layout regions: %w", err))
	}

	if err := p.docs.UpdateOCRResult(ctx, doc.ID, repository.OCROutcome{
		Text:       res.Text,
		Pages:      pages,
		PageCount:  res.PageCount,
		Confidence: res.Confidence,
	}); err != nil {
		return ocr.Result{}, fmt.Errorf("store ocr result: %w", err)
	}

	p.logAudit(ctx, doc, constants.ActionOCRCompleted,
		fmt.Sprintf("%d pages, confidence %.2f", res.PageCount, res.Confidence))
	return res, nil
}
