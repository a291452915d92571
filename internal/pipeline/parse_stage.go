package pipeline

import (
	"context"
	"fmt"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/common"
	"github.com/paperbase/paperbase/internal/entity"
	"github.com/paperbase/paperbase/internal/llm"
)

// resolveType returns the document type to extract against. A type assigned at
// upload time wins; only records still typed "other" go through the
// classification collaborator, and a confident result is persisted onto the
// record before extraction.
func (p *Processor) resolveType(ctx context.Context, doc *entity.Document, text string) (constants.DocumentType, error) {
	if current, ok := constants.CanonicalizeType(doc.DocumentType); ok && current != constants.Other {
		return current, nil
	}

	cls, err := p.classifier.Classify(ctx, text)
	if err != nil {
		return constants.Other, common.NewStageError(constants.StageAIParse, "CLASSIFY_FAILED", err)
	}

	resolved, ok := constants.CanonicalizeType(cls.DocumentType)
	if !ok {
		p.logger.Warn("pipeline.classify.unknown_label",
			"document_id", doc.ID, "label", cls.DocumentType)
		return constants.Other, nil
	}
	if resolved == constants.Other {
		return constants.Other, nil
	}

	if err := p.docs.SetDocumentType(ctx, doc.ID, string(resolved)); err != nil {
		return resolved, fmt.Errorf("store document type: %w", err)
	}
	p.logAudit(ctx, doc, constants.ActionClassified,
		fmt.Sprintf("classified as %s (confidence %.2f): %s", resolved, cls.Confidence, cls.Rationale))
	return resolved, nil
}

// runParse calls the extraction collaborator and completes the document with
// the structured result stored under the resolved type key.
func (p *Processor) runParse(ctx context.Context, doc *entity.Document, text string, docType constants.DocumentType) error {
	fields, _, err := p.extractor.ExtractFields(ctx, llm.ExtractRequest{
		OCRText:      text,
		DocumentType: string(docType),
		FileNameHint: doc.FileName,
	})
	if err != nil {
		return common.NewStageError(constants.StageAIParse, "EXTRACT_FAILED", err)
	}

	if err := p.docs.UpdateParsedData(ctx, doc.ID, string(docType), fields); err != nil {
		return fmt.Errorf("store parsed data: %w", err)
	}

	p.logAudit(ctx, doc, constants.ActionProcessCompleted,
		fmt.Sprintf("extracted %s fields (%d bytes)", docType, len(fields)))
	return nil
}
