package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paperbase/paperbase/internal/llm"
)

// Classify implements llm.Classifier: it asks the model to place the OCR text
// into one value of the document-type taxonomy.
func (c *Client) Classify(ctx context.Context, text string) (llm.Classification, error) {
	rid := uuid.New().String()
	start := time.Now()

	schema := llm.BuildClassificationJSONSchema()

	c.log.Info("llm.classify.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"text_len", len(text),
	)

	user := "Classify the following document text into exactly one document type.\n\nText (first ~4k chars):\n"
	if len(text) > 4000 {
		user += text[:4000]
	} else {
		user += text
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": "You are a document classifier. Return ONLY JSON that matches the JSON Schema provided. Give a one-sentence rationale."},
			{"role": "user", "content": user},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, _, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("llm.classify.call_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.Classification{}, err
	}

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("llm.classify.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
		)
		return llm.Classification{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var out llm.Classification
	if err := json.Unmarshal(content, &out); err != nil {
		return llm.Classification{}, fmt.Errorf("unmarshal classification: %w", err)
	}
	out.DocumentType = strings.TrimSpace(out.DocumentType)

	c.log.Info("llm.classify.ok",
		"req_id", rid,
		"document_type", out.DocumentType,
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
