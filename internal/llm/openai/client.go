package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/llm"
)

// ExtractFields implements llm.FieldExtractor using text-only chat/completions.
// The per-type JSON Schema is both sent to the model as a constraint and used
// locally to validate the reply.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (json.RawMessage, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	docType, _ := constants.CanonicalizeType(req.DocumentType)
	schema := llm.BuildDocumentJSONSchema(docType)

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"document_type", string(docType),
		"text_len", len(req.OCRText),
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildExtractSystemPrompt(docType)},
			{"role": "user", "content": buildExtractUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	content, raw, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("llm.extract.call_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, err
	}

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		if !c.cfg.Lenient {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", err, "content", string(content),
			)
			return nil, content, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, dropped, sErr := llm.SanitizeAgainstKeys(content, llm.SchemaPropertyKeys(schema))
		if sErr != nil {
			c.log.Error("llm.extract.sanitize_failed", "req_id", rid, "error", sErr)
			return nil, content, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
			)
			return nil, content, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("llm.extract.lenient_sanitize_applied", "req_id", rid, "dropped", dropped)
		content = cleaned
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"document_type", string(docType),
		"bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return json.RawMessage(content), content, nil
}

func (c *Client) chat(ctx context.Context, body map[string]any) ([]byte, []byte, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return nil, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, raw, fmt.Errorf("no choices in openai response")
	}
	return []byte(strings.TrimSpace(cc.Choices[0].Message.Content)), raw, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func buildExtractSystemPrompt(docType constants.DocumentType) string {
	parts := []string{
		"You are a document parser. Return ONLY JSON that matches the JSON Schema provided.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Amounts are plain numbers without thousands separators or currency symbols.",
		"Currency codes are 3-letter ISO 4217.",
		"Never output null. If a field is not present in the document, omit it.",
	}
	switch docType {
	case constants.Invoice:
		parts = append(parts, "The document is an invoice. Extract invoice number, dates, parties, amounts and line items.")
	case constants.Certificate:
		parts = append(parts, "The document is a certificate. Extract the holder, issuer, certificate name/number and dates.")
	case constants.Resume:
		parts = append(parts, "The document is a resume. Extract contact details, skills, education and experience.")
	case constants.Handwritten:
		parts = append(parts, "The document is a handwritten note. Transcribe its content and summarize it briefly.")
	case constants.FinancialReport:
		parts = append(parts, "The document is a financial report. Extract the reporting period and headline figures.")
	default:
		parts = append(parts, "Extract whatever named fields the document plainly contains.")
	}
	return strings.Join(parts, " ")
}

func buildExtractUserPrompt(req llm.ExtractRequest) string {
	var b strings.Builder
	if req.FileNameHint != "" {
		b.WriteString("Filename: ")
		b.WriteString(req.FileNameHint)
		b.WriteString("\n\n")
	}
	b.WriteString("OCR text (first ~6k chars):\n")
	if len(req.OCRText) > 6000 {
		b.WriteString(req.OCRText[:6000])
	} else {
		b.WriteString(req.OCRText)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
