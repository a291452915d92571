package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Config for the OCR API client.
type Config struct {
	BaseURL string        // e.g. https://ocr.example.com/v1
	APIKey  string
	Timeout time.Duration // http client timeout; default 60s
}

// Client implements Recognizer against the remote OCR HTTP API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

type recognizeRequest struct {
	FileURL  string `json:"file_url,omitempty"`
	Content  string `json:"content,omitempty"` // base64
	FileType string `json:"file_type,omitempty"`
}

type recognizeResponse struct {
	Text       string  `json:"text"`
	Pages      []Page  `json:"pages"`
	PageCount  int     `json:"page_count"`
	Confidence float32 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}

// Recognize calls the collaborator's /recognize endpoint and returns the
// extracted text with layout metadata.
func (c *Client) Recognize(ctx context.Context, req Request) (Result, error) {
	const op = "ocr.Recognize"
	start := time.Now()

	if req.FileURL == "" && len(req.Content) == 0 {
		return Result{}, ErrMissingFileRef
	}

	body := recognizeRequest{
		FileURL:  req.FileURL,
		FileType: req.FileType,
	}
	if len(req.Content) > 0 {
		body.Content = base64.StdEncoding.EncodeToString(req.Content)
	}

	c.log.Info("ocr.recognize.start",
		"file_url", req.FileURL,
		"inline_bytes", len(req.Content),
		"file_type", req.FileType,
	)

	raw, err := c.post(ctx, strings.TrimRight(c.cfg.BaseURL, "/")+"/recognize", body)
	if err != nil {
		c.log.Error("ocr.recognize.http_error",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, WrapError(op, ErrRecognitionFailed, err.Error())
	}

	var resp recognizeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Result{}, WrapError(op, ErrRecognitionFailed, fmt.Sprintf("decode response: %v", err))
	}
	if resp.Error != "" {
		c.log.Error("ocr.recognize.remote_error", "error", resp.Error)
		return Result{}, WrapError(op, ErrRecognitionFailed, resp.Error)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return Result{}, WrapError(op, ErrEmptyDocument, "")
	}

	pageCount := resp.PageCount
	if pageCount == 0 {
		pageCount = len(resp.Pages)
	}

	c.log.Info("ocr.recognize.ok",
		"pages", pageCount,
		"text_len", len(resp.Text),
		"confidence", resp.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Text:       resp.Text,
		Pages:      resp.Pages,
		PageCount:  pageCount,
		Confidence: resp.Confidence,
	}, nil
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("ocr response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ocr status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
