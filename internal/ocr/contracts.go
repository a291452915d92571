// Package ocr talks to the external OCR collaborator. The collaborator accepts
// a file reference (URL or inline encoded bytes) and returns extracted
// markdown-like text, per-page layout regions and a page count. It is treated
// as an opaque remote call bounded by the configured timeout; there is no retry.
package ocr

import "context"

// Region is one detected layout region on a page.
type Region struct {
	Label  string `json:"label"`
	Text   string `json:"text"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Page holds the regions detected on a single page.
type Page struct {
	Number  int      `json:"number"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Regions []Region `json:"regions"`
}

// Result is the outcome of a successful recognition call.
type Result struct {
	Text       string  `json:"text"`
	Pages      []Page  `json:"pages"`
	PageCount  int     `json:"page_count"`
	Confidence float32 `json:"confidence"`
}

// Request references the file to recognize. Exactly one of FileURL or Content
// should be set; Content is base64-encoded by the client.
type Request struct {
	FileURL  string
	Content  []byte
	FileType string
}

// Recognizer is the interface the pipeline depends on.
type Recognizer interface {
	Recognize(ctx context.Context, req Request) (Result, error)
}
