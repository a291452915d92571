package ocr

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFileRef indicates the request had neither a URL nor inline content.
	ErrMissingFileRef = errors.New("ocr: request has no file reference")

	// ErrRecognitionFailed indicates the collaborator reported a failure.
	ErrRecognitionFailed = errors.New("ocr: recognition failed")

	// ErrEmptyDocument indicates recognition succeeded but produced no text.
	ErrEmptyDocument = errors.New("ocr: document contains no recognizable text")
)

// WrapError annotates an OCR error with the operation and detail.
func WrapError(op string, err error, detail string) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %s", op, err, detail)
}
