package common

import (
	"errors"
	"testing"

	"github.com/paperbase/paperbase/constants"
)

func TestStageErrorWrapping(t *testing.T) {
	cause := errors.New("upstream timeout")
	err := NewStageError(constants.StageOCR, "OCR_FAILED", cause)

	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatal("errors.As must find StageError")
	}
	if stageErr.Stage != constants.StageOCR {
		t.Errorf("stage = %v, want ocr", stageErr.Stage)
	}
	if stageErr.Code != "OCR_FAILED" {
		t.Errorf("code = %q", stageErr.Code)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is must reach the cause")
	}

	// Wrapping preserves the stage tag.
	wrapped := WrapError(err, "pipeline step")
	if !errors.As(wrapped, &stageErr) {
		t.Error("wrapped stage error lost its tag")
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("UPLOAD_ERROR", "file too large", ErrInvalidInput)
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("AppError must unwrap to its cause")
	}
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Code != "UPLOAD_ERROR" {
		t.Errorf("appErr = %+v", appErr)
	}
}
