package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/common"
)

// ValidateUpload rejects bad file types and sizes before a record is created.
// Returns the coarse file type for the document record.
func ValidateUpload(req UploadRequest) (string, error) {
	if strings.TrimSpace(req.FileName) == "" {
		return "", common.NewAppError("UPLOAD_ERROR", "file name is required", common.ErrInvalidInput)
	}
	if strings.TrimSpace(req.FileURL) == "" {
		return "", common.NewAppError("UPLOAD_ERROR", "file url is required", common.ErrInvalidInput)
	}

	ext := constants.NormalizeExt(filepath.Ext(req.FileName))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return "", common.NewAppError("UPLOAD_ERROR",
			fmt.Sprintf("unsupported file extension: %q", ext), common.ErrInvalidInput)
	}
	fileType := constants.MapExtToFormat(ext)
	if fileType == "" {
		return "", common.NewAppError("UPLOAD_ERROR",
			fmt.Sprintf("unsupported file extension: %q", ext), common.ErrInvalidInput)
	}

	if req.FileSize <= 0 {
		return "", common.NewAppError("UPLOAD_ERROR", "file size must be positive", common.ErrInvalidInput)
	}
	if req.FileSize > constants.MaxUploadBytes {
		return "", common.NewAppError("UPLOAD_ERROR",
			fmt.Sprintf("file too large: %d bytes (max %d)", req.FileSize, constants.MaxUploadBytes),
			common.ErrInvalidInput)
	}
	return fileType, nil
}
