package ingest

import (
	"errors"
	"testing"

	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/internal/common"
)

func TestValidateUpload(t *testing.T) {
	valid := UploadRequest{
		FileName: "statement.pdf",
		FileURL:  "https://files.local/statement.pdf",
		FileSize: 1024,
	}

	tests := []struct {
		name         string
		mutate       func(*UploadRequest)
		wantFileType string
		wantErr      bool
	}{
		{"pdf ok", func(r *UploadRequest) {}, "PDF", false},
		{"image ok", func(r *UploadRequest) { r.FileName = "scan.JPG" }, "IMAGE", false},
		{"text ok", func(r *UploadRequest) { r.FileName = "notes.txt" }, "TXT", false},
		{"missing name", func(r *UploadRequest) { r.FileName = "  " }, "", true},
		{"missing url", func(r *UploadRequest) { r.FileURL = "" }, "", true},
		{"no extension", func(r *UploadRequest) { r.FileName = "statement" }, "", true},
		{"bad extension", func(r *UploadRequest) { r.FileName = "malware.exe" }, "", true},
		{"zero size", func(r *UploadRequest) { r.FileSize = 0 }, "", true},
		{"negative size", func(r *UploadRequest) { r.FileSize = -5 }, "", true},
		{"over limit", func(r *UploadRequest) { r.FileSize = constants.MaxUploadBytes + 1 }, "", true},
		{"at limit", func(r *UploadRequest) { r.FileSize = constants.MaxUploadBytes }, "PDF", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			fileType, err := ValidateUpload(req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var appErr *common.AppError
				if !errors.As(err, &appErr) || appErr.Code != "UPLOAD_ERROR" {
					t.Errorf("err = %v, want AppError with code UPLOAD_ERROR", err)
				}
				return
			}
			if fileType != tt.wantFileType {
				t.Errorf("fileType = %q, want %q", fileType, tt.wantFileType)
			}
		})
	}
}
