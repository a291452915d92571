package constants

import "strings"

// FileTypes holds the allowed file types for the file_type field on documents.
var FileTypes = []string{"PDF", "IMAGE", "TXT"}

// AllowedExtensions holds the default allowed file extensions for uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tiff": {},
	"txt":  {},
}

// MaxUploadBytes is the upper bound accepted at upload time. Larger files are
// rejected before the pipeline starts.
const MaxUploadBytes = 20 * 1024 * 1024

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its coarse file type.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "jpg", "jpeg", "png", "tiff":
		return "IMAGE"
	case "txt":
		return "TXT"
	default:
		return ""
	}
}
