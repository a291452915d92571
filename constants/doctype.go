package constants

import (
	"strings"
)

// DocumentType is the fixed classification taxonomy for uploaded documents.
type DocumentType string

const (
	Invoice         DocumentType = "invoice"
	Certificate     DocumentType = "certificate"
	Resume          DocumentType = "resume"
	Handwritten     DocumentType = "handwritten"
	FinancialReport DocumentType = "financial_report"
	Other           DocumentType = "other"
)

var allDocumentTypes = []DocumentType{
	Invoice,
	Certificate,
	Resume,
	Handwritten,
	FinancialReport,
	Other,
}

// DocumentTypes returns the taxonomy as strings, e.g. for schema enums.
func DocumentTypes() []string {
	result := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		result[i] = string(dt)
	}
	return result
}

// CanonicalizeType maps a free-form label (typically from the classifier) onto the
// taxonomy. Returns Other and false when the label is unknown.
func CanonicalizeType(input string) (DocumentType, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]DocumentType{
		"bill":             Invoice,
		"receipt":          Invoice,
		"tax invoice":      Invoice,
		"cert":             Certificate,
		"diploma":          Certificate,
		"cv":               Resume,
		"curriculum vitae": Resume,
		"handwriting":      Handwritten,
		"note":             Handwritten,
		"financial report": FinancialReport,
		"balance sheet":    FinancialReport,
		"income statement": FinancialReport,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocumentTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}

	return Other, false
}
