package constants

// DocStatus is the canonical lifecycle status for rows in documents.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	StatusProcessing DocStatus = "processing" // initial, entered at upload and on reprocess
	StatusCompleted  DocStatus = "completed"  // extraction succeeded
	StatusFailed     DocStatus = "failed"     // terminal for the invocation; reprocess re-enters processing
)

// Stage identifies the pipeline step at which a failure occurred.
type Stage string

const (
	StageUpload   Stage = "upload"
	StageOCR      Stage = "ocr"
	StageAIParse  Stage = "ai_parse"
	StageDatabase Stage = "database"
)

// Audit actions recorded against documents.
const (
	ActionUploaded         = "uploaded"
	ActionOCRCompleted     = "ocr_completed"
	ActionClassified       = "classified"
	ActionProcessCompleted = "process_completed"
	ActionProcessFailed    = "process_failed"
	ActionReprocess        = "reprocess"
	ActionEdited           = "edited"
	ActionDeleted          = "deleted"
	ActionExported         = "exported"
)
