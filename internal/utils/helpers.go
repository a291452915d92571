package utils

import (
	"time"

	docsv1 "github.com/paperbase/paperbase/gen/proto/docs/v1"
	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/gen/ent"
	"github.com/paperbase/paperbase/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToDocument converts a stored row into the transfer shape. Error detail is
// folded into one struct so the "present iff failed" invariant has a single
// representation upstream.
func ToDocument(d *ent.Document) *entity.Document {
	doc := &entity.Document{
		ID:             d.ID,
		FileName:       d.FileName,
		FileURL:        d.FileURL,
		FileType:       d.FileType,
		FileSize:       d.FileSize,
		DocumentType:   d.DocumentType,
		Status:         d.Status,
		OCRText:        d.OcrText,
		OCRPages:       d.OcrPages,
		PageCount:      d.PageCount,
		Confidence:     d.Confidence,
		OCRCompletedAt: d.OcrCompletedAt,
		ParsedData:     d.ParsedData,
		ParsedAt:       d.ParsedAt,
		UploadedBy:     d.UploadedBy,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	if d.Status == string(constants.StatusFailed) && d.ErrorMessage != nil {
		doc.Error = &entity.ProcessingError{
			Message: strOrEmpty(d.ErrorMessage),
			Code:    strOrEmpty(d.ErrorCode),
			Stage:   strOrEmpty(d.ErrorStage),
		}
	}
	return doc
}

func ToAuditEntry(e *ent.AuditLog) *entity.AuditEntry {
	return &entity.AuditEntry{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		FileName:   e.FileName,
		Action:     e.Action,
		ActorID:    e.ActorID,
		ActorName:  e.ActorName,
		Detail:     e.Detail,
		CreatedAt:  e.CreatedAt,
	}
}

func ToUser(u *ent.User) *entity.User {
	return &entity.User{
		ID:    u.ID,
		Phone: u.Phone,
		Name:  u.Name,
		Role:  u.Role,
		Permissions: constants.Permissions{
			CanUpload:      u.CanUpload,
			CanViewAll:     u.CanViewAll,
			CanEdit:        u.CanEdit,
			CanDelete:      u.CanDelete,
			CanReprocess:   u.CanReprocess,
			CanExport:      u.CanExport,
			CanManageUsers: u.CanManageUsers,
			CanViewAudit:   u.CanViewAudit,
		},
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToPBDocument(d *entity.Document) *docsv1.Document {
	out := &docsv1.Document{
		Id:           d.ID.String(),
		FileName:     d.FileName,
		FileUrl:      d.FileURL,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		DocumentType: d.DocumentType,
		Status:       d.Status,
		PageCount:    int32(d.PageCount),
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if d.OCRText != nil {
		out.OcrText = *d.OCRText
	}
	if d.Confidence != nil {
		out.Confidence = *d.Confidence
	}
	if d.OCRCompletedAt != nil {
		out.OcrCompletedAt = d.OCRCompletedAt.UTC().Format(time.RFC3339)
	}
	if d.ParsedAt != nil {
		out.ParsedAt = d.ParsedAt.UTC().Format(time.RFC3339)
	}
	if d.UploadedBy != nil {
		out.UploadedBy = d.UploadedBy.String()
	}
	if len(d.ParsedData) > 0 {
		out.ParsedData = make(map[string]string, len(d.ParsedData))
		for k, v := range d.ParsedData {
			out.ParsedData[k] = string(v)
		}
	}
	if d.Error != nil {
		out.Error = &docsv1.ProcessingError{
			Message: d.Error.Message,
			Code:    d.Error.Code,
			Stage:   d.Error.Stage,
		}
	}
	return out
}

func ToPBAuditEntry(e *entity.AuditEntry) *docsv1.AuditEntry {
	out := &docsv1.AuditEntry{
		Id:        e.ID.String(),
		FileName:  e.FileName,
		Action:    e.Action,
		ActorName: e.ActorName,
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.DocumentID != nil {
		out.DocumentId = e.DocumentID.String()
	}
	if e.ActorID != nil {
		out.ActorId = e.ActorID.String()
	}
	return out
}

func ToPBUser(u *entity.User) *docsv1.User {
	return &docsv1.User{
		Id:     u.ID.String(),
		Phone:  u.Phone,
		Name:   u.Name,
		Role:   u.Role,
		Active: u.Active,
		Permissions: &docsv1.Permissions{
			CanUpload:      u.Permissions.CanUpload,
			CanViewAll:     u.Permissions.CanViewAll,
			CanEdit:        u.Permissions.CanEdit,
			CanDelete:      u.Permissions.CanDelete,
			CanReprocess:   u.Permissions.CanReprocess,
			CanExport:      u.Permissions.CanExport,
			CanManageUsers: u.Permissions.CanManageUsers,
			CanViewAudit:   u.Permissions.CanViewAudit,
		},
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ParseYMD parses a YYYY-MM-DD date at midnight UTC to match DATE semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
