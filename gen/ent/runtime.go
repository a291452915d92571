// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/paperbase/paperbase/db/ent/schema"
	"github.com/paperbase/paperbase/gen/ent/auditlog"
	"github.com/paperbase/paperbase/gen/ent/document"
	"github.com/paperbase/paperbase/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[3].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescActorName is the schema descriptor for actor_name field.
	auditlogDescActorName := auditlogFields[5].Descriptor()
	// auditlog.DefaultActorName holds the default value on creation for the actor_name field.
	auditlog.DefaultActorName = auditlogDescActorName.Default.(string)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[7].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[1].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescFileURL is the schema descriptor for file_url field.
	documentDescFileURL := documentFields[2].Descriptor()
	// document.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	document.FileURLValidator = documentDescFileURL.Validators[0].(func(string) error)
	// documentDescFileType is the schema descriptor for file_type field.
	documentDescFileType := documentFields[3].Descriptor()
	// document.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	document.FileTypeValidator = func() func(string) error {
		validators := documentDescFileType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_type string) error {
			for _, fn := range fns {
				if err := fn(file_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[4].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int64) error)
	// documentDescDocumentType is the schema descriptor for document_type field.
	documentDescDocumentType := documentFields[5].Descriptor()
	// document.DefaultDocumentType holds the default value on creation for the document_type field.
	document.DefaultDocumentType = documentDescDocumentType.Default.(string)
	// document.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	document.DocumentTypeValidator = documentDescDocumentType.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[6].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[9].Descriptor()
	// document.DefaultPageCount holds the default value on creation for the page_count field.
	document.DefaultPageCount = documentDescPageCount.Default.(int)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[18].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[19].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[1].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[3].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[4].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	// userDescCanUpload is the schema descriptor for can_upload field.
	userDescCanUpload := userFields[5].Descriptor()
	// user.DefaultCanUpload holds the default value on creation for the can_upload field.
	user.DefaultCanUpload = userDescCanUpload.Default.(bool)
	// userDescCanViewAll is the schema descriptor for can_view_all field.
	userDescCanViewAll := userFields[6].Descriptor()
	// user.DefaultCanViewAll holds the default value on creation for the can_view_all field.
	user.DefaultCanViewAll = userDescCanViewAll.Default.(bool)
	// userDescCanEdit is the schema descriptor for can_edit field.
	userDescCanEdit := userFields[7].Descriptor()
	// user.DefaultCanEdit holds the default value on creation for the can_edit field.
	user.DefaultCanEdit = userDescCanEdit.Default.(bool)
	// userDescCanDelete is the schema descriptor for can_delete field.
	userDescCanDelete := userFields[8].Descriptor()
	// user.DefaultCanDelete holds the default value on creation for the can_delete field.
	user.DefaultCanDelete = userDescCanDelete.Default.(bool)
	// userDescCanReprocess is the schema descriptor for can_reprocess field.
	userDescCanReprocess := userFields[9].Descriptor()
	// user.DefaultCanReprocess holds the default value on creation for the can_reprocess field.
	user.DefaultCanReprocess = userDescCanReprocess.Default.(bool)
	// userDescCanExport is the schema descriptor for can_export field.
	userDescCanExport := userFields[10].Descriptor()
	// user.DefaultCanExport holds the default value on creation for the can_export field.
	user.DefaultCanExport = userDescCanExport.Default.(bool)
	// userDescCanManageUsers is the schema descriptor for can_manage_users field.
	userDescCanManageUsers := userFields[11].Descriptor()
	// user.DefaultCanManageUsers holds the default value on creation for the can_manage_users field.
	user.DefaultCanManageUsers = userDescCanManageUsers.Default.(bool)
	// userDescCanViewAudit is the schema descriptor for can_view_audit field.
	userDescCanViewAudit := userFields[12].Descriptor()
	// user.DefaultCanViewAudit holds the default value on creation for the can_view_audit field.
	user.DefaultCanViewAudit = userDescCanViewAudit.Default.(bool)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[13].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[14].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[15].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
