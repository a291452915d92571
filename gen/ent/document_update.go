// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paperbase/paperbase/gen/ent/auditlog"
	"github.com/paperbase/paperbase/gen/ent/document"
	"github.com/paperbase/paperbase/gen/ent/predicate"
	"github.com/paperbase/paperbase/gen/ent/user"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdate) SetFileSize(v int64) *DocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileSize(v *int64) *DocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdate) AddFileSize(v int64) *DocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdate) SetDocumentType(v string) *DocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdate) SetOcrText(v string) *DocumentUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdate) ClearOcrText() *DocumentUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrPages sets the "ocr_pages" field.
func (_u *DocumentUpdate) SetOcrPages(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetOcrPages(v)
	return _u
}

// AppendOcrPages appends value to the "ocr_pages" field.
func (_u *DocumentUpdate) AppendOcrPages(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendOcrPages(v)
	return _u
}

// ClearOcrPages clears the value of the "ocr_pages" field.
func (_u *DocumentUpdate) ClearOcrPages() *DocumentUpdate {
	_u.mutation.ClearOcrPages()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdate) SetPageCount(v int) *DocumentUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePageCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdate) AddPageCount(v int) *DocumentUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentUpdate) SetConfidence(v float32) *DocumentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableConfidence(v *float32) *DocumentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentUpdate) AddConfidence(v float32) *DocumentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DocumentUpdate) ClearConfidence() *DocumentUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetOcrCompletedAt sets the "ocr_completed_at" field.
func (_u *DocumentUpdate) SetOcrCompletedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetOcrCompletedAt(v)
	return _u
}

// SetNillableOcrCompletedAt sets the "ocr_completed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrCompletedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetOcrCompletedAt(*v)
	}
	return _u
}

// ClearOcrCompletedAt clears the value of the "ocr_completed_at" field.
func (_u *DocumentUpdate) ClearOcrCompletedAt() *DocumentUpdate {
	_u.mutation.ClearOcrCompletedAt()
	return _u
}

// SetParsedData sets the "parsed_data" field.
func (_u *DocumentUpdate) SetParsedData(v map[string]json.RawMessage) *DocumentUpdate {
	_u.mutation.SetParsedData(v)
	return _u
}

// ClearParsedData clears the value of the "parsed_data" field.
func (_u *DocumentUpdate) ClearParsedData() *DocumentUpdate {
	_u.mutation.ClearParsedData()
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *DocumentUpdate) SetParsedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableParsedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (_u *DocumentUpdate) ClearParsedAt() *DocumentUpdate {
	_u.mutation.ClearParsedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdate) SetErrorMessage(v string) *DocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableErrorMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdate) ClearErrorMessage() *DocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *DocumentUpdate) SetErrorCode(v string) *DocumentUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableErrorCode(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *DocumentUpdate) ClearErrorCode() *DocumentUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorStage sets the "error_stage" field.
func (_u *DocumentUpdate) SetErrorStage(v string) *DocumentUpdate {
	_u.mutation.SetErrorStage(v)
	return _u
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableErrorStage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetErrorStage(*v)
	}
	return _u
}

// ClearErrorStage clears the value of the "error_stage" field.
func (_u *DocumentUpdate) ClearErrorStage() *DocumentUpdate {
	_u.mutation.ClearErrorStage()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *DocumentUpdate) SetUploadedBy(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedBy(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *DocumentUpdate) ClearUploadedBy() *DocumentUpdate {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUploaderID sets the "uploader" edge to the User entity by ID.
func (_u *DocumentUpdate) SetUploaderID(id uuid.UUID) *DocumentUpdate {
	_u.mutation.SetUploaderID(id)
	return _u
}

// SetNillableUploaderID sets the "uploader" edge to the User entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploaderID(id *uuid.UUID) *DocumentUpdate {
	if id != nil {
		_u = _u.SetUploaderID(*id)
	}
	return _u
}

// SetUploader sets the "uploader" edge to the User entity.
func (_u *DocumentUpdate) SetUploader(v *User) *DocumentUpdate {
	return _u.SetUploaderID(v.ID)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditLog entity by IDs.
func (_u *DocumentUpdate) AddAuditEntryIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the AuditLog entity.
func (_u *DocumentUpdate) AddAuditEntries(v ...*AuditLog) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearUploader clears the "uploader" edge to the User entity.
func (_u *DocumentUpdate) ClearUploader() *DocumentUpdate {
	_u.mutation.ClearUploader()
	return _u
}

// ClearAuditEntries clears all "audit_entries" edges to the AuditLog entity.
func (_u *DocumentUpdate) ClearAuditEntries() *DocumentUpdate {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to AuditLog entities by IDs.
func (_u *DocumentUpdate) RemoveAuditEntryIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to AuditLog entities.
func (_u *DocumentUpdate) RemoveAuditEntries(v ...*AuditLog) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrPages(); ok {
		_spec.SetField(document.FieldOcrPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOcrPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldOcrPages, value)
		})
	}
	if _u.mutation.OcrPagesCleared() {
		_spec.ClearField(document.FieldOcrPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(document.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(document.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.OcrCompletedAt(); ok {
		_spec.SetField(document.FieldOcrCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrCompletedAtCleared() {
		_spec.ClearField(document.FieldOcrCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ParsedData(); ok {
		_spec.SetField(document.FieldParsedData, field.TypeJSON, value)
	}
	if _u.mutation.ParsedDataCleared() {
		_spec.ClearField(document.FieldParsedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(document.FieldParsedAt, field.TypeTime, value)
	}
	if _u.mutation.ParsedAtCleared() {
		_spec.ClearField(document.FieldParsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(document.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(document.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStage(); ok {
		_spec.SetField(document.FieldErrorStage, field.TypeString, value)
	}
	if _u.mutation.ErrorStageCleared() {
		_spec.ClearField(document.FieldErrorStage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UploaderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.UploaderTable,
			Columns: []string{document.UploaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploaderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.UploaderTable,
			Columns: []string{document.UploaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AuditEntriesTable,
			Columns: []string{document.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AuditEntriesTable,
			Columns: []string{document.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AuditEntriesTable,
			Columns: []string{document.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdateOne) SetFileSize(v int64) *DocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileSize(v *int64) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdateOne) AddFileSize(v int64) *DocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdateOne) SetDocumentType(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdateOne) SetOcrText(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdateOne) ClearOcrText() *DocumentUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetOcrPages sets the "ocr_pages" field.
func (_u *DocumentUpdateOne) SetOcrPages(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetOcrPages(v)
	return _u
}

// AppendOcrPages appends value to the "ocr_pages" field.
func (_u *DocumentUpdateOne) AppendOcrPages(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendOcrPages(v)
	return _u
}

// ClearOcrPages clears the value of the "ocr_pages" field.
func (_u *DocumentUpdateOne) ClearOcrPages() *DocumentUpdateOne {
	_u.mutation.ClearOcrPages()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdateOne) SetPageCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePageCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdateOne) AddPageCount(v int) *DocumentUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentUpdateOne) SetConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableConfidence(v *float32) *DocumentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentUpdateOne) AddConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DocumentUpdateOne) ClearConfidence() *DocumentUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetOcrCompletedAt sets the "ocr_completed_at" field.
func (_u *DocumentUpdateOne) SetOcrCompletedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetOcrCompletedAt(v)
	return _u
}

// SetNillableOcrCompletedAt sets the "ocr_completed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrCompletedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrCompletedAt(*v)
	}
	return _u
}

// ClearOcrCompletedAt clears the value of the "ocr_completed_at" field.
func (_u *DocumentUpdateOne) ClearOcrCompletedAt() *DocumentUpdateOne {
	_u.mutation.ClearOcrCompletedAt()
	return _u
}

// SetParsedData sets the "parsed_data" field.
func (_u *DocumentUpdateOne) SetParsedData(v map[string]json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetParsedData(v)
	return _u
}

// ClearParsedData clears the value of the "parsed_data" field.
func (_u *DocumentUpdateOne) ClearParsedData() *DocumentUpdateOne {
	_u.mutation.ClearParsedData()
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *DocumentUpdateOne) SetParsedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableParsedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (_u *DocumentUpdateOne) ClearParsedAt() *DocumentUpdateOne {
	_u.mutation.ClearParsedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdateOne) SetErrorMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableErrorMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdateOne) ClearErrorMessage() *DocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *DocumentUpdateOne) SetErrorCode(v string) *DocumentUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableErrorCode(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *DocumentUpdateOne) ClearErrorCode() *DocumentUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorStage sets the "error_stage" field.
func (_u *DocumentUpdateOne) SetErrorStage(v string) *DocumentUpdateOne {
	_u.mutation.SetErrorStage(v)
	return _u
}

// SetNillableErrorStage sets the "error_stage" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableErrorStage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetErrorStage(*v)
	}
	return _u
}

// ClearErrorStage clears the value of the "error_stage" field.
func (_u *DocumentUpdateOne) ClearErrorStage() *DocumentUpdateOne {
	_u.mutation.ClearErrorStage()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *DocumentUpdateOne) SetUploadedBy(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedBy(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *DocumentUpdateOne) ClearUploadedBy() *DocumentUpdateOne {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUploaderID sets the "uploader" edge to the User entity by ID.
func (_u *DocumentUpdateOne) SetUploaderID(id uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetUploaderID(id)
	return _u
}

// SetNillableUploaderID sets the "uploader" edge to the User entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploaderID(id *uuid.UUID) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetUploaderID(*id)
	}
	return _u
}

// SetUploader sets the "uploader" edge to the User entity.
func (_u *DocumentUpdateOne) SetUploader(v *User) *DocumentUpdateOne {
	return _u.SetUploaderID(v.ID)
}

// AddAuditEntryIDs adds the "audit_entries" edge to the AuditLog entity by IDs.
func (_u *DocumentUpdateOne) AddAuditEntryIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddAuditEntryIDs(ids...)
	return _u
}

// AddAuditEntries adds the "audit_entries" edges to the AuditLog entity.
func (_u *DocumentUpdateOne) AddAuditEntries(v ...*AuditLog) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditEntryIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearUploader clears the "uploader" edge to the User entity.
func (_u *DocumentUpdateOne) ClearUploader() *DocumentUpdateOne {
	_u.mutation.ClearUploader()
	return _u
}

// ClearAuditEntries clears all "audit_entries" edges to the AuditLog entity.
func (_u *DocumentUpdateOne) ClearAuditEntries() *DocumentUpdateOne {
	_u.mutation.ClearAuditEntries()
	return _u
}

// RemoveAuditEntryIDs removes the "audit_entries" edge to AuditLog entities by IDs.
func (_u *DocumentUpdateOne) RemoveAuditEntryIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveAuditEntryIDs(ids...)
	return _u
}

// RemoveAuditEntries removes "audit_entries" edges to AuditLog entities.
func (_u *DocumentUpdateOne) RemoveAuditEntries(v ...*AuditLog) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditEntryIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrPages(); ok {
		_spec.SetField(document.FieldOcrPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOcrPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldOcrPages, value)
		})
	}
	if _u.mutation.OcrPagesCleared() {
		_spec.ClearField(document.FieldOcrPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(document.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(document.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.OcrCompletedAt(); ok {
		_spec.SetField(document.FieldOcrCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrCompletedAtCleared() {
		_spec.ClearField(document.FieldOcrCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ParsedData(); ok {
		_spec.SetField(document.FieldParsedData, field.TypeJSON, value)
	}
	if _u.mutation.ParsedDataCleared() {
		_spec.ClearField(document.FieldParsedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(document.FieldParsedAt, field.TypeTime, value)
	}
	if _u.mutation.ParsedAtCleared() {
		_spec.ClearField(document.FieldParsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(document.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(document.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorStage(); ok {
		_spec.SetField(document.FieldErrorStage, field.TypeString, value)
	}
	if _u.mutation.ErrorStageCleared() {
		_spec.ClearField(document.FieldErrorStage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UploaderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.UploaderTable,
			Columns: []string{document.UploaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploaderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.UploaderTable,
			Columns: []string{document.UploaderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AuditEntriesTable,
			Columns: []string{document.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditEntriesIDs(); len(nodes) > 0 && !_u.mutation.AuditEntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AuditEntriesTable,
			Columns: []string{document.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AuditEntriesTable,
			Columns: []string{document.AuditEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
