// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldCanUpload holds the string denoting the can_upload field in the database.
	FieldCanUpload = "can_upload"
	// FieldCanViewAll holds the string denoting the can_view_all field in the database.
	FieldCanViewAll = "can_view_all"
	// FieldCanEdit holds the string denoting the can_edit field in the database.
	FieldCanEdit = "can_edit"
	// FieldCanDelete holds the string denoting the can_delete field in the database.
	FieldCanDelete = "can_delete"
	// FieldCanReprocess holds the string denoting the can_reprocess field in the database.
	FieldCanReprocess = "can_reprocess"
	// FieldCanExport holds the string denoting the can_export field in the database.
	FieldCanExport = "can_export"
	// FieldCanManageUsers holds the string denoting the can_manage_users field in the database.
	FieldCanManageUsers = "can_manage_users"
	// FieldCanViewAudit holds the string denoting the can_view_audit field in the database.
	FieldCanViewAudit = "can_view_audit"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// Table holds the table name of the user in the database.
	Table = "users"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "uploaded_by"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldPhone,
	FieldPasswordHash,
	FieldName,
	FieldRole,
	FieldCanUpload,
	FieldCanViewAll,
	FieldCanEdit,
	FieldCanDelete,
	FieldCanReprocess,
	FieldCanExport,
	FieldCanManageUsers,
	FieldCanViewAudit,
	FieldActive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	PasswordHashValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultRole holds the default value on creation for the "role" field.
	DefaultRole string
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// DefaultCanUpload holds the default value on creation for the "can_upload" field.
	DefaultCanUpload bool
	// DefaultCanViewAll holds the default value on creation for the "can_view_all" field.
	DefaultCanViewAll bool
	// DefaultCanEdit holds the default value on creation for the "can_edit" field.
	DefaultCanEdit bool
	// DefaultCanDelete holds the default value on creation for the "can_delete" field.
	DefaultCanDelete bool
	// DefaultCanReprocess holds the default value on creation for the "can_reprocess" field.
	DefaultCanReprocess bool
	// DefaultCanExport holds the default value on creation for the "can_export" field.
	DefaultCanExport bool
	// DefaultCanManageUsers holds the default value on creation for the "can_manage_users" field.
	DefaultCanManageUsers bool
	// DefaultCanViewAudit holds the default value on creation for the "can_view_audit" field.
	DefaultCanViewAudit bool
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByCanUpload orders the results by the can_upload field.
func ByCanUpload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanUpload, opts...).ToFunc()
}

// ByCanViewAll orders the results by the can_view_all field.
func ByCanViewAll(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanViewAll, opts...).ToFunc()
}

// ByCanEdit orders the results by the can_edit field.
func ByCanEdit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanEdit, opts...).ToFunc()
}

// ByCanDelete orders the results by the can_delete field.
func ByCanDelete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanDelete, opts...).ToFunc()
}

// ByCanReprocess orders the results by the can_reprocess field.
func ByCanReprocess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanReprocess, opts...).ToFunc()
}

// ByCanExport orders the results by the can_export field.
func ByCanExport(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanExport, opts...).ToFunc()
}

// ByCanManageUsers orders the results by the can_manage_users field.
func ByCanManageUsers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanManageUsers, opts...).ToFunc()
}

// ByCanViewAudit orders the results by the can_view_audit field.
func ByCanViewAudit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanViewAudit, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
