// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogColumns holds the columns for the "audit_log" table.
	AuditLogColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "actor_name", Type: field.TypeString, Default: "system"},
		{Name: "detail", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
	}
	// AuditLogTable holds the schema information for the "audit_log" table.
	AuditLogTable = &schema.Table{
		Name:       "audit_log",
		Columns:    AuditLogColumns,
		PrimaryKey: []*schema.Column{AuditLogColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_log_documents_audit_entries",
				Columns:    []*schema.Column{AuditLogColumns[7]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogColumns[7], AuditLogColumns[6]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogColumns[6]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_url", Type: field.TypeString},
		{Name: "file_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "document_type", Type: field.TypeString, Default: "other"},
		{Name: "status", Type: field.TypeString, Default: "processing"},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_pages", Type: field.TypeJSON, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "ocr_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "parsed_data", Type: field.TypeJSON, Nullable: true},
		{Name: "parsed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_stage", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "uploaded_by", Type: field.TypeUUID, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_users_documents",
				Columns:    []*schema.Column{DocumentsColumns[19]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
			{
				Name:    "document_document_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
			{
				Name:    "document_uploaded_by_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[19], DocumentsColumns[17]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "phone", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString, Default: "guest"},
		{Name: "can_upload", Type: field.TypeBool, Default: false},
		{Name: "can_view_all", Type: field.TypeBool, Default: false},
		{Name: "can_edit", Type: field.TypeBool, Default: false},
		{Name: "can_delete", Type: field.TypeBool, Default: false},
		{Name: "can_reprocess", Type: field.TypeBool, Default: false},
		{Name: "can_export", Type: field.TypeBool, Default: false},
		{Name: "can_manage_users", Type: field.TypeBool, Default: false},
		{Name: "can_view_audit", Type: field.TypeBool, Default: false},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogTable,
		DocumentsTable,
		UsersTable,
	}
)

func init() {
	AuditLogTable.ForeignKeys[0].RefTable = DocumentsTable
	AuditLogTable.Annotation = &entsql.Annotation{
		Table: "audit_log",
	}
	DocumentsTable.ForeignKeys[0].RefTable = UsersTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
