package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("file_name").NotEmpty().Immutable(),
		field.String("file_url").NotEmpty().Immutable(),
		field.String("file_type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Int64("file_size").NonNegative(),
		// mutable: the classification step may correct the type
		field.String("document_type").
			Default(string(constants.Other)).
			Validate(utils.EnumValidator(constants.DocumentTypes()...)),
		field.String("status").
			Default(string(constants.StatusProcessing)),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("ocr_pages", json.RawMessage{}).
			Optional(),
		field.Int("page_count").Default(0),
		field.Float32("confidence").Optional().Nillable(),
		field.Time("ocr_completed_at").Optional().Nillable(),
		// keyed by document type; presence implies a successful extraction
		field.JSON("parsed_data", map[string]json.RawMessage{}).
			Optional(),
		field.Time("parsed_at").Optional().Nillable(),
		// set iff status == failed
		field.String("error_message").Optional().Nillable(),
		field.String("error_code").Optional().Nillable(),
		field.String("error_stage").Optional().Nillable(),
		field.UUID("uploaded_by", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE uploader
		edge.From("uploader", User.Type).
			Ref("documents").
			Field("uploaded_by").
			Unique(),
		// ONE document -> MANY audit entries
		edge.To("audit_entries", AuditLog.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("document_type"),
		index.Fields("uploaded_by", "created_at"),
	}
}
