package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
	"github.com/paperbase/paperbase/constants"
	"github.com/paperbase/paperbase/db/ent/schema/utils"
)

type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("phone").NotEmpty().Unique(),
		field.String("password_hash").NotEmpty().Sensitive(),
		field.String("name").NotEmpty(),
		field.String("role").
			Default(string(constants.RoleGuest)).
			Validate(utils.EnumValidator(constants.Roles()...)),
		// flags derived from role at creation/role-change time
		field.Bool("can_upload").Default(false),
		field.Bool("can_view_all").Default(false),
		field.Bool("can_edit").Default(false),
		field.Bool("can_delete").Default(false),
		field.Bool("can_reprocess").Default(false),
		field.Bool("can_export").Default(false),
		field.Bool("can_manage_users").Default(false),
		field.Bool("can_view_audit").Default(false),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
	}
}
