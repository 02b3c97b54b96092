package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Household struct{ ent.Schema }

func (Household) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "households"},
	}
}

func (Household) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Household) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE household -> MANY tax years
		edge.To("tax_years", TaxYear.Type),
		// ONE household -> MANY documents
		edge.To("documents", Document.Type),
	}
}
