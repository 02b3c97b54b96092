package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/taxflow-app/taxflow/constants"
	"github.com/taxflow-app/taxflow/db/ent/schema/utils"
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
		// explicit FKs
		field.UUID("household_id", uuid.UUID{}),
		field.UUID("tax_year_id", uuid.UUID{}),
		field.String("source").
			Default(string(constants.SourceUpload)).
			Validate(utils.EnumValidator(constants.DocumentSources...)),
		field.String("filename").NotEmpty(),
		field.String("mime_type").Default(constants.MIMEPDF),
		// opaque handle owned by the storage collaborator
		field.String("storage_path").Optional().Nillable(),
		field.Int("file_size").Optional().Nillable(),
		field.Bool("parsed").Default(false),
		field.String("parse_error").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE household
		edge.From("household", Household.Type).
			Ref("documents").
			Field("household_id").
			Required().
			Unique(),
		// MANY documents -> ONE tax year
		edge.From("tax_year", TaxYear.Type).
			Ref("documents").
			Field("tax_year_id").
			Required().
			Unique(),
		// ONE document -> MANY entities (cascade delete)
		edge.To("entities", Entity.Type).
			Annotations(entsql.Annotation{
				OnDelete: entsql.Cascade,
			}),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tax_year_id", "parsed"),
		index.Fields("household_id", "uploaded_at"),
	}
}
