package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/taxflow-app/taxflow/constants"
	"github.com/taxflow-app/taxflow/db/ent/schema/utils"
)

// Entity is one extracted (key, value, confidence) fact tied to a document.
// No uniqueness on (entity_type, key): a document may legitimately repeat keys.
type Entity struct{ ent.Schema }

func (Entity) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_entities"},
	}
}

func (Entity) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("entity_type").
			Validate(utils.EnumValidator(constants.EntityTypeStrings()...)),
		field.String("key").NotEmpty(),
		// extraction may be confident a field exists without reading its content
		field.String("value").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// 0-100; null for deterministic entries that carry no model score
		field.Float("confidence").Optional().Nillable().
			Min(0).Max(100).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Entity) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY entities -> ONE document
		edge.From("document", Document.Type).
			Ref("entities").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (Entity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("entity_type"),
	}
}
