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

type ChecklistItem struct{ ent.Schema }

func (ChecklistItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "checklist_items"},
	}
}

func (ChecklistItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("tax_year_id", uuid.UUID{}),
		// the dedup key within a generation batch
		field.String("title").NotEmpty(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").
			Default(string(constants.StatusTodo)).
			Validate(utils.EnumValidator(constants.ItemStatuses...)),
		field.Bool("required").Default(false),
		field.String("category").
			Default(string(constants.CategoryOther)).
			Validate(utils.EnumValidator(constants.ItemCategoryStrings()...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ChecklistItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE tax year
		edge.From("tax_year", TaxYear.Type).
			Ref("checklist_items").
			Field("tax_year_id").
			Required().
			Unique(),
	}
}

func (ChecklistItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tax_year_id"),
	}
}
