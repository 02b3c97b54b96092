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

type TaxYear struct{ ent.Schema }

func (TaxYear) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tax_years"},
	}
}

func (TaxYear) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define a composite unique index
		field.UUID("household_id", uuid.UUID{}),
		field.Int("year").Positive(),
		field.String("status").
			Default(string(constants.TaxYearCollecting)).
			Validate(utils.EnumValidator(constants.TaxYearStatuses...)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TaxYear) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY tax years -> ONE household (FK: tax_years.household_id)
		edge.From("household", Household.Type).
			Ref("tax_years").
			Field("household_id").
			Required().
			Unique(),
		// ONE tax year -> MANY documents
		edge.To("documents", Document.Type),
		// ONE tax year -> MANY checklist items
		edge.To("checklist_items", ChecklistItem.Type),
	}
}

func (TaxYear) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("household_id", "year").Unique(),
	}
}
