// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChecklistItemsColumns holds the columns for the "checklist_items" table.
	ChecklistItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "todo"},
		{Name: "required", Type: field.TypeBool, Default: false},
		{Name: "category", Type: field.TypeString, Default: "other"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tax_year_id", Type: field.TypeUUID},
	}
	// ChecklistItemsTable holds the schema information for the "checklist_items" table.
	ChecklistItemsTable = &schema.Table{
		Name:       "checklist_items",
		Columns:    ChecklistItemsColumns,
		PrimaryKey: []*schema.Column{ChecklistItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checklist_items_tax_years_checklist_items",
				Columns:    []*schema.Column{ChecklistItemsColumns[8]},
				RefColumns: []*schema.Column{TaxYearsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checklistitem_tax_year_id",
				Unique:  false,
				Columns: []*schema.Column{ChecklistItemsColumns[8]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source", Type: field.TypeString, Default: "upload"},
		{Name: "filename", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString, Default: "application/pdf"},
		{Name: "storage_path", Type: field.TypeString, Nullable: true},
		{Name: "file_size", Type: field.TypeInt, Nullable: true},
		{Name: "parsed", Type: field.TypeBool, Default: false},
		{Name: "parse_error", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "household_id", Type: field.TypeUUID},
		{Name: "tax_year_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_households_documents",
				Columns:    []*schema.Column{DocumentsColumns[9]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "documents_tax_years_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{TaxYearsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_tax_year_id_parsed",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[6]},
			},
			{
				Name:    "document_household_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[9], DocumentsColumns[8]},
			},
		},
	}
	// DocumentEntitiesColumns holds the columns for the "document_entities" table.
	DocumentEntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DocumentEntitiesTable holds the schema information for the "document_entities" table.
	DocumentEntitiesTable = &schema.Table{
		Name:       "document_entities",
		Columns:    DocumentEntitiesColumns,
		PrimaryKey: []*schema.Column{DocumentEntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_entities_documents_entities",
				Columns:    []*schema.Column{DocumentEntitiesColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entity_document_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentEntitiesColumns[6]},
			},
			{
				Name:    "entity_entity_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentEntitiesColumns[1]},
			},
		},
	}
	// HouseholdsColumns holds the columns for the "households" table.
	HouseholdsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HouseholdsTable holds the schema information for the "households" table.
	HouseholdsTable = &schema.Table{
		Name:       "households",
		Columns:    HouseholdsColumns,
		PrimaryKey: []*schema.Column{HouseholdsColumns[0]},
	}
	// TaxYearsColumns holds the columns for the "tax_years" table.
	TaxYearsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "year", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "collecting"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "household_id", Type: field.TypeUUID},
	}
	// TaxYearsTable holds the schema information for the "tax_years" table.
	TaxYearsTable = &schema.Table{
		Name:       "tax_years",
		Columns:    TaxYearsColumns,
		PrimaryKey: []*schema.Column{TaxYearsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tax_years_households_tax_years",
				Columns:    []*schema.Column{TaxYearsColumns[5]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taxyear_household_id_year",
				Unique:  true,
				Columns: []*schema.Column{TaxYearsColumns[5], TaxYearsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChecklistItemsTable,
		DocumentsTable,
		DocumentEntitiesTable,
		HouseholdsTable,
		TaxYearsTable,
	}
)

func init() {
	ChecklistItemsTable.ForeignKeys[0].RefTable = TaxYearsTable
	ChecklistItemsTable.Annotation = &entsql.Annotation{
		Table: "checklist_items",
	}
	DocumentsTable.ForeignKeys[0].RefTable = HouseholdsTable
	DocumentsTable.ForeignKeys[1].RefTable = TaxYearsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentEntitiesTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentEntitiesTable.Annotation = &entsql.Annotation{
		Table: "document_entities",
	}
	HouseholdsTable.Annotation = &entsql.Annotation{
		Table: "households",
	}
	TaxYearsTable.ForeignKeys[0].RefTable = HouseholdsTable
	TaxYearsTable.Annotation = &entsql.Annotation{
		Table: "tax_years",
	}
}
