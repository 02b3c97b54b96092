// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/taxflow-app/taxflow/gen/ent/checklistitem"
	"github.com/taxflow-app/taxflow/gen/ent/taxyear"
)

// ChecklistItem is the model entity for the ChecklistItem schema.
type ChecklistItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TaxYearID holds the value of the "tax_year_id" field.
	TaxYearID uuid.UUID `json:"tax_year_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Required holds the value of the "required" field.
	Required bool `json:"required,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChecklistItemQuery when eager-loading is set.
	Edges        ChecklistItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChecklistItemEdges holds the relations/edges for other nodes in the graph.
type ChecklistItemEdges struct {
	// TaxYear holds the value of the tax_year edge.
	TaxYear *TaxYear `json:"tax_year,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaxYearOrErr returns the TaxYear value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChecklistItemEdges) TaxYearOrErr() (*TaxYear, error) {
	if e.TaxYear != nil {
		return e.TaxYear, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taxyear.Label}
	}
	return nil, &NotLoadedError{edge: "tax_year"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChecklistItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checklistitem.FieldRequired:
			values[i] = new(sql.NullBool)
		case checklistitem.FieldTitle, checklistitem.FieldDescription, checklistitem.FieldStatus, checklistitem.FieldCategory:
			values[i] = new(sql.NullString)
		case checklistitem.FieldCreatedAt, checklistitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case checklistitem.FieldID, checklistitem.FieldTaxYearID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChecklistItem fields.
func (_m *ChecklistItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checklistitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case checklistitem.FieldTaxYearID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tax_year_id", values[i])
			} else if value != nil {
				_m.TaxYearID = *value
			}
		case checklistitem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case checklistitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case checklistitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case checklistitem.FieldRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field required", values[i])
			} else if value.Valid {
				_m.Required = value.Bool
			}
		case checklistitem.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case checklistitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case checklistitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChecklistItem.
// This includes values selected through modifiers, order, etc.
func (_m *ChecklistItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTaxYear queries the "tax_year" edge of the ChecklistItem entity.
func (_m *ChecklistItem) QueryTaxYear() *TaxYearQuery {
	return NewChecklistItemClient(_m.config).QueryTaxYear(_m)
}

// Update returns a builder for updating this ChecklistItem.
// Note that you need to call ChecklistItem.Unwrap() before calling this method if this ChecklistItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChecklistItem) Update() *ChecklistItemUpdateOne {
	return NewChecklistItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChecklistItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChecklistItem) Unwrap() *ChecklistItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChecklistItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChecklistItem) String() string {
	var builder strings.Builder
	builder.WriteString("ChecklistItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tax_year_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaxYearID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("required=")
	builder.WriteString(fmt.Sprintf("%v", _m.Required))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChecklistItems is a parsable slice of ChecklistItem.
type ChecklistItems []*ChecklistItem
