// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/taxflow-app/taxflow/gen/ent/household"
	"github.com/taxflow-app/taxflow/gen/ent/taxyear"
)

// TaxYear is the model entity for the TaxYear schema.
type TaxYear struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// HouseholdID holds the value of the "household_id" field.
	HouseholdID uuid.UUID `json:"household_id,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaxYearQuery when eager-loading is set.
	Edges        TaxYearEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaxYearEdges holds the relations/edges for other nodes in the graph.
type TaxYearEdges struct {
	// Household holds the value of the household edge.
	Household *Household `json:"household,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// ChecklistItems holds the value of the checklist_items edge.
	ChecklistItems []*ChecklistItem `json:"checklist_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// HouseholdOrErr returns the Household value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaxYearEdges) HouseholdOrErr() (*Household, error) {
	if e.Household != nil {
		return e.Household, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: household.Label}
	}
	return nil, &NotLoadedError{edge: "household"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e TaxYearEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// ChecklistItemsOrErr returns the ChecklistItems value or an error if the edge
// was not loaded in eager-loading.
func (e TaxYearEdges) ChecklistItemsOrErr() ([]*ChecklistItem, error) {
	if e.loadedTypes[2] {
		return e.ChecklistItems, nil
	}
	return nil, &NotLoadedError{edge: "checklist_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaxYear) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taxyear.FieldYear:
			values[i] = new(sql.NullInt64)
		case taxyear.FieldStatus:
			values[i] = new(sql.NullString)
		case taxyear.FieldCreatedAt, taxyear.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case taxyear.FieldID, taxyear.FieldHouseholdID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaxYear fields.
func (_m *TaxYear) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taxyear.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case taxyear.FieldHouseholdID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field household_id", values[i])
			} else if value != nil {
				_m.HouseholdID = *value
			}
		case taxyear.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case taxyear.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case taxyear.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case taxyear.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TaxYear.
// This includes values selected through modifiers, order, etc.
func (_m *TaxYear) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHousehold queries the "household" edge of the TaxYear entity.
func (_m *TaxYear) QueryHousehold() *HouseholdQuery {
	return NewTaxYearClient(_m.config).QueryHousehold(_m)
}

// QueryDocuments queries the "documents" edge of the TaxYear entity.
func (_m *TaxYear) QueryDocuments() *DocumentQuery {
	return NewTaxYearClient(_m.config).QueryDocuments(_m)
}

// QueryChecklistItems queries the "checklist_items" edge of the TaxYear entity.
func (_m *TaxYear) QueryChecklistItems() *ChecklistItemQuery {
	return NewTaxYearClient(_m.config).QueryChecklistItems(_m)
}

// Update returns a builder for updating this TaxYear.
// Note that you need to call TaxYear.Unwrap() before calling this method if this TaxYear
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaxYear) Update() *TaxYearUpdateOne {
	return NewTaxYearClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaxYear entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaxYear) Unwrap() *TaxYear {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaxYear is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaxYear) String() string {
	var builder strings.Builder
	builder.WriteString("TaxYear(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("household_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HouseholdID))
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaxYears is a parsable slice of TaxYear.
type TaxYears []*TaxYear
