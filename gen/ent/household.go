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
)

// Household is the model entity for the Household schema.
type Household struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HouseholdQuery when eager-loading is set.
	Edges        HouseholdEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HouseholdEdges holds the relations/edges for other nodes in the graph.
type HouseholdEdges struct {
	// TaxYears holds the value of the tax_years edge.
	TaxYears []*TaxYear `json:"tax_years,omitempty"`
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TaxYearsOrErr returns the TaxYears value or an error if the edge
// was not loaded in eager-loading.
func (e HouseholdEdges) TaxYearsOrErr() ([]*TaxYear, error) {
	if e.loadedTypes[0] {
		return e.TaxYears, nil
	}
	return nil, &NotLoadedError{edge: "tax_years"}
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e HouseholdEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[1] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Household) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case household.FieldName:
			values[i] = new(sql.NullString)
		case household.FieldCreatedAt, household.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case household.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Household fields.
func (_m *Household) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case household.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case household.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case household.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case household.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Household.
// This includes values selected through modifiers, order, etc.
func (_m *Household) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTaxYears queries the "tax_years" edge of the Household entity.
func (_m *Household) QueryTaxYears() *TaxYearQuery {
	return NewHouseholdClient(_m.config).QueryTaxYears(_m)
}

// QueryDocuments queries the "documents" edge of the Household entity.
func (_m *Household) QueryDocuments() *DocumentQuery {
	return NewHouseholdClient(_m.config).QueryDocuments(_m)
}

// Update returns a builder for updating this Household.
// Note that you need to call Household.Unwrap() before calling this method if this Household
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Household) Update() *HouseholdUpdateOne {
	return NewHouseholdClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Household entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Household) Unwrap() *Household {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Household is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Household) String() string {
	var builder strings.Builder
	builder.WriteString("Household(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Households is a parsable slice of Household.
type Households []*Household
