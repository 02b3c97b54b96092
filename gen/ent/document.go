// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/taxflow-app/taxflow/gen/ent/document"
	"github.com/taxflow-app/taxflow/gen/ent/household"
	"github.com/taxflow-app/taxflow/gen/ent/taxyear"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// HouseholdID holds the value of the "household_id" field.
	HouseholdID uuid.UUID `json:"household_id,omitempty"`
	// TaxYearID holds the value of the "tax_year_id" field.
	TaxYearID uuid.UUID `json:"tax_year_id,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// StoragePath holds the value of the "storage_path" field.
	StoragePath *string `json:"storage_path,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize *int `json:"file_size,omitempty"`
	// Parsed holds the value of the "parsed" field.
	Parsed bool `json:"parsed,omitempty"`
	// ParseError holds the value of the "parse_error" field.
	ParseError *string `json:"parse_error,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Household holds the value of the household edge.
	Household *Household `json:"household,omitempty"`
	// TaxYear holds the value of the tax_year edge.
	TaxYear *TaxYear `json:"tax_year,omitempty"`
	// Entities holds the value of the entities edge.
	Entities []*Entity `json:"entities,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// HouseholdOrErr returns the Household value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) HouseholdOrErr() (*Household, error) {
	if e.Household != nil {
		return e.Household, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: household.Label}
	}
	return nil, &NotLoadedError{edge: "household"}
}

// TaxYearOrErr returns the TaxYear value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) TaxYearOrErr() (*TaxYear, error) {
	if e.TaxYear != nil {
		return e.TaxYear, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: taxyear.Label}
	}
	return nil, &NotLoadedError{edge: "tax_year"}
}

// EntitiesOrErr returns the Entities value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) EntitiesOrErr() ([]*Entity, error) {
	if e.loadedTypes[2] {
		return e.Entities, nil
	}
	return nil, &NotLoadedError{edge: "entities"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldParsed:
			values[i] = new(sql.NullBool)
		case document.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case document.FieldSource, document.FieldFilename, document.FieldMimeType, document.FieldStoragePath, document.FieldParseError:
			values[i] = new(sql.NullString)
		case document.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID, document.FieldHouseholdID, document.FieldTaxYearID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldHouseholdID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field household_id", values[i])
			} else if value != nil {
				_m.HouseholdID = *value
			}
		case document.FieldTaxYearID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field tax_year_id", values[i])
			} else if value != nil {
				_m.TaxYearID = *value
			}
		case document.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case document.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case document.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case document.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				_m.StoragePath = new(string)
				*_m.StoragePath = value.String
			}
		case document.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = new(int)
				*_m.FileSize = int(value.Int64)
			}
		case document.FieldParsed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field parsed", values[i])
			} else if value.Valid {
				_m.Parsed = value.Bool
			}
		case document.FieldParseError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parse_error", values[i])
			} else if value.Valid {
				_m.ParseError = new(string)
				*_m.ParseError = value.String
			}
		case document.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHousehold queries the "household" edge of the Document entity.
func (_m *Document) QueryHousehold() *HouseholdQuery {
	return NewDocumentClient(_m.config).QueryHousehold(_m)
}

// QueryTaxYear queries the "tax_year" edge of the Document entity.
func (_m *Document) QueryTaxYear() *TaxYearQuery {
	return NewDocumentClient(_m.config).QueryTaxYear(_m)
}

// QueryEntities queries the "entities" edge of the Document entity.
func (_m *Document) QueryEntities() *EntityQuery {
	return NewDocumentClient(_m.config).QueryEntities(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("household_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HouseholdID))
	builder.WriteString(", ")
	builder.WriteString("tax_year_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaxYearID))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	if v := _m.StoragePath; v != nil {
		builder.WriteString("storage_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FileSize; v != nil {
		builder.WriteString("file_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("parsed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parsed))
	builder.WriteString(", ")
	if v := _m.ParseError; v != nil {
		builder.WriteString("parse_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
