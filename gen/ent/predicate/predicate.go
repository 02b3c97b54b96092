// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChecklistItem is the predicate function for checklistitem builders.
type ChecklistItem func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// Household is the predicate function for household builders.
type Household func(*sql.Selector)

// TaxYear is the predicate function for taxyear builders.
type TaxYear func(*sql.Selector)
