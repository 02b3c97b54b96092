// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/taxflow-app/taxflow/gen/ent/checklistitem"
	"github.com/taxflow-app/taxflow/gen/ent/document"
	"github.com/taxflow-app/taxflow/gen/ent/household"
	"github.com/taxflow-app/taxflow/gen/ent/predicate"
	"github.com/taxflow-app/taxflow/gen/ent/taxyear"
)

// TaxYearUpdate is the builder for updating TaxYear entities.
type TaxYearUpdate struct {
	config
	hooks    []Hook
	mutation *TaxYearMutation
}

// Where appends a list predicates to the TaxYearUpdate builder.
func (_u *TaxYearUpdate) Where(ps ...predicate.TaxYear) *TaxYearUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHouseholdID sets the "household_id" field.
func (_u *TaxYearUpdate) SetHouseholdID(v uuid.UUID) *TaxYearUpdate {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *TaxYearUpdate) SetNillableHouseholdID(v *uuid.UUID) *TaxYearUpdate {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *TaxYearUpdate) SetYear(v int) *TaxYearUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *TaxYearUpdate) SetNillableYear(v *int) *TaxYearUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *TaxYearUpdate) AddYear(v int) *TaxYearUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaxYearUpdate) SetStatus(v string) *TaxYearUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaxYearUpdate) SetNillableStatus(v *string) *TaxYearUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaxYearUpdate) SetCreatedAt(v time.Time) *TaxYearUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaxYearUpdate) SetNillableCreatedAt(v *time.Time) *TaxYearUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaxYearUpdate) SetUpdatedAt(v time.Time) *TaxYearUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *TaxYearUpdate) SetHousehold(v *Household) *TaxYearUpdate {
	return _u.SetHouseholdID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *TaxYearUpdate) AddDocumentIDs(ids ...uuid.UUID) *TaxYearUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *TaxYearUpdate) AddDocuments(v ...*Document) *TaxYearUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddChecklistItemIDs adds the "checklist_items" edge to the ChecklistItem entity by IDs.
func (_u *TaxYearUpdate) AddChecklistItemIDs(ids ...uuid.UUID) *TaxYearUpdate {
	_u.mutation.AddChecklistItemIDs(ids...)
	return _u
}

// AddChecklistItems adds the "checklist_items" edges to the ChecklistItem entity.
func (_u *TaxYearUpdate) AddChecklistItems(v ...*ChecklistItem) *TaxYearUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChecklistItemIDs(ids...)
}

// Mutation returns the TaxYearMutation object of the builder.
func (_u *TaxYearUpdate) Mutation() *TaxYearMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *TaxYearUpdate) ClearHousehold() *TaxYearUpdate {
	_u.mutation.ClearHousehold()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *TaxYearUpdate) ClearDocuments() *TaxYearUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *TaxYearUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *TaxYearUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *TaxYearUpdate) RemoveDocuments(v ...*Document) *TaxYearUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearChecklistItems clears all "checklist_items" edges to the ChecklistItem entity.
func (_u *TaxYearUpdate) ClearChecklistItems() *TaxYearUpdate {
	_u.mutation.ClearChecklistItems()
	return _u
}

// RemoveChecklistItemIDs removes the "checklist_items" edge to ChecklistItem entities by IDs.
func (_u *TaxYearUpdate) RemoveChecklistItemIDs(ids ...uuid.UUID) *TaxYearUpdate {
	_u.mutation.RemoveChecklistItemIDs(ids...)
	return _u
}

// RemoveChecklistItems removes "checklist_items" edges to ChecklistItem entities.
func (_u *TaxYearUpdate) RemoveChecklistItems(v ...*ChecklistItem) *TaxYearUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChecklistItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaxYearUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaxYearUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaxYearUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaxYearUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaxYearUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taxyear.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaxYearUpdate) check() error {
	if v, ok := _u.mutation.Year(); ok {
		if err := taxyear.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "TaxYear.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := taxyear.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaxYear.status": %w`, err)}
		}
	}
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaxYear.household"`)
	}
	return nil
}

func (_u *TaxYearUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taxyear.Table, taxyear.Columns, sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(taxyear.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(taxyear.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taxyear.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(taxyear.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(taxyear.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taxyear.HouseholdTable,
			Columns: []string{taxyear.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HouseholdIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taxyear.HouseholdTable,
			Columns: []string{taxyear.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.DocumentsTable,
			Columns: []string{taxyear.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.DocumentsTable,
			Columns: []string{taxyear.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.DocumentsTable,
			Columns: []string{taxyear.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChecklistItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.ChecklistItemsTable,
			Columns: []string{taxyear.ChecklistItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChecklistItemsIDs(); len(nodes) > 0 && !_u.mutation.ChecklistItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.ChecklistItemsTable,
			Columns: []string{taxyear.ChecklistItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChecklistItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.ChecklistItemsTable,
			Columns: []string{taxyear.ChecklistItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taxyear.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaxYearUpdateOne is the builder for updating a single TaxYear entity.
type TaxYearUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaxYearMutation
}

// SetHouseholdID sets the "household_id" field.
func (_u *TaxYearUpdateOne) SetHouseholdID(v uuid.UUID) *TaxYearUpdateOne {
	_u.mutation.SetHouseholdID(v)
	return _u
}

// SetNillableHouseholdID sets the "household_id" field if the given value is not nil.
func (_u *TaxYearUpdateOne) SetNillableHouseholdID(v *uuid.UUID) *TaxYearUpdateOne {
	if v != nil {
		_u.SetHouseholdID(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *TaxYearUpdateOne) SetYear(v int) *TaxYearUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *TaxYearUpdateOne) SetNillableYear(v *int) *TaxYearUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *TaxYearUpdateOne) AddYear(v int) *TaxYearUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaxYearUpdateOne) SetStatus(v string) *TaxYearUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaxYearUpdateOne) SetNillableStatus(v *string) *TaxYearUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TaxYearUpdateOne) SetCreatedAt(v time.Time) *TaxYearUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TaxYearUpdateOne) SetNillableCreatedAt(v *time.Time) *TaxYearUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaxYearUpdateOne) SetUpdatedAt(v time.Time) *TaxYearUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetHousehold sets the "household" edge to the Household entity.
func (_u *TaxYearUpdateOne) SetHousehold(v *Household) *TaxYearUpdateOne {
	return _u.SetHouseholdID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *TaxYearUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *TaxYearUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *TaxYearUpdateOne) AddDocuments(v ...*Document) *TaxYearUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddChecklistItemIDs adds the "checklist_items" edge to the ChecklistItem entity by IDs.
func (_u *TaxYearUpdateOne) AddChecklistItemIDs(ids ...uuid.UUID) *TaxYearUpdateOne {
	_u.mutation.AddChecklistItemIDs(ids...)
	return _u
}

// AddChecklistItems adds the "checklist_items" edges to the ChecklistItem entity.
func (_u *TaxYearUpdateOne) AddChecklistItems(v ...*ChecklistItem) *TaxYearUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChecklistItemIDs(ids...)
}

// Mutation returns the TaxYearMutation object of the builder.
func (_u *TaxYearUpdateOne) Mutation() *TaxYearMutation {
	return _u.mutation
}

// ClearHousehold clears the "household" edge to the Household entity.
func (_u *TaxYearUpdateOne) ClearHousehold() *TaxYearUpdateOne {
	_u.mutation.ClearHousehold()
	return _u
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *TaxYearUpdateOne) ClearDocuments() *TaxYearUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *TaxYearUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *TaxYearUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *TaxYearUpdateOne) RemoveDocuments(v ...*Document) *TaxYearUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearChecklistItems clears all "checklist_items" edges to the ChecklistItem entity.
func (_u *TaxYearUpdateOne) ClearChecklistItems() *TaxYearUpdateOne {
	_u.mutation.ClearChecklistItems()
	return _u
}

// RemoveChecklistItemIDs removes the "checklist_items" edge to ChecklistItem entities by IDs.
func (_u *TaxYearUpdateOne) RemoveChecklistItemIDs(ids ...uuid.UUID) *TaxYearUpdateOne {
	_u.mutation.RemoveChecklistItemIDs(ids...)
	return _u
}

// RemoveChecklistItems removes "checklist_items" edges to ChecklistItem entities.
func (_u *TaxYearUpdateOne) RemoveChecklistItems(v ...*ChecklistItem) *TaxYearUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChecklistItemIDs(ids...)
}

// Where appends a list predicates to the TaxYearUpdate builder.
func (_u *TaxYearUpdateOne) Where(ps ...predicate.TaxYear) *TaxYearUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaxYearUpdateOne) Select(field string, fields ...string) *TaxYearUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaxYear entity.
func (_u *TaxYearUpdateOne) Save(ctx context.Context) (*TaxYear, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaxYearUpdateOne) SaveX(ctx context.Context) *TaxYear {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaxYearUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaxYearUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaxYearUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taxyear.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaxYearUpdateOne) check() error {
	if v, ok := _u.mutation.Year(); ok {
		if err := taxyear.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`ent: validator failed for field "TaxYear.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := taxyear.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TaxYear.status": %w`, err)}
		}
	}
	if _u.mutation.HouseholdCleared() && len(_u.mutation.HouseholdIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaxYear.household"`)
	}
	return nil
}

func (_u *TaxYearUpdateOne) sqlSave(ctx context.Context) (_node *TaxYear, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taxyear.Table, taxyear.Columns, sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaxYear.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taxyear.FieldID)
		for _, f := range fields {
			if !taxyear.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taxyear.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(taxyear.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(taxyear.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(taxyear.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(taxyear.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(taxyear.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HouseholdCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taxyear.HouseholdTable,
			Columns: []string{taxyear.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HouseholdIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taxyear.HouseholdTable,
			Columns: []string{taxyear.HouseholdColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(household.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.DocumentsTable,
			Columns: []string{taxyear.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.DocumentsTable,
			Columns: []string{taxyear.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.DocumentsTable,
			Columns: []string{taxyear.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChecklistItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.ChecklistItemsTable,
			Columns: []string{taxyear.ChecklistItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChecklistItemsIDs(); len(nodes) > 0 && !_u.mutation.ChecklistItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.ChecklistItemsTable,
			Columns: []string{taxyear.ChecklistItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChecklistItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   taxyear.ChecklistItemsTable,
			Columns: []string{taxyear.ChecklistItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TaxYear{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taxyear.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
