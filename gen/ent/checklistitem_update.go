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
	"github.com/taxflow-app/taxflow/gen/ent/predicate"
	"github.com/taxflow-app/taxflow/gen/ent/taxyear"
)

// ChecklistItemUpdate is the builder for updating ChecklistItem entities.
type ChecklistItemUpdate struct {
	config
	hooks    []Hook
	mutation *ChecklistItemMutation
}

// Where appends a list predicates to the ChecklistItemUpdate builder.
func (_u *ChecklistItemUpdate) Where(ps ...predicate.ChecklistItem) *ChecklistItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaxYearID sets the "tax_year_id" field.
func (_u *ChecklistItemUpdate) SetTaxYearID(v uuid.UUID) *ChecklistItemUpdate {
	_u.mutation.SetTaxYearID(v)
	return _u
}

// SetNillableTaxYearID sets the "tax_year_id" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableTaxYearID(v *uuid.UUID) *ChecklistItemUpdate {
	if v != nil {
		_u.SetTaxYearID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChecklistItemUpdate) SetTitle(v string) *ChecklistItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableTitle(v *string) *ChecklistItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChecklistItemUpdate) SetDescription(v string) *ChecklistItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableDescription(v *string) *ChecklistItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ChecklistItemUpdate) ClearDescription() *ChecklistItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChecklistItemUpdate) SetStatus(v string) *ChecklistItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableStatus(v *string) *ChecklistItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequired sets the "required" field.
func (_u *ChecklistItemUpdate) SetRequired(v bool) *ChecklistItemUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableRequired(v *bool) *ChecklistItemUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ChecklistItemUpdate) SetCategory(v string) *ChecklistItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableCategory(v *string) *ChecklistItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChecklistItemUpdate) SetCreatedAt(v time.Time) *ChecklistItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChecklistItemUpdate) SetNillableCreatedAt(v *time.Time) *ChecklistItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChecklistItemUpdate) SetUpdatedAt(v time.Time) *ChecklistItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTaxYear sets the "tax_year" edge to the TaxYear entity.
func (_u *ChecklistItemUpdate) SetTaxYear(v *TaxYear) *ChecklistItemUpdate {
	return _u.SetTaxYearID(v.ID)
}

// Mutation returns the ChecklistItemMutation object of the builder.
func (_u *ChecklistItemUpdate) Mutation() *ChecklistItemMutation {
	return _u.mutation
}

// ClearTaxYear clears the "tax_year" edge to the TaxYear entity.
func (_u *ChecklistItemUpdate) ClearTaxYear() *ChecklistItemUpdate {
	_u.mutation.ClearTaxYear()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChecklistItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChecklistItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChecklistItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChecklistItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChecklistItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checklistitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChecklistItemUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := checklistitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := checklistitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := checklistitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.category": %w`, err)}
		}
	}
	if _u.mutation.TaxYearCleared() && len(_u.mutation.TaxYearIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChecklistItem.tax_year"`)
	}
	return nil
}

func (_u *ChecklistItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checklistitem.Table, checklistitem.Columns, sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(checklistitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(checklistitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(checklistitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checklistitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(checklistitem.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(checklistitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(checklistitem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checklistitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaxYearCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checklistitem.TaxYearTable,
			Columns: []string{checklistitem.TaxYearColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaxYearIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checklistitem.TaxYearTable,
			Columns: []string{checklistitem.TaxYearColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checklistitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChecklistItemUpdateOne is the builder for updating a single ChecklistItem entity.
type ChecklistItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChecklistItemMutation
}

// SetTaxYearID sets the "tax_year_id" field.
func (_u *ChecklistItemUpdateOne) SetTaxYearID(v uuid.UUID) *ChecklistItemUpdateOne {
	_u.mutation.SetTaxYearID(v)
	return _u
}

// SetNillableTaxYearID sets the "tax_year_id" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableTaxYearID(v *uuid.UUID) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetTaxYearID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChecklistItemUpdateOne) SetTitle(v string) *ChecklistItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableTitle(v *string) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChecklistItemUpdateOne) SetDescription(v string) *ChecklistItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableDescription(v *string) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ChecklistItemUpdateOne) ClearDescription() *ChecklistItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChecklistItemUpdateOne) SetStatus(v string) *ChecklistItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableStatus(v *string) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequired sets the "required" field.
func (_u *ChecklistItemUpdateOne) SetRequired(v bool) *ChecklistItemUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableRequired(v *bool) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ChecklistItemUpdateOne) SetCategory(v string) *ChecklistItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableCategory(v *string) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ChecklistItemUpdateOne) SetCreatedAt(v time.Time) *ChecklistItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ChecklistItemUpdateOne) SetNillableCreatedAt(v *time.Time) *ChecklistItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChecklistItemUpdateOne) SetUpdatedAt(v time.Time) *ChecklistItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTaxYear sets the "tax_year" edge to the TaxYear entity.
func (_u *ChecklistItemUpdateOne) SetTaxYear(v *TaxYear) *ChecklistItemUpdateOne {
	return _u.SetTaxYearID(v.ID)
}

// Mutation returns the ChecklistItemMutation object of the builder.
func (_u *ChecklistItemUpdateOne) Mutation() *ChecklistItemMutation {
	return _u.mutation
}

// ClearTaxYear clears the "tax_year" edge to the TaxYear entity.
func (_u *ChecklistItemUpdateOne) ClearTaxYear() *ChecklistItemUpdateOne {
	_u.mutation.ClearTaxYear()
	return _u
}

// Where appends a list predicates to the ChecklistItemUpdate builder.
func (_u *ChecklistItemUpdateOne) Where(ps ...predicate.ChecklistItem) *ChecklistItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChecklistItemUpdateOne) Select(field string, fields ...string) *ChecklistItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChecklistItem entity.
func (_u *ChecklistItemUpdateOne) Save(ctx context.Context) (*ChecklistItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChecklistItemUpdateOne) SaveX(ctx context.Context) *ChecklistItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChecklistItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChecklistItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChecklistItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := checklistitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChecklistItemUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := checklistitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := checklistitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := checklistitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.category": %w`, err)}
		}
	}
	if _u.mutation.TaxYearCleared() && len(_u.mutation.TaxYearIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChecklistItem.tax_year"`)
	}
	return nil
}

func (_u *ChecklistItemUpdateOne) sqlSave(ctx context.Context) (_node *ChecklistItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checklistitem.Table, checklistitem.Columns, sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChecklistItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checklistitem.FieldID)
		for _, f := range fields {
			if !checklistitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checklistitem.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(checklistitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(checklistitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(checklistitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(checklistitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(checklistitem.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(checklistitem.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(checklistitem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(checklistitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaxYearCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checklistitem.TaxYearTable,
			Columns: []string{checklistitem.TaxYearColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaxYearIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   checklistitem.TaxYearTable,
			Columns: []string{checklistitem.TaxYearColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taxyear.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChecklistItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checklistitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
