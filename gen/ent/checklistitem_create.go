// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/taxflow-app/taxflow/gen/ent/checklistitem"
	"github.com/taxflow-app/taxflow/gen/ent/taxyear"
)

// ChecklistItemCreate is the builder for creating a ChecklistItem entity.
type ChecklistItemCreate struct {
	config
	mutation *ChecklistItemMutation
	hooks    []Hook
}

// SetTaxYearID sets the "tax_year_id" field.
func (_c *ChecklistItemCreate) SetTaxYearID(v uuid.UUID) *ChecklistItemCreate {
	_c.mutation.SetTaxYearID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ChecklistItemCreate) SetTitle(v string) *ChecklistItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ChecklistItemCreate) SetDescription(v string) *ChecklistItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableDescription(v *string) *ChecklistItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChecklistItemCreate) SetStatus(v string) *ChecklistItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableStatus(v *string) *ChecklistItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequired sets the "required" field.
func (_c *ChecklistItemCreate) SetRequired(v bool) *ChecklistItemCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableRequired(v *bool) *ChecklistItemCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ChecklistItemCreate) SetCategory(v string) *ChecklistItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableCategory(v *string) *ChecklistItemCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChecklistItemCreate) SetCreatedAt(v time.Time) *ChecklistItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableCreatedAt(v *time.Time) *ChecklistItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChecklistItemCreate) SetUpdatedAt(v time.Time) *ChecklistItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableUpdatedAt(v *time.Time) *ChecklistItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChecklistItemCreate) SetID(v uuid.UUID) *ChecklistItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChecklistItemCreate) SetNillableID(v *uuid.UUID) *ChecklistItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTaxYear sets the "tax_year" edge to the TaxYear entity.
func (_c *ChecklistItemCreate) SetTaxYear(v *TaxYear) *ChecklistItemCreate {
	return _c.SetTaxYearID(v.ID)
}

// Mutation returns the ChecklistItemMutation object of the builder.
func (_c *ChecklistItemCreate) Mutation() *ChecklistItemMutation {
	return _c.mutation
}

// Save creates the ChecklistItem in the database.
func (_c *ChecklistItemCreate) Save(ctx context.Context) (*ChecklistItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChecklistItemCreate) SaveX(ctx context.Context) *ChecklistItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChecklistItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChecklistItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChecklistItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := checklistitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Required(); !ok {
		v := checklistitem.DefaultRequired
		_c.mutation.SetRequired(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := checklistitem.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := checklistitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := checklistitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := checklistitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChecklistItemCreate) check() error {
	if _, ok := _c.mutation.TaxYearID(); !ok {
		return &ValidationError{Name: "tax_year_id", err: errors.New(`ent: missing required field "ChecklistItem.tax_year_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ChecklistItem.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := checklistitem.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ChecklistItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := checklistitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "ChecklistItem.required"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ChecklistItem.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := checklistitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ChecklistItem.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChecklistItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChecklistItem.updated_at"`)}
	}
	if len(_c.mutation.TaxYearIDs()) == 0 {
		return &ValidationError{Name: "tax_year", err: errors.New(`ent: missing required edge "ChecklistItem.tax_year"`)}
	}
	return nil
}

func (_c *ChecklistItemCreate) sqlSave(ctx context.Context) (*ChecklistItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChecklistItemCreate) createSpec() (*ChecklistItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ChecklistItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checklistitem.Table, sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(checklistitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(checklistitem.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(checklistitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(checklistitem.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(checklistitem.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(checklistitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(checklistitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaxYearIDs(); len(nodes) > 0 {
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
		_node.TaxYearID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChecklistItemCreateBulk is the builder for creating many ChecklistItem entities in bulk.
type ChecklistItemCreateBulk struct {
	config
	err      error
	builders []*ChecklistItemCreate
}

// Save creates the ChecklistItem entities in the database.
func (_c *ChecklistItemCreateBulk) Save(ctx context.Context) ([]*ChecklistItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChecklistItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChecklistItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChecklistItemCreateBulk) SaveX(ctx context.Context) []*ChecklistItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChecklistItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChecklistItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
