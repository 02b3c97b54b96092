// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taxflow-app/taxflow/gen/ent/checklistitem"
	"github.com/taxflow-app/taxflow/gen/ent/predicate"
)

// ChecklistItemDelete is the builder for deleting a ChecklistItem entity.
type ChecklistItemDelete struct {
	config
	hooks    []Hook
	mutation *ChecklistItemMutation
}

// Where appends a list predicates to the ChecklistItemDelete builder.
func (_d *ChecklistItemDelete) Where(ps ...predicate.ChecklistItem) *ChecklistItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChecklistItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChecklistItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChecklistItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(checklistitem.Table, sqlgraph.NewFieldSpec(checklistitem.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChecklistItemDeleteOne is the builder for deleting a single ChecklistItem entity.
type ChecklistItemDeleteOne struct {
	_d *ChecklistItemDelete
}

// Where appends a list predicates to the ChecklistItemDelete builder.
func (_d *ChecklistItemDeleteOne) Where(ps ...predicate.ChecklistItem) *ChecklistItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChecklistItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{checklistitem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChecklistItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
