// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/biblegym/ent/drillscoreevent"
	"github.com/abhisek/biblegym/ent/predicate"
)

// DrillScoreEventDelete is the builder for deleting a DrillScoreEvent entity.
type DrillScoreEventDelete struct {
	config
	hooks    []Hook
	mutation *DrillScoreEventMutation
}

// Where appends a list predicates to the DrillScoreEventDelete builder.
func (_d *DrillScoreEventDelete) Where(ps ...predicate.DrillScoreEvent) *DrillScoreEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DrillScoreEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DrillScoreEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DrillScoreEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(drillscoreevent.Table, sqlgraph.NewFieldSpec(drillscoreevent.FieldID, field.TypeInt))
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

// DrillScoreEventDeleteOne is the builder for deleting a single DrillScoreEvent entity.
type DrillScoreEventDeleteOne struct {
	_d *DrillScoreEventDelete
}

// Where appends a list predicates to the DrillScoreEventDelete builder.
func (_d *DrillScoreEventDeleteOne) Where(ps ...predicate.DrillScoreEvent) *DrillScoreEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DrillScoreEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{drillscoreevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DrillScoreEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
