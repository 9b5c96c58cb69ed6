// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/biblegym/ent/drillscoreevent"
)

// DrillScoreEventCreate is the builder for creating a DrillScoreEvent entity.
type DrillScoreEventCreate struct {
	config
	mutation *DrillScoreEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *DrillScoreEventCreate) SetSequence(v int64) *DrillScoreEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DrillScoreEventCreate) SetTimestamp(v time.Time) *DrillScoreEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DrillScoreEventCreate) SetNillableTimestamp(v *time.Time) *DrillScoreEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DrillScoreEventCreate) SetUserID(v string) *DrillScoreEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *DrillScoreEventCreate) SetNillableUserID(v *string) *DrillScoreEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetWorkoutID sets the "workout_id" field.
func (_c *DrillScoreEventCreate) SetWorkoutID(v string) *DrillScoreEventCreate {
	_c.mutation.SetWorkoutID(v)
	return _c
}

// SetNillableWorkoutID sets the "workout_id" field if the given value is not nil.
func (_c *DrillScoreEventCreate) SetNillableWorkoutID(v *string) *DrillScoreEventCreate {
	if v != nil {
		_c.SetWorkoutID(*v)
	}
	return _c
}

// SetDrillType sets the "drill_type" field.
func (_c *DrillScoreEventCreate) SetDrillType(v string) *DrillScoreEventCreate {
	_c.mutation.SetDrillType(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *DrillScoreEventCreate) SetScore(v int) *DrillScoreEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAiGenerated sets the "ai_generated" field.
func (_c *DrillScoreEventCreate) SetAiGenerated(v bool) *DrillScoreEventCreate {
	_c.mutation.SetAiGenerated(v)
	return _c
}

// SetNillableAiGenerated sets the "ai_generated" field if the given value is not nil.
func (_c *DrillScoreEventCreate) SetNillableAiGenerated(v *bool) *DrillScoreEventCreate {
	if v != nil {
		_c.SetAiGenerated(*v)
	}
	return _c
}

// SetPractice sets the "practice" field.
func (_c *DrillScoreEventCreate) SetPractice(v map[string]string) *DrillScoreEventCreate {
	_c.mutation.SetPractice(v)
	return _c
}

// Mutation returns the DrillScoreEventMutation object of the builder.
func (_c *DrillScoreEventCreate) Mutation() *DrillScoreEventMutation {
	return _c.mutation
}

// Save creates the DrillScoreEvent in the database.
func (_c *DrillScoreEventCreate) Save(ctx context.Context) (*DrillScoreEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DrillScoreEventCreate) SaveX(ctx context.Context) *DrillScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillScoreEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillScoreEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DrillScoreEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := drillscoreevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AiGenerated(); !ok {
		v := drillscoreevent.DefaultAiGenerated
		_c.mutation.SetAiGenerated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DrillScoreEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "DrillScoreEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DrillScoreEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.DrillType(); !ok {
		return &ValidationError{Name: "drill_type", err: errors.New(`ent: missing required field "DrillScoreEvent.drill_type"`)}
	}
	if v, ok := _c.mutation.DrillType(); ok {
		if err := drillscoreevent.DrillTypeValidator(v); err != nil {
			return &ValidationError{Name: "drill_type", err: fmt.Errorf(`ent: validator failed for field "DrillScoreEvent.drill_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "DrillScoreEvent.score"`)}
	}
	if _, ok := _c.mutation.AiGenerated(); !ok {
		return &ValidationError{Name: "ai_generated", err: errors.New(`ent: missing required field "DrillScoreEvent.ai_generated"`)}
	}
	return nil
}

func (_c *DrillScoreEventCreate) sqlSave(ctx context.Context) (*DrillScoreEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DrillScoreEventCreate) createSpec() (*DrillScoreEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &DrillScoreEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(drillscoreevent.Table, sqlgraph.NewFieldSpec(drillscoreevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(drillscoreevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(drillscoreevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(drillscoreevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WorkoutID(); ok {
		_spec.SetField(drillscoreevent.FieldWorkoutID, field.TypeString, value)
		_node.WorkoutID = value
	}
	if value, ok := _c.mutation.DrillType(); ok {
		_spec.SetField(drillscoreevent.FieldDrillType, field.TypeString, value)
		_node.DrillType = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(drillscoreevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.AiGenerated(); ok {
		_spec.SetField(drillscoreevent.FieldAiGenerated, field.TypeBool, value)
		_node.AiGenerated = value
	}
	if value, ok := _c.mutation.Practice(); ok {
		_spec.SetField(drillscoreevent.FieldPractice, field.TypeJSON, value)
		_node.Practice = value
	}
	return _node, _spec
}

// DrillScoreEventCreateBulk is the builder for creating many DrillScoreEvent entities in bulk.
type DrillScoreEventCreateBulk struct {
	config
	err      error
	builders []*DrillScoreEventCreate
}

// Save creates the DrillScoreEvent entities in the database.
func (_c *DrillScoreEventCreateBulk) Save(ctx context.Context) ([]*DrillScoreEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DrillScoreEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DrillScoreEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *DrillScoreEventCreateBulk) SaveX(ctx context.Context) []*DrillScoreEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DrillScoreEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DrillScoreEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
