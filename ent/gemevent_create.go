// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/biblegym/ent/gemevent"
)

// GemEventCreate is the builder for creating a GemEvent entity.
type GemEventCreate struct {
	config
	mutation *GemEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GemEventCreate) SetSequence(v int64) *GemEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GemEventCreate) SetTimestamp(v time.Time) *GemEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GemEventCreate) SetNillableTimestamp(v *time.Time) *GemEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGemType sets the "gem_type" field.
func (_c *GemEventCreate) SetGemType(v string) *GemEventCreate {
	_c.mutation.SetGemType(v)
	return _c
}

// SetRarity sets the "rarity" field.
func (_c *GemEventCreate) SetRarity(v string) *GemEventCreate {
	_c.mutation.SetRarity(v)
	return _c
}

// SetReference sets the "reference" field.
func (_c *GemEventCreate) SetReference(v string) *GemEventCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_c *GemEventCreate) SetNillableReference(v *string) *GemEventCreate {
	if v != nil {
		_c.SetReference(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *GemEventCreate) SetUserID(v string) *GemEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *GemEventCreate) SetNillableUserID(v *string) *GemEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetWorkoutID sets the "workout_id" field.
func (_c *GemEventCreate) SetWorkoutID(v string) *GemEventCreate {
	_c.mutation.SetWorkoutID(v)
	return _c
}

// SetNillableWorkoutID sets the "workout_id" field if the given value is not nil.
func (_c *GemEventCreate) SetNillableWorkoutID(v *string) *GemEventCreate {
	if v != nil {
		_c.SetWorkoutID(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *GemEventCreate) SetReason(v string) *GemEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// Mutation returns the GemEventMutation object of the builder.
func (_c *GemEventCreate) Mutation() *GemEventMutation {
	return _c.mutation
}

// Save creates the GemEvent in the database.
func (_c *GemEventCreate) Save(ctx context.Context) (*GemEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GemEventCreate) SaveX(ctx context.Context) *GemEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GemEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GemEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GemEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gemevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GemEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GemEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GemEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.GemType(); !ok {
		return &ValidationError{Name: "gem_type", err: errors.New(`ent: missing required field "GemEvent.gem_type"`)}
	}
	if v, ok := _c.mutation.GemType(); ok {
		if err := gemevent.GemTypeValidator(v); err != nil {
			return &ValidationError{Name: "gem_type", err: fmt.Errorf(`ent: validator failed for field "GemEvent.gem_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rarity(); !ok {
		return &ValidationError{Name: "rarity", err: errors.New(`ent: missing required field "GemEvent.rarity"`)}
	}
	if v, ok := _c.mutation.Rarity(); ok {
		if err := gemevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "GemEvent.rarity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "GemEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := gemevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "GemEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *GemEventCreate) sqlSave(ctx context.Context) (*GemEvent, error) {
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

func (_c *GemEventCreate) createSpec() (*GemEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GemEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gemevent.Table, sqlgraph.NewFieldSpec(gemevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gemevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gemevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.GemType(); ok {
		_spec.SetField(gemevent.FieldGemType, field.TypeString, value)
		_node.GemType = value
	}
	if value, ok := _c.mutation.Rarity(); ok {
		_spec.SetField(gemevent.FieldRarity, field.TypeString, value)
		_node.Rarity = value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(gemevent.FieldReference, field.TypeString, value)
		_node.Reference = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(gemevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WorkoutID(); ok {
		_spec.SetField(gemevent.FieldWorkoutID, field.TypeString, value)
		_node.WorkoutID = &value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(gemevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// GemEventCreateBulk is the builder for creating many GemEvent entities in bulk.
type GemEventCreateBulk struct {
	config
	err      error
	builders []*GemEventCreate
}

// Save creates the GemEvent entities in the database.
func (_c *GemEventCreateBulk) Save(ctx context.Context) ([]*GemEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GemEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GemEventMutation)
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
func (_c *GemEventCreateBulk) SaveX(ctx context.Context) []*GemEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GemEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GemEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
