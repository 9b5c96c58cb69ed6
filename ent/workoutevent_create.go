// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/biblegym/ent/workoutevent"
)

// WorkoutEventCreate is the builder for creating a WorkoutEvent entity.
type WorkoutEventCreate struct {
	config
	mutation *WorkoutEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *WorkoutEventCreate) SetSequence(v int64) *WorkoutEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *WorkoutEventCreate) SetTimestamp(v time.Time) *WorkoutEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *WorkoutEventCreate) SetNillableTimestamp(v *time.Time) *WorkoutEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetWorkoutID sets the "workout_id" field.
func (_c *WorkoutEventCreate) SetWorkoutID(v string) *WorkoutEventCreate {
	_c.mutation.SetWorkoutID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *WorkoutEventCreate) SetUserID(v string) *WorkoutEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *WorkoutEventCreate) SetNillableUserID(v *string) *WorkoutEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *WorkoutEventCreate) SetDate(v string) *WorkoutEventCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTheme sets the "theme" field.
func (_c *WorkoutEventCreate) SetTheme(v string) *WorkoutEventCreate {
	_c.mutation.SetTheme(v)
	return _c
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_c *WorkoutEventCreate) SetNillableTheme(v *string) *WorkoutEventCreate {
	if v != nil {
		_c.SetTheme(*v)
	}
	return _c
}

// SetGroupChallenge sets the "group_challenge" field.
func (_c *WorkoutEventCreate) SetGroupChallenge(v bool) *WorkoutEventCreate {
	_c.mutation.SetGroupChallenge(v)
	return _c
}

// SetNillableGroupChallenge sets the "group_challenge" field if the given value is not nil.
func (_c *WorkoutEventCreate) SetNillableGroupChallenge(v *bool) *WorkoutEventCreate {
	if v != nil {
		_c.SetGroupChallenge(*v)
	}
	return _c
}

// SetMemorizationScore sets the "memorization_score" field.
func (_c *WorkoutEventCreate) SetMemorizationScore(v int) *WorkoutEventCreate {
	_c.mutation.SetMemorizationScore(v)
	return _c
}

// SetContextScore sets the "context_score" field.
func (_c *WorkoutEventCreate) SetContextScore(v int) *WorkoutEventCreate {
	_c.mutation.SetContextScore(v)
	return _c
}

// SetVerseMatchScore sets the "verse_match_score" field.
func (_c *WorkoutEventCreate) SetVerseMatchScore(v int) *WorkoutEventCreate {
	_c.mutation.SetVerseMatchScore(v)
	return _c
}

// SetRearrangeScore sets the "rearrange_score" field.
func (_c *WorkoutEventCreate) SetRearrangeScore(v int) *WorkoutEventCreate {
	_c.mutation.SetRearrangeScore(v)
	return _c
}

// SetNillableRearrangeScore sets the "rearrange_score" field if the given value is not nil.
func (_c *WorkoutEventCreate) SetNillableRearrangeScore(v *int) *WorkoutEventCreate {
	if v != nil {
		_c.SetRearrangeScore(*v)
	}
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *WorkoutEventCreate) SetTotalScore(v int) *WorkoutEventCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetStreak sets the "streak" field.
func (_c *WorkoutEventCreate) SetStreak(v int) *WorkoutEventCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *WorkoutEventCreate) SetNillableStreak(v *int) *WorkoutEventCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// Mutation returns the WorkoutEventMutation object of the builder.
func (_c *WorkoutEventCreate) Mutation() *WorkoutEventMutation {
	return _c.mutation
}

// Save creates the WorkoutEvent in the database.
func (_c *WorkoutEventCreate) Save(ctx context.Context) (*WorkoutEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkoutEventCreate) SaveX(ctx context.Context) *WorkoutEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkoutEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkoutEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkoutEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := workoutevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.GroupChallenge(); !ok {
		v := workoutevent.DefaultGroupChallenge
		_c.mutation.SetGroupChallenge(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := workoutevent.DefaultStreak
		_c.mutation.SetStreak(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkoutEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "WorkoutEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "WorkoutEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.WorkoutID(); !ok {
		return &ValidationError{Name: "workout_id", err: errors.New(`ent: missing required field "WorkoutEvent.workout_id"`)}
	}
	if v, ok := _c.mutation.WorkoutID(); ok {
		if err := workoutevent.WorkoutIDValidator(v); err != nil {
			return &ValidationError{Name: "workout_id", err: fmt.Errorf(`ent: validator failed for field "WorkoutEvent.workout_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "WorkoutEvent.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := workoutevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "WorkoutEvent.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GroupChallenge(); !ok {
		return &ValidationError{Name: "group_challenge", err: errors.New(`ent: missing required field "WorkoutEvent.group_challenge"`)}
	}
	if _, ok := _c.mutation.MemorizationScore(); !ok {
		return &ValidationError{Name: "memorization_score", err: errors.New(`ent: missing required field "WorkoutEvent.memorization_score"`)}
	}
	if _, ok := _c.mutation.ContextScore(); !ok {
		return &ValidationError{Name: "context_score", err: errors.New(`ent: missing required field "WorkoutEvent.context_score"`)}
	}
	if _, ok := _c.mutation.VerseMatchScore(); !ok {
		return &ValidationError{Name: "verse_match_score", err: errors.New(`ent: missing required field "WorkoutEvent.verse_match_score"`)}
	}
	if _, ok := _c.mutation.TotalScore(); !ok {
		return &ValidationError{Name: "total_score", err: errors.New(`ent: missing required field "WorkoutEvent.total_score"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "WorkoutEvent.streak"`)}
	}
	return nil
}

func (_c *WorkoutEventCreate) sqlSave(ctx context.Context) (*WorkoutEvent, error) {
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

func (_c *WorkoutEventCreate) createSpec() (*WorkoutEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkoutEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workoutevent.Table, sqlgraph.NewFieldSpec(workoutevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(workoutevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(workoutevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.WorkoutID(); ok {
		_spec.SetField(workoutevent.FieldWorkoutID, field.TypeString, value)
		_node.WorkoutID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(workoutevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(workoutevent.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Theme(); ok {
		_spec.SetField(workoutevent.FieldTheme, field.TypeString, value)
		_node.Theme = value
	}
	if value, ok := _c.mutation.GroupChallenge(); ok {
		_spec.SetField(workoutevent.FieldGroupChallenge, field.TypeBool, value)
		_node.GroupChallenge = value
	}
	if value, ok := _c.mutation.MemorizationScore(); ok {
		_spec.SetField(workoutevent.FieldMemorizationScore, field.TypeInt, value)
		_node.MemorizationScore = value
	}
	if value, ok := _c.mutation.ContextScore(); ok {
		_spec.SetField(workoutevent.FieldContextScore, field.TypeInt, value)
		_node.ContextScore = value
	}
	if value, ok := _c.mutation.VerseMatchScore(); ok {
		_spec.SetField(workoutevent.FieldVerseMatchScore, field.TypeInt, value)
		_node.VerseMatchScore = value
	}
	if value, ok := _c.mutation.RearrangeScore(); ok {
		_spec.SetField(workoutevent.FieldRearrangeScore, field.TypeInt, value)
		_node.RearrangeScore = &value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(workoutevent.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(workoutevent.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	return _node, _spec
}

// WorkoutEventCreateBulk is the builder for creating many WorkoutEvent entities in bulk.
type WorkoutEventCreateBulk struct {
	config
	err      error
	builders []*WorkoutEventCreate
}

// Save creates the WorkoutEvent entities in the database.
func (_c *WorkoutEventCreateBulk) Save(ctx context.Context) ([]*WorkoutEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkoutEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkoutEventMutation)
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
func (_c *WorkoutEventCreateBulk) SaveX(ctx context.Context) []*WorkoutEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkoutEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkoutEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
