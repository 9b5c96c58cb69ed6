// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/biblegym/ent/drillscoreevent"
	"github.com/abhisek/biblegym/ent/predicate"
)

// DrillScoreEventUpdate is the builder for updating DrillScoreEvent entities.
type DrillScoreEventUpdate struct {
	config
	hooks    []Hook
	mutation *DrillScoreEventMutation
}

// Where appends a list predicates to the DrillScoreEventUpdate builder.
func (_u *DrillScoreEventUpdate) Where(ps ...predicate.DrillScoreEvent) *DrillScoreEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DrillScoreEventUpdate) SetUserID(v string) *DrillScoreEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DrillScoreEventUpdate) SetNillableUserID(v *string) *DrillScoreEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DrillScoreEventUpdate) ClearUserID() *DrillScoreEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetWorkoutID sets the "workout_id" field.
func (_u *DrillScoreEventUpdate) SetWorkoutID(v string) *DrillScoreEventUpdate {
	_u.mutation.SetWorkoutID(v)
	return _u
}

// SetNillableWorkoutID sets the "workout_id" field if the given value is not nil.
func (_u *DrillScoreEventUpdate) SetNillableWorkoutID(v *string) *DrillScoreEventUpdate {
	if v != nil {
		_u.SetWorkoutID(*v)
	}
	return _u
}

// ClearWorkoutID clears the value of the "workout_id" field.
func (_u *DrillScoreEventUpdate) ClearWorkoutID() *DrillScoreEventUpdate {
	_u.mutation.ClearWorkoutID()
	return _u
}

// SetDrillType sets the "drill_type" field.
func (_u *DrillScoreEventUpdate) SetDrillType(v string) *DrillScoreEventUpdate {
	_u.mutation.SetDrillType(v)
	return _u
}

// SetNillableDrillType sets the "drill_type" field if the given value is not nil.
func (_u *DrillScoreEventUpdate) SetNillableDrillType(v *string) *DrillScoreEventUpdate {
	if v != nil {
		_u.SetDrillType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DrillScoreEventUpdate) SetScore(v int) *DrillScoreEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DrillScoreEventUpdate) SetNillableScore(v *int) *DrillScoreEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DrillScoreEventUpdate) AddScore(v int) *DrillScoreEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAiGenerated sets the "ai_generated" field.
func (_u *DrillScoreEventUpdate) SetAiGenerated(v bool) *DrillScoreEventUpdate {
	_u.mutation.SetAiGenerated(v)
	return _u
}

// SetNillableAiGenerated sets the "ai_generated" field if the given value is not nil.
func (_u *DrillScoreEventUpdate) SetNillableAiGenerated(v *bool) *DrillScoreEventUpdate {
	if v != nil {
		_u.SetAiGenerated(*v)
	}
	return _u
}

// SetPractice sets the "practice" field.
func (_u *DrillScoreEventUpdate) SetPractice(v map[string]string) *DrillScoreEventUpdate {
	_u.mutation.SetPractice(v)
	return _u
}

// ClearPractice clears the value of the "practice" field.
func (_u *DrillScoreEventUpdate) ClearPractice() *DrillScoreEventUpdate {
	_u.mutation.ClearPractice()
	return _u
}

// Mutation returns the DrillScoreEventMutation object of the builder.
func (_u *DrillScoreEventUpdate) Mutation() *DrillScoreEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillScoreEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillScoreEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillScoreEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillScoreEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillScoreEventUpdate) check() error {
	if v, ok := _u.mutation.DrillType(); ok {
		if err := drillscoreevent.DrillTypeValidator(v); err != nil {
			return &ValidationError{Name: "drill_type", err: fmt.Errorf(`ent: validator failed for field "DrillScoreEvent.drill_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillScoreEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillscoreevent.Table, drillscoreevent.Columns, sqlgraph.NewFieldSpec(drillscoreevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(drillscoreevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(drillscoreevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkoutID(); ok {
		_spec.SetField(drillscoreevent.FieldWorkoutID, field.TypeString, value)
	}
	if _u.mutation.WorkoutIDCleared() {
		_spec.ClearField(drillscoreevent.FieldWorkoutID, field.TypeString)
	}
	if value, ok := _u.mutation.DrillType(); ok {
		_spec.SetField(drillscoreevent.FieldDrillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(drillscoreevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(drillscoreevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiGenerated(); ok {
		_spec.SetField(drillscoreevent.FieldAiGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Practice(); ok {
		_spec.SetField(drillscoreevent.FieldPractice, field.TypeJSON, value)
	}
	if _u.mutation.PracticeCleared() {
		_spec.ClearField(drillscoreevent.FieldPractice, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillscoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillScoreEventUpdateOne is the builder for updating a single DrillScoreEvent entity.
type DrillScoreEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillScoreEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *DrillScoreEventUpdateOne) SetUserID(v string) *DrillScoreEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DrillScoreEventUpdateOne) SetNillableUserID(v *string) *DrillScoreEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DrillScoreEventUpdateOne) ClearUserID() *DrillScoreEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetWorkoutID sets the "workout_id" field.
func (_u *DrillScoreEventUpdateOne) SetWorkoutID(v string) *DrillScoreEventUpdateOne {
	_u.mutation.SetWorkoutID(v)
	return _u
}

// SetNillableWorkoutID sets the "workout_id" field if the given value is not nil.
func (_u *DrillScoreEventUpdateOne) SetNillableWorkoutID(v *string) *DrillScoreEventUpdateOne {
	if v != nil {
		_u.SetWorkoutID(*v)
	}
	return _u
}

// ClearWorkoutID clears the value of the "workout_id" field.
func (_u *DrillScoreEventUpdateOne) ClearWorkoutID() *DrillScoreEventUpdateOne {
	_u.mutation.ClearWorkoutID()
	return _u
}

// SetDrillType sets the "drill_type" field.
func (_u *DrillScoreEventUpdateOne) SetDrillType(v string) *DrillScoreEventUpdateOne {
	_u.mutation.SetDrillType(v)
	return _u
}

// SetNillableDrillType sets the "drill_type" field if the given value is not nil.
func (_u *DrillScoreEventUpdateOne) SetNillableDrillType(v *string) *DrillScoreEventUpdateOne {
	if v != nil {
		_u.SetDrillType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DrillScoreEventUpdateOne) SetScore(v int) *DrillScoreEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DrillScoreEventUpdateOne) SetNillableScore(v *int) *DrillScoreEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DrillScoreEventUpdateOne) AddScore(v int) *DrillScoreEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAiGenerated sets the "ai_generated" field.
func (_u *DrillScoreEventUpdateOne) SetAiGenerated(v bool) *DrillScoreEventUpdateOne {
	_u.mutation.SetAiGenerated(v)
	return _u
}

// SetNillableAiGenerated sets the "ai_generated" field if the given value is not nil.
func (_u *DrillScoreEventUpdateOne) SetNillableAiGenerated(v *bool) *DrillScoreEventUpdateOne {
	if v != nil {
		_u.SetAiGenerated(*v)
	}
	return _u
}

// SetPractice sets the "practice" field.
func (_u *DrillScoreEventUpdateOne) SetPractice(v map[string]string) *DrillScoreEventUpdateOne {
	_u.mutation.SetPractice(v)
	return _u
}

// ClearPractice clears the value of the "practice" field.
func (_u *DrillScoreEventUpdateOne) ClearPractice() *DrillScoreEventUpdateOne {
	_u.mutation.ClearPractice()
	return _u
}

// Mutation returns the DrillScoreEventMutation object of the builder.
func (_u *DrillScoreEventUpdateOne) Mutation() *DrillScoreEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillScoreEventUpdate builder.
func (_u *DrillScoreEventUpdateOne) Where(ps ...predicate.DrillScoreEvent) *DrillScoreEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillScoreEventUpdateOne) Select(field string, fields ...string) *DrillScoreEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DrillScoreEvent entity.
func (_u *DrillScoreEventUpdateOne) Save(ctx context.Context) (*DrillScoreEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillScoreEventUpdateOne) SaveX(ctx context.Context) *DrillScoreEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillScoreEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillScoreEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillScoreEventUpdateOne) check() error {
	if v, ok := _u.mutation.DrillType(); ok {
		if err := drillscoreevent.DrillTypeValidator(v); err != nil {
			return &ValidationError{Name: "drill_type", err: fmt.Errorf(`ent: validator failed for field "DrillScoreEvent.drill_type": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillScoreEventUpdateOne) sqlSave(ctx context.Context) (_node *DrillScoreEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillscoreevent.Table, drillscoreevent.Columns, sqlgraph.NewFieldSpec(drillscoreevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DrillScoreEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drillscoreevent.FieldID)
		for _, f := range fields {
			if !drillscoreevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drillscoreevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(drillscoreevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(drillscoreevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkoutID(); ok {
		_spec.SetField(drillscoreevent.FieldWorkoutID, field.TypeString, value)
	}
	if _u.mutation.WorkoutIDCleared() {
		_spec.ClearField(drillscoreevent.FieldWorkoutID, field.TypeString)
	}
	if value, ok := _u.mutation.DrillType(); ok {
		_spec.SetField(drillscoreevent.FieldDrillType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(drillscoreevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(drillscoreevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AiGenerated(); ok {
		_spec.SetField(drillscoreevent.FieldAiGenerated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Practice(); ok {
		_spec.SetField(drillscoreevent.FieldPractice, field.TypeJSON, value)
	}
	if _u.mutation.PracticeCleared() {
		_spec.ClearField(drillscoreevent.FieldPractice, field.TypeJSON)
	}
	_node = &DrillScoreEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillscoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
