// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/biblegym/ent/gemevent"
	"github.com/abhisek/biblegym/ent/predicate"
)

// GemEventUpdate is the builder for updating GemEvent entities.
type GemEventUpdate struct {
	config
	hooks    []Hook
	mutation *GemEventMutation
}

// Where appends a list predicates to the GemEventUpdate builder.
func (_u *GemEventUpdate) Where(ps ...predicate.GemEvent) *GemEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGemType sets the "gem_type" field.
func (_u *GemEventUpdate) SetGemType(v string) *GemEventUpdate {
	_u.mutation.SetGemType(v)
	return _u
}

// SetNillableGemType sets the "gem_type" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableGemType(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetGemType(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *GemEventUpdate) SetRarity(v string) *GemEventUpdate {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableRarity(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *GemEventUpdate) SetReference(v string) *GemEventUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableReference(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *GemEventUpdate) ClearReference() *GemEventUpdate {
	_u.mutation.ClearReference()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GemEventUpdate) SetUserID(v string) *GemEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableUserID(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *GemEventUpdate) ClearUserID() *GemEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetWorkoutID sets the "workout_id" field.
func (_u *GemEventUpdate) SetWorkoutID(v string) *GemEventUpdate {
	_u.mutation.SetWorkoutID(v)
	return _u
}

// SetNillableWorkoutID sets the "workout_id" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableWorkoutID(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetWorkoutID(*v)
	}
	return _u
}

// ClearWorkoutID clears the value of the "workout_id" field.
func (_u *GemEventUpdate) ClearWorkoutID() *GemEventUpdate {
	_u.mutation.ClearWorkoutID()
	return _u
}

// SetReason sets the "reason" field.
func (_u *GemEventUpdate) SetReason(v string) *GemEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *GemEventUpdate) SetNillableReason(v *string) *GemEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the GemEventMutation object of the builder.
func (_u *GemEventUpdate) Mutation() *GemEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GemEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GemEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GemEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GemEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GemEventUpdate) check() error {
	if v, ok := _u.mutation.GemType(); ok {
		if err := gemevent.GemTypeValidator(v); err != nil {
			return &ValidationError{Name: "gem_type", err: fmt.Errorf(`ent: validator failed for field "GemEvent.gem_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := gemevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "GemEvent.rarity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := gemevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "GemEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *GemEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gemevent.Table, gemevent.Columns, sqlgraph.NewFieldSpec(gemevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GemType(); ok {
		_spec.SetField(gemevent.FieldGemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(gemevent.FieldRarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(gemevent.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(gemevent.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(gemevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(gemevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkoutID(); ok {
		_spec.SetField(gemevent.FieldWorkoutID, field.TypeString, value)
	}
	if _u.mutation.WorkoutIDCleared() {
		_spec.ClearField(gemevent.FieldWorkoutID, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(gemevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gemevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GemEventUpdateOne is the builder for updating a single GemEvent entity.
type GemEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GemEventMutation
}

// SetGemType sets the "gem_type" field.
func (_u *GemEventUpdateOne) SetGemType(v string) *GemEventUpdateOne {
	_u.mutation.SetGemType(v)
	return _u
}

// SetNillableGemType sets the "gem_type" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableGemType(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetGemType(*v)
	}
	return _u
}

// SetRarity sets the "rarity" field.
func (_u *GemEventUpdateOne) SetRarity(v string) *GemEventUpdateOne {
	_u.mutation.SetRarity(v)
	return _u
}

// SetNillableRarity sets the "rarity" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableRarity(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetRarity(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *GemEventUpdateOne) SetReference(v string) *GemEventUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableReference(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *GemEventUpdateOne) ClearReference() *GemEventUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GemEventUpdateOne) SetUserID(v string) *GemEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableUserID(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *GemEventUpdateOne) ClearUserID() *GemEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetWorkoutID sets the "workout_id" field.
func (_u *GemEventUpdateOne) SetWorkoutID(v string) *GemEventUpdateOne {
	_u.mutation.SetWorkoutID(v)
	return _u
}

// SetNillableWorkoutID sets the "workout_id" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableWorkoutID(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetWorkoutID(*v)
	}
	return _u
}

// ClearWorkoutID clears the value of the "workout_id" field.
func (_u *GemEventUpdateOne) ClearWorkoutID() *GemEventUpdateOne {
	_u.mutation.ClearWorkoutID()
	return _u
}

// SetReason sets the "reason" field.
func (_u *GemEventUpdateOne) SetReason(v string) *GemEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *GemEventUpdateOne) SetNillableReason(v *string) *GemEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the GemEventMutation object of the builder.
func (_u *GemEventUpdateOne) Mutation() *GemEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GemEventUpdate builder.
func (_u *GemEventUpdateOne) Where(ps ...predicate.GemEvent) *GemEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GemEventUpdateOne) Select(field string, fields ...string) *GemEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GemEvent entity.
func (_u *GemEventUpdateOne) Save(ctx context.Context) (*GemEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GemEventUpdateOne) SaveX(ctx context.Context) *GemEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GemEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GemEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GemEventUpdateOne) check() error {
	if v, ok := _u.mutation.GemType(); ok {
		if err := gemevent.GemTypeValidator(v); err != nil {
			return &ValidationError{Name: "gem_type", err: fmt.Errorf(`ent: validator failed for field "GemEvent.gem_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rarity(); ok {
		if err := gemevent.RarityValidator(v); err != nil {
			return &ValidationError{Name: "rarity", err: fmt.Errorf(`ent: validator failed for field "GemEvent.rarity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := gemevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "GemEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *GemEventUpdateOne) sqlSave(ctx context.Context) (_node *GemEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gemevent.Table, gemevent.Columns, sqlgraph.NewFieldSpec(gemevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GemEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gemevent.FieldID)
		for _, f := range fields {
			if !gemevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gemevent.FieldID {
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
	if value, ok := _u.mutation.GemType(); ok {
		_spec.SetField(gemevent.FieldGemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rarity(); ok {
		_spec.SetField(gemevent.FieldRarity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(gemevent.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(gemevent.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(gemevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(gemevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.WorkoutID(); ok {
		_spec.SetField(gemevent.FieldWorkoutID, field.TypeString, value)
	}
	if _u.mutation.WorkoutIDCleared() {
		_spec.ClearField(gemevent.FieldWorkoutID, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(gemevent.FieldReason, field.TypeString, value)
	}
	_node = &GemEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gemevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
