// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/biblegym/ent/masteryevent"
	"github.com/abhisek/biblegym/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MasteryEventUpdate) SetUserID(v string) *MasteryEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableUserID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *MasteryEventUpdate) ClearUserID() *MasteryEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetReference sets the "reference" field.
func (_u *MasteryEventUpdate) SetReference(v string) *MasteryEventUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableReference(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryEventUpdate) SetLevel(v int) *MasteryEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableLevel(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MasteryEventUpdate) AddLevel(v int) *MasteryEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MasteryEventUpdate) SetAccuracy(v int) *MasteryEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableAccuracy(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MasteryEventUpdate) AddAccuracy(v int) *MasteryEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *MasteryEventUpdate) SetSeconds(v int) *MasteryEventUpdate {
	_u.mutation.ResetSeconds()
	_u.mutation.SetSeconds(v)
	return _u
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSeconds(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetSeconds(*v)
	}
	return _u
}

// AddSeconds adds value to the "seconds" field.
func (_u *MasteryEventUpdate) AddSeconds(v int) *MasteryEventUpdate {
	_u.mutation.AddSeconds(v)
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *MasteryEventUpdate) SetFromLevel(v int) *MasteryEventUpdate {
	_u.mutation.ResetFromLevel()
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableFromLevel(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// AddFromLevel adds value to the "from_level" field.
func (_u *MasteryEventUpdate) AddFromLevel(v int) *MasteryEventUpdate {
	_u.mutation.AddFromLevel(v)
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *MasteryEventUpdate) SetToLevel(v int) *MasteryEventUpdate {
	_u.mutation.ResetToLevel()
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableToLevel(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// AddToLevel adds value to the "to_level" field.
func (_u *MasteryEventUpdate) AddToLevel(v int) *MasteryEventUpdate {
	_u.mutation.AddToLevel(v)
	return _u
}

// SetFromStatus sets the "from_status" field.
func (_u *MasteryEventUpdate) SetFromStatus(v string) *MasteryEventUpdate {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableFromStatus(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *MasteryEventUpdate) SetToStatus(v string) *MasteryEventUpdate {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableToStatus(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdate) SetTrigger(v string) *MasteryEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableTrigger(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := masteryevent.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromStatus(); ok {
		if err := masteryevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToStatus(); ok {
		if err := masteryevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(masteryevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(masteryevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(masteryevent.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(masteryevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(masteryevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(masteryevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(masteryevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeconds(); ok {
		_spec.AddField(masteryevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(masteryevent.FieldFromLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromLevel(); ok {
		_spec.AddField(masteryevent.FieldFromLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(masteryevent.FieldToLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToLevel(); ok {
		_spec.AddField(masteryevent.FieldToLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(masteryevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(masteryevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *MasteryEventUpdateOne) SetUserID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableUserID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *MasteryEventUpdateOne) ClearUserID() *MasteryEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetReference sets the "reference" field.
func (_u *MasteryEventUpdateOne) SetReference(v string) *MasteryEventUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableReference(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryEventUpdateOne) SetLevel(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableLevel(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MasteryEventUpdateOne) AddLevel(v int) *MasteryEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MasteryEventUpdateOne) SetAccuracy(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableAccuracy(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MasteryEventUpdateOne) AddAccuracy(v int) *MasteryEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetSeconds sets the "seconds" field.
func (_u *MasteryEventUpdateOne) SetSeconds(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetSeconds()
	_u.mutation.SetSeconds(v)
	return _u
}

// SetNillableSeconds sets the "seconds" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSeconds(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSeconds(*v)
	}
	return _u
}

// AddSeconds adds value to the "seconds" field.
func (_u *MasteryEventUpdateOne) AddSeconds(v int) *MasteryEventUpdateOne {
	_u.mutation.AddSeconds(v)
	return _u
}

// SetFromLevel sets the "from_level" field.
func (_u *MasteryEventUpdateOne) SetFromLevel(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetFromLevel()
	_u.mutation.SetFromLevel(v)
	return _u
}

// SetNillableFromLevel sets the "from_level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableFromLevel(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetFromLevel(*v)
	}
	return _u
}

// AddFromLevel adds value to the "from_level" field.
func (_u *MasteryEventUpdateOne) AddFromLevel(v int) *MasteryEventUpdateOne {
	_u.mutation.AddFromLevel(v)
	return _u
}

// SetToLevel sets the "to_level" field.
func (_u *MasteryEventUpdateOne) SetToLevel(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetToLevel()
	_u.mutation.SetToLevel(v)
	return _u
}

// SetNillableToLevel sets the "to_level" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableToLevel(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetToLevel(*v)
	}
	return _u
}

// AddToLevel adds value to the "to_level" field.
func (_u *MasteryEventUpdateOne) AddToLevel(v int) *MasteryEventUpdateOne {
	_u.mutation.AddToLevel(v)
	return _u
}

// SetFromStatus sets the "from_status" field.
func (_u *MasteryEventUpdateOne) SetFromStatus(v string) *MasteryEventUpdateOne {
	_u.mutation.SetFromStatus(v)
	return _u
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableFromStatus(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetFromStatus(*v)
	}
	return _u
}

// SetToStatus sets the "to_status" field.
func (_u *MasteryEventUpdateOne) SetToStatus(v string) *MasteryEventUpdateOne {
	_u.mutation.SetToStatus(v)
	return _u
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableToStatus(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetToStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdateOne) SetTrigger(v string) *MasteryEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableTrigger(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.Reference(); ok {
		if err := masteryevent.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromStatus(); ok {
		if err := masteryevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToStatus(); ok {
		if err := masteryevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
		_spec.SetField(masteryevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(masteryevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(masteryevent.FieldReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(masteryevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(masteryevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(masteryevent.FieldAccuracy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Seconds(); ok {
		_spec.SetField(masteryevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeconds(); ok {
		_spec.AddField(masteryevent.FieldSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromLevel(); ok {
		_spec.SetField(masteryevent.FieldFromLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromLevel(); ok {
		_spec.AddField(masteryevent.FieldFromLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToLevel(); ok {
		_spec.SetField(masteryevent.FieldToLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToLevel(); ok {
		_spec.AddField(masteryevent.FieldToLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromStatus(); ok {
		_spec.SetField(masteryevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToStatus(); ok {
		_spec.SetField(masteryevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
