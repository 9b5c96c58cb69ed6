// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/biblegym/ent/predicate"
	"github.com/abhisek/biblegym/ent/workoutevent"
)

// WorkoutEventUpdate is the builder for updating WorkoutEvent entities.
type WorkoutEventUpdate struct {
	config
	hooks    []Hook
	mutation *WorkoutEventMutation
}

// Where appends a list predicates to the WorkoutEventUpdate builder.
func (_u *WorkoutEventUpdate) Where(ps ...predicate.WorkoutEvent) *WorkoutEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkoutID sets the "workout_id" field.
func (_u *WorkoutEventUpdate) SetWorkoutID(v string) *WorkoutEventUpdate {
	_u.mutation.SetWorkoutID(v)
	return _u
}

// SetNillableWorkoutID sets the "workout_id" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableWorkoutID(v *string) *WorkoutEventUpdate {
	if v != nil {
		_u.SetWorkoutID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WorkoutEventUpdate) SetUserID(v string) *WorkoutEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableUserID(v *string) *WorkoutEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *WorkoutEventUpdate) ClearUserID() *WorkoutEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetDate sets the "date" field.
func (_u *WorkoutEventUpdate) SetDate(v string) *WorkoutEventUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableDate(v *string) *WorkoutEventUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *WorkoutEventUpdate) SetTheme(v string) *WorkoutEventUpdate {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableTheme(v *string) *WorkoutEventUpdate {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *WorkoutEventUpdate) ClearTheme() *WorkoutEventUpdate {
	_u.mutation.ClearTheme()
	return _u
}

// SetGroupChallenge sets the "group_challenge" field.
func (_u *WorkoutEventUpdate) SetGroupChallenge(v bool) *WorkoutEventUpdate {
	_u.mutation.SetGroupChallenge(v)
	return _u
}

// SetNillableGroupChallenge sets the "group_challenge" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableGroupChallenge(v *bool) *WorkoutEventUpdate {
	if v != nil {
		_u.SetGroupChallenge(*v)
	}
	return _u
}

// SetMemorizationScore sets the "memorization_score" field.
func (_u *WorkoutEventUpdate) SetMemorizationScore(v int) *WorkoutEventUpdate {
	_u.mutation.ResetMemorizationScore()
	_u.mutation.SetMemorizationScore(v)
	return _u
}

// SetNillableMemorizationScore sets the "memorization_score" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableMemorizationScore(v *int) *WorkoutEventUpdate {
	if v != nil {
		_u.SetMemorizationScore(*v)
	}
	return _u
}

// AddMemorizationScore adds value to the "memorization_score" field.
func (_u *WorkoutEventUpdate) AddMemorizationScore(v int) *WorkoutEventUpdate {
	_u.mutation.AddMemorizationScore(v)
	return _u
}

// SetContextScore sets the "context_score" field.
func (_u *WorkoutEventUpdate) SetContextScore(v int) *WorkoutEventUpdate {
	_u.mutation.ResetContextScore()
	_u.mutation.SetContextScore(v)
	return _u
}

// SetNillableContextScore sets the "context_score" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableContextScore(v *int) *WorkoutEventUpdate {
	if v != nil {
		_u.SetContextScore(*v)
	}
	return _u
}

// AddContextScore adds value to the "context_score" field.
func (_u *WorkoutEventUpdate) AddContextScore(v int) *WorkoutEventUpdate {
	_u.mutation.AddContextScore(v)
	return _u
}

// SetVerseMatchScore sets the "verse_match_score" field.
func (_u *WorkoutEventUpdate) SetVerseMatchScore(v int) *WorkoutEventUpdate {
	_u.mutation.ResetVerseMatchScore()
	_u.mutation.SetVerseMatchScore(v)
	return _u
}

// SetNillableVerseMatchScore sets the "verse_match_score" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableVerseMatchScore(v *int) *WorkoutEventUpdate {
	if v != nil {
		_u.SetVerseMatchScore(*v)
	}
	return _u
}

// AddVerseMatchScore adds value to the "verse_match_score" field.
func (_u *WorkoutEventUpdate) AddVerseMatchScore(v int) *WorkoutEventUpdate {
	_u.mutation.AddVerseMatchScore(v)
	return _u
}

// SetRearrangeScore sets the "rearrange_score" field.
func (_u *WorkoutEventUpdate) SetRearrangeScore(v int) *WorkoutEventUpdate {
	_u.mutation.ResetRearrangeScore()
	_u.mutation.SetRearrangeScore(v)
	return _u
}

// SetNillableRearrangeScore sets the "rearrange_score" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableRearrangeScore(v *int) *WorkoutEventUpdate {
	if v != nil {
		_u.SetRearrangeScore(*v)
	}
	return _u
}

// AddRearrangeScore adds value to the "rearrange_score" field.
func (_u *WorkoutEventUpdate) AddRearrangeScore(v int) *WorkoutEventUpdate {
	_u.mutation.AddRearrangeScore(v)
	return _u
}

// ClearRearrangeScore clears the value of the "rearrange_score" field.
func (_u *WorkoutEventUpdate) ClearRearrangeScore() *WorkoutEventUpdate {
	_u.mutation.ClearRearrangeScore()
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *WorkoutEventUpdate) SetTotalScore(v int) *WorkoutEventUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableTotalScore(v *int) *WorkoutEventUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *WorkoutEventUpdate) AddTotalScore(v int) *WorkoutEventUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *WorkoutEventUpdate) SetStreak(v int) *WorkoutEventUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *WorkoutEventUpdate) SetNillableStreak(v *int) *WorkoutEventUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *WorkoutEventUpdate) AddStreak(v int) *WorkoutEventUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// Mutation returns the WorkoutEventMutation object of the builder.
func (_u *WorkoutEventUpdate) Mutation() *WorkoutEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkoutEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkoutEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkoutEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkoutEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkoutEventUpdate) check() error {
	if v, ok := _u.mutation.WorkoutID(); ok {
		if err := workoutevent.WorkoutIDValidator(v); err != nil {
			return &ValidationError{Name: "workout_id", err: fmt.Errorf(`ent: validator failed for field "WorkoutEvent.workout_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := workoutevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "WorkoutEvent.date": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkoutEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workoutevent.Table, workoutevent.Columns, sqlgraph.NewFieldSpec(workoutevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkoutID(); ok {
		_spec.SetField(workoutevent.FieldWorkoutID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workoutevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(workoutevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(workoutevent.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(workoutevent.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(workoutevent.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.GroupChallenge(); ok {
		_spec.SetField(workoutevent.FieldGroupChallenge, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MemorizationScore(); ok {
		_spec.SetField(workoutevent.FieldMemorizationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemorizationScore(); ok {
		_spec.AddField(workoutevent.FieldMemorizationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContextScore(); ok {
		_spec.SetField(workoutevent.FieldContextScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContextScore(); ok {
		_spec.AddField(workoutevent.FieldContextScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerseMatchScore(); ok {
		_spec.SetField(workoutevent.FieldVerseMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerseMatchScore(); ok {
		_spec.AddField(workoutevent.FieldVerseMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RearrangeScore(); ok {
		_spec.SetField(workoutevent.FieldRearrangeScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRearrangeScore(); ok {
		_spec.AddField(workoutevent.FieldRearrangeScore, field.TypeInt, value)
	}
	if _u.mutation.RearrangeScoreCleared() {
		_spec.ClearField(workoutevent.FieldRearrangeScore, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(workoutevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(workoutevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(workoutevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(workoutevent.FieldStreak, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workoutevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkoutEventUpdateOne is the builder for updating a single WorkoutEvent entity.
type WorkoutEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkoutEventMutation
}

// SetWorkoutID sets the "workout_id" field.
func (_u *WorkoutEventUpdateOne) SetWorkoutID(v string) *WorkoutEventUpdateOne {
	_u.mutation.SetWorkoutID(v)
	return _u
}

// SetNillableWorkoutID sets the "workout_id" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableWorkoutID(v *string) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetWorkoutID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WorkoutEventUpdateOne) SetUserID(v string) *WorkoutEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableUserID(v *string) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *WorkoutEventUpdateOne) ClearUserID() *WorkoutEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetDate sets the "date" field.
func (_u *WorkoutEventUpdateOne) SetDate(v string) *WorkoutEventUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableDate(v *string) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTheme sets the "theme" field.
func (_u *WorkoutEventUpdateOne) SetTheme(v string) *WorkoutEventUpdateOne {
	_u.mutation.SetTheme(v)
	return _u
}

// SetNillableTheme sets the "theme" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableTheme(v *string) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetTheme(*v)
	}
	return _u
}

// ClearTheme clears the value of the "theme" field.
func (_u *WorkoutEventUpdateOne) ClearTheme() *WorkoutEventUpdateOne {
	_u.mutation.ClearTheme()
	return _u
}

// SetGroupChallenge sets the "group_challenge" field.
func (_u *WorkoutEventUpdateOne) SetGroupChallenge(v bool) *WorkoutEventUpdateOne {
	_u.mutation.SetGroupChallenge(v)
	return _u
}

// SetNillableGroupChallenge sets the "group_challenge" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableGroupChallenge(v *bool) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetGroupChallenge(*v)
	}
	return _u
}

// SetMemorizationScore sets the "memorization_score" field.
func (_u *WorkoutEventUpdateOne) SetMemorizationScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.ResetMemorizationScore()
	_u.mutation.SetMemorizationScore(v)
	return _u
}

// SetNillableMemorizationScore sets the "memorization_score" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableMemorizationScore(v *int) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetMemorizationScore(*v)
	}
	return _u
}

// AddMemorizationScore adds value to the "memorization_score" field.
func (_u *WorkoutEventUpdateOne) AddMemorizationScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.AddMemorizationScore(v)
	return _u
}

// SetContextScore sets the "context_score" field.
func (_u *WorkoutEventUpdateOne) SetContextScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.ResetContextScore()
	_u.mutation.SetContextScore(v)
	return _u
}

// SetNillableContextScore sets the "context_score" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableContextScore(v *int) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetContextScore(*v)
	}
	return _u
}

// AddContextScore adds value to the "context_score" field.
func (_u *WorkoutEventUpdateOne) AddContextScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.AddContextScore(v)
	return _u
}

// SetVerseMatchScore sets the "verse_match_score" field.
func (_u *WorkoutEventUpdateOne) SetVerseMatchScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.ResetVerseMatchScore()
	_u.mutation.SetVerseMatchScore(v)
	return _u
}

// SetNillableVerseMatchScore sets the "verse_match_score" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableVerseMatchScore(v *int) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetVerseMatchScore(*v)
	}
	return _u
}

// AddVerseMatchScore adds value to the "verse_match_score" field.
func (_u *WorkoutEventUpdateOne) AddVerseMatchScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.AddVerseMatchScore(v)
	return _u
}

// SetRearrangeScore sets the "rearrange_score" field.
func (_u *WorkoutEventUpdateOne) SetRearrangeScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.ResetRearrangeScore()
	_u.mutation.SetRearrangeScore(v)
	return _u
}

// SetNillableRearrangeScore sets the "rearrange_score" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableRearrangeScore(v *int) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetRearrangeScore(*v)
	}
	return _u
}

// AddRearrangeScore adds value to the "rearrange_score" field.
func (_u *WorkoutEventUpdateOne) AddRearrangeScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.AddRearrangeScore(v)
	return _u
}

// ClearRearrangeScore clears the value of the "rearrange_score" field.
func (_u *WorkoutEventUpdateOne) ClearRearrangeScore() *WorkoutEventUpdateOne {
	_u.mutation.ClearRearrangeScore()
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *WorkoutEventUpdateOne) SetTotalScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableTotalScore(v *int) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *WorkoutEventUpdateOne) AddTotalScore(v int) *WorkoutEventUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *WorkoutEventUpdateOne) SetStreak(v int) *WorkoutEventUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *WorkoutEventUpdateOne) SetNillableStreak(v *int) *WorkoutEventUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *WorkoutEventUpdateOne) AddStreak(v int) *WorkoutEventUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// Mutation returns the WorkoutEventMutation object of the builder.
func (_u *WorkoutEventUpdateOne) Mutation() *WorkoutEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkoutEventUpdate builder.
func (_u *WorkoutEventUpdateOne) Where(ps ...predicate.WorkoutEvent) *WorkoutEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkoutEventUpdateOne) Select(field string, fields ...string) *WorkoutEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkoutEvent entity.
func (_u *WorkoutEventUpdateOne) Save(ctx context.Context) (*WorkoutEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkoutEventUpdateOne) SaveX(ctx context.Context) *WorkoutEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkoutEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkoutEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkoutEventUpdateOne) check() error {
	if v, ok := _u.mutation.WorkoutID(); ok {
		if err := workoutevent.WorkoutIDValidator(v); err != nil {
			return &ValidationError{Name: "workout_id", err: fmt.Errorf(`ent: validator failed for field "WorkoutEvent.workout_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := workoutevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "WorkoutEvent.date": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkoutEventUpdateOne) sqlSave(ctx context.Context) (_node *WorkoutEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workoutevent.Table, workoutevent.Columns, sqlgraph.NewFieldSpec(workoutevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkoutEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workoutevent.FieldID)
		for _, f := range fields {
			if !workoutevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workoutevent.FieldID {
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
	if value, ok := _u.mutation.WorkoutID(); ok {
		_spec.SetField(workoutevent.FieldWorkoutID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(workoutevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(workoutevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(workoutevent.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theme(); ok {
		_spec.SetField(workoutevent.FieldTheme, field.TypeString, value)
	}
	if _u.mutation.ThemeCleared() {
		_spec.ClearField(workoutevent.FieldTheme, field.TypeString)
	}
	if value, ok := _u.mutation.GroupChallenge(); ok {
		_spec.SetField(workoutevent.FieldGroupChallenge, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MemorizationScore(); ok {
		_spec.SetField(workoutevent.FieldMemorizationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemorizationScore(); ok {
		_spec.AddField(workoutevent.FieldMemorizationScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContextScore(); ok {
		_spec.SetField(workoutevent.FieldContextScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContextScore(); ok {
		_spec.AddField(workoutevent.FieldContextScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerseMatchScore(); ok {
		_spec.SetField(workoutevent.FieldVerseMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerseMatchScore(); ok {
		_spec.AddField(workoutevent.FieldVerseMatchScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RearrangeScore(); ok {
		_spec.SetField(workoutevent.FieldRearrangeScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRearrangeScore(); ok {
		_spec.AddField(workoutevent.FieldRearrangeScore, field.TypeInt, value)
	}
	if _u.mutation.RearrangeScoreCleared() {
		_spec.ClearField(workoutevent.FieldRearrangeScore, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(workoutevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(workoutevent.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(workoutevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(workoutevent.FieldStreak, field.TypeInt, value)
	}
	_node = &WorkoutEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workoutevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
