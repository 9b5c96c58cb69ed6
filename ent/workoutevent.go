// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/biblegym/ent/workoutevent"
)

// WorkoutEvent is the model entity for the WorkoutEvent schema.
type WorkoutEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the store-wide event order
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was recorded, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// WorkoutID holds the value of the "workout_id" field.
	WorkoutID string `json:"workout_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Calendar day of the workout, YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// Theme holds the value of the "theme" field.
	Theme string `json:"theme,omitempty"`
	// GroupChallenge holds the value of the "group_challenge" field.
	GroupChallenge bool `json:"group_challenge,omitempty"`
	// MemorizationScore holds the value of the "memorization_score" field.
	MemorizationScore int `json:"memorization_score,omitempty"`
	// ContextScore holds the value of the "context_score" field.
	ContextScore int `json:"context_score,omitempty"`
	// VerseMatchScore holds the value of the "verse_match_score" field.
	VerseMatchScore int `json:"verse_match_score,omitempty"`
	// RearrangeScore holds the value of the "rearrange_score" field.
	RearrangeScore *int `json:"rearrange_score,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore int `json:"total_score,omitempty"`
	// Streak holds the value of the "streak" field.
	Streak       int `json:"streak,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkoutEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workoutevent.FieldGroupChallenge:
			values[i] = new(sql.NullBool)
		case workoutevent.FieldID, workoutevent.FieldSequence, workoutevent.FieldMemorizationScore, workoutevent.FieldContextScore, workoutevent.FieldVerseMatchScore, workoutevent.FieldRearrangeScore, workoutevent.FieldTotalScore, workoutevent.FieldStreak:
			values[i] = new(sql.NullInt64)
		case workoutevent.FieldWorkoutID, workoutevent.FieldUserID, workoutevent.FieldDate, workoutevent.FieldTheme:
			values[i] = new(sql.NullString)
		case workoutevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkoutEvent fields.
func (_m *WorkoutEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workoutevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case workoutevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case workoutevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case workoutevent.FieldWorkoutID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workout_id", values[i])
			} else if value.Valid {
				_m.WorkoutID = value.String
			}
		case workoutevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case workoutevent.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case workoutevent.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = value.String
			}
		case workoutevent.FieldGroupChallenge:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field group_challenge", values[i])
			} else if value.Valid {
				_m.GroupChallenge = value.Bool
			}
		case workoutevent.FieldMemorizationScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memorization_score", values[i])
			} else if value.Valid {
				_m.MemorizationScore = int(value.Int64)
			}
		case workoutevent.FieldContextScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field context_score", values[i])
			} else if value.Valid {
				_m.ContextScore = int(value.Int64)
			}
		case workoutevent.FieldVerseMatchScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field verse_match_score", values[i])
			} else if value.Valid {
				_m.VerseMatchScore = int(value.Int64)
			}
		case workoutevent.FieldRearrangeScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rearrange_score", values[i])
			} else if value.Valid {
				_m.RearrangeScore = new(int)
				*_m.RearrangeScore = int(value.Int64)
			}
		case workoutevent.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case workoutevent.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkoutEvent.
// This includes values selected through modifiers, order, etc.
func (_m *WorkoutEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WorkoutEvent.
// Note that you need to call WorkoutEvent.Unwrap() before calling this method if this WorkoutEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkoutEvent) Update() *WorkoutEventUpdateOne {
	return NewWorkoutEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkoutEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkoutEvent) Unwrap() *WorkoutEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkoutEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkoutEvent) String() string {
	var builder strings.Builder
	builder.WriteString("WorkoutEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("workout_id=")
	builder.WriteString(_m.WorkoutID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("theme=")
	builder.WriteString(_m.Theme)
	builder.WriteString(", ")
	builder.WriteString("group_challenge=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupChallenge))
	builder.WriteString(", ")
	builder.WriteString("memorization_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemorizationScore))
	builder.WriteString(", ")
	builder.WriteString("context_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextScore))
	builder.WriteString(", ")
	builder.WriteString("verse_match_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerseMatchScore))
	builder.WriteString(", ")
	if v := _m.RearrangeScore; v != nil {
		builder.WriteString("rearrange_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteByte(')')
	return builder.String()
}

// WorkoutEvents is a parsable slice of WorkoutEvent.
type WorkoutEvents []*WorkoutEvent
