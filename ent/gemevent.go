// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/biblegym/ent/gemevent"
)

// GemEvent is the model entity for the GemEvent schema.
type GemEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the store-wide event order
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was recorded, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// GemType holds the value of the "gem_type" field.
	GemType string `json:"gem_type,omitempty"`
	// Rarity holds the value of the "rarity" field.
	Rarity string `json:"rarity,omitempty"`
	// Scripture reference for verse gems
	Reference *string `json:"reference,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Workout that earned the gem; unset for verse gems
	WorkoutID *string `json:"workout_id,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason       string `json:"reason,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GemEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gemevent.FieldID, gemevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case gemevent.FieldGemType, gemevent.FieldRarity, gemevent.FieldReference, gemevent.FieldUserID, gemevent.FieldWorkoutID, gemevent.FieldReason:
			values[i] = new(sql.NullString)
		case gemevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GemEvent fields.
func (_m *GemEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gemevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gemevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case gemevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case gemevent.FieldGemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gem_type", values[i])
			} else if value.Valid {
				_m.GemType = value.String
			}
		case gemevent.FieldRarity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rarity", values[i])
			} else if value.Valid {
				_m.Rarity = value.String
			}
		case gemevent.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = new(string)
				*_m.Reference = value.String
			}
		case gemevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case gemevent.FieldWorkoutID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workout_id", values[i])
			} else if value.Valid {
				_m.WorkoutID = new(string)
				*_m.WorkoutID = value.String
			}
		case gemevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GemEvent.
// This includes values selected through modifiers, order, etc.
func (_m *GemEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GemEvent.
// Note that you need to call GemEvent.Unwrap() before calling this method if this GemEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GemEvent) Update() *GemEventUpdateOne {
	return NewGemEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GemEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GemEvent) Unwrap() *GemEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GemEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GemEvent) String() string {
	var builder strings.Builder
	builder.WriteString("GemEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("gem_type=")
	builder.WriteString(_m.GemType)
	builder.WriteString(", ")
	builder.WriteString("rarity=")
	builder.WriteString(_m.Rarity)
	builder.WriteString(", ")
	if v := _m.Reference; v != nil {
		builder.WriteString("reference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.WorkoutID; v != nil {
		builder.WriteString("workout_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteByte(')')
	return builder.String()
}

// GemEvents is a parsable slice of GemEvent.
type GemEvents []*GemEvent
