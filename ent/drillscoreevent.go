// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/biblegym/ent/drillscoreevent"
)

// DrillScoreEvent is the model entity for the DrillScoreEvent schema.
type DrillScoreEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the store-wide event order
	Sequence int64 `json:"sequence,omitempty"`
	// When the event was recorded, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Empty for practice drills
	WorkoutID string `json:"workout_id,omitempty"`
	// DrillType holds the value of the "drill_type" field.
	DrillType string `json:"drill_type,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// AiGenerated holds the value of the "ai_generated" field.
	AiGenerated bool `json:"ai_generated,omitempty"`
	// Practice selection (by, value) for practice drills
	Practice     map[string]string `json:"practice,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DrillScoreEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drillscoreevent.FieldPractice:
			values[i] = new([]byte)
		case drillscoreevent.FieldAiGenerated:
			values[i] = new(sql.NullBool)
		case drillscoreevent.FieldID, drillscoreevent.FieldSequence, drillscoreevent.FieldScore:
			values[i] = new(sql.NullInt64)
		case drillscoreevent.FieldUserID, drillscoreevent.FieldWorkoutID, drillscoreevent.FieldDrillType:
			values[i] = new(sql.NullString)
		case drillscoreevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DrillScoreEvent fields.
func (_m *DrillScoreEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drillscoreevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case drillscoreevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case drillscoreevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case drillscoreevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case drillscoreevent.FieldWorkoutID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workout_id", values[i])
			} else if value.Valid {
				_m.WorkoutID = value.String
			}
		case drillscoreevent.FieldDrillType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drill_type", values[i])
			} else if value.Valid {
				_m.DrillType = value.String
			}
		case drillscoreevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case drillscoreevent.FieldAiGenerated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ai_generated", values[i])
			} else if value.Valid {
				_m.AiGenerated = value.Bool
			}
		case drillscoreevent.FieldPractice:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field practice", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Practice); err != nil {
					return fmt.Errorf("unmarshal field practice: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DrillScoreEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DrillScoreEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DrillScoreEvent.
// Note that you need to call DrillScoreEvent.Unwrap() before calling this method if this DrillScoreEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DrillScoreEvent) Update() *DrillScoreEventUpdateOne {
	return NewDrillScoreEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DrillScoreEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DrillScoreEvent) Unwrap() *DrillScoreEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DrillScoreEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DrillScoreEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DrillScoreEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("workout_id=")
	builder.WriteString(_m.WorkoutID)
	builder.WriteString(", ")
	builder.WriteString("drill_type=")
	builder.WriteString(_m.DrillType)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("ai_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiGenerated))
	builder.WriteString(", ")
	builder.WriteString("practice=")
	builder.WriteString(fmt.Sprintf("%v", _m.Practice))
	builder.WriteByte(')')
	return builder.String()
}

// DrillScoreEvents is a parsable slice of DrillScoreEvent.
type DrillScoreEvents []*DrillScoreEvent
