// Code generated by ent, DO NOT EDIT.

package drillscoreevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the drillscoreevent type in the database.
	Label = "drill_score_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldWorkoutID holds the string denoting the workout_id field in the database.
	FieldWorkoutID = "workout_id"
	// FieldDrillType holds the string denoting the drill_type field in the database.
	FieldDrillType = "drill_type"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAiGenerated holds the string denoting the ai_generated field in the database.
	FieldAiGenerated = "ai_generated"
	// FieldPractice holds the string denoting the practice field in the database.
	FieldPractice = "practice"
	// Table holds the table name of the drillscoreevent in the database.
	Table = "drill_score_events"
)

// Columns holds all SQL columns for drillscoreevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldWorkoutID,
	FieldDrillType,
	FieldScore,
	FieldAiGenerated,
	FieldPractice,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DrillTypeValidator is a validator for the "drill_type" field. It is called by the builders before save.
	DrillTypeValidator func(string) error
	// DefaultAiGenerated holds the default value on creation for the "ai_generated" field.
	DefaultAiGenerated bool
)

// OrderOption defines the ordering options for the DrillScoreEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByWorkoutID orders the results by the workout_id field.
func ByWorkoutID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkoutID, opts...).ToFunc()
}

// ByDrillType orders the results by the drill_type field.
func ByDrillType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillType, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByAiGenerated orders the results by the ai_generated field.
func ByAiGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiGenerated, opts...).ToFunc()
}
