// Code generated by ent, DO NOT EDIT.

package workoutevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the workoutevent type in the database.
	Label = "workout_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldWorkoutID holds the string denoting the workout_id field in the database.
	FieldWorkoutID = "workout_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldTheme holds the string denoting the theme field in the database.
	FieldTheme = "theme"
	// FieldGroupChallenge holds the string denoting the group_challenge field in the database.
	FieldGroupChallenge = "group_challenge"
	// FieldMemorizationScore holds the string denoting the memorization_score field in the database.
	FieldMemorizationScore = "memorization_score"
	// FieldContextScore holds the string denoting the context_score field in the database.
	FieldContextScore = "context_score"
	// FieldVerseMatchScore holds the string denoting the verse_match_score field in the database.
	FieldVerseMatchScore = "verse_match_score"
	// FieldRearrangeScore holds the string denoting the rearrange_score field in the database.
	FieldRearrangeScore = "rearrange_score"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// Table holds the table name of the workoutevent in the database.
	Table = "workout_events"
)

// Columns holds all SQL columns for workoutevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldWorkoutID,
	FieldUserID,
	FieldDate,
	FieldTheme,
	FieldGroupChallenge,
	FieldMemorizationScore,
	FieldContextScore,
	FieldVerseMatchScore,
	FieldRearrangeScore,
	FieldTotalScore,
	FieldStreak,
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
	// WorkoutIDValidator is a validator for the "workout_id" field. It is called by the builders before save.
	WorkoutIDValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// DefaultGroupChallenge holds the default value on creation for the "group_challenge" field.
	DefaultGroupChallenge bool
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
)

// OrderOption defines the ordering options for the WorkoutEvent queries.
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

// ByWorkoutID orders the results by the workout_id field.
func ByWorkoutID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkoutID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByTheme orders the results by the theme field.
func ByTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheme, opts...).ToFunc()
}

// ByGroupChallenge orders the results by the group_challenge field.
func ByGroupChallenge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupChallenge, opts...).ToFunc()
}

// ByMemorizationScore orders the results by the memorization_score field.
func ByMemorizationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemorizationScore, opts...).ToFunc()
}

// ByContextScore orders the results by the context_score field.
func ByContextScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextScore, opts...).ToFunc()
}

// ByVerseMatchScore orders the results by the verse_match_score field.
func ByVerseMatchScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerseMatchScore, opts...).ToFunc()
}

// ByRearrangeScore orders the results by the rearrange_score field.
func ByRearrangeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRearrangeScore, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}
