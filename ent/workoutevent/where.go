// Code generated by ent, DO NOT EDIT.

package workoutevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/biblegym/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldTimestamp, v))
}

// WorkoutID applies equality check predicate on the "workout_id" field. It's identical to WorkoutIDEQ.
func WorkoutID(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldWorkoutID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldUserID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldDate, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldTheme, v))
}

// GroupChallenge applies equality check predicate on the "group_challenge" field. It's identical to GroupChallengeEQ.
func GroupChallenge(v bool) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldGroupChallenge, v))
}

// MemorizationScore applies equality check predicate on the "memorization_score" field. It's identical to MemorizationScoreEQ.
func MemorizationScore(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldMemorizationScore, v))
}

// ContextScore applies equality check predicate on the "context_score" field. It's identical to ContextScoreEQ.
func ContextScore(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldContextScore, v))
}

// VerseMatchScore applies equality check predicate on the "verse_match_score" field. It's identical to VerseMatchScoreEQ.
func VerseMatchScore(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldVerseMatchScore, v))
}

// RearrangeScore applies equality check predicate on the "rearrange_score" field. It's identical to RearrangeScoreEQ.
func RearrangeScore(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldRearrangeScore, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldTotalScore, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldStreak, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldTimestamp, v))
}

// WorkoutIDEQ applies the EQ predicate on the "workout_id" field.
func WorkoutIDEQ(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldWorkoutID, v))
}

// WorkoutIDNEQ applies the NEQ predicate on the "workout_id" field.
func WorkoutIDNEQ(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldWorkoutID, v))
}

// WorkoutIDIn applies the In predicate on the "workout_id" field.
func WorkoutIDIn(vs ...string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldWorkoutID, vs...))
}

// WorkoutIDNotIn applies the NotIn predicate on the "workout_id" field.
func WorkoutIDNotIn(vs ...string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldWorkoutID, vs...))
}

// WorkoutIDGT applies the GT predicate on the "workout_id" field.
func WorkoutIDGT(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldWorkoutID, v))
}

// WorkoutIDGTE applies the GTE predicate on the "workout_id" field.
func WorkoutIDGTE(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldWorkoutID, v))
}

// WorkoutIDLT applies the LT predicate on the "workout_id" field.
func WorkoutIDLT(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldWorkoutID, v))
}

// WorkoutIDLTE applies the LTE predicate on the "workout_id" field.
func WorkoutIDLTE(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldWorkoutID, v))
}

// WorkoutIDContains applies the Contains predicate on the "workout_id" field.
func WorkoutIDContains(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldContains(FieldWorkoutID, v))
}

// WorkoutIDHasPrefix applies the HasPrefix predicate on the "workout_id" field.
func WorkoutIDHasPrefix(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldHasPrefix(FieldWorkoutID, v))
}

// WorkoutIDHasSuffix applies the HasSuffix predicate on the "workout_id" field.
func WorkoutIDHasSuffix(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldHasSuffix(FieldWorkoutID, v))
}

// WorkoutIDEqualFold applies the EqualFold predicate on the "workout_id" field.
func WorkoutIDEqualFold(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEqualFold(FieldWorkoutID, v))
}

// WorkoutIDContainsFold applies the ContainsFold predicate on the "workout_id" field.
func WorkoutIDContainsFold(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldContainsFold(FieldWorkoutID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldContainsFold(FieldUserID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldContainsFold(FieldDate, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeIsNil applies the IsNil predicate on the "theme" field.
func ThemeIsNil() predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIsNull(FieldTheme))
}

// ThemeNotNil applies the NotNil predicate on the "theme" field.
func ThemeNotNil() predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotNull(FieldTheme))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldContainsFold(FieldTheme, v))
}

// GroupChallengeEQ applies the EQ predicate on the "group_challenge" field.
func GroupChallengeEQ(v bool) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldGroupChallenge, v))
}

// GroupChallengeNEQ applies the NEQ predicate on the "group_challenge" field.
func GroupChallengeNEQ(v bool) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldGroupChallenge, v))
}

// MemorizationScoreEQ applies the EQ predicate on the "memorization_score" field.
func MemorizationScoreEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldMemorizationScore, v))
}

// MemorizationScoreNEQ applies the NEQ predicate on the "memorization_score" field.
func MemorizationScoreNEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldMemorizationScore, v))
}

// MemorizationScoreIn applies the In predicate on the "memorization_score" field.
func MemorizationScoreIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldMemorizationScore, vs...))
}

// MemorizationScoreNotIn applies the NotIn predicate on the "memorization_score" field.
func MemorizationScoreNotIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldMemorizationScore, vs...))
}

// MemorizationScoreGT applies the GT predicate on the "memorization_score" field.
func MemorizationScoreGT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldMemorizationScore, v))
}

// MemorizationScoreGTE applies the GTE predicate on the "memorization_score" field.
func MemorizationScoreGTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldMemorizationScore, v))
}

// MemorizationScoreLT applies the LT predicate on the "memorization_score" field.
func MemorizationScoreLT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldMemorizationScore, v))
}

// MemorizationScoreLTE applies the LTE predicate on the "memorization_score" field.
func MemorizationScoreLTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldMemorizationScore, v))
}

// ContextScoreEQ applies the EQ predicate on the "context_score" field.
func ContextScoreEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldContextScore, v))
}

// ContextScoreNEQ applies the NEQ predicate on the "context_score" field.
func ContextScoreNEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldContextScore, v))
}

// ContextScoreIn applies the In predicate on the "context_score" field.
func ContextScoreIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldContextScore, vs...))
}

// ContextScoreNotIn applies the NotIn predicate on the "context_score" field.
func ContextScoreNotIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldContextScore, vs...))
}

// ContextScoreGT applies the GT predicate on the "context_score" field.
func ContextScoreGT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldContextScore, v))
}

// ContextScoreGTE applies the GTE predicate on the "context_score" field.
func ContextScoreGTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldContextScore, v))
}

// ContextScoreLT applies the LT predicate on the "context_score" field.
func ContextScoreLT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldContextScore, v))
}

// ContextScoreLTE applies the LTE predicate on the "context_score" field.
func ContextScoreLTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldContextScore, v))
}

// VerseMatchScoreEQ applies the EQ predicate on the "verse_match_score" field.
func VerseMatchScoreEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldVerseMatchScore, v))
}

// VerseMatchScoreNEQ applies the NEQ predicate on the "verse_match_score" field.
func VerseMatchScoreNEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldVerseMatchScore, v))
}

// VerseMatchScoreIn applies the In predicate on the "verse_match_score" field.
func VerseMatchScoreIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldVerseMatchScore, vs...))
}

// VerseMatchScoreNotIn applies the NotIn predicate on the "verse_match_score" field.
func VerseMatchScoreNotIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldVerseMatchScore, vs...))
}

// VerseMatchScoreGT applies the GT predicate on the "verse_match_score" field.
func VerseMatchScoreGT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldVerseMatchScore, v))
}

// VerseMatchScoreGTE applies the GTE predicate on the "verse_match_score" field.
func VerseMatchScoreGTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldVerseMatchScore, v))
}

// VerseMatchScoreLT applies the LT predicate on the "verse_match_score" field.
func VerseMatchScoreLT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldVerseMatchScore, v))
}

// VerseMatchScoreLTE applies the LTE predicate on the "verse_match_score" field.
func VerseMatchScoreLTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldVerseMatchScore, v))
}

// RearrangeScoreEQ applies the EQ predicate on the "rearrange_score" field.
func RearrangeScoreEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldRearrangeScore, v))
}

// RearrangeScoreNEQ applies the NEQ predicate on the "rearrange_score" field.
func RearrangeScoreNEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldRearrangeScore, v))
}

// RearrangeScoreIn applies the In predicate on the "rearrange_score" field.
func RearrangeScoreIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldRearrangeScore, vs...))
}

// RearrangeScoreNotIn applies the NotIn predicate on the "rearrange_score" field.
func RearrangeScoreNotIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldRearrangeScore, vs...))
}

// RearrangeScoreGT applies the GT predicate on the "rearrange_score" field.
func RearrangeScoreGT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldRearrangeScore, v))
}

// RearrangeScoreGTE applies the GTE predicate on the "rearrange_score" field.
func RearrangeScoreGTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldRearrangeScore, v))
}

// RearrangeScoreLT applies the LT predicate on the "rearrange_score" field.
func RearrangeScoreLT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldRearrangeScore, v))
}

// RearrangeScoreLTE applies the LTE predicate on the "rearrange_score" field.
func RearrangeScoreLTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldRearrangeScore, v))
}

// RearrangeScoreIsNil applies the IsNil predicate on the "rearrange_score" field.
func RearrangeScoreIsNil() predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIsNull(FieldRearrangeScore))
}

// RearrangeScoreNotNil applies the NotNil predicate on the "rearrange_score" field.
func RearrangeScoreNotNil() predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotNull(FieldRearrangeScore))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldTotalScore, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.FieldLTE(FieldStreak, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkoutEvent) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkoutEvent) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkoutEvent) predicate.WorkoutEvent {
	return predicate.WorkoutEvent(sql.NotPredicates(p))
}
