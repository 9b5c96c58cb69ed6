// Code generated by ent, DO NOT EDIT.

package drillscoreevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/biblegym/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldUserID, v))
}

// WorkoutID applies equality check predicate on the "workout_id" field. It's identical to WorkoutIDEQ.
func WorkoutID(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldWorkoutID, v))
}

// DrillType applies equality check predicate on the "drill_type" field. It's identical to DrillTypeEQ.
func DrillType(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldDrillType, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldScore, v))
}

// AiGenerated applies equality check predicate on the "ai_generated" field. It's identical to AiGeneratedEQ.
func AiGenerated(v bool) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldAiGenerated, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldContainsFold(FieldUserID, v))
}

// WorkoutIDEQ applies the EQ predicate on the "workout_id" field.
func WorkoutIDEQ(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldWorkoutID, v))
}

// WorkoutIDNEQ applies the NEQ predicate on the "workout_id" field.
func WorkoutIDNEQ(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNEQ(FieldWorkoutID, v))
}

// WorkoutIDIn applies the In predicate on the "workout_id" field.
func WorkoutIDIn(vs ...string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIn(FieldWorkoutID, vs...))
}

// WorkoutIDNotIn applies the NotIn predicate on the "workout_id" field.
func WorkoutIDNotIn(vs ...string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotIn(FieldWorkoutID, vs...))
}

// WorkoutIDGT applies the GT predicate on the "workout_id" field.
func WorkoutIDGT(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGT(FieldWorkoutID, v))
}

// WorkoutIDGTE applies the GTE predicate on the "workout_id" field.
func WorkoutIDGTE(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGTE(FieldWorkoutID, v))
}

// WorkoutIDLT applies the LT predicate on the "workout_id" field.
func WorkoutIDLT(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLT(FieldWorkoutID, v))
}

// WorkoutIDLTE applies the LTE predicate on the "workout_id" field.
func WorkoutIDLTE(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLTE(FieldWorkoutID, v))
}

// WorkoutIDContains applies the Contains predicate on the "workout_id" field.
func WorkoutIDContains(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldContains(FieldWorkoutID, v))
}

// WorkoutIDHasPrefix applies the HasPrefix predicate on the "workout_id" field.
func WorkoutIDHasPrefix(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldHasPrefix(FieldWorkoutID, v))
}

// WorkoutIDHasSuffix applies the HasSuffix predicate on the "workout_id" field.
func WorkoutIDHasSuffix(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldHasSuffix(FieldWorkoutID, v))
}

// WorkoutIDIsNil applies the IsNil predicate on the "workout_id" field.
func WorkoutIDIsNil() predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIsNull(FieldWorkoutID))
}

// WorkoutIDNotNil applies the NotNil predicate on the "workout_id" field.
func WorkoutIDNotNil() predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotNull(FieldWorkoutID))
}

// WorkoutIDEqualFold applies the EqualFold predicate on the "workout_id" field.
func WorkoutIDEqualFold(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEqualFold(FieldWorkoutID, v))
}

// WorkoutIDContainsFold applies the ContainsFold predicate on the "workout_id" field.
func WorkoutIDContainsFold(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldContainsFold(FieldWorkoutID, v))
}

// DrillTypeEQ applies the EQ predicate on the "drill_type" field.
func DrillTypeEQ(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldDrillType, v))
}

// DrillTypeNEQ applies the NEQ predicate on the "drill_type" field.
func DrillTypeNEQ(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNEQ(FieldDrillType, v))
}

// DrillTypeIn applies the In predicate on the "drill_type" field.
func DrillTypeIn(vs ...string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIn(FieldDrillType, vs...))
}

// DrillTypeNotIn applies the NotIn predicate on the "drill_type" field.
func DrillTypeNotIn(vs ...string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotIn(FieldDrillType, vs...))
}

// DrillTypeGT applies the GT predicate on the "drill_type" field.
func DrillTypeGT(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGT(FieldDrillType, v))
}

// DrillTypeGTE applies the GTE predicate on the "drill_type" field.
func DrillTypeGTE(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGTE(FieldDrillType, v))
}

// DrillTypeLT applies the LT predicate on the "drill_type" field.
func DrillTypeLT(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLT(FieldDrillType, v))
}

// DrillTypeLTE applies the LTE predicate on the "drill_type" field.
func DrillTypeLTE(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLTE(FieldDrillType, v))
}

// DrillTypeContains applies the Contains predicate on the "drill_type" field.
func DrillTypeContains(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldContains(FieldDrillType, v))
}

// DrillTypeHasPrefix applies the HasPrefix predicate on the "drill_type" field.
func DrillTypeHasPrefix(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldHasPrefix(FieldDrillType, v))
}

// DrillTypeHasSuffix applies the HasSuffix predicate on the "drill_type" field.
func DrillTypeHasSuffix(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldHasSuffix(FieldDrillType, v))
}

// DrillTypeEqualFold applies the EqualFold predicate on the "drill_type" field.
func DrillTypeEqualFold(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEqualFold(FieldDrillType, v))
}

// DrillTypeContainsFold applies the ContainsFold predicate on the "drill_type" field.
func DrillTypeContainsFold(v string) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldContainsFold(FieldDrillType, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldLTE(FieldScore, v))
}

// AiGeneratedEQ applies the EQ predicate on the "ai_generated" field.
func AiGeneratedEQ(v bool) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldEQ(FieldAiGenerated, v))
}

// AiGeneratedNEQ applies the NEQ predicate on the "ai_generated" field.
func AiGeneratedNEQ(v bool) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNEQ(FieldAiGenerated, v))
}

// PracticeIsNil applies the IsNil predicate on the "practice" field.
func PracticeIsNil() predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldIsNull(FieldPractice))
}

// PracticeNotNil applies the NotNil predicate on the "practice" field.
func PracticeNotNil() predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.FieldNotNull(FieldPractice))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DrillScoreEvent) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DrillScoreEvent) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DrillScoreEvent) predicate.DrillScoreEvent {
	return predicate.DrillScoreEvent(sql.NotPredicates(p))
}
