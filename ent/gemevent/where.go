// Code generated by ent, DO NOT EDIT.

package gemevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/biblegym/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldTimestamp, v))
}

// GemType applies equality check predicate on the "gem_type" field. It's identical to GemTypeEQ.
func GemType(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldGemType, v))
}

// Rarity applies equality check predicate on the "rarity" field. It's identical to RarityEQ.
func Rarity(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldRarity, v))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldReference, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldUserID, v))
}

// WorkoutID applies equality check predicate on the "workout_id" field. It's identical to WorkoutIDEQ.
func WorkoutID(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldWorkoutID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldReason, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLTE(FieldTimestamp, v))
}

// GemTypeEQ applies the EQ predicate on the "gem_type" field.
func GemTypeEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldGemType, v))
}

// GemTypeNEQ applies the NEQ predicate on the "gem_type" field.
func GemTypeNEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNEQ(FieldGemType, v))
}

// GemTypeIn applies the In predicate on the "gem_type" field.
func GemTypeIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIn(FieldGemType, vs...))
}

// GemTypeNotIn applies the NotIn predicate on the "gem_type" field.
func GemTypeNotIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotIn(FieldGemType, vs...))
}

// GemTypeGT applies the GT predicate on the "gem_type" field.
func GemTypeGT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGT(FieldGemType, v))
}

// GemTypeGTE applies the GTE predicate on the "gem_type" field.
func GemTypeGTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGTE(FieldGemType, v))
}

// GemTypeLT applies the LT predicate on the "gem_type" field.
func GemTypeLT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLT(FieldGemType, v))
}

// GemTypeLTE applies the LTE predicate on the "gem_type" field.
func GemTypeLTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLTE(FieldGemType, v))
}

// GemTypeContains applies the Contains predicate on the "gem_type" field.
func GemTypeContains(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContains(FieldGemType, v))
}

// GemTypeHasPrefix applies the HasPrefix predicate on the "gem_type" field.
func GemTypeHasPrefix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasPrefix(FieldGemType, v))
}

// GemTypeHasSuffix applies the HasSuffix predicate on the "gem_type" field.
func GemTypeHasSuffix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasSuffix(FieldGemType, v))
}

// GemTypeEqualFold applies the EqualFold predicate on the "gem_type" field.
func GemTypeEqualFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEqualFold(FieldGemType, v))
}

// GemTypeContainsFold applies the ContainsFold predicate on the "gem_type" field.
func GemTypeContainsFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContainsFold(FieldGemType, v))
}

// RarityEQ applies the EQ predicate on the "rarity" field.
func RarityEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldRarity, v))
}

// RarityNEQ applies the NEQ predicate on the "rarity" field.
func RarityNEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNEQ(FieldRarity, v))
}

// RarityIn applies the In predicate on the "rarity" field.
func RarityIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIn(FieldRarity, vs...))
}

// RarityNotIn applies the NotIn predicate on the "rarity" field.
func RarityNotIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotIn(FieldRarity, vs...))
}

// RarityGT applies the GT predicate on the "rarity" field.
func RarityGT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGT(FieldRarity, v))
}

// RarityGTE applies the GTE predicate on the "rarity" field.
func RarityGTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGTE(FieldRarity, v))
}

// RarityLT applies the LT predicate on the "rarity" field.
func RarityLT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLT(FieldRarity, v))
}

// RarityLTE applies the LTE predicate on the "rarity" field.
func RarityLTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLTE(FieldRarity, v))
}

// RarityContains applies the Contains predicate on the "rarity" field.
func RarityContains(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContains(FieldRarity, v))
}

// RarityHasPrefix applies the HasPrefix predicate on the "rarity" field.
func RarityHasPrefix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasPrefix(FieldRarity, v))
}

// RarityHasSuffix applies the HasSuffix predicate on the "rarity" field.
func RarityHasSuffix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasSuffix(FieldRarity, v))
}

// RarityEqualFold applies the EqualFold predicate on the "rarity" field.
func RarityEqualFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEqualFold(FieldRarity, v))
}

// RarityContainsFold applies the ContainsFold predicate on the "rarity" field.
func RarityContainsFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContainsFold(FieldRarity, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceIsNil applies the IsNil predicate on the "reference" field.
func ReferenceIsNil() predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIsNull(FieldReference))
}

// ReferenceNotNil applies the NotNil predicate on the "reference" field.
func ReferenceNotNil() predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotNull(FieldReference))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContainsFold(FieldReference, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContainsFold(FieldUserID, v))
}

// WorkoutIDEQ applies the EQ predicate on the "workout_id" field.
func WorkoutIDEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldWorkoutID, v))
}

// WorkoutIDNEQ applies the NEQ predicate on the "workout_id" field.
func WorkoutIDNEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNEQ(FieldWorkoutID, v))
}

// WorkoutIDIn applies the In predicate on the "workout_id" field.
func WorkoutIDIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIn(FieldWorkoutID, vs...))
}

// WorkoutIDNotIn applies the NotIn predicate on the "workout_id" field.
func WorkoutIDNotIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotIn(FieldWorkoutID, vs...))
}

// WorkoutIDGT applies the GT predicate on the "workout_id" field.
func WorkoutIDGT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGT(FieldWorkoutID, v))
}

// WorkoutIDGTE applies the GTE predicate on the "workout_id" field.
func WorkoutIDGTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGTE(FieldWorkoutID, v))
}

// WorkoutIDLT applies the LT predicate on the "workout_id" field.
func WorkoutIDLT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLT(FieldWorkoutID, v))
}

// WorkoutIDLTE applies the LTE predicate on the "workout_id" field.
func WorkoutIDLTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLTE(FieldWorkoutID, v))
}

// WorkoutIDContains applies the Contains predicate on the "workout_id" field.
func WorkoutIDContains(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContains(FieldWorkoutID, v))
}

// WorkoutIDHasPrefix applies the HasPrefix predicate on the "workout_id" field.
func WorkoutIDHasPrefix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasPrefix(FieldWorkoutID, v))
}

// WorkoutIDHasSuffix applies the HasSuffix predicate on the "workout_id" field.
func WorkoutIDHasSuffix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasSuffix(FieldWorkoutID, v))
}

// WorkoutIDIsNil applies the IsNil predicate on the "workout_id" field.
func WorkoutIDIsNil() predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIsNull(FieldWorkoutID))
}

// WorkoutIDNotNil applies the NotNil predicate on the "workout_id" field.
func WorkoutIDNotNil() predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotNull(FieldWorkoutID))
}

// WorkoutIDEqualFold applies the EqualFold predicate on the "workout_id" field.
func WorkoutIDEqualFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEqualFold(FieldWorkoutID, v))
}

// WorkoutIDContainsFold applies the ContainsFold predicate on the "workout_id" field.
func WorkoutIDContainsFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContainsFold(FieldWorkoutID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.GemEvent {
	return predicate.GemEvent(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GemEvent) predicate.GemEvent {
	return predicate.GemEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GemEvent) predicate.GemEvent {
	return predicate.GemEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GemEvent) predicate.GemEvent {
	return predicate.GemEvent(sql.NotPredicates(p))
}
