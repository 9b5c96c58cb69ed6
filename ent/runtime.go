// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/biblegym/ent/drillscoreevent"
	"github.com/abhisek/biblegym/ent/gemevent"
	"github.com/abhisek/biblegym/ent/llmrequestevent"
	"github.com/abhisek/biblegym/ent/masteryevent"
	"github.com/abhisek/biblegym/ent/schema"
	"github.com/abhisek/biblegym/ent/snapshot"
	"github.com/abhisek/biblegym/ent/workoutevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	drillscoreeventMixin := schema.DrillScoreEvent{}.Mixin()
	drillscoreeventMixinFields0 := drillscoreeventMixin[0].Fields()
	_ = drillscoreeventMixinFields0
	drillscoreeventFields := schema.DrillScoreEvent{}.Fields()
	_ = drillscoreeventFields
	// drillscoreeventDescTimestamp is the schema descriptor for timestamp field.
	drillscoreeventDescTimestamp := drillscoreeventMixinFields0[1].Descriptor()
	// drillscoreevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	drillscoreevent.DefaultTimestamp = drillscoreeventDescTimestamp.Default.(func() time.Time)
	// drillscoreeventDescDrillType is the schema descriptor for drill_type field.
	drillscoreeventDescDrillType := drillscoreeventFields[2].Descriptor()
	// drillscoreevent.DrillTypeValidator is a validator for the "drill_type" field. It is called by the builders before save.
	drillscoreevent.DrillTypeValidator = drillscoreeventDescDrillType.Validators[0].(func(string) error)
	// drillscoreeventDescAiGenerated is the schema descriptor for ai_generated field.
	drillscoreeventDescAiGenerated := drillscoreeventFields[4].Descriptor()
	// drillscoreevent.DefaultAiGenerated holds the default value on creation for the ai_generated field.
	drillscoreevent.DefaultAiGenerated = drillscoreeventDescAiGenerated.Default.(bool)
	gemeventMixin := schema.GemEvent{}.Mixin()
	gemeventMixinFields0 := gemeventMixin[0].Fields()
	_ = gemeventMixinFields0
	gemeventFields := schema.GemEvent{}.Fields()
	_ = gemeventFields
	// gemeventDescTimestamp is the schema descriptor for timestamp field.
	gemeventDescTimestamp := gemeventMixinFields0[1].Descriptor()
	// gemevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gemevent.DefaultTimestamp = gemeventDescTimestamp.Default.(func() time.Time)
	// gemeventDescGemType is the schema descriptor for gem_type field.
	gemeventDescGemType := gemeventFields[0].Descriptor()
	// gemevent.GemTypeValidator is a validator for the "gem_type" field. It is called by the builders before save.
	gemevent.GemTypeValidator = gemeventDescGemType.Validators[0].(func(string) error)
	// gemeventDescRarity is the schema descriptor for rarity field.
	gemeventDescRarity := gemeventFields[1].Descriptor()
	// gemevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	gemevent.RarityValidator = gemeventDescRarity.Validators[0].(func(string) error)
	// gemeventDescReason is the schema descriptor for reason field.
	gemeventDescReason := gemeventFields[5].Descriptor()
	// gemevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	gemevent.ReasonValidator = gemeventDescReason.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescReference is the schema descriptor for reference field.
	masteryeventDescReference := masteryeventFields[1].Descriptor()
	// masteryevent.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	masteryevent.ReferenceValidator = masteryeventDescReference.Validators[0].(func(string) error)
	// masteryeventDescSeconds is the schema descriptor for seconds field.
	masteryeventDescSeconds := masteryeventFields[4].Descriptor()
	// masteryevent.DefaultSeconds holds the default value on creation for the seconds field.
	masteryevent.DefaultSeconds = masteryeventDescSeconds.Default.(int)
	// masteryeventDescFromStatus is the schema descriptor for from_status field.
	masteryeventDescFromStatus := masteryeventFields[7].Descriptor()
	// masteryevent.FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	masteryevent.FromStatusValidator = masteryeventDescFromStatus.Validators[0].(func(string) error)
	// masteryeventDescToStatus is the schema descriptor for to_status field.
	masteryeventDescToStatus := masteryeventFields[8].Descriptor()
	// masteryevent.ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	masteryevent.ToStatusValidator = masteryeventDescToStatus.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[9].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	workouteventMixin := schema.WorkoutEvent{}.Mixin()
	workouteventMixinFields0 := workouteventMixin[0].Fields()
	_ = workouteventMixinFields0
	workouteventFields := schema.WorkoutEvent{}.Fields()
	_ = workouteventFields
	// workouteventDescTimestamp is the schema descriptor for timestamp field.
	workouteventDescTimestamp := workouteventMixinFields0[1].Descriptor()
	// workoutevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	workoutevent.DefaultTimestamp = workouteventDescTimestamp.Default.(func() time.Time)
	// workouteventDescWorkoutID is the schema descriptor for workout_id field.
	workouteventDescWorkoutID := workouteventFields[0].Descriptor()
	// workoutevent.WorkoutIDValidator is a validator for the "workout_id" field. It is called by the builders before save.
	workoutevent.WorkoutIDValidator = workouteventDescWorkoutID.Validators[0].(func(string) error)
	// workouteventDescDate is the schema descriptor for date field.
	workouteventDescDate := workouteventFields[2].Descriptor()
	// workoutevent.DateValidator is a validator for the "date" field. It is called by the builders before save.
	workoutevent.DateValidator = workouteventDescDate.Validators[0].(func(string) error)
	// workouteventDescGroupChallenge is the schema descriptor for group_challenge field.
	workouteventDescGroupChallenge := workouteventFields[4].Descriptor()
	// workoutevent.DefaultGroupChallenge holds the default value on creation for the group_challenge field.
	workoutevent.DefaultGroupChallenge = workouteventDescGroupChallenge.Default.(bool)
	// workouteventDescStreak is the schema descriptor for streak field.
	workouteventDescStreak := workouteventFields[10].Descriptor()
	// workoutevent.DefaultStreak holds the default value on creation for the streak field.
	workoutevent.DefaultStreak = workouteventDescStreak.Default.(int)
}
