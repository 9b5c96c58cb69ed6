// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DrillScoreEvent is the predicate function for drillscoreevent builders.
type DrillScoreEvent func(*sql.Selector)

// GemEvent is the predicate function for gemevent builders.
type GemEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// WorkoutEvent is the predicate function for workoutevent builders.
type WorkoutEvent func(*sql.Selector)
