package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkoutEvent records a completed workout.
type WorkoutEvent struct {
	ent.Schema
}

func (WorkoutEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (WorkoutEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("workout_id").NotEmpty(),
		field.String("user_id").Optional(),
		field.String("date").NotEmpty().
			Comment("Calendar day of the workout, YYYY-MM-DD"),
		field.String("theme").Optional(),
		field.Bool("group_challenge").Default(false),
		field.Int("memorization_score"),
		field.Int("context_score"),
		field.Int("verse_match_score"),
		field.Int("rearrange_score").Optional().Nillable(),
		field.Int("total_score"),
		field.Int("streak").Default(0),
	}
}

func (WorkoutEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("date"),
	}
}
