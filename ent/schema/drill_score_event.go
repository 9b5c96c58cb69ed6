package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DrillScoreEvent records a single scored drill, either inside a workout or
// as stand-alone practice.
type DrillScoreEvent struct {
	ent.Schema
}

func (DrillScoreEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DrillScoreEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").Optional(),
		field.String("workout_id").Optional().
			Comment("Empty for practice drills"),
		field.String("drill_type").NotEmpty(),
		field.Int("score"),
		field.Bool("ai_generated").Default(false),
		field.JSON("practice", map[string]string{}).
			Optional().
			Comment("Practice selection (by, value) for practice drills"),
	}
}

func (DrillScoreEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("drill_type"),
		index.Fields("workout_id"),
	}
}
