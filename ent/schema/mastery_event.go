package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records one verse-mastery attempt and the resulting
// level/status transition.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").Optional(),
		field.String("reference").NotEmpty(),
		field.Int("level").
			Comment("Level attempted (1-5)"),
		field.Int("accuracy").
			Comment("Typed-recall accuracy 0-100"),
		field.Int("seconds").Default(0),
		field.Int("from_level"),
		field.Int("to_level"),
		field.String("from_status").NotEmpty(),
		field.String("to_status").NotEmpty(),
		field.String("trigger").NotEmpty().
			Comment("level-cleared, level-failed, mastered, review"),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reference"),
		index.Fields("user_id"),
	}
}
