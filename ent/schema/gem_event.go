package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GemEvent records a gem award.
type GemEvent struct {
	ent.Schema
}

func (GemEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GemEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("gem_type").NotEmpty(),
		field.String("rarity").NotEmpty(),
		field.String("reference").Optional().Nillable().
			Comment("Scripture reference for verse gems"),
		field.String("user_id").Optional(),
		field.String("workout_id").Optional().Nillable().
			Comment("Workout that earned the gem; unset for verse gems"),
		field.String("reason").NotEmpty(),
	}
}

func (GemEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gem_type"),
		index.Fields("user_id", "gem_type"),
		index.Fields("workout_id"),
		index.Fields("rarity"),
	}
}
