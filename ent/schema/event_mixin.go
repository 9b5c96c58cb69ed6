package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is embedded by every append-only event table. sequence comes
// from the store's shared counter and orders events across tables.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	seq := field.Int64("sequence").
		Unique().
		Immutable().
		Comment("Position in the store-wide event order")
	at := field.Time("timestamp").
		Default(func() time.Time { return time.Now().UTC() }).
		Immutable().
		Comment("When the event was recorded, UTC")
	return []ent.Field{seq, at}
}

func (EventMixin) Indexes() []ent.Index {
	var idx []ent.Index
	for _, name := range []string{"sequence", "timestamp"} {
		idx = append(idx, index.Fields(name))
	}
	return idx
}
