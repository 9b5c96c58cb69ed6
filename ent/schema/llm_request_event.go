package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one provider call, logged by the llm logging decorator
// and read back by `biblegym llm`.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("gemini, openai, anthropic or openrouter"),
		field.String("model").
			Comment("Model id reported by the vendor"),
		field.String("purpose").
			Comment("Caller label from llm.WithPurpose"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("One attempt; each retry logs its own event"),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
		field.Text("request_body").
			Default("").
			Comment("Prompt transcript: system, messages and schema sections"),
		field.Text("response_body").
			Default("").
			Comment("Model output, also kept when it failed validation"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider", "model"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
