package drillgen

import "github.com/abhisek/biblegym/internal/llm"

func contextQuestionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "A background question about the passage's author, audience or setting",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options",
			},
			"correctIndex": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Index of the correct option",
			},
		},
		"required":             []any{"question", "options", "correctIndex"},
		"additionalProperties": false,
	}
}

func passageSchema(withText, withQuestion bool) map[string]any {
	props := map[string]any{
		"reference": map[string]any{
			"type":        "string",
			"description": "Passage reference, e.g. \"John 3:16\"",
		},
		"book": map[string]any{
			"type":        "string",
			"description": "Book name",
		},
		"chapter": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Chapter number",
		},
		"verses": map[string]any{
			"type":        "string",
			"description": "Verse or verse range, e.g. \"16\" or \"16-17\"",
		},
	}
	required := []any{"reference", "book", "chapter", "verses"}
	if withText {
		props["text"] = map[string]any{
			"type":        "string",
			"description": "Passage text (NIV or ESV), 1-3 verses long",
		}
		required = append(required, "text")
	}
	if withQuestion {
		props["contextQuestion"] = contextQuestionSchema()
		required = append(required, "contextQuestion")
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func batchSchema(name, description string, withText, withQuestion bool) *llm.Schema {
	return &llm.Schema{
		Name:        name,
		Description: description,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"passages": map[string]any{
					"type":     "array",
					"items":    passageSchema(withText, withQuestion),
					"minItems": PassagesPerBatch,
					"maxItems": PassagesPerBatch,
				},
			},
			"required":             []any{"passages"},
			"additionalProperties": false,
		},
	}
}

// ThemedPassagesSchema is the response schema for themed workouts: full
// passage text plus a context question per passage.
var ThemedPassagesSchema = batchSchema(
	"themed-passages",
	"Three Bible passages on a theme, each with a context question",
	true, true,
)

// PracticeReferencesSchema asks only for references; text is looked up
// separately.
var PracticeReferencesSchema = batchSchema(
	"practice-references",
	"Three Bible passage references",
	false, false,
)

// PracticeQuestionsSchema is PracticeReferencesSchema plus a context
// question per passage.
var PracticeQuestionsSchema = batchSchema(
	"practice-questions",
	"Three Bible passage references, each with a context question",
	false, true,
)
