package drillgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/llm"
	"github.com/abhisek/biblegym/internal/rng"
)

var fixedNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestGenerator(provider llm.Provider, lookup PassageLookup) *Generator {
	return New(provider, lookup, corpus.Default(), DefaultConfig(),
		WithSource(rng.New(42)),
		WithClock(clock),
	)
}

func themedJSON() json.RawMessage {
	return json.RawMessage(`{
		"passages": [
			{
				"reference": "Hebrews 11:1",
				"text": "Now faith is confidence in what we hope for and assurance about what we do not see.",
				"book": "Hebrews",
				"chapter": 11,
				"verses": "1",
				"contextQuestion": {
					"question": "Which chapter is known as the hall of faith?",
					"options": ["Hebrews 11", "Romans 8", "John 3", "Psalm 23"],
					"correctIndex": 0
				}
			},
			{
				"reference": "James 1:2-3",
				"text": "Consider it pure joy whenever you face trials of many kinds, because you know that the testing of your faith produces perseverance.",
				"book": "James",
				"chapter": 1,
				"verses": "2-3",
				"contextQuestion": {
					"question": "Who wrote the letter of James?",
					"options": ["Peter", "James", "Paul", "John"],
					"correctIndex": 1
				}
			},
			{
				"reference": "Romans 5:3-4",
				"text": "We also glory in our sufferings, because we know that suffering produces perseverance; perseverance, character; and character, hope.",
				"book": "Romans",
				"chapter": 5,
				"verses": "3-4",
				"contextQuestion": {
					"question": "Where were the recipients of Romans living?",
					"options": ["Corinth", "Ephesus", "Rome", "Philippi"],
					"correctIndex": 2
				}
			}
		]
	}`)
}

func TestThemedWorkout(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: themedJSON()})
	gen := newTestGenerator(mock, nil)

	w, err := gen.ThemedWorkout(context.Background(), "  Faith and Endurance ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stamp := fixedNow.UnixMilli()
	if w.ID != fmt.Sprintf("workout-ai-%d", stamp) {
		t.Errorf("unexpected id: %q", w.ID)
	}
	if w.Date != "2024-03-15" {
		t.Errorf("unexpected date: %q", w.Date)
	}
	if !w.IsGroupChallenge {
		t.Error("themed workout should be a group challenge")
	}
	if w.Theme != "Faith and Endurance" {
		t.Errorf("unexpected theme: %q", w.Theme)
	}
	if w.Scores.Rearrange != nil {
		t.Error("themed workout has no rearrange score")
	}
	if w.TotalScore != 0 || w.Completed {
		t.Error("themed workout should start unscored")
	}

	var kinds []drill.Kind
	for _, d := range w.Drills {
		kinds = append(kinds, d.Kind())
	}
	want := []drill.Kind{drill.KindMemorization, drill.KindContext, drill.KindVerseMatch}
	if !slices.Equal(kinds, want) {
		t.Fatalf("drill kinds = %v, want %v", kinds, want)
	}

	mem := w.Drills[0].(*drill.Memorization)
	for i, q := range mem.Questions {
		if q.ID != fmt.Sprintf("ai-mem-%d-%d", stamp, i) {
			t.Errorf("question %d id = %q", i, q.ID)
		}
		if len(q.BlankedWords) == 0 {
			t.Errorf("question %d has no blanks", i)
		}
	}

	ctxDrill := w.Drills[1].(*drill.Context)
	if ctxDrill.Questions[1].ID != fmt.Sprintf("ai-ctx-%d-1", stamp) {
		t.Errorf("unexpected context id: %q", ctxDrill.Questions[1].ID)
	}
	if ctxDrill.Questions[2].CorrectIndex != 2 {
		t.Errorf("expected correctIndex 2, got %d", ctxDrill.Questions[2].CorrectIndex)
	}
	if ctxDrill.Questions[0].Passage.Reference != "Hebrews 11:1" {
		t.Errorf("context question not tied to its passage")
	}

	vm := w.Drills[2].(*drill.VerseMatch)
	if len(vm.Pairs) != 3 || vm.Pairs[1].Reference != "James 1:2-3" {
		t.Errorf("unexpected pairs: %+v", vm.Pairs)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema.Name != "themed-passages" {
		t.Errorf("unexpected schema: %q", req.Schema.Name)
	}
	if !strings.Contains(req.Messages[0].Content, "Faith and Endurance") {
		t.Error("prompt should mention the theme")
	}
}

func TestThemedWorkoutEmptyTheme(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := newTestGenerator(mock, nil)

	_, err := gen.ThemedWorkout(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyTheme) {
		t.Fatalf("expected ErrEmptyTheme, got %v", err)
	}
	if len(mock.Calls) != 0 {
		t.Error("no LLM call expected for an empty theme")
	}
}

func TestThemedWorkoutNoProvider(t *testing.T) {
	gen := newTestGenerator(nil, nil)
	if gen.HasProvider() {
		t.Fatal("expected no provider")
	}

	_, err := gen.ThemedWorkout(context.Background(), "Hope")
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
}

func TestThemedWorkoutLLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	gen := newTestGenerator(mock, nil)

	_, err := gen.ThemedWorkout(context.Background(), "Hope")
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped LLM error, got %v", err)
	}
}

func TestThemedWorkoutRejectsShortBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"passages": [
		{"reference": "John 3:16", "text": "For God so loved the world", "book": "John", "chapter": 3, "verses": "16",
		 "contextQuestion": {"question": "Who is speaking?", "options": ["Jesus", "Paul", "Peter", "John"], "correctIndex": 0}}
	]}`)})
	gen := newTestGenerator(mock, nil)

	_, err := gen.ThemedWorkout(context.Background(), "Love")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("unexpected validator: %q", verr.Validator)
	}
}

func TestThemedWorkoutMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{not json}`)})
	gen := newTestGenerator(mock, nil)

	_, err := gen.ThemedWorkout(context.Background(), "Love")
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestRandomDrill(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: themedJSON()})
	gen := newTestGenerator(mock, nil)

	d, err := gen.RandomDrill(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind() == drill.KindRearrange {
		t.Error("themed drills never include rearrange")
	}

	msg := mock.Calls[0].Messages[0].Content
	found := false
	for _, theme := range Themes {
		if strings.Contains(msg, theme) {
			found = true
		}
	}
	if !found {
		t.Errorf("prompt does not name a known theme: %q", msg)
	}
}
