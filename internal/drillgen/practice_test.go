package drillgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhisek/biblegym/internal/bibleapi"
	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/llm"
)

type stubLookup struct {
	passages map[string]corpus.Passage
	calls    []string
}

func (s *stubLookup) Lookup(_ context.Context, ref string) (corpus.Passage, error) {
	s.calls = append(s.calls, ref)
	p, ok := s.passages[ref]
	if !ok {
		return corpus.Passage{}, bibleapi.ErrNotFound
	}
	return p, nil
}

func referencesJSON() json.RawMessage {
	return json.RawMessage(`{"passages": [
		{"reference": "John 1:1", "book": "John", "chapter": 1, "verses": "1"},
		{"reference": "John 1:14", "book": "John", "chapter": 1, "verses": "14"},
		{"reference": "John 99:1", "book": "John", "chapter": 99, "verses": "1"}
	]}`)
}

func questionsJSON() json.RawMessage {
	return json.RawMessage(`{"passages": [
		{"reference": "John 1:1", "book": "John", "chapter": 1, "verses": "1",
		 "contextQuestion": {"question": "What is the Word?", "options": ["God", "Law", "Light", "Life"], "correctIndex": 0}},
		{"reference": "John 1:14", "book": "John", "chapter": 1, "verses": "14",
		 "contextQuestion": {"question": "What did the Word become?", "options": ["Spirit", "Flesh", "Water", "Fire"], "correctIndex": 1}},
		{"reference": "John 11:35", "book": "John", "chapter": 11, "verses": "35",
		 "contextQuestion": {"question": "Whose tomb?", "options": ["Peter", "Martha", "Lazarus", "Mary"], "correctIndex": 2}}
	]}`)
}

func johnLookup() *stubLookup {
	return &stubLookup{passages: map[string]corpus.Passage{
		"John 1:1": {
			Reference: "John 1:1", Book: "John", Chapter: 1, Verses: "1",
			Text: "In the beginning was the Word, and the Word was with God, and the Word was God.",
		},
		"John 1:14": {
			Reference: "John 1:14", Book: "John", Chapter: 1, Verses: "14",
			Text: "The Word became flesh and made his dwelling among us.",
		},
		"John 11:35": {
			Reference: "John 11:35", Book: "John", Chapter: 11, Verses: "35",
			Text: "Jesus wept.",
		},
	}}
}

func TestPracticeAIMemorization(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: referencesJSON()})
	lookup := johnLookup()
	gen := newTestGenerator(mock, lookup)

	res, err := gen.Practice(context.Background(), drill.KindMemorization, PracticeConfig{By: ByBook, Value: "John"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsAIGenerated {
		t.Fatal("expected AI generated drill")
	}

	mem, ok := res.Drill.(*drill.Memorization)
	if !ok {
		t.Fatalf("expected memorization drill, got %T", res.Drill)
	}
	if len(mem.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(mem.Questions))
	}
	if mem.Questions[0].ID != fmt.Sprintf("practice-mem-%d-0", fixedNow.UnixMilli()) {
		t.Errorf("unexpected id: %q", mem.Questions[0].ID)
	}
	if !strings.HasPrefix(mem.Questions[0].Passage.Text, "In the beginning") {
		t.Errorf("expected looked-up text, got %q", mem.Questions[0].Passage.Text)
	}

	missing := mem.Questions[2].Passage
	if missing.Text != PlaceholderText {
		t.Errorf("expected placeholder, got %q", missing.Text)
	}
	if missing.Reference != "John 99:1" || missing.Chapter != 99 {
		t.Errorf("placeholder passage should keep LLM metadata: %+v", missing)
	}

	if len(lookup.calls) != 3 {
		t.Errorf("expected 3 lookups, got %d", len(lookup.calls))
	}
	req := mock.Calls[0]
	if req.Schema.Name != "practice-references" {
		t.Errorf("unexpected schema: %q", req.Schema.Name)
	}
	if !strings.Contains(req.Messages[0].Content, "from the book of John") {
		t.Errorf("unexpected prompt: %q", req.Messages[0].Content)
	}
}

func TestPracticeAIContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionsJSON()})
	gen := newTestGenerator(mock, johnLookup())

	res, err := gen.Practice(context.Background(), drill.KindContext, PracticeConfig{By: ByTheme, Value: "incarnation"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsAIGenerated {
		t.Fatal("expected AI generated drill")
	}

	ctxDrill := res.Drill.(*drill.Context)
	q := ctxDrill.Questions[2]
	if q.ID != fmt.Sprintf("practice-ctx-%d-2", fixedNow.UnixMilli()) {
		t.Errorf("unexpected id: %q", q.ID)
	}
	if q.Passage.Text != "Jesus wept." || q.CorrectIndex != 2 {
		t.Errorf("unexpected question: %+v", q)
	}
	if mock.Calls[0].Schema.Name != "practice-questions" {
		t.Errorf("unexpected schema: %q", mock.Calls[0].Schema.Name)
	}
}

func TestPracticeAIVerseMatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: referencesJSON()})
	gen := newTestGenerator(mock, johnLookup())

	res, err := gen.Practice(context.Background(), drill.KindVerseMatch, PracticeConfig{By: ByRandom})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vm := res.Drill.(*drill.VerseMatch)
	if len(vm.Pairs) != 3 || vm.Pairs[1].Text != "The Word became flesh and made his dwelling among us." {
		t.Errorf("unexpected pairs: %+v", vm.Pairs)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "across the entire Bible") {
		t.Error("random selector should ask for passages across the Bible")
	}
}

func TestPracticeFallbackWithoutProvider(t *testing.T) {
	gen := newTestGenerator(nil, nil)

	for _, kind := range drill.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			res, err := gen.Practice(context.Background(), kind, PracticeConfig{By: ByRandom})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.IsAIGenerated {
				t.Error("fallback drill must not be marked AI generated")
			}
			if res.Drill.Kind() != kind {
				t.Errorf("kind = %s, want %s", res.Drill.Kind(), kind)
			}
		})
	}
}

func TestPracticeFallbackOnLLMError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("quota exceeded")})
	gen := newTestGenerator(mock, johnLookup())

	res, err := gen.Practice(context.Background(), drill.KindContext, PracticeConfig{By: ByBook, Value: "Joshua"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsAIGenerated {
		t.Error("expected fallback drill")
	}

	ctxDrill := res.Drill.(*drill.Context)
	if len(ctxDrill.Questions) != 1 {
		t.Fatalf("expected 1 question for a single Joshua passage, got %d", len(ctxDrill.Questions))
	}
	q := ctxDrill.Questions[0]
	if q.Passage.Reference != "Joshua 1:9" {
		t.Errorf("unexpected passage: %q", q.Passage.Reference)
	}
	if q.ID != fmt.Sprintf("fallback-ctx-%d-0", fixedNow.UnixMilli()) {
		t.Errorf("unexpected id: %q", q.ID)
	}

	want, _ := corpus.Default().QuestionFor("Joshua 1:9")
	if q.Question != want.Question {
		t.Errorf("expected first tagged question %q, got %q", want.Question, q.Question)
	}
}

func TestPracticeFallbackUnmatchedFilterUsesAllPassages(t *testing.T) {
	gen := newTestGenerator(nil, nil)

	res, err := gen.Practice(context.Background(), drill.KindMemorization, PracticeConfig{By: ByBook, Value: "Obadiah"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mem := res.Drill.(*drill.Memorization)
	if len(mem.Questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(mem.Questions))
	}
	if !strings.HasPrefix(mem.Questions[0].ID, "fallback-mem-") {
		t.Errorf("unexpected id: %q", mem.Questions[0].ID)
	}
}

func TestPracticeUnknownKind(t *testing.T) {
	gen := newTestGenerator(nil, nil)

	_, err := gen.Practice(context.Background(), drill.Kind("ai-themed"), PracticeConfig{})
	if !errors.Is(err, drill.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestPracticeWithBibleAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "99") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"reference": %q, "text": "Sample text for the verse.\n", "verses": [{"book_name": "John", "chapter": 1, "verse": 1}]}`,
			strings.TrimPrefix(r.URL.Path, "/"))
	}))
	defer srv.Close()

	mock := llm.NewMockProvider(llm.MockResponse{Content: referencesJSON()})
	gen := newTestGenerator(mock, bibleapi.New(srv.URL))

	res, err := gen.Practice(context.Background(), drill.KindVerseMatch, PracticeConfig{By: ByChapter, Value: "John 1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vm := res.Drill.(*drill.VerseMatch)
	if vm.Pairs[0].Text != "Sample text for the verse." {
		t.Errorf("unexpected text: %q", vm.Pairs[0].Text)
	}
	if vm.Pairs[2].Text != PlaceholderText {
		t.Errorf("expected placeholder for unknown reference, got %q", vm.Pairs[2].Text)
	}
}

func TestPracticeResultJSON(t *testing.T) {
	res := PracticeResult{
		Drill:         &drill.VerseMatch{Pairs: []drill.VerseMatchPair{{Reference: "John 3:16", Text: "For God so loved"}}},
		IsAIGenerated: true,
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"type":"verse-match"`) || !strings.Contains(s, `"isAiGenerated":true`) {
		t.Errorf("unexpected JSON: %s", s)
	}
}
