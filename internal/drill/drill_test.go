package drill

import (
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/rng"
)

var philippians = corpus.Passage{
	Reference: "Philippians 4:13",
	Text:      "I can do all things through Christ who strengthens me.",
	Book:      "Philippians",
	Chapter:   4,
	Verses:    "13",
}

func TestBlankCount(t *testing.T) {
	tests := []struct{ words, want int }{
		{0, 2}, {1, 2}, {9, 2}, {10, 3}, {33, 9}, {100, 30},
	}
	for _, tt := range tests {
		if got := BlankCount(tt.words); got != tt.want {
			t.Errorf("BlankCount(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestGenerateMemorizationPhilippians(t *testing.T) {
	eligible := map[int]string{
		1: "can", 3: "all", 4: "things", 5: "through", 6: "Christ", 7: "who", 8: "strengthens",
	}

	for seed := int64(1); seed < 50; seed++ {
		d, err := GenerateMemorization([]corpus.Passage{philippians}, rng.New(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		q := d.Questions[0]
		if q.ID != "mem-0" {
			t.Errorf("id = %q, want mem-0", q.ID)
		}
		if len(q.BlankedWords) != 2 {
			t.Fatalf("seed %d: %d blanks, want 2", seed, len(q.BlankedWords))
		}
		for _, b := range q.BlankedWords {
			if eligible[b.Index] != b.Word {
				t.Errorf("seed %d: blank %+v is not an eligible word", seed, b)
			}
		}
		if q.BlankedWords[0].Index >= q.BlankedWords[1].Index {
			t.Errorf("seed %d: blanks not sorted: %+v", seed, q.BlankedWords)
		}
	}
}

func TestBlankCountInvariant(t *testing.T) {
	c := corpus.Default()
	for seed := int64(1); seed < 20; seed++ {
		d, err := GenerateMemorization(c.Passages, rng.New(seed))
		if err != nil {
			t.Fatal(err)
		}
		for i, q := range d.Questions {
			words := strings.Split(c.Passages[i].Text, " ")
			e := 0
			for _, w := range words {
				if letterCount(w) > 2 {
					e++
				}
			}
			want := min(e, BlankCount(len(words)))
			if len(q.BlankedWords) != want {
				t.Errorf("%s: %d blanks, want %d", q.Passage.Reference, len(q.BlankedWords), want)
			}
		}
	}
}

func TestMemorizationNoEligibleWords(t *testing.T) {
	p := corpus.Passage{Reference: "X 1:1", Text: "I am so."}
	d, err := GenerateMemorization([]corpus.Passage{p}, rng.New(3))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(d.Questions[0].BlankedWords); n != 0 {
		t.Fatalf("blanks = %d, want 0", n)
	}
	if got := ScoreMemorization(d, nil); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestScoreMemorization(t *testing.T) {
	d := &Memorization{Questions: []MemorizationQuestion{{
		ID:      "mem-0",
		Passage: philippians,
		BlankedWords: []BlankedWord{
			{Index: 4, Word: "things"},
			{Index: 8, Word: "strengthens"},
		},
	}}}

	tests := []struct {
		name    string
		answers map[string]map[int]string
		want    int
	}{
		{"exact", map[string]map[int]string{"mem-0": {4: "things", 8: "strengthens"}}, 100},
		{"case and spaces", map[string]map[int]string{"mem-0": {4: "  Things ", 8: "STRENGTHENS"}}, 100},
		{"one right", map[string]map[int]string{"mem-0": {4: "things", 8: "strength"}}, 50},
		{"wrong", map[string]map[int]string{"mem-0": {4: "stuff", 8: "helps"}}, 0},
		{"missing question", map[string]map[int]string{}, 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreMemorization(d, tt.answers); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMemorizationExpectsPunctuationStripped(t *testing.T) {
	d := &Memorization{Questions: []MemorizationQuestion{{
		ID:           "mem-0",
		BlankedWords: []BlankedWord{{Index: 0, Word: "Lord,"}, {Index: 1, Word: "name's"}},
	}}}
	got := ScoreMemorization(d, map[string]map[int]string{"mem-0": {0: "lord", 1: "names"}})
	if got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestGenerateContext(t *testing.T) {
	c := corpus.Default()
	psalm, _ := c.Passage("Psalm 23:1-4")
	passages := []corpus.Passage{philippians, psalm}

	d, err := GenerateContext(passages, c.ContextQuestions, rng.New(42))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(d.Questions))
	}

	first := d.Questions[0]
	if first.ID != "ctx-0" || first.Passage.Reference != "Philippians 4:13" {
		t.Errorf("first item = %+v", first)
	}
	if first.Question != c.ContextQuestions[0].Question && first.Question != c.ContextQuestions[1].Question {
		t.Errorf("first question %q is not about Philippians", first.Question)
	}

	// Psalm 23 has no tagged questions; any pool question may be used.
	second := d.Questions[1]
	if second.ID != "ctx-1" || second.Passage.Reference != "Psalm 23:1-4" {
		t.Errorf("second item = %+v", second)
	}
	found := false
	for _, q := range c.ContextQuestions {
		if q.Question == second.Question {
			found = true
		}
	}
	if !found {
		t.Errorf("fallback question %q not from pool", second.Question)
	}
}

func TestGenerateContextEmptyPool(t *testing.T) {
	_, err := GenerateContext([]corpus.Passage{philippians}, nil, rng.New(1))
	if !errors.Is(err, corpus.ErrEmptyCollection) {
		t.Fatalf("err = %v, want ErrEmptyCollection", err)
	}
	if !strings.Contains(err.Error(), corpus.CollectionContextQuestions) {
		t.Errorf("error %q does not name the collection", err)
	}
}

func TestScoreContextPartial(t *testing.T) {
	d := &Context{Questions: []ContextItem{
		{ID: "ctx-0", CorrectIndex: 1},
		{ID: "ctx-1", CorrectIndex: 2},
		{ID: "ctx-2", CorrectIndex: 0},
	}}
	got := ScoreContext(d, map[string]int{"ctx-0": 1, "ctx-1": 2})
	if got != 67 {
		t.Errorf("score = %d, want 67", got)
	}
	// Zero is a real answer, not a missing one.
	if got := ScoreContext(d, map[string]int{"ctx-2": 0}); got != 33 {
		t.Errorf("score = %d, want 33", got)
	}
	if got := ScoreContext(&Context{}, nil); got != 0 {
		t.Errorf("empty score = %d, want 0", got)
	}
}

func TestGenerateVerseMatch(t *testing.T) {
	c := corpus.Default()
	d, err := GenerateVerseMatch(c.VerseMatchItems, rng.New(7))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Pairs) != VerseMatchPairs {
		t.Fatalf("pairs = %d, want %d", len(d.Pairs), VerseMatchPairs)
	}
	seen := map[string]bool{}
	for _, p := range d.Pairs {
		if seen[p.Reference] {
			t.Errorf("duplicate pair %s", p.Reference)
		}
		seen[p.Reference] = true
	}

	small, err := GenerateVerseMatch(c.VerseMatchItems[:2], rng.New(7))
	if err != nil {
		t.Fatal(err)
	}
	if len(small.Pairs) != 2 {
		t.Errorf("pairs from pool of 2 = %d", len(small.Pairs))
	}
}

func TestScoreVerseMatch(t *testing.T) {
	d := &VerseMatch{Pairs: []VerseMatchPair{
		{Reference: "A", Text: "alpha"},
		{Reference: "B", Text: "beta"},
		{Reference: "C", Text: "gamma"},
	}}
	tests := []struct {
		name    string
		matches map[string]string
		want    int
	}{
		{"all", map[string]string{"A": "alpha", "B": "beta", "C": "gamma"}, 100},
		{"swapped", map[string]string{"A": "beta", "B": "alpha", "C": "gamma"}, 33},
		{"not fuzzy", map[string]string{"A": "Alpha", "B": "beta "}, 0},
		{"none", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreVerseMatch(d, tt.matches); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
	if got := ScoreVerseMatch(&VerseMatch{}, nil); got != 0 {
		t.Errorf("empty score = %d, want 0", got)
	}
}

func TestSplitClauses(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{
			"Have I not commanded you? Be strong and courageous. Do not be afraid; do not be discouraged, for the Lord your God will be with you wherever you go.",
			[]string{
				"Have I not commanded you?",
				"Be strong and courageous.",
				"Do not be afraid;",
				"do not be discouraged, for the Lord your God will be with you wherever you go.",
			},
		},
		{"Jesus wept", []string{"Jesus wept"}},
		{"One.  Two.\nThree", []string{"One.", "Two.", "Three"}},
		{"  Lead.  ", []string{"Lead."}},
		{"", nil},
		{"v1.0 is out", []string{"v1.0 is out"}},
	}
	for _, tt := range tests {
		if got := SplitClauses(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("SplitClauses(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateRearrange(t *testing.T) {
	c := corpus.Default()
	joshua, _ := c.Passage("Joshua 1:9")

	d, err := GenerateRearrange([]corpus.Passage{joshua}, rng.New(11))
	if err != nil {
		t.Fatal(err)
	}
	if d.Passage.Reference != "Joshua 1:9" {
		t.Errorf("passage = %s", d.Passage.Reference)
	}
	if len(d.ShuffledVerses) != 4 {
		t.Fatalf("units = %d, want 4", len(d.ShuffledVerses))
	}
	ids := map[string]int{}
	for _, u := range d.ShuffledVerses {
		ids[u.ID] = u.OriginalIndex
	}
	for i := 0; i < 4; i++ {
		id := "unit-" + string(rune('0'+i))
		if idx, ok := ids[id]; !ok || idx != i {
			t.Errorf("unit %s has index %d (present %v)", id, idx, ok)
		}
	}
}

func TestGenerateRearrangeSingleClauseFallback(t *testing.T) {
	p := corpus.Passage{Reference: "John 11:35", Text: "Jesus wept"}
	d, err := GenerateRearrange([]corpus.Passage{p}, rng.New(5))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.ShuffledVerses) != 1 {
		t.Fatalf("units = %d, want 1", len(d.ShuffledVerses))
	}
	if got := ScoreRearrange(d, []string{"unit-0"}); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestScoreRearrange(t *testing.T) {
	d := &Rearrange{ShuffledVerses: []RearrangeUnit{
		{ID: "unit-2", OriginalIndex: 2},
		{ID: "unit-0", OriginalIndex: 0},
		{ID: "unit-3", OriginalIndex: 3},
		{ID: "unit-1", OriginalIndex: 1},
	}}
	tests := []struct {
		name  string
		order []string
		want  int
	}{
		{"correct", []string{"unit-0", "unit-1", "unit-2", "unit-3"}, 100},
		{"reversed", []string{"unit-3", "unit-2", "unit-1", "unit-0"}, 0},
		{"half", []string{"unit-0", "unit-1", "unit-3", "unit-2"}, 50},
		{"unknown ids", []string{"x", "y"}, 0},
		{"duplicates", []string{"unit-0", "unit-0", "unit-0", "unit-0"}, 25},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreRearrange(d, tt.order); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeneratorsRejectEmptyPassages(t *testing.T) {
	src := rng.New(1)
	if _, err := GenerateMemorization(nil, src); !errors.Is(err, corpus.ErrEmptyCollection) {
		t.Errorf("memorization err = %v", err)
	}
	if _, err := GenerateContext(nil, corpus.Default().ContextQuestions, src); !errors.Is(err, corpus.ErrEmptyCollection) {
		t.Errorf("context err = %v", err)
	}
	if _, err := GenerateVerseMatch(nil, src); !errors.Is(err, corpus.ErrEmptyCollection) {
		t.Errorf("verse match err = %v", err)
	}
	if _, err := GenerateRearrange(nil, src); !errors.Is(err, corpus.ErrEmptyCollection) {
		t.Errorf("rearrange err = %v", err)
	}
}

type foreignDrill struct{}

func (foreignDrill) Kind() Kind { return "foreign" }
func (foreignDrill) drill()     {}

func TestScoreDispatch(t *testing.T) {
	d := &Context{Questions: []ContextItem{{ID: "ctx-0", CorrectIndex: 3}}}
	got, err := Score(d, Answers{Context: map[string]int{"ctx-0": 3}})
	if err != nil || got != 100 {
		t.Errorf("Score = %d, %v; want 100, nil", got, err)
	}

	if _, err := Score(foreignDrill{}, Answers{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("foreign drill err = %v, want ErrUnknownKind", err)
	}
}

func TestListJSON(t *testing.T) {
	c := corpus.Default()
	src := rng.New(99)
	mem, _ := GenerateMemorization(c.Passages[:2], src)
	re, _ := GenerateRearrange(c.Passages, src)

	in := List{mem, re}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"type":"memorization"`) || !strings.Contains(string(b), `"type":"rearrange"`) {
		t.Errorf("missing type tags: %s", b)
	}

	var out List
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("decoded list differs:\n got %+v\nwant %+v", out, in)
	}

	if err := json.Unmarshal([]byte(`[{"type":"sudoku"}]`), &out); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown tag err = %v", err)
	}
}
