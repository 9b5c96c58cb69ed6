package cmd

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/ui/render"
)

func testPrompter(input string) (*prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return newPrompter(strings.NewReader(input), &out, &render.Renderer{Width: 40}), &out
}

func TestLetterIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"a", 0, true},
		{"D", 3, true},
		{"e", 0, false},
		{"2", 1, true},
		{"0", 0, false},
		{"5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := letterIndex(tt.in, 4)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("letterIndex(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseOrder(t *testing.T) {
	units := []drill.RearrangeUnit{{ID: "c"}, {ID: "a"}, {ID: "b"}}

	got, ok := parseOrder("2, 3 1", units)
	if !ok || !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("parseOrder = %v, %v", got, ok)
	}
	for _, bad := range []string{"1 2", "1 1 2", "1 2 4", "x y z"} {
		if _, ok := parseOrder(bad, units); ok {
			t.Errorf("parseOrder(%q) should fail", bad)
		}
	}
}

func TestPlayContextDrill(t *testing.T) {
	p := corpus.Passage{Reference: "Joshua 1:9", Text: "Be strong and courageous."}
	d := &drill.Context{Questions: []drill.ContextItem{
		{ID: "ctx-0", Question: "Who succeeded Moses?", Options: []string{"Aaron", "Joshua", "Caleb", "Eli"}, CorrectIndex: 1, Passage: p},
		{ID: "ctx-1", Question: "Which river?", Options: []string{"Nile", "Euphrates", "Jordan", "Tigris"}, CorrectIndex: 2, Passage: p},
	}}

	pr, out := testPrompter("z\nb\n3\n")
	a, err := pr.playDrill(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score := drill.ScoreContext(d, a.Context); score != 100 {
		t.Errorf("score = %d, want 100", score)
	}
	if !strings.Contains(out.String(), "Pick one of a-d.") {
		t.Error("expected a retry message for an invalid choice")
	}
}

func TestPlayMemorizationDrill(t *testing.T) {
	d := &drill.Memorization{Questions: []drill.MemorizationQuestion{{
		ID:           "mem-0",
		Passage:      corpus.Passage{Reference: "John 11:35", Text: "Jesus wept."},
		BlankedWords: []drill.BlankedWord{{Index: 0, Word: "Jesus"}, {Index: 1, Word: "wept."}},
	}}}

	pr, _ := testPrompter("Jesus\nwept\n")
	a, err := pr.playDrill(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score := drill.ScoreMemorization(d, a.Memorization); score != 100 {
		t.Errorf("score = %d, want 100", score)
	}
}

func TestPlayQuit(t *testing.T) {
	d := &drill.Rearrange{ShuffledVerses: []drill.RearrangeUnit{{ID: "a"}, {ID: "b"}}}
	pr, _ := testPrompter("q\n")
	if _, err := pr.playDrill(d); !errors.Is(err, errQuit) {
		t.Fatalf("expected errQuit, got %v", err)
	}
}
