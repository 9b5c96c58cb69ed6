package drill

import (
	"fmt"
	"math"
	"strings"
)

// Answers carries a user's submission for any drill kind. Only the field
// matching the drill being scored is read; missing entries earn no credit.
type Answers struct {
	// Memorization maps question id to blank index to the typed word.
	Memorization map[string]map[int]string `json:"memorization,omitempty"`
	// Context maps question id to the selected option index.
	Context map[string]int `json:"context,omitempty"`
	// VerseMatch maps reference to the chosen text.
	VerseMatch map[string]string `json:"verseMatch,omitempty"`
	// Rearrange lists unit ids in the submitted order.
	Rearrange []string `json:"rearrange,omitempty"`
}

// Score dispatches to the scorer for d's kind.
func Score(d Drill, a Answers) (int, error) {
	switch v := d.(type) {
	case *Memorization:
		return ScoreMemorization(v, a.Memorization), nil
	case *Context:
		return ScoreContext(v, a.Context), nil
	case *VerseMatch:
		return ScoreVerseMatch(v, a.VerseMatch), nil
	case *Rearrange:
		return ScoreRearrange(v, a.Rearrange), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownKind, d)
	}
}

// ScoreMemorization compares each trimmed, lowercased answer with the
// blanked word's letters. A drill with no blanks scores 0.
func ScoreMemorization(d *Memorization, answers map[string]map[int]string) int {
	var correct, total int
	for _, q := range d.Questions {
		total += len(q.BlankedWords)
		given := answers[q.ID]
		for _, b := range q.BlankedWords {
			if normalizeAnswer(given[b.Index]) == expectedWord(b.Word) {
				correct++
			}
		}
	}
	return percent(correct, total)
}

// ScoreContext requires the exact option index; unanswered questions are
// wrong.
func ScoreContext(d *Context, selected map[string]int) int {
	correct := 0
	for _, q := range d.Questions {
		if idx, ok := selected[q.ID]; ok && idx == q.CorrectIndex {
			correct++
		}
	}
	return percent(correct, len(d.Questions))
}

// ScoreVerseMatch counts references mapped to exactly their own text.
func ScoreVerseMatch(d *VerseMatch, matches map[string]string) int {
	correct := 0
	for _, p := range d.Pairs {
		if text, ok := matches[p.Reference]; ok && text == p.Text {
			correct++
		}
	}
	return percent(correct, len(d.Pairs))
}

// ScoreRearrange counts positions holding the unit whose original index is
// that position. Unknown ids earn nothing.
func ScoreRearrange(d *Rearrange, order []string) int {
	byID := make(map[string]RearrangeUnit, len(d.ShuffledVerses))
	for _, u := range d.ShuffledVerses {
		byID[u.ID] = u
	}

	correct := 0
	for i, id := range order {
		if u, ok := byID[id]; ok && u.OriginalIndex == i {
			correct++
			delete(byID, id)
		}
	}
	return percent(correct, len(d.ShuffledVerses))
}

func percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// expectedWord keeps only ASCII letters of w, lowercased.
func expectedWord(w string) string {
	var b strings.Builder
	for _, r := range w {
		if isASCIILetter(r) {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
