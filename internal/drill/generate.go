package drill

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/rng"
)

// VerseMatchPairs is how many pairs a verse-match drill puts in play.
const VerseMatchPairs = 3

// BlankRatio is the share of a passage's words a memorization question
// tries to blank, with a floor of MinBlanks.
const (
	BlankRatio = 0.3
	MinBlanks  = 2
)

// GenerateMemorization blanks words from each passage. Only words with more
// than two ASCII letters are eligible; when fewer are eligible than wanted,
// all of them are blanked.
func GenerateMemorization(passages []corpus.Passage, src rng.Source) (*Memorization, error) {
	if err := corpus.RequireNonEmpty(corpus.CollectionPassages, len(passages)); err != nil {
		return nil, err
	}

	questions := make([]MemorizationQuestion, len(passages))
	for p, passage := range passages {
		words := strings.Split(passage.Text, " ")
		numBlanks := BlankCount(len(words))

		var eligible []BlankedWord
		for i, w := range words {
			if letterCount(w) > 2 {
				eligible = append(eligible, BlankedWord{Index: i, Word: w})
			}
		}

		picked := rng.Shuffle(eligible, src)
		if len(picked) > numBlanks {
			picked = picked[:numBlanks]
		}
		slices.SortFunc(picked, func(a, b BlankedWord) int { return a.Index - b.Index })

		questions[p] = MemorizationQuestion{
			ID:           fmt.Sprintf("mem-%d", p),
			Passage:      passage,
			BlankedWords: picked,
		}
	}
	return &Memorization{Questions: questions}, nil
}

// BlankCount is max(MinBlanks, floor(wordCount * BlankRatio)).
func BlankCount(wordCount int) int {
	return max(MinBlanks, int(float64(wordCount)*BlankRatio))
}

// GenerateContext picks one question per passage, preferring questions
// tagged with the passage's reference and otherwise drawing from the whole
// pool.
func GenerateContext(passages []corpus.Passage, pool []corpus.ContextQuestion, src rng.Source) (*Context, error) {
	if err := corpus.RequireNonEmpty(corpus.CollectionPassages, len(passages)); err != nil {
		return nil, err
	}
	if err := corpus.RequireNonEmpty(corpus.CollectionContextQuestions, len(pool)); err != nil {
		return nil, err
	}

	items := make([]ContextItem, len(passages))
	for p, passage := range passages {
		var relevant []corpus.ContextQuestion
		for _, q := range pool {
			if q.PassageReference == passage.Reference {
				relevant = append(relevant, q)
			}
		}

		var q corpus.ContextQuestion
		if len(relevant) > 0 {
			q = relevant[rng.Intn(src, len(relevant))]
		} else {
			q = pool[rng.Intn(src, len(pool))]
		}

		items[p] = ContextItem{
			ID:           fmt.Sprintf("ctx-%d", p),
			Question:     q.Question,
			Options:      slices.Clone(q.Options),
			CorrectIndex: q.CorrectIndex,
			Passage:      passage,
		}
	}
	return &Context{Questions: items}, nil
}

// GenerateVerseMatch shuffles the pool and keeps the first VerseMatchPairs
// items.
func GenerateVerseMatch(pool []corpus.VerseMatchItem, src rng.Source) (*VerseMatch, error) {
	if err := corpus.RequireNonEmpty(corpus.CollectionVerseMatchItems, len(pool)); err != nil {
		return nil, err
	}

	shuffled := rng.Shuffle(pool, src)
	n := min(VerseMatchPairs, len(shuffled))
	pairs := make([]VerseMatchPair, n)
	for i, item := range shuffled[:n] {
		pairs[i] = VerseMatchPair{Reference: item.Reference, Text: item.Text}
	}
	return &VerseMatch{Pairs: pairs}, nil
}

// GenerateRearrange picks a multi-clause passage (one containing "." or
// ";"), or the first passage when none qualify, and shuffles its clauses.
func GenerateRearrange(passages []corpus.Passage, src rng.Source) (*Rearrange, error) {
	if err := corpus.RequireNonEmpty(corpus.CollectionPassages, len(passages)); err != nil {
		return nil, err
	}

	var multi []corpus.Passage
	for _, p := range passages {
		if strings.ContainsAny(p.Text, ".;") {
			multi = append(multi, p)
		}
	}
	passage := passages[0]
	if len(multi) > 0 {
		passage = multi[rng.Intn(src, len(multi))]
	}

	var units []RearrangeUnit
	for _, clause := range SplitClauses(passage.Text) {
		units = append(units, RearrangeUnit{
			ID:            fmt.Sprintf("unit-%d", len(units)),
			Text:          clause,
			OriginalIndex: len(units),
		})
	}

	return &Rearrange{
		Passage:        passage,
		ShuffledVerses: rng.Shuffle(units, src),
	}, nil
}

// SplitClauses cuts text at whitespace that follows '.', ';' or '?',
// trimming each clause and dropping empty ones.
func SplitClauses(text string) []string {
	var (
		clauses []string
		start   int
		prev    rune
	)
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if unicode.IsSpace(r) && (prev == '.' || prev == ';' || prev == '?') {
			clauses = appendClause(clauses, string(runes[start:i]))
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
			}
			start = i + 1
			prev = 0
			continue
		}
		prev = r
	}
	return appendClause(clauses, string(runes[start:]))
}

func appendClause(clauses []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		clauses = append(clauses, s)
	}
	return clauses
}

// letterCount counts ASCII letters in w.
func letterCount(w string) int {
	n := 0
	for _, r := range w {
		if isASCIILetter(r) {
			n++
		}
	}
	return n
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
