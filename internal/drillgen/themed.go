package drillgen

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/llm"
	"github.com/abhisek/biblegym/internal/rng"
	"github.com/abhisek/biblegym/internal/workout"
)

// Themes is the pool RandomDrill picks from.
var Themes = []string{
	"Faith and Endurance",
	"Love and Compassion",
	"God's Power and Majesty",
	"Forgiveness and Mercy",
	"Hope and Encouragement",
	"Wisdom and Guidance",
	"Peace and Stillness",
	"Service and Sacrifice",
}

// ErrEmptyTheme is returned when ThemedWorkout gets a blank theme.
var ErrEmptyTheme = errors.New("theme is empty")

// ThemedWorkout asks the LLM for three passages on theme and builds a
// group-challenge workout of memorization, context and verse-match drills.
func (g *Generator) ThemedWorkout(ctx context.Context, theme string) (*workout.Workout, error) {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return nil, ErrEmptyTheme
	}

	ctx = llm.WithPurpose(ctx, PurposeThemedWorkout)
	batch, err := g.request(ctx, ThemedPassagesSchema, buildThemedMessage(theme), true, true)
	if err != nil {
		return nil, fmt.Errorf("themed workout %q: %w", theme, err)
	}

	stamp := g.stamp()
	passages := make([]corpus.Passage, len(batch.Passages))
	for i, p := range batch.Passages {
		passages[i] = p.Passage()
	}

	mem, err := g.memorization(passages, "ai-mem", stamp)
	if err != nil {
		return nil, err
	}
	ctxDrill := contextFromBatch(batch, passages, "ai-ctx", stamp)
	vm := verseMatchFrom(passages)

	w := workout.New(fmt.Sprintf("workout-ai-%d", stamp), g.now(), mem, ctxDrill, vm)
	w.IsGroupChallenge = true
	w.Theme = theme
	return w, nil
}

// RandomDrill builds a themed workout on a random theme and returns one of
// its drills.
func (g *Generator) RandomDrill(ctx context.Context) (drill.Drill, error) {
	theme := Themes[rng.Intn(g.src, len(Themes))]
	w, err := g.ThemedWorkout(ctx, theme)
	if err != nil {
		return nil, err
	}
	return w.Drills[rng.Intn(g.src, len(w.Drills))], nil
}

func (g *Generator) memorization(passages []corpus.Passage, prefix string, stamp int64) (*drill.Memorization, error) {
	mem, err := drill.GenerateMemorization(passages, g.src)
	if err != nil {
		return nil, fmt.Errorf("memorization drill: %w", err)
	}
	for i := range mem.Questions {
		mem.Questions[i].ID = fmt.Sprintf("%s-%d-%d", prefix, stamp, i)
	}
	return mem, nil
}

func contextFromBatch(batch *Batch, passages []corpus.Passage, prefix string, stamp int64) *drill.Context {
	items := make([]drill.ContextItem, len(batch.Passages))
	for i, p := range batch.Passages {
		q := p.ContextQuestion
		items[i] = drill.ContextItem{
			ID:           fmt.Sprintf("%s-%d-%d", prefix, stamp, i),
			Question:     q.Question,
			Options:      slices.Clone(q.Options),
			CorrectIndex: q.CorrectIndex,
			Passage:      passages[i],
		}
	}
	return &drill.Context{Questions: items}
}

func verseMatchFrom(passages []corpus.Passage) *drill.VerseMatch {
	pairs := make([]drill.VerseMatchPair, len(passages))
	for i, p := range passages {
		pairs[i] = drill.VerseMatchPair{Reference: p.Reference, Text: p.Text}
	}
	return &drill.VerseMatch{Pairs: pairs}
}
