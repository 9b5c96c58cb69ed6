// Package workout assembles drills into a daily workout and tracks the
// per-drill scores a user earns while playing it.
package workout

import (
	"fmt"
	"time"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/rng"
)

// PassagesPerWorkout is how many passages a daily workout draws.
const PassagesPerWorkout = 3

// Scores holds one 0-100 score per drill kind. Rearrange is nil for
// workouts without a rearrange drill.
type Scores struct {
	Memorization int  `json:"memorization"`
	Context      int  `json:"context"`
	VerseMatch   int  `json:"verseMatch"`
	Rearrange    *int `json:"rearrange,omitempty"`
}

// Total sums the scores.
func (s Scores) Total() int {
	t := s.Memorization + s.Context + s.VerseMatch
	if s.Rearrange != nil {
		t += *s.Rearrange
	}
	return t
}

// Get returns the score for kind.
func (s Scores) Get(kind drill.Kind) int {
	switch kind {
	case drill.KindMemorization:
		return s.Memorization
	case drill.KindContext:
		return s.Context
	case drill.KindVerseMatch:
		return s.VerseMatch
	case drill.KindRearrange:
		if s.Rearrange != nil {
			return *s.Rearrange
		}
	}
	return 0
}

// Workout is an ordered set of drills played in one sitting.
type Workout struct {
	ID               string     `json:"id"`
	Date             string     `json:"date"`
	Drills           drill.List `json:"drills"`
	Completed        bool       `json:"completed"`
	IsGroupChallenge bool       `json:"isGroupChallenge"`
	Theme            string     `json:"theme,omitempty"`
	Scores           Scores     `json:"scores"`
	TotalScore       int        `json:"totalScore"`
}

// New builds an unscored workout. A rearrange score slot exists only when
// one of the drills is a rearrange drill.
func New(id string, date time.Time, drills ...drill.Drill) *Workout {
	w := &Workout{
		ID:     id,
		Date:   date.Format(time.DateOnly),
		Drills: drills,
	}
	for _, d := range drills {
		if d.Kind() == drill.KindRearrange {
			w.Scores.Rearrange = new(int)
		}
	}
	return w
}

// GenerateDaily builds the reproducible workout for userID on now's
// calendar day (in now's location). The same corpus, user and day always
// yield the same workout.
func GenerateDaily(c *corpus.Corpus, userID string, now time.Time) (*Workout, error) {
	if err := corpus.RequireNonEmpty(corpus.CollectionPassages, len(c.Passages)); err != nil {
		return nil, err
	}

	seed := rng.FinalSeed(now, userID)
	if err := rng.CheckSeed(seed); err != nil {
		return nil, fmt.Errorf("seed for %s on %s: %w", userID, now.Format(time.DateOnly), err)
	}
	src := rng.New(seed)

	selected := make([]corpus.Passage, PassagesPerWorkout)
	for i := range selected {
		selected[i] = c.Passages[rng.Intn(src, len(c.Passages))]
	}

	mem, err := drill.GenerateMemorization(selected, src)
	if err != nil {
		return nil, fmt.Errorf("memorization drill: %w", err)
	}
	ctx, err := drill.GenerateContext(selected, c.ContextQuestions, src)
	if err != nil {
		return nil, fmt.Errorf("context drill: %w", err)
	}
	vm, err := drill.GenerateVerseMatch(c.VerseMatchItems, src)
	if err != nil {
		return nil, fmt.Errorf("verse-match drill: %w", err)
	}
	re, err := drill.GenerateRearrange(selected, src)
	if err != nil {
		return nil, fmt.Errorf("rearrange drill: %w", err)
	}

	return New(fmt.Sprintf("workout-%d", seed), now, mem, ctx, vm, re), nil
}

// RecordScore stores the score for kind and refreshes the total.
func (w *Workout) RecordScore(kind drill.Kind, score int) error {
	if score < 0 || score > 100 {
		return fmt.Errorf("score %d for %s out of range [0,100]", score, kind)
	}
	switch kind {
	case drill.KindMemorization:
		w.Scores.Memorization = score
	case drill.KindContext:
		w.Scores.Context = score
	case drill.KindVerseMatch:
		w.Scores.VerseMatch = score
	case drill.KindRearrange:
		w.Scores.Rearrange = &score
	default:
		return fmt.Errorf("%w: %q", drill.ErrUnknownKind, kind)
	}
	w.TotalScore = w.Scores.Total()
	return nil
}

// ReplaceDrill swaps the drill at index i, keeping score slots consistent
// with the resulting drill set.
func (w *Workout) ReplaceDrill(i int, d drill.Drill) error {
	if i < 0 || i >= len(w.Drills) {
		return fmt.Errorf("drill index %d out of range [0,%d)", i, len(w.Drills))
	}
	w.Drills[i] = d
	hasRearrange := false
	for _, existing := range w.Drills {
		if existing.Kind() == drill.KindRearrange {
			hasRearrange = true
		}
	}
	switch {
	case hasRearrange && w.Scores.Rearrange == nil:
		w.Scores.Rearrange = new(int)
	case !hasRearrange:
		w.Scores.Rearrange = nil
	}
	w.TotalScore = w.Scores.Total()
	return nil
}

// MaxScore is the best achievable total.
func (w *Workout) MaxScore() int {
	return 100 * len(w.Drills)
}

// Average returns the mean drill score, rounded down.
func (w *Workout) Average() int {
	if len(w.Drills) == 0 {
		return 0
	}
	return w.TotalScore / len(w.Drills)
}

// Complete marks the workout finished.
func (w *Workout) Complete() {
	w.TotalScore = w.Scores.Total()
	w.Completed = true
}

// Clone returns a copy whose scores can be changed independently. Drills
// are shared; they are never mutated after generation.
func (w *Workout) Clone() *Workout {
	if w == nil {
		return nil
	}
	c := *w
	c.Drills = append(drill.List(nil), w.Drills...)
	if w.Scores.Rearrange != nil {
		r := *w.Scores.Rearrange
		c.Scores.Rearrange = &r
	}
	return &c
}
