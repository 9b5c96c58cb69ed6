package workout

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/rng"
)

var day = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

func TestGenerateDailyShape(t *testing.T) {
	w, err := GenerateDaily(corpus.Default(), "user-1", day)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("workout-%d", rng.FinalSeed(day, "user-1")), w.ID)
	assert.Equal(t, "2024-03-15", w.Date)
	assert.False(t, w.Completed)
	assert.False(t, w.IsGroupChallenge)
	assert.Zero(t, w.TotalScore)
	require.NotNil(t, w.Scores.Rearrange)
	assert.Zero(t, *w.Scores.Rearrange)

	require.Len(t, w.Drills, 4)
	for i, k := range drill.Kinds {
		assert.Equal(t, k, w.Drills[i].Kind(), "drill %d", i)
	}

	mem := w.Drills[0].(*drill.Memorization)
	ctx := w.Drills[1].(*drill.Context)
	assert.Len(t, mem.Questions, PassagesPerWorkout)
	assert.Len(t, ctx.Questions, PassagesPerWorkout)
	for i := range mem.Questions {
		assert.Equal(t, mem.Questions[i].Passage, ctx.Questions[i].Passage)
	}
	assert.Len(t, w.Drills[2].(*drill.VerseMatch).Pairs, drill.VerseMatchPairs)
}

func TestGenerateDailyDeterministic(t *testing.T) {
	c := corpus.Default()
	a, err := GenerateDaily(c, "user-1", day)
	require.NoError(t, err)
	b, err := GenerateDaily(c, "user-1", day.Add(10*time.Hour))
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(ja), string(jb))
}

func TestGenerateDailyVariesByUserAndDay(t *testing.T) {
	c := corpus.Default()
	a, _ := GenerateDaily(c, "user-1", day)
	b, _ := GenerateDaily(c, "user-2", day)
	next, _ := GenerateDaily(c, "user-1", day.AddDate(0, 0, 1))

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, next.ID)
	assert.Equal(t, "2024-03-16", next.Date)
}

func TestGenerateDailyAnonymous(t *testing.T) {
	w, err := GenerateDaily(corpus.Default(), "", day)
	require.NoError(t, err)
	assert.Equal(t, "workout-20240315", w.ID)
}

func TestGenerateDailyEmptyCorpus(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*corpus.Corpus)
		want   string
	}{
		{"passages", func(c *corpus.Corpus) { c.Passages = nil }, corpus.CollectionPassages},
		{"questions", func(c *corpus.Corpus) { c.ContextQuestions = nil }, corpus.CollectionContextQuestions},
		{"verse match", func(c *corpus.Corpus) { c.VerseMatchItems = nil }, corpus.CollectionVerseMatchItems},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := corpus.Default()
			tt.mutate(c)
			_, err := GenerateDaily(c, "user-1", day)
			require.Error(t, err)
			assert.True(t, errors.Is(err, corpus.ErrEmptyCollection))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRecordScore(t *testing.T) {
	w, err := GenerateDaily(corpus.Default(), "user-1", day)
	require.NoError(t, err)

	require.NoError(t, w.RecordScore(drill.KindMemorization, 80))
	require.NoError(t, w.RecordScore(drill.KindContext, 67))
	require.NoError(t, w.RecordScore(drill.KindVerseMatch, 100))
	require.NoError(t, w.RecordScore(drill.KindRearrange, 50))
	assert.Equal(t, 297, w.TotalScore)
	assert.Equal(t, 400, w.MaxScore())
	assert.Equal(t, 74, w.Average())
	assert.Equal(t, 50, w.Scores.Get(drill.KindRearrange))

	assert.Error(t, w.RecordScore(drill.KindContext, 101))
	assert.ErrorIs(t, w.RecordScore("sudoku", 10), drill.ErrUnknownKind)

	w.Complete()
	assert.True(t, w.Completed)
	assert.Equal(t, 297, w.TotalScore)
}

func TestNewWithoutRearrange(t *testing.T) {
	w := New("workout-ai-1", day, &drill.Memorization{}, &drill.Context{}, &drill.VerseMatch{})
	assert.Nil(t, w.Scores.Rearrange)
	assert.Equal(t, 0, w.Scores.Get(drill.KindRearrange))

	b, err := json.Marshal(w.Scores)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "rearrange")
}

func TestReplaceDrill(t *testing.T) {
	w, err := GenerateDaily(corpus.Default(), "user-1", day)
	require.NoError(t, err)
	require.NoError(t, w.RecordScore(drill.KindRearrange, 40))

	require.NoError(t, w.ReplaceDrill(3, &drill.Context{}))
	assert.Nil(t, w.Scores.Rearrange)
	assert.Equal(t, 0, w.TotalScore)

	require.NoError(t, w.ReplaceDrill(0, &drill.Rearrange{}))
	require.NotNil(t, w.Scores.Rearrange)
	assert.Error(t, w.ReplaceDrill(4, &drill.Context{}))
}

func TestWorkoutJSONRoundTrip(t *testing.T) {
	w, err := GenerateDaily(corpus.Default(), "user-1", day)
	require.NoError(t, err)
	require.NoError(t, w.RecordScore(drill.KindVerseMatch, 33))

	b, err := json.Marshal(w)
	require.NoError(t, err)
	var got Workout
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, w, &got)
}

func TestClone(t *testing.T) {
	w, err := GenerateDaily(corpus.Default(), "user-1", day)
	require.NoError(t, err)
	c := w.Clone()
	require.NoError(t, c.RecordScore(drill.KindRearrange, 90))
	assert.Equal(t, 0, *w.Scores.Rearrange)
	assert.Nil(t, (*Workout)(nil).Clone())
}
