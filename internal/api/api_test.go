package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/biblegym/internal/app"
	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/drillgen"
	"github.com/abhisek/biblegym/internal/llm"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/workout"
)

var testNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

func newServer(t *testing.T, provider llm.Provider, opts ...Option) *httptest.Server {
	t.Helper()
	c := corpus.Default()
	gen := drillgen.New(provider, nil, c, drillgen.DefaultConfig(),
		drillgen.WithClock(func() time.Time { return testNow }))
	opts = append(opts, WithClock(func() time.Time { return testNow }))
	h := New(c, gen, opts...)

	r := chi.NewRouter()
	h.Routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var rdr *bytes.Reader
	switch b := body.(type) {
	case nil:
		rdr = bytes.NewReader(nil)
	case string:
		rdr = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, srv.URL+path, rdr)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func TestPassagesAndPacks(t *testing.T) {
	srv := newServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/api/passages", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var passages []corpus.Passage
	require.NoError(t, json.Unmarshal(body, &passages))
	assert.Len(t, passages, len(corpus.Default().Passages))

	resp, body = do(t, srv, http.MethodGet, "/api/packs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var packs []corpus.MasteryPack
	require.NoError(t, json.Unmarshal(body, &packs))
	assert.Len(t, packs, len(corpus.Default().MasteryPacks))
}

func TestDailyWorkout(t *testing.T) {
	srv := newServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/api/workouts/daily?user=u1&date=2024-03-20", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got workout.Workout
	require.NoError(t, json.Unmarshal(body, &got))

	want, err := workout.GenerateDaily(corpus.Default(), "u1", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "2024-03-20", got.Date)
	assert.Len(t, got.Drills, 4)
}

func TestDailyWorkoutBadDate(t *testing.T) {
	srv := newServer(t, nil)
	resp, _ := do(t, srv, http.MethodGet, "/api/workouts/daily?date=20-03-2024", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestThemedWorkoutWithoutProvider(t *testing.T) {
	srv := newServer(t, nil)
	resp, _ := do(t, srv, http.MethodPost, "/api/workouts/themed", map[string]string{"theme": "Hope"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestThemedWorkout(t *testing.T) {
	content := json.RawMessage(`{"passages": [
		{"reference": "Romans 15:13", "text": "May the God of hope fill you with all joy and peace.", "book": "Romans", "chapter": 15, "verses": "13",
		 "contextQuestion": {"question": "Who wrote Romans?", "options": ["Paul", "Peter", "John", "Luke"], "correctIndex": 0}},
		{"reference": "Hebrews 6:19", "text": "We have this hope as an anchor for the soul, firm and secure.", "book": "Hebrews", "chapter": 6, "verses": "19",
		 "contextQuestion": {"question": "What is hope compared to?", "options": ["A rock", "An anchor", "A lamp", "A shield"], "correctIndex": 1}},
		{"reference": "Lamentations 3:22-23", "text": "Because of the Lord's great love we are not consumed, for his compassions never fail.", "book": "Lamentations", "chapter": 3, "verses": "22-23",
		 "contextQuestion": {"question": "Who is traditionally the author?", "options": ["David", "Moses", "Jeremiah", "Ezra"], "correctIndex": 2}}
	]}`)
	srv := newServer(t, llm.NewMockProvider(llm.MockResponse{Content: content}))

	resp, body := do(t, srv, http.MethodPost, "/api/workouts/themed", map[string]string{"theme": "Hope"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got workout.Workout
	require.NoError(t, json.Unmarshal(body, &got))
	assert.True(t, got.IsGroupChallenge)
	assert.Equal(t, "Hope", got.Theme)
	assert.Len(t, got.Drills, 3)
	assert.Nil(t, got.Scores.Rearrange)
}

func TestThemedWorkoutErrors(t *testing.T) {
	srv := newServer(t, llm.NewMockProvider())

	resp, _ := do(t, srv, http.MethodPost, "/api/workouts/themed", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/api/workouts/themed", map[string]string{"theme": " "})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// the empty mock script fails as an unavailable provider
	resp, _ = do(t, srv, http.MethodPost, "/api/workouts/themed", map[string]string{"theme": "Hope"})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestPracticeDrill(t *testing.T) {
	srv := newServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/api/drills/practice", map[string]string{"type": "memorization", "by": "book", "value": "Romans"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got struct {
		Drill         json.RawMessage `json:"drill"`
		IsAIGenerated bool            `json:"isAiGenerated"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.False(t, got.IsAIGenerated)

	d, err := drill.Decode(got.Drill)
	require.NoError(t, err)
	mem, ok := d.(*drill.Memorization)
	require.True(t, ok)
	require.Len(t, mem.Questions, 1)
	assert.Equal(t, "Romans 8:28", mem.Questions[0].Passage.Reference)

	resp, _ = do(t, srv, http.MethodPost, "/api/drills/practice", map[string]string{"type": "ai-themed"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func verseMatchDrill(t *testing.T) json.RawMessage {
	t.Helper()
	data, err := drill.Encode(&drill.VerseMatch{Pairs: []drill.VerseMatchPair{
		{Reference: "John 3:16", Text: "For God so loved the world"},
		{Reference: "Psalm 23:1", Text: "The Lord is my shepherd"},
	}})
	require.NoError(t, err)
	return data
}

func TestScoreDrill(t *testing.T) {
	srv := newServer(t, nil)

	req := map[string]any{
		"drill": verseMatchDrill(t),
		"answers": drill.Answers{VerseMatch: map[string]string{
			"John 3:16":  "For God so loved the world",
			"Psalm 23:1": "For God so loved the world",
		}},
	}
	resp, body := do(t, srv, http.MethodPost, "/api/drills/score", req)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got scoreResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 50, got.Score)

	resp, _ = do(t, srv, http.MethodPost, "/api/drills/score", map[string]any{"drill": map[string]string{"type": "sprint"}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/api/drills/score", `{"drill": 12`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMasteryDisplay(t *testing.T) {
	srv := newServer(t, nil)
	passage := corpus.Passage{Reference: "John 11:35", Text: "Jesus wept."}

	resp, body := do(t, srv, http.MethodPost, "/api/mastery/display", map[string]any{"passage": passage, "level": 4})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got displayResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "J____ w___.", got.Text)

	resp, _ = do(t, srv, http.MethodPost, "/api/mastery/display", map[string]any{"passage": passage, "level": 9})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMasteryAttempt(t *testing.T) {
	srv := newServer(t, nil)
	rec := mastery.Start(corpus.Passage{Reference: "John 11:35", Text: "Jesus wept."}, testNow.Add(-time.Hour))

	resp, body := do(t, srv, http.MethodPost, "/api/mastery/attempt", map[string]any{
		"mastery": rec, "level": 1, "input": "jesus wept", "seconds": 4,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got attemptResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 100, got.Accuracy)
	assert.True(t, got.Passed)
	assert.Equal(t, "level-cleared", got.Trigger)
	assert.Equal(t, mastery.LevelLightBlanks, got.Mastery.CurrentLevel)
	assert.Equal(t, 4, got.Mastery.BestTime)
	assert.True(t, got.Mastery.LastPracticed.Equal(testNow))

	resp, _ = do(t, srv, http.MethodPost, "/api/mastery/attempt", map[string]any{
		"mastery": rec, "level": 3, "input": "jesus wept",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/api/mastery/attempt", map[string]any{"level": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMasteryAttemptRejectsForgedRecord(t *testing.T) {
	srv := newServer(t, nil)
	base := mastery.Start(corpus.Passage{Reference: "John 11:35", Text: "Jesus wept."}, testNow)

	tests := []struct {
		name  string
		edit  func(v *mastery.VerseMastery)
		level int
	}{
		{"level out of range", func(v *mastery.VerseMastery) { v.CurrentLevel = 9 }, 5},
		{"unknown status", func(v *mastery.VerseMastery) { v.Status = "expert" }, 1},
		{"mastered below last level", func(v *mastery.VerseMastery) { v.Status = mastery.StatusMastered }, 1},
		{"accuracy over 100", func(v *mastery.VerseMastery) { v.BestAccuracy = 140 }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := base.Clone()
			tt.edit(rec)
			resp, body := do(t, srv, http.MethodPost, "/api/mastery/attempt", map[string]any{
				"mastery": rec, "level": tt.level, "input": "jesus wept",
			})
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(body))
		})
	}
}

func TestState(t *testing.T) {
	srv := newServer(t, nil)
	resp, _ := do(t, srv, http.MethodGet, "/api/state", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	engine, err := app.NewEngine(context.Background(), nil, nil)
	require.NoError(t, err)
	_, _, err = engine.Dispatch(context.Background(), app.SetUser{User: app.NewUser("Ruth", "ruth@example.com", testNow)})
	require.NoError(t, err)

	srv = newServer(t, nil, WithEngine(engine))
	resp, body := do(t, srv, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var st app.State
	require.NoError(t, json.Unmarshal(body, &st))
	require.NotNil(t, st.User)
	assert.Equal(t, "Ruth", st.User.Name)
}
