package app

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/gems"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	seq        int64
	workoutErr error

	workouts []store.WorkoutEventData
	drills   []store.DrillScoreEventData
	mastery  []store.MasteryEventData
	gems     []store.GemEventData
}

func (m *mockEventRepo) next() { m.seq++ }

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	m.next()
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendWorkoutEvent(_ context.Context, data store.WorkoutEventData) error {
	if m.workoutErr != nil {
		return m.workoutErr
	}
	m.next()
	m.workouts = append(m.workouts, data)
	return nil
}
func (m *mockEventRepo) QueryWorkoutEvents(_ context.Context, _ store.QueryOpts) ([]store.WorkoutEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendDrillScoreEvent(_ context.Context, data store.DrillScoreEventData) error {
	m.next()
	m.drills = append(m.drills, data)
	return nil
}
func (m *mockEventRepo) DrillAverages(_ context.Context) ([]store.DrillAverage, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	m.next()
	m.mastery = append(m.mastery, data)
	return nil
}
func (m *mockEventRepo) QueryMasteryEvents(_ context.Context, _ string, _ store.QueryOpts) ([]store.MasteryEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendGemEvent(_ context.Context, data store.GemEventData) error {
	m.next()
	m.gems = append(m.gems, data)
	return nil
}
func (m *mockEventRepo) QueryGemEvents(_ context.Context, _ store.QueryOpts) ([]store.GemEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GemCounts(_ context.Context) (map[string]int, int, error) {
	return nil, 0, nil
}
func (m *mockEventRepo) LatestSequence(_ context.Context) (int64, error) {
	return m.seq, nil
}

// mockSnapshotRepo keeps snapshots in memory.
type mockSnapshotRepo struct {
	snaps []*store.Snapshot
	err   error
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if m.err != nil {
		return m.err
	}
	c := *snap
	m.snaps = append(m.snaps, &c)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snaps) == 0 {
		return nil, nil
	}
	return m.snaps[len(m.snaps)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, keep int) error {
	if len(m.snaps) > keep {
		m.snaps = m.snaps[len(m.snaps)-keep:]
	}
	return nil
}

func newTestEngine(t *testing.T) (*Engine, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	e, err := NewEngine(context.Background(), events, snaps)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e, events, snaps
}

func TestEngineRecordsWorkout(t *testing.T) {
	ctx := context.Background()
	e, events, snaps := newTestEngine(t)

	u := NewUser("Ruth", "ruth@example.com", testNow)
	u.Streak = 4
	u.LastWorkoutDate = "2024-03-14"
	steps := []Action{
		SetUser{User: u},
		StartWorkout{Workout: testWorkout(t)},
		CompleteDrill{Kind: drill.KindMemorization, Score: 100},
		CompleteDrill{Kind: drill.KindContext, Score: 100},
		CompleteDrill{Kind: drill.KindVerseMatch, Score: 100},
		CompleteDrill{Kind: drill.KindRearrange, Score: 60},
		CompleteWorkout{At: testNow},
	}
	for _, a := range steps {
		if _, _, err := e.Dispatch(ctx, a); err != nil {
			t.Fatalf("dispatch %s: %v", a.Name(), err)
		}
	}

	if len(events.drills) != 4 {
		t.Errorf("drill events = %d, want 4", len(events.drills))
	}
	if len(events.workouts) != 1 {
		t.Fatalf("workout events = %d, want 1", len(events.workouts))
	}
	w := events.workouts[0]
	if w.TotalScore != 360 || w.Streak != 5 || w.RearrangeScore == nil || *w.RearrangeScore != 60 {
		t.Errorf("workout event = %+v", w)
	}

	// 5-day streak milestone and a legendary workout (average 90).
	if len(events.gems) != 2 {
		t.Fatalf("gem events = %+v", events.gems)
	}
	if events.gems[0].GemType != string(gems.GemStreak) || events.gems[1].Rarity != string(gems.RarityLegendary) {
		t.Errorf("gems = %+v", events.gems)
	}
	if got := e.SessionGems(); len(got) != 2 {
		t.Errorf("session gems = %d", len(got))
	}
	for _, g := range events.gems {
		if g.WorkoutID == nil || *g.WorkoutID != w.WorkoutID || g.UserID != u.ID {
			t.Errorf("gem not tied to workout %s: %+v", w.WorkoutID, g)
		}
	}

	if len(snaps.snaps) != SnapshotKeep {
		t.Errorf("snapshots kept = %d, want %d", len(snaps.snaps), SnapshotKeep)
	}
	if latest := snaps.snaps[len(snaps.snaps)-1]; latest.Sequence != events.seq {
		t.Errorf("snapshot sequence = %d, want %d", latest.Sequence, events.seq)
	}
}

func TestEngineRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	e, events, snaps := newTestEngine(t)

	p, _ := corpus.Default().MasteryVerse("Psalm 119:105")
	if _, _, err := e.Dispatch(ctx, SetUser{User: NewUser("Esther", "e@example.com", testNow)}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.Dispatch(ctx, StartMastery{Passage: p, At: testNow}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.Dispatch(ctx, StartWorkout{Workout: testWorkout(t)}); err != nil {
		t.Fatal(err)
	}

	restored, err := NewEngine(ctx, events, snaps)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	st := restored.State()
	if st.User == nil || st.User.Name != "Esther" {
		t.Fatalf("user = %+v", st.User)
	}
	if _, ok := st.VerseMastery[p.Reference]; !ok {
		t.Error("mastery record not restored")
	}
	if st.Workout == nil || len(st.Workout.Drills) != 4 {
		t.Fatalf("workout = %+v", st.Workout)
	}
	if st.Workout.Drills[3].Kind() != drill.KindRearrange {
		t.Errorf("drill 3 kind = %s", st.Workout.Drills[3].Kind())
	}
}

func TestEngineMasteryGem(t *testing.T) {
	ctx := context.Background()
	e, events, _ := newTestEngine(t)

	p, _ := corpus.Default().MasteryVerse("Philippians 4:13")
	if _, _, err := e.Dispatch(ctx, StartMastery{Passage: p, At: testNow}); err != nil {
		t.Fatal(err)
	}
	for level := mastery.LevelRead; level <= mastery.MaxLevel; level++ {
		_, out, err := e.Dispatch(ctx, CompleteMasteryLevel{Reference: p.Reference, Level: level, Accuracy: 100, Seconds: 12, At: testNow})
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		if got, want := out.Transition.NewlyMastered(), level == mastery.LevelFirstLetter; got != want {
			t.Errorf("level %d: newly mastered = %v, want %v", level, got, want)
		}
	}

	if len(events.mastery) != 5 {
		t.Errorf("mastery events = %d, want 5", len(events.mastery))
	}
	if ev := events.mastery[3]; ev.Trigger != "mastered" || ev.ToStatus != "mastered" || ev.ToLevel != int(mastery.MaxLevel) {
		t.Errorf("level 4 mastery event = %+v", ev)
	}
	if last := events.mastery[4]; last.Trigger != "review" {
		t.Errorf("level 5 mastery event = %+v", last)
	}
	if len(events.gems) != 1 || events.gems[0].GemType != string(gems.GemVerse) {
		t.Errorf("gems = %+v", events.gems)
	}
	if got := e.State().MasteryStats.TotalMastered; got != 1 {
		t.Errorf("total mastered = %d", got)
	}
}

func TestEngineRecordPractice(t *testing.T) {
	ctx := context.Background()
	e, events, _ := newTestEngine(t)

	if _, _, err := e.Dispatch(ctx, StartPractice{Practice: Practice{Kind: "memorization", By: "book", Value: "John"}}); err != nil {
		t.Fatal(err)
	}
	if err := e.RecordPractice(ctx, drill.KindMemorization, 75, true); err != nil {
		t.Fatal(err)
	}
	if len(events.drills) != 1 {
		t.Fatalf("drill events = %d", len(events.drills))
	}
	d := events.drills[0]
	if d.WorkoutID != "" || !d.AIGenerated || d.Practice["by"] != "book" || d.Practice["value"] != "John" {
		t.Errorf("practice event = %+v", d)
	}
}

func TestEngineWithoutStore(t *testing.T) {
	e, err := NewEngine(context.Background(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.Dispatch(context.Background(), SetUser{User: NewUser("A", "a@example.com", testNow)}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if e.State().User == nil {
		t.Error("user not set")
	}
}

func TestEngineRejectsInvalidAction(t *testing.T) {
	e, events, snaps := newTestEngine(t)
	if _, _, err := e.Dispatch(context.Background(), CompleteWorkout{At: testNow}); err == nil {
		t.Fatal("expected error")
	}
	if len(events.workouts) != 0 || len(snaps.snaps) != 0 {
		t.Error("failed action was persisted")
	}
}

// finishDrills runs a workout up to, but not including, CompleteWorkout.
func finishDrills(t *testing.T, e *Engine) {
	t.Helper()
	u := NewUser("Lydia", "lydia@example.com", testNow)
	steps := []Action{
		SetUser{User: u},
		StartWorkout{Workout: testWorkout(t)},
		CompleteDrill{Kind: drill.KindMemorization, Score: 100},
		CompleteDrill{Kind: drill.KindContext, Score: 100},
		CompleteDrill{Kind: drill.KindVerseMatch, Score: 100},
		CompleteDrill{Kind: drill.KindRearrange, Score: 100},
	}
	for _, a := range steps {
		if _, _, err := e.Dispatch(context.Background(), a); err != nil {
			t.Fatalf("dispatch %s: %v", a.Name(), err)
		}
	}
}

func TestEngineKeepsStateWhenEventFails(t *testing.T) {
	ctx := context.Background()
	e, events, _ := newTestEngine(t)
	finishDrills(t, e)

	events.workoutErr = errors.New("disk full")
	if _, _, err := e.Dispatch(ctx, CompleteWorkout{At: testNow}); err == nil {
		t.Fatal("expected the failed save to surface")
	}
	st := e.State()
	if st.Workout.Completed || st.User.Streak != 0 {
		t.Fatalf("state moved on: completed=%v streak=%d", st.Workout.Completed, st.User.Streak)
	}
	if len(events.gems) != 0 {
		t.Errorf("gems awarded for unsaved workout: %+v", events.gems)
	}

	events.workoutErr = nil
	if _, _, err := e.Dispatch(ctx, CompleteWorkout{At: testNow}); err != nil {
		t.Fatalf("retry: %v", err)
	}
	st = e.State()
	if !st.Workout.Completed || st.User.Streak != 1 || len(events.workouts) != 1 {
		t.Errorf("after retry: completed=%v streak=%d events=%d", st.Workout.Completed, st.User.Streak, len(events.workouts))
	}
}

func TestEngineKeepsStateWhenSnapshotFails(t *testing.T) {
	ctx := context.Background()
	e, _, snaps := newTestEngine(t)

	snaps.err = errors.New("database is locked")
	if _, _, err := e.Dispatch(ctx, SetUser{User: NewUser("Priscilla", "p@example.com", testNow)}); err == nil {
		t.Fatal("expected snapshot error")
	}
	if e.State().User != nil {
		t.Error("user set despite failed snapshot")
	}
}
