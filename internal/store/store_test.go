package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a private in-memory database named after the test.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(context.Background(), fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// saveSnapshots stores n snapshots with sequences 1..n a minute apart.
func saveSnapshots(t *testing.T, repo SnapshotRepo, n int) {
	t.Helper()
	base := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	for i := range n {
		require.NoError(t, repo.Save(context.Background(), &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		}))
	}
}

func TestOpenMigrates(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())

	for _, table := range []string{"snapshots", "workout_events", "mastery_events", "gem_events", "llm_request_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestPragmas(t *testing.T) {
	s := openTestStore(t)

	// journal_mode reports "memory" for in-memory databases.
	for pragma, want := range map[string]string{"foreign_keys": "1", "synchronous": "1"} {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+pragma).Scan(&got))
		assert.Equal(t, want, got, pragma)
	}
}

func TestSnapshotLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	saveSnapshots(t, repo, 3)
	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, int64(3), snap.Sequence)
	assert.Equal(t, 3, snap.Data.Version)
}

func TestSnapshotState(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	state := json.RawMessage(`{"user":{"id":"u1","streak":3}}`)
	require.NoError(t, repo.Save(ctx, &Snapshot{Sequence: 9, Data: SnapshotData{Version: 2, State: state}}))

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, string(state), string(snap.Data.State))
	assert.False(t, snap.Timestamp.IsZero(), "Save stamps a timestamp")
	assert.NotZero(t, snap.ID)
}

func TestSnapshotPrune(t *testing.T) {
	tests := []struct {
		saved, keep, want int
	}{
		{7, 5, 5},
		{2, 5, 2},
		{5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d keep %d", tt.saved, tt.keep), func(t *testing.T) {
			s := openTestStore(t)
			repo := s.SnapshotRepo()
			ctx := context.Background()
			saveSnapshots(t, repo, tt.saved)

			require.NoError(t, repo.Prune(ctx, tt.keep))

			count, err := s.Client().Snapshot.Query().Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)

			snap, err := repo.Latest(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(tt.saved), snap.Sequence)
		})
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	cur, err := sc.Current(ctx)
	require.NoError(t, err)
	assert.Zero(t, cur)

	for want := int64(1); want <= 5; want++ {
		got, err := sc.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	cur, err = sc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cur)
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendDrillScoreEvent(ctx, DrillScoreEventData{DrillType: "context", Score: 50}))
	require.NoError(t, repo.AppendGemEvent(ctx, GemEventData{GemType: "workout", Rarity: "rare", UserID: "u1", Reason: "done"}))
	require.NoError(t, repo.AppendMasteryEvent(ctx, MasteryEventData{Reference: "John 1:1", Level: 1, FromLevel: 1, ToLevel: 1, FromStatus: "learning", ToStatus: "learning", Trigger: "level-failed"}))

	gems, err := repo.QueryGemEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	mastery, err := repo.QueryMasteryEvents(ctx, "", QueryOpts{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), gems[0].Sequence)
	assert.Equal(t, int64(3), mastery[0].Sequence)

	latest, err := repo.LatestSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), latest)
}

func TestWorkoutEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rearrange := 80
	for i, date := range []string{"2026-03-15", "2026-03-16"} {
		require.NoError(t, repo.AppendWorkoutEvent(ctx, WorkoutEventData{
			WorkoutID:         "workout-" + strings.ReplaceAll(date, "-", ""),
			UserID:            "u1",
			Date:              date,
			MemorizationScore: 100,
			ContextScore:      50,
			VerseMatchScore:   67,
			RearrangeScore:    &rearrange,
			TotalScore:        297,
			Streak:            i + 1,
		}))
	}

	records, err := repo.QueryWorkoutEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, records, 1)
	newest := records[0]
	assert.Equal(t, "workout-20260316", newest.WorkoutID)
	assert.Equal(t, 2, newest.Streak)
	require.NotNil(t, newest.RearrangeScore)
	assert.Equal(t, 80, *newest.RearrangeScore)

	older, err := repo.QueryWorkoutEvents(ctx, QueryOpts{Before: newest.Sequence})
	require.NoError(t, err)
	require.Len(t, older, 1)
	assert.Equal(t, "workout-20260315", older[0].WorkoutID)

	newer, err := repo.QueryWorkoutEvents(ctx, QueryOpts{After: older[0].Sequence})
	require.NoError(t, err)
	require.Len(t, newer, 1)
	assert.Equal(t, newest.Sequence, newer[0].Sequence)
}

func TestQueryTimeWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendGemEvent(ctx, GemEventData{GemType: "streak", Rarity: "common", UserID: "u1", Reason: "5-day streak!"}))

	now := time.Now().UTC()
	past, future := now.Add(-time.Hour), now.Add(time.Hour)

	got, err := repo.QueryGemEvents(ctx, QueryOpts{From: past, To: future})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = repo.QueryGemEvents(ctx, QueryOpts{From: future})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.QueryGemEvents(ctx, QueryOpts{To: past})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDrillAverages(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []DrillScoreEventData{
		{DrillType: "memorization", Score: 100, WorkoutID: "w1"},
		{DrillType: "memorization", Score: 50, WorkoutID: "w1"},
		{DrillType: "context", Score: 67, Practice: map[string]string{"by": "book", "value": "John"}},
	} {
		require.NoError(t, repo.AppendDrillScoreEvent(ctx, d))
	}

	avgs, err := repo.DrillAverages(ctx)
	require.NoError(t, err)
	assert.Equal(t, []DrillAverage{
		{DrillType: "context", Count: 1, Average: 67},
		{DrillType: "memorization", Count: 2, Average: 75},
	}, avgs)
}

func TestMasteryEventsByReference(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []MasteryEventData{
		{Reference: "John 3:16", Level: 1, Accuracy: 95, FromLevel: 1, ToLevel: 2, FromStatus: "learning", ToStatus: "learning", Trigger: "level-cleared"},
		{Reference: "Romans 8:28", Level: 1, Accuracy: 40, FromLevel: 1, ToLevel: 1, FromStatus: "learning", ToStatus: "learning", Trigger: "level-failed"},
		{Reference: "John 3:16", Level: 2, Accuracy: 70, FromLevel: 2, ToLevel: 2, FromStatus: "learning", ToStatus: "learning", Trigger: "level-failed"},
	} {
		require.NoError(t, repo.AppendMasteryEvent(ctx, e))
	}

	got, err := repo.QueryMasteryEvents(ctx, "john 3:16", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Level, "newest first")
	assert.Equal(t, 1, got[1].Level)

	all, err := repo.QueryMasteryEvents(ctx, "", QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGemEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ref := "Psalm 23:1"
	require.NoError(t, repo.AppendGemEvent(ctx, GemEventData{GemType: "verse", Rarity: "common", Reference: &ref, UserID: "u1", Reason: "Mastered Psalm 23:1"}))
	require.NoError(t, repo.AppendGemEvent(ctx, GemEventData{GemType: "streak", Rarity: "common", UserID: "u1", Reason: "5-day streak!"}))

	byType, total, err := repo.GemCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, map[string]int{"verse": 1, "streak": 1}, byType)

	records, err := repo.QueryGemEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Nil(t, records[0].Reference)
	require.NotNil(t, records[1].Reference)
	assert.Equal(t, ref, *records[1].Reference)
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, r := range []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "themed-workout", InputTokens: 100, OutputTokens: 400, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "themed-workout", InputTokens: 120, LatencyMs: 100, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "practice-drill", InputTokens: 50, OutputTokens: 60, LatencyMs: 200, Success: true, RequestBody: "[user]\nRomans\n"},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, r))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsageStats{
		Purpose:      "themed-workout",
		Calls:        2,
		InputTokens:  220,
		OutputTokens: 400,
		AvgLatencyMs: 200,
		Failures:     1,
	}, byPurpose[1])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini", byModel[0].Provider)
	assert.Equal(t, 2, byModel[0].Calls)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "openai", events[0].Provider)

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[user]\nRomans\n", got.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestResetKeepsSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendDrillScoreEvent(ctx, DrillScoreEventData{DrillType: "rearrange", Score: 100}))
	require.NoError(t, s.SnapshotRepo().Save(ctx, &Snapshot{Sequence: 1, Data: SnapshotData{Version: 1}}))
	before, err := repo.LatestSequence(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))

	avgs, err := repo.DrillAverages(ctx)
	require.NoError(t, err)
	assert.Empty(t, avgs)
	snap, err := s.SnapshotRepo().Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	require.NoError(t, repo.AppendDrillScoreEvent(ctx, DrillScoreEventData{DrillType: "rearrange"}))
	after, err := repo.LatestSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestGemEventOwner(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	workout := "w-42"
	require.NoError(t, repo.AppendGemEvent(ctx, GemEventData{GemType: "workout", Rarity: "epic", UserID: "u1", WorkoutID: &workout, Reason: "Workout complete (80% average)"}))
	require.NoError(t, repo.AppendGemEvent(ctx, GemEventData{GemType: "streak", Rarity: "common", Reason: "5-day streak!"}))

	got, err := repo.QueryGemEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Empty(t, got[0].UserID)
	assert.Nil(t, got[0].WorkoutID)
	assert.Equal(t, "u1", got[1].UserID)
	require.NotNil(t, got[1].WorkoutID)
	assert.Equal(t, "w-42", *got[1].WorkoutID)
}
