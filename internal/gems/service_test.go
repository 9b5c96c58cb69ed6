package gems

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/biblegym/internal/store"
)

type mockRecorder struct {
	events []store.GemEventData
	err    error
}

func (m *mockRecorder) AppendGemEvent(_ context.Context, data store.GemEventData) error {
	m.events = append(m.events, data)
	return m.err
}

func newTestService() (*Service, *mockRecorder) {
	rec := &mockRecorder{}
	svc := NewService(rec)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	return svc, rec
}

func TestAwardVerse(t *testing.T) {
	svc, rec := newTestService()
	award := svc.AwardVerse(context.Background(), "John 3:16",
		"For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.",
		Source{UserID: "u-1", WorkoutID: "w-ignored"})

	if award.Type != GemVerse || award.Rarity != RarityRare {
		t.Errorf("award = %+v", award)
	}
	if award.Reason != "Mastered John 3:16" {
		t.Errorf("reason = %q", award.Reason)
	}
	if len(rec.events) != 1 {
		t.Fatalf("events = %d, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Reference == nil || *ev.Reference != "John 3:16" || ev.GemType != "verse" || ev.Rarity != "rare" {
		t.Errorf("event = %+v", ev)
	}
	if ev.UserID != "u-1" || ev.WorkoutID != nil {
		t.Errorf("verse gem owner = %q, workout = %v", ev.UserID, ev.WorkoutID)
	}
}

var testSource = Source{UserID: "u-1", WorkoutID: "w-1"}

func TestCheckStreak(t *testing.T) {
	svc, rec := newTestService()
	ctx := context.Background()

	if a := svc.CheckStreak(ctx, 3, 4, testSource); a != nil {
		t.Errorf("unexpected award %+v", a)
	}
	a := svc.CheckStreak(ctx, 9, 10, testSource)
	if a == nil || a.Rarity != RarityRare || a.Reason != "10-day streak!" {
		t.Fatalf("award = %+v", a)
	}
	if len(rec.events) != 1 || rec.events[0].Reference != nil {
		t.Fatalf("events = %+v", rec.events)
	}
	if w := rec.events[0].WorkoutID; w == nil || *w != "w-1" || rec.events[0].UserID != "u-1" {
		t.Errorf("streak gem not tied to workout: %+v", rec.events[0])
	}
}

func TestSessionGemsAccumulate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.AwardWorkout(ctx, 92, testSource)
	svc.AwardChallenge(ctx, "Bible Warriors", 60, testSource)
	if len(svc.SessionGems) != 2 {
		t.Fatalf("session gems = %d", len(svc.SessionGems))
	}
	if svc.SessionGems[0].Rarity != RarityLegendary || svc.SessionGems[1].Rarity != RarityRare {
		t.Errorf("rarities = %s, %s", svc.SessionGems[0].Rarity, svc.SessionGems[1].Rarity)
	}
	if !svc.SessionGems[0].AwardedAt.Equal(svc.now()) {
		t.Errorf("awarded at %v", svc.SessionGems[0].AwardedAt)
	}

	svc.ResetSession()
	if len(svc.SessionGems) != 0 {
		t.Error("reset kept gems")
	}
}

func TestAwardWithoutRecorder(t *testing.T) {
	svc := NewService(nil)
	if a := svc.AwardWorkout(context.Background(), 10, testSource); a == nil || a.Rarity != RarityCommon {
		t.Errorf("award = %+v", a)
	}
}

func TestAwardSurvivesRecorderError(t *testing.T) {
	svc, rec := newTestService()
	rec.err = errors.New("disk full")
	if a := svc.AwardStreak(context.Background(), 5, testSource); a == nil {
		t.Fatal("nil award")
	}
	if len(svc.SessionGems) != 1 {
		t.Error("award not kept in session after recorder error")
	}
}
