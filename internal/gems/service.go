package gems

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/biblegym/internal/store"
)

// EventRecorder persists gem awards. store.EventRepo satisfies it.
type EventRecorder interface {
	AppendGemEvent(ctx context.Context, data store.GemEventData) error
}

// Source ties an award to the user who earned it and, for gems earned by
// finishing a workout, to that workout.
type Source struct {
	UserID    string
	WorkoutID string
}

// Service awards gems and records them.
type Service struct {
	events EventRecorder
	now    func() time.Time

	// SessionGems accumulates gems awarded since the last ResetSession.
	SessionGems []GemAward
}

// NewService creates a gem service. events may be nil.
func NewService(events EventRecorder) *Service {
	return &Service{events: events, now: time.Now}
}

// AwardVerse awards a gem for a newly mastered verse.
func (s *Service) AwardVerse(ctx context.Context, reference, text string, src Source) *GemAward {
	return s.award(ctx, &GemAward{
		Type:      GemVerse,
		Rarity:    VerseRarity(len(strings.Fields(text))),
		Reference: reference,
		UserID:    src.UserID,
		Reason:    fmt.Sprintf("Mastered %s", reference),
	})
}

// AwardStreak awards a gem for a day-streak milestone.
func (s *Service) AwardStreak(ctx context.Context, days int, src Source) *GemAward {
	return s.award(ctx, &GemAward{
		Type:      GemStreak,
		Rarity:    StreakRarity(days),
		UserID:    src.UserID,
		WorkoutID: src.WorkoutID,
		Reason:    fmt.Sprintf("%d-day streak!", days),
	})
}

// CheckStreak awards a streak gem when the streak moved across a
// milestone, and returns nil otherwise.
func (s *Service) CheckStreak(ctx context.Context, prev, next int, src Source) *GemAward {
	if !CrossedMilestone(prev, next) {
		return nil
	}
	return s.AwardStreak(ctx, next, src)
}

// AwardWorkout awards a gem for a finished workout.
func (s *Service) AwardWorkout(ctx context.Context, average int, src Source) *GemAward {
	return s.award(ctx, &GemAward{
		Type:      GemWorkout,
		Rarity:    WorkoutRarity(average),
		UserID:    src.UserID,
		WorkoutID: src.WorkoutID,
		Reason:    fmt.Sprintf("Workout complete (%d%% average)", average),
	})
}

// AwardChallenge awards a gem for finishing a group challenge.
func (s *Service) AwardChallenge(ctx context.Context, groupName string, average int, src Source) *GemAward {
	return s.award(ctx, &GemAward{
		Type:      GemChallenge,
		Rarity:    WorkoutRarity(average),
		UserID:    src.UserID,
		WorkoutID: src.WorkoutID,
		Reason:    fmt.Sprintf("Finished the %s challenge", groupName),
	})
}

// ResetSession clears the session gem accumulator.
func (s *Service) ResetSession() {
	s.SessionGems = nil
}

func (s *Service) award(ctx context.Context, a *GemAward) *GemAward {
	a.AwardedAt = s.now()
	s.persist(ctx, a)
	s.SessionGems = append(s.SessionGems, *a)
	return a
}

func (s *Service) persist(ctx context.Context, a *GemAward) {
	if s.events == nil {
		return
	}
	data := store.GemEventData{
		GemType: string(a.Type),
		Rarity:  string(a.Rarity),
		UserID:  a.UserID,
		Reason:  a.Reason,
	}
	if a.Reference != "" {
		data.Reference = &a.Reference
	}
	if a.WorkoutID != "" {
		data.WorkoutID = &a.WorkoutID
	}
	if err := s.events.AppendGemEvent(ctx, data); err != nil {
		slog.Warn("failed to record gem", "type", a.Type, "error", err)
	}
}
