package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/gems"
	"github.com/abhisek/biblegym/internal/store"
)

// SnapshotVersion is bumped whenever State's JSON shape changes
// incompatibly. Snapshots with another version are ignored on load.
const SnapshotVersion = 1

// SnapshotKeep is how many snapshots survive pruning.
const SnapshotKeep = 5

// Engine owns the live State. It applies actions, records the resulting
// events, awards gems and snapshots the state after every change. Either
// repo may be nil, in which case that part of persistence is skipped.
type Engine struct {
	mu        sync.Mutex
	state     *State
	events    store.EventRepo
	snapshots store.SnapshotRepo
	gems      *gems.Service
}

// NewEngine restores the latest snapshot, or starts from NewState.
func NewEngine(ctx context.Context, events store.EventRepo, snapshots store.SnapshotRepo) (*Engine, error) {
	e := &Engine{
		state:     NewState(),
		events:    events,
		snapshots: snapshots,
		gems:      gems.NewService(events),
	}

	if snapshots == nil {
		return e, nil
	}
	snap, err := snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil || len(snap.Data.State) == 0 {
		return e, nil
	}
	if snap.Data.Version != SnapshotVersion {
		slog.Warn("ignoring snapshot with unknown version", "version", snap.Data.Version, "want", SnapshotVersion)
		return e, nil
	}
	st := NewState()
	if err := json.Unmarshal(snap.Data.State, st); err != nil {
		return nil, fmt.Errorf("decode snapshot state: %w", err)
	}
	if st.VerseMastery == nil {
		st.VerseMastery = NewState().VerseMastery
	}
	e.state = st
	return e, nil
}

// State returns a copy of the current state.
func (e *Engine) State() *State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// SessionGems returns the gems awarded since the engine started.
func (e *Engine) SessionGems() []gems.GemAward {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]gems.GemAward(nil), e.gems.SessionGems...)
}

// Dispatch applies a, persists its effects and returns the new state.
func (e *Engine) Dispatch(ctx context.Context, a Action) (*State, Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, out, err := Reduce(e.state, a)
	if err != nil {
		return nil, out, fmt.Errorf("%s: %w", a.Name(), err)
	}

	// The live state only moves once the action is persisted, so a failed
	// save can be retried.
	if err := e.record(ctx, e.state, next, a, out); err != nil {
		return nil, out, err
	}
	if err := e.snapshot(ctx, next); err != nil {
		return nil, out, err
	}
	e.state = next
	slog.Debug("action applied", "action", a.Name())
	return next.Clone(), out, nil
}

// RecordPractice stores the score of a free-practice drill under the
// current practice selection.
func (e *Engine) RecordPractice(ctx context.Context, kind drill.Kind, score int, aiGenerated bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.events == nil {
		return nil
	}
	data := store.DrillScoreEventData{
		DrillType:   string(kind),
		Score:       score,
		AIGenerated: aiGenerated,
	}
	if e.state.User != nil {
		data.UserID = e.state.User.ID
	}
	if p := e.state.Practice; p != nil {
		data.Practice = map[string]string{"type": p.Kind}
		if p.By != "" {
			data.Practice["by"] = p.By
			data.Practice["value"] = p.Value
		}
	}
	if err := e.events.AppendDrillScoreEvent(ctx, data); err != nil {
		return fmt.Errorf("record practice score: %w", err)
	}
	return nil
}

func (e *Engine) record(ctx context.Context, prev, next *State, a Action, out Outcome) error {
	userID := ""
	if next.User != nil {
		userID = next.User.ID
	}

	switch a := a.(type) {
	case CompleteDrill:
		if e.events == nil {
			return nil
		}
		err := e.events.AppendDrillScoreEvent(ctx, store.DrillScoreEventData{
			UserID:    userID,
			WorkoutID: next.Workout.ID,
			DrillType: string(a.Kind),
			Score:     a.Score,
		})
		if err != nil {
			return fmt.Errorf("record drill score: %w", err)
		}

	case CompleteWorkout:
		w := out.Workout
		if e.events != nil {
			err := e.events.AppendWorkoutEvent(ctx, store.WorkoutEventData{
				WorkoutID:         w.ID,
				UserID:            userID,
				Date:              w.Date,
				Theme:             w.Theme,
				GroupChallenge:    w.IsGroupChallenge,
				MemorizationScore: w.Scores.Memorization,
				ContextScore:      w.Scores.Context,
				VerseMatchScore:   w.Scores.VerseMatch,
				RearrangeScore:    w.Scores.Rearrange,
				TotalScore:        w.TotalScore,
				Streak:            out.NewStreak,
			})
			if err != nil {
				return fmt.Errorf("record workout: %w", err)
			}
		}
		src := gems.Source{UserID: userID, WorkoutID: w.ID}
		e.gems.CheckStreak(ctx, out.PrevStreak, out.NewStreak, src)
		e.gems.AwardWorkout(ctx, w.Average(), src)
		if out.Joined {
			if g := next.UserGroup(); g != nil {
				e.gems.AwardChallenge(ctx, g.Name, w.Average(), src)
			}
		}

	case CompleteMasteryLevel:
		tr := out.Transition
		if e.events != nil {
			err := e.events.AppendMasteryEvent(ctx, store.MasteryEventData{
				UserID:     userID,
				Reference:  tr.Reference,
				Level:      int(tr.Attempted),
				Accuracy:   a.Accuracy,
				Seconds:    a.Seconds,
				FromLevel:  int(tr.FromLevel),
				ToLevel:    int(tr.ToLevel),
				FromStatus: string(tr.FromStatus),
				ToStatus:   string(tr.ToStatus),
				Trigger:    tr.Trigger,
			})
			if err != nil {
				return fmt.Errorf("record mastery attempt: %w", err)
			}
		}
		if tr.NewlyMastered() {
			v := next.VerseMastery[tr.Reference]
			e.gems.AwardVerse(ctx, tr.Reference, v.Passage.Text, gems.Source{UserID: userID})
		}

	case Logout:
		if prev.User != nil {
			slog.Info("user signed out", "user", prev.User.ID)
		}
		e.gems.ResetSession()
	}
	return nil
}

func (e *Engine) snapshot(ctx context.Context, st *State) error {
	if e.snapshots == nil {
		return nil
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	var seq int64
	if e.events != nil {
		seq, err = e.events.LatestSequence(ctx)
		if err != nil {
			return err
		}
	}

	err = e.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data:      store.SnapshotData{Version: SnapshotVersion, State: raw},
	})
	if err != nil {
		return err
	}
	if err := e.snapshots.Prune(ctx, SnapshotKeep); err != nil {
		slog.Warn("failed to prune snapshots", "error", err)
	}
	return nil
}
