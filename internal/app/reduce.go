package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/biblegym/internal/group"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/workout"
)

var (
	ErrNoUser      = errors.New("no user signed in")
	ErrNoWorkout   = errors.New("no workout in progress")
	ErrNoGroup     = errors.New("user is not in a group")
	ErrNoMastery   = errors.New("verse mastery not started")
	ErrLastDrill   = errors.New("already at the last drill")
	ErrAlreadyDone = errors.New("workout already completed")
)

// Outcome reports what an action did beyond the new state, so callers can
// record events and award gems.
type Outcome struct {
	// CompleteWorkout
	Workout    *workout.Workout
	PrevStreak int
	NewStreak  int
	// Joined is true when a group-challenge workout added the user to the
	// challenge participants for the first time.
	Joined bool

	// CompleteMasteryLevel
	Transition *mastery.StateTransition
}

// Reduce applies a to s and returns the resulting state. s is never
// modified. On error the returned state is nil.
func Reduce(s *State, a Action) (*State, Outcome, error) {
	next := s.Clone()
	var out Outcome

	switch a := a.(type) {
	case SetUser:
		if a.User == nil {
			return nil, out, fmt.Errorf("set user: %w", ErrNoUser)
		}
		u := *a.User
		next.User = &u

	case Logout:
		next = NewState()

	case StartWorkout:
		if a.Workout == nil {
			return nil, out, ErrNoWorkout
		}
		next.Workout = a.Workout.Clone()
		next.CurrentDrill = 0

	case NextDrill:
		if next.Workout == nil {
			return nil, out, ErrNoWorkout
		}
		if next.CurrentDrill >= len(next.Workout.Drills)-1 {
			return nil, out, ErrLastDrill
		}
		next.CurrentDrill++

	case CompleteDrill:
		if next.Workout == nil {
			return nil, out, ErrNoWorkout
		}
		if err := next.Workout.RecordScore(a.Kind, a.Score); err != nil {
			return nil, out, err
		}

	case CompleteWorkout:
		if err := completeWorkout(next, a.At, &out); err != nil {
			return nil, out, err
		}

	case StartPractice:
		p := a.Practice
		next.Practice = &p

	case SetGroups:
		next.Groups = make([]*group.Group, len(a.Groups))
		for i, g := range a.Groups {
			next.Groups[i] = g.Clone()
		}

	case JoinGroup:
		if next.User == nil {
			return nil, out, ErrNoUser
		}
		if a.Group == nil {
			return nil, out, group.ErrNotFound
		}
		if next.User.GroupID != "" {
			return nil, out, group.ErrAlreadyMember
		}
		g := group.Find(next.Groups, a.Group.ID)
		if g == nil {
			g = a.Group.Clone()
			next.Groups = append(next.Groups, g)
		}
		g.AddMember(next.User.ID)
		next.User.GroupID = g.ID

	case SetGroupMembers:
		next.GroupMembers = append([]group.Member{}, a.Members...)

	case SetGroupChallenge:
		g := next.UserGroup()
		if g == nil {
			return nil, out, ErrNoGroup
		}
		if a.Workout == nil {
			return nil, out, ErrNoWorkout
		}
		c := a.Workout.Clone()
		c.IsGroupChallenge = true
		g.SetChallenge(c)

	case DeleteGroupChallenge:
		g := next.UserGroup()
		if g == nil {
			return nil, out, ErrNoGroup
		}
		g.ClearChallenge()

	case StartMastery:
		if _, ok := next.VerseMastery[a.Passage.Reference]; !ok {
			next.VerseMastery[a.Passage.Reference] = mastery.Start(a.Passage, a.At)
		}
		next.MasteryStats = mastery.Summarize(next.VerseMastery)

	case CompleteMasteryLevel:
		v, ok := next.VerseMastery[a.Reference]
		if !ok {
			return nil, out, fmt.Errorf("%w: %s", ErrNoMastery, a.Reference)
		}
		tr, err := v.Complete(mastery.Attempt{
			Level:    a.Level,
			Accuracy: a.Accuracy,
			Seconds:  a.Seconds,
			At:       a.At,
		})
		if err != nil {
			return nil, out, err
		}
		out.Transition = &tr
		next.MasteryStats = mastery.Summarize(next.VerseMastery)

	default:
		return nil, out, fmt.Errorf("unknown action %T", a)
	}

	return next, out, nil
}

// completeWorkout updates the streak, totals, leaderboard and challenge
// participation for the finished workout.
func completeWorkout(s *State, at time.Time, out *Outcome) error {
	if s.User == nil {
		return ErrNoUser
	}
	if s.Workout == nil {
		return ErrNoWorkout
	}
	if s.Workout.Completed {
		return ErrAlreadyDone
	}

	w := s.Workout
	w.Complete()

	u := s.User
	today := at.Format(time.DateOnly)
	yesterday := at.AddDate(0, 0, -1).Format(time.DateOnly)

	out.PrevStreak = u.Streak
	switch u.LastWorkoutDate {
	case today:
		// already counted
	case yesterday:
		u.Streak++
	default:
		u.Streak = 1
	}
	out.NewStreak = u.Streak
	u.TotalScore += w.TotalScore
	u.LastWorkoutDate = today

	for i := range s.GroupMembers {
		if s.GroupMembers[i].UserID == u.ID {
			s.GroupMembers[i].WeeklyScore += w.TotalScore
			s.GroupMembers[i].Streak = u.Streak
		}
	}
	group.SortLeaderboard(s.GroupMembers)

	if w.IsGroupChallenge {
		if g := s.UserGroup(); g != nil {
			out.Joined = g.RecordParticipant(u.ID)
		}
	}

	out.Workout = w.Clone()
	return nil
}
