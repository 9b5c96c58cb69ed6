package app

import (
	"time"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/group"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/workout"
)

// Action is a state change request. The set of actions is closed.
type Action interface {
	// Name is a short label used in logs.
	Name() string
	action()
}

// SetUser signs a user in.
type SetUser struct{ User *User }

// Logout returns to the initial state.
type Logout struct{}

// StartWorkout makes w the current workout and rewinds to its first drill.
type StartWorkout struct{ Workout *workout.Workout }

// NextDrill advances to the next drill of the current workout.
type NextDrill struct{}

// CompleteDrill records the score of one drill of the current workout.
type CompleteDrill struct {
	Kind  drill.Kind
	Score int
}

// CompleteWorkout finishes the current workout at the given time.
type CompleteWorkout struct{ At time.Time }

// StartPractice selects a free-practice drill.
type StartPractice struct{ Practice Practice }

// SetGroups replaces the known groups.
type SetGroups struct{ Groups []*group.Group }

// JoinGroup adds the user to a group.
type JoinGroup struct{ Group *group.Group }

// SetGroupMembers replaces the leaderboard rows.
type SetGroupMembers struct{ Members []group.Member }

// SetGroupChallenge sets the challenge of the user's group.
type SetGroupChallenge struct{ Workout *workout.Workout }

// DeleteGroupChallenge removes the challenge of the user's group.
type DeleteGroupChallenge struct{}

// StartMastery opens a mastery record for a passage if none exists.
type StartMastery struct {
	Passage corpus.Passage
	At      time.Time
}

// CompleteMasteryLevel grades one recall attempt.
type CompleteMasteryLevel struct {
	Reference string
	Level     mastery.Level
	Accuracy  int
	Seconds   int
	At        time.Time
}

func (SetUser) Name() string              { return "set-user" }
func (Logout) Name() string               { return "logout" }
func (StartWorkout) Name() string         { return "start-workout" }
func (NextDrill) Name() string            { return "next-drill" }
func (CompleteDrill) Name() string        { return "complete-drill" }
func (CompleteWorkout) Name() string      { return "complete-workout" }
func (StartPractice) Name() string        { return "start-practice" }
func (SetGroups) Name() string            { return "set-groups" }
func (JoinGroup) Name() string            { return "join-group" }
func (SetGroupMembers) Name() string      { return "set-group-members" }
func (SetGroupChallenge) Name() string    { return "set-group-challenge" }
func (DeleteGroupChallenge) Name() string { return "delete-group-challenge" }
func (StartMastery) Name() string         { return "start-mastery" }
func (CompleteMasteryLevel) Name() string { return "complete-mastery-level" }

func (SetUser) action()              {}
func (Logout) action()               {}
func (StartWorkout) action()         {}
func (NextDrill) action()            {}
func (CompleteDrill) action()        {}
func (CompleteWorkout) action()      {}
func (StartPractice) action()        {}
func (SetGroups) action()            {}
func (JoinGroup) action()            {}
func (SetGroupMembers) action()      {}
func (SetGroupChallenge) action()    {}
func (DeleteGroupChallenge) action() {}
func (StartMastery) action()         {}
func (CompleteMasteryLevel) action() {}
