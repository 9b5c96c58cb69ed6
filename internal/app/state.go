// Package app holds the application state, the actions that change it, and
// the Engine that applies actions and persists their effects.
package app

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/biblegym/internal/group"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/workout"
)

// User is the signed-in learner.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	AvatarInitials  string    `json:"avatarInitials"`
	Streak          int       `json:"streak"`
	TotalScore      int       `json:"totalScore"`
	LastWorkoutDate string    `json:"lastWorkoutDate,omitempty"` // YYYY-MM-DD
	GroupID         string    `json:"groupId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewUser creates a user with a fresh id and no history.
func NewUser(name, email string, now time.Time) *User {
	return &User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		AvatarInitials: group.Initials(name),
		CreatedAt:      now,
	}
}

// Practice is the drill type and passage filter chosen for free practice.
type Practice struct {
	Kind  string `json:"type"` // a drill kind or "ai-themed"
	By    string `json:"by,omitempty"`
	Value string `json:"value,omitempty"`
}

// KindAIThemed selects a single drill from an AI-themed workout.
const KindAIThemed = "ai-themed"

// State is everything the application remembers between runs.
type State struct {
	User         *User                            `json:"user,omitempty"`
	Workout      *workout.Workout                 `json:"workout,omitempty"`
	CurrentDrill int                              `json:"currentDrillIndex"`
	Practice     *Practice                        `json:"practice,omitempty"`
	Groups       []*group.Group                   `json:"groups"`
	GroupMembers []group.Member                   `json:"groupMembers"`
	VerseMastery map[string]*mastery.VerseMastery `json:"verseMastery"`
	MasteryStats mastery.Stats                    `json:"masteryStats"`
}

// NewState returns the signed-out initial state.
func NewState() *State {
	return &State{
		Groups:       []*group.Group{},
		GroupMembers: []group.Member{},
		VerseMastery: map[string]*mastery.VerseMastery{},
	}
}

// UserGroup returns the group the user belongs to, or nil.
func (s *State) UserGroup() *group.Group {
	if s.User == nil || s.User.GroupID == "" {
		return nil
	}
	return group.Find(s.Groups, s.User.GroupID)
}

// Clone returns a deep copy so reducers never alias the previous state.
func (s *State) Clone() *State {
	c := *s
	if s.User != nil {
		u := *s.User
		c.User = &u
	}
	c.Workout = s.Workout.Clone()
	if s.Practice != nil {
		p := *s.Practice
		c.Practice = &p
	}
	c.Groups = make([]*group.Group, len(s.Groups))
	for i, g := range s.Groups {
		c.Groups[i] = g.Clone()
	}
	c.GroupMembers = slices.Clone(s.GroupMembers)
	if c.GroupMembers == nil {
		c.GroupMembers = []group.Member{}
	}
	c.VerseMastery = make(map[string]*mastery.VerseMastery, len(s.VerseMastery))
	for k, v := range s.VerseMastery {
		c.VerseMastery[k] = v.Clone()
	}
	return &c
}
