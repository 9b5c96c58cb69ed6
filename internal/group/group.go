// Package group models study groups: membership by invite code, a shared
// challenge workout, and the weekly leaderboard.
package group

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/biblegym/internal/rng"
	"github.com/abhisek/biblegym/internal/workout"
)

// InviteAlphabet omits characters that are easy to misread (I, O, 0, 1).
const InviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// InviteCodeLength is the length of generated invite codes.
const InviteCodeLength = 6

var (
	ErrNotFound      = errors.New("group not found")
	ErrAlreadyMember = errors.New("user already belongs to a group")
)

// Group is a set of users sharing a leaderboard and an optional challenge.
type Group struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	InviteCode            string           `json:"inviteCode"`
	Members               []string         `json:"members"`
	CreatedBy             string           `json:"createdBy"`
	CreatedAt             time.Time        `json:"createdAt"`
	Challenge             *workout.Workout `json:"groupChallenge,omitempty"`
	ChallengeParticipants []string         `json:"challengeParticipants,omitempty"`
}

// Member is a leaderboard row.
type Member struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	AvatarInitials string `json:"avatarInitials"`
	WeeklyScore    int    `json:"weeklyScore"`
	Streak         int    `json:"streak"`
}

// New creates a group owned by creatorID, who is its first member.
func New(name, creatorID string, now time.Time, src rng.Source) *Group {
	return &Group{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(name),
		InviteCode: NewInviteCode(src),
		Members:    []string{creatorID},
		CreatedBy:  creatorID,
		CreatedAt:  now,
	}
}

// NewInviteCode draws InviteCodeLength characters from InviteAlphabet.
func NewInviteCode(src rng.Source) string {
	b := make([]byte, InviteCodeLength)
	for i := range b {
		b[i] = InviteAlphabet[rng.Intn(src, len(InviteAlphabet))]
	}
	return string(b)
}

// NormalizeCode trims and upper-cases a user-typed invite code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FindByCode returns the group with the given invite code.
func FindByCode(groups []*Group, code string) (*Group, error) {
	code = NormalizeCode(code)
	for _, g := range groups {
		if g.InviteCode == code {
			return g, nil
		}
	}
	return nil, ErrNotFound
}

// Find returns the group with the given id, or nil.
func Find(groups []*Group, id string) *Group {
	for _, g := range groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID string) bool {
	return slices.Contains(g.Members, userID)
}

// AddMember adds userID once.
func (g *Group) AddMember(userID string) {
	if !g.HasMember(userID) {
		g.Members = append(g.Members, userID)
	}
}

// SetChallenge replaces the group challenge and clears its participants.
func (g *Group) SetChallenge(w *workout.Workout) {
	g.Challenge = w
	g.ChallengeParticipants = nil
}

// ClearChallenge removes the group challenge and its participants.
func (g *Group) ClearChallenge() {
	g.SetChallenge(nil)
}

// RecordParticipant notes that userID finished the challenge. It reports
// whether the user was newly added.
func (g *Group) RecordParticipant(userID string) bool {
	if slices.Contains(g.ChallengeParticipants, userID) {
		return false
	}
	g.ChallengeParticipants = append(g.ChallengeParticipants, userID)
	return true
}

// Clone copies the group's slices so the copy can be changed freely.
func (g *Group) Clone() *Group {
	c := *g
	c.Members = slices.Clone(g.Members)
	c.ChallengeParticipants = slices.Clone(g.ChallengeParticipants)
	c.Challenge = g.Challenge.Clone()
	return &c
}

// SortLeaderboard orders members by weekly score, highest first. Ties keep
// their existing order.
func SortLeaderboard(members []Member) {
	slices.SortStableFunc(members, func(a, b Member) int {
		return cmp.Compare(b.WeeklyScore, a.WeeklyScore)
	})
}

// Initials returns up to two upper-case initials from a display name.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		if len(out) == 2 {
			break
		}
		out = append(out, []rune(strings.ToUpper(part))[0])
	}
	return string(out)
}
