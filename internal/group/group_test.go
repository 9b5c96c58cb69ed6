package group

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/biblegym/internal/rng"
	"github.com/abhisek/biblegym/internal/workout"
)

func TestNewInviteCode(t *testing.T) {
	src := rng.New(12345)
	for i := 0; i < 100; i++ {
		code := NewInviteCode(src)
		if len(code) != InviteCodeLength {
			t.Fatalf("code %q has length %d", code, len(code))
		}
		for _, r := range code {
			if !strings.ContainsRune(InviteAlphabet, r) {
				t.Fatalf("code %q contains %q", code, r)
			}
		}
	}
	if NewInviteCode(rng.New(9)) != NewInviteCode(rng.New(9)) {
		t.Error("same seed produced different codes")
	}
}

func TestNewGroup(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	g := New("  Bible Warriors ", "user-1", now, rng.New(1))
	if g.Name != "Bible Warriors" || g.CreatedBy != "user-1" || !g.CreatedAt.Equal(now) {
		t.Errorf("group = %+v", g)
	}
	if !g.HasMember("user-1") || len(g.Members) != 1 {
		t.Errorf("members = %v", g.Members)
	}
	if g.ID == "" {
		t.Error("empty id")
	}
}

func TestFindByCode(t *testing.T) {
	a := &Group{ID: "a", InviteCode: "ABC234"}
	b := &Group{ID: "b", InviteCode: "XYZ789"}
	groups := []*Group{a, b}

	got, err := FindByCode(groups, " xyz789 ")
	if err != nil || got != b {
		t.Errorf("FindByCode = %v, %v", got, err)
	}
	if _, err := FindByCode(groups, "NOPE22"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if Find(groups, "a") != a || Find(groups, "c") != nil {
		t.Error("Find by id mismatch")
	}
}

func TestMembership(t *testing.T) {
	g := &Group{Members: []string{"u1"}}
	g.AddMember("u2")
	g.AddMember("u2")
	if len(g.Members) != 2 {
		t.Errorf("members = %v", g.Members)
	}
}

func TestChallengeParticipants(t *testing.T) {
	g := &Group{}
	w := workout.New("workout-ai-1", time.Now())
	g.SetChallenge(w)

	if !g.RecordParticipant("u1") || g.RecordParticipant("u1") {
		t.Error("participant recorded twice")
	}
	if len(g.ChallengeParticipants) != 1 {
		t.Errorf("participants = %v", g.ChallengeParticipants)
	}

	g.SetChallenge(workout.New("workout-ai-2", time.Now()))
	if len(g.ChallengeParticipants) != 0 {
		t.Error("new challenge kept participants")
	}

	g.RecordParticipant("u2")
	g.ClearChallenge()
	if g.Challenge != nil || len(g.ChallengeParticipants) != 0 {
		t.Errorf("clear left %+v", g)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := &Group{Members: []string{"u1"}, ChallengeParticipants: []string{"u1"}}
	c := g.Clone()
	c.AddMember("u2")
	c.RecordParticipant("u3")
	if len(g.Members) != 1 || len(g.ChallengeParticipants) != 1 {
		t.Errorf("original changed: %+v", g)
	}
}

func TestSortLeaderboard(t *testing.T) {
	members := []Member{
		{UserID: "a", WeeklyScore: 100},
		{UserID: "b", WeeklyScore: 300},
		{UserID: "c", WeeklyScore: 100},
		{UserID: "d", WeeklyScore: 200},
	}
	SortLeaderboard(members)
	var order []string
	for _, m := range members {
		order = append(order, m.UserID)
	}
	if got := strings.Join(order, ""); got != "bdac" {
		t.Errorf("order = %s, want bdac", got)
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"John Smith":        "JS",
		"mary":              "M",
		"Anna Maria Garcia": "AM",
		"  ":                "",
		"élodie dubois":     "ÉD",
	}
	for in, want := range tests {
		if got := Initials(in); got != want {
			t.Errorf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}
