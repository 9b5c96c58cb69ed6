package app

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/group"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/rng"
	"github.com/abhisek/biblegym/internal/workout"
)

var testNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func mustReduce(t *testing.T, s *State, a Action) (*State, Outcome) {
	t.Helper()
	next, out, err := Reduce(s, a)
	if err != nil {
		t.Fatalf("%s: %v", a.Name(), err)
	}
	return next, out
}

func testWorkout(t *testing.T) *workout.Workout {
	t.Helper()
	w, err := workout.GenerateDaily(corpus.Default(), "user-1", testNow)
	if err != nil {
		t.Fatalf("generate workout: %v", err)
	}
	return w
}

func signedIn(t *testing.T) *State {
	t.Helper()
	u := NewUser("Grace Hopper", "grace@example.com", testNow)
	u.ID = "user-1"
	s, _ := mustReduce(t, NewState(), SetUser{User: u})
	return s
}

func TestNewUserInitials(t *testing.T) {
	u := NewUser("grace brewster hopper", "g@example.com", testNow)
	if u.AvatarInitials != "GB" {
		t.Errorf("initials = %q, want GB", u.AvatarInitials)
	}
	if u.ID == "" {
		t.Error("expected generated id")
	}
}

func TestCompleteDrillUpdatesTotal(t *testing.T) {
	s := signedIn(t)
	s, _ = mustReduce(t, s, StartWorkout{Workout: testWorkout(t)})
	s, _ = mustReduce(t, s, CompleteDrill{Kind: drill.KindMemorization, Score: 80})
	s, _ = mustReduce(t, s, CompleteDrill{Kind: drill.KindRearrange, Score: 50})

	if s.Workout.TotalScore != 130 {
		t.Errorf("total = %d, want 130", s.Workout.TotalScore)
	}
	if _, _, err := Reduce(s, CompleteDrill{Kind: drill.KindContext, Score: 101}); err == nil {
		t.Error("expected out-of-range score to be rejected")
	}
}

func TestNextDrillStopsAtLast(t *testing.T) {
	s := signedIn(t)
	if _, _, err := Reduce(s, NextDrill{}); !errors.Is(err, ErrNoWorkout) {
		t.Fatalf("err = %v, want ErrNoWorkout", err)
	}

	s, _ = mustReduce(t, s, StartWorkout{Workout: testWorkout(t)})
	for i := 0; i < 3; i++ {
		s, _ = mustReduce(t, s, NextDrill{})
	}
	if s.CurrentDrill != 3 {
		t.Errorf("current drill = %d, want 3", s.CurrentDrill)
	}
	if _, _, err := Reduce(s, NextDrill{}); !errors.Is(err, ErrLastDrill) {
		t.Errorf("err = %v, want ErrLastDrill", err)
	}
}

func TestCompleteWorkoutStreak(t *testing.T) {
	tests := []struct {
		name       string
		lastDate   string
		streak     int
		wantStreak int
	}{
		{"first workout", "", 0, 1},
		{"consecutive day", "2024-03-14", 4, 5},
		{"same day", "2024-03-15", 4, 4},
		{"missed a day", "2024-03-13", 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := signedIn(t)
			s.User.LastWorkoutDate = tt.lastDate
			s.User.Streak = tt.streak
			s.User.TotalScore = 1000

			s, _ = mustReduce(t, s, StartWorkout{Workout: testWorkout(t)})
			s, _ = mustReduce(t, s, CompleteDrill{Kind: drill.KindContext, Score: 90})
			s, out := mustReduce(t, s, CompleteWorkout{At: testNow})

			if s.User.Streak != tt.wantStreak {
				t.Errorf("streak = %d, want %d", s.User.Streak, tt.wantStreak)
			}
			if out.PrevStreak != tt.streak || out.NewStreak != tt.wantStreak {
				t.Errorf("outcome streak %d -> %d", out.PrevStreak, out.NewStreak)
			}
			if s.User.TotalScore != 1090 {
				t.Errorf("total score = %d, want 1090", s.User.TotalScore)
			}
			if s.User.LastWorkoutDate != "2024-03-15" {
				t.Errorf("last workout = %q", s.User.LastWorkoutDate)
			}
			if !s.Workout.Completed || out.Workout == nil || !out.Workout.Completed {
				t.Error("workout not marked completed")
			}
		})
	}
}

func TestCompleteWorkoutTwiceFails(t *testing.T) {
	s := signedIn(t)
	s, _ = mustReduce(t, s, StartWorkout{Workout: testWorkout(t)})
	s, _ = mustReduce(t, s, CompleteWorkout{At: testNow})
	if _, _, err := Reduce(s, CompleteWorkout{At: testNow}); !errors.Is(err, ErrAlreadyDone) {
		t.Errorf("err = %v, want ErrAlreadyDone", err)
	}
}

func TestCompleteWorkoutRequiresUser(t *testing.T) {
	s, _ := mustReduce(t, NewState(), StartWorkout{Workout: testWorkout(t)})
	if _, _, err := Reduce(s, CompleteWorkout{At: testNow}); !errors.Is(err, ErrNoUser) {
		t.Errorf("err = %v, want ErrNoUser", err)
	}
}

func TestCompleteWorkoutUpdatesLeaderboard(t *testing.T) {
	s := signedIn(t)
	s, _ = mustReduce(t, s, SetGroupMembers{Members: []group.Member{
		{UserID: "other", Name: "Ruth O.", WeeklyScore: 150},
		{UserID: "user-1", Name: "Grace Hopper", WeeklyScore: 100},
	}})
	s, _ = mustReduce(t, s, StartWorkout{Workout: testWorkout(t)})
	s, _ = mustReduce(t, s, CompleteDrill{Kind: drill.KindMemorization, Score: 100})
	s, _ = mustReduce(t, s, CompleteWorkout{At: testNow})

	top := s.GroupMembers[0]
	if top.UserID != "user-1" || top.WeeklyScore != 200 || top.Streak != 1 {
		t.Errorf("leaderboard top = %+v", top)
	}
}

func TestGroupChallengeParticipation(t *testing.T) {
	s := signedIn(t)
	g := group.New("Bible Warriors", "someone", testNow, rng.New(7))
	s, _ = mustReduce(t, s, JoinGroup{Group: g})
	if s.User.GroupID != g.ID || !s.UserGroup().HasMember("user-1") {
		t.Fatalf("join failed: %+v", s.User)
	}

	s, _ = mustReduce(t, s, SetGroupChallenge{Workout: testWorkout(t)})
	challenge := s.UserGroup().Challenge
	if challenge == nil || !challenge.IsGroupChallenge {
		t.Fatalf("challenge = %+v", challenge)
	}

	s, _ = mustReduce(t, s, StartWorkout{Workout: challenge})
	s, out := mustReduce(t, s, CompleteWorkout{At: testNow})
	if !out.Joined {
		t.Error("expected first completion to join the challenge")
	}
	if got := s.UserGroup().ChallengeParticipants; len(got) != 1 || got[0] != "user-1" {
		t.Errorf("participants = %v", got)
	}

	s, _ = mustReduce(t, s, StartWorkout{Workout: challenge})
	s, out = mustReduce(t, s, CompleteWorkout{At: testNow.Add(time.Hour)})
	if out.Joined {
		t.Error("second completion should not join again")
	}
	if got := s.UserGroup().ChallengeParticipants; len(got) != 1 {
		t.Errorf("participants = %v, want one entry", got)
	}

	s, _ = mustReduce(t, s, DeleteGroupChallenge{})
	if s.UserGroup().Challenge != nil || len(s.UserGroup().ChallengeParticipants) != 0 {
		t.Error("delete kept the challenge")
	}
}

func TestJoinGroupOnlyOnce(t *testing.T) {
	s := signedIn(t)
	s, _ = mustReduce(t, s, JoinGroup{Group: group.New("A", "x", testNow, rng.New(1))})
	_, _, err := Reduce(s, JoinGroup{Group: group.New("B", "y", testNow, rng.New(2))})
	if !errors.Is(err, group.ErrAlreadyMember) {
		t.Errorf("err = %v, want ErrAlreadyMember", err)
	}
}

func TestGroupChallengeRequiresGroup(t *testing.T) {
	s := signedIn(t)
	if _, _, err := Reduce(s, SetGroupChallenge{Workout: testWorkout(t)}); !errors.Is(err, ErrNoGroup) {
		t.Errorf("err = %v, want ErrNoGroup", err)
	}
}

func TestMasteryActions(t *testing.T) {
	p, _ := corpus.Default().MasteryVerse("Philippians 4:13")
	s := signedIn(t)
	s, _ = mustReduce(t, s, StartMastery{Passage: p, At: testNow})
	if s.MasteryStats.Learning != 1 {
		t.Errorf("stats = %+v", s.MasteryStats)
	}

	s, out := mustReduce(t, s, CompleteMasteryLevel{Reference: p.Reference, Level: mastery.LevelRead, Accuracy: 95, Seconds: 20, At: testNow})
	if out.Transition == nil || out.Transition.Trigger != "level-cleared" {
		t.Fatalf("transition = %+v", out.Transition)
	}
	if s.VerseMastery[p.Reference].CurrentLevel != mastery.LevelLightBlanks {
		t.Errorf("level = %d", s.VerseMastery[p.Reference].CurrentLevel)
	}

	// Starting again keeps progress.
	s, _ = mustReduce(t, s, StartMastery{Passage: p, At: testNow})
	if s.VerseMastery[p.Reference].CurrentLevel != mastery.LevelLightBlanks {
		t.Error("restart reset progress")
	}

	_, _, err := Reduce(s, CompleteMasteryLevel{Reference: "Jude 1:1", Level: 1, Accuracy: 100})
	if !errors.Is(err, ErrNoMastery) {
		t.Errorf("err = %v, want ErrNoMastery", err)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := signedIn(t)
	s, _ = mustReduce(t, s, StartWorkout{Workout: testWorkout(t)})
	before := s.Workout.TotalScore

	if _, _, err := Reduce(s, CompleteDrill{Kind: drill.KindMemorization, Score: 70}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Reduce(s, CompleteWorkout{At: testNow}); err != nil {
		t.Fatal(err)
	}
	if s.Workout.TotalScore != before || s.Workout.Completed || s.User.Streak != 0 {
		t.Error("input state was modified")
	}
}

func TestLogoutResets(t *testing.T) {
	s := signedIn(t)
	s, _ = mustReduce(t, s, StartPractice{Practice: Practice{Kind: "context", By: "book", Value: "John"}})
	s, _ = mustReduce(t, s, Logout{})
	if s.User != nil || s.Practice != nil || s.VerseMastery == nil {
		t.Errorf("state after logout = %+v", s)
	}
}
