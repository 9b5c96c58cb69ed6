package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/gems"
	"github.com/abhisek/biblegym/internal/group"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/workout"
)

func plain() *Renderer {
	return &Renderer{Width: 40}
}

var strength = corpus.Passage{
	Reference: "Philippians 4:13",
	Text:      "I can do all things through Christ who strengthens me.",
	Book:      "Philippians",
	Chapter:   4,
	Verses:    "13",
}

func TestNewNonTerminal(t *testing.T) {
	if New(&bytes.Buffer{}).Color {
		t.Error("a buffer is not a terminal")
	}
}

func TestPlainOutputHasNoEscapes(t *testing.T) {
	out := plain().Passage(strength)
	if strings.Contains(out, "\x1b[") {
		t.Errorf("plain output contains escape codes: %q", out)
	}
	if out != "Philippians 4:13\n"+strength.Text {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestMemorizationQuestion(t *testing.T) {
	q := drill.MemorizationQuestion{
		ID:      "mem-0",
		Passage: strength,
		BlankedWords: []drill.BlankedWord{
			{Index: 3, Word: "all"},
			{Index: 9, Word: "me."},
		},
	}
	out := plain().MemorizationQuestion(q)
	want := "I can do [1]____ things through Christ who strengthens [2]____"
	if !strings.Contains(out, want) {
		t.Errorf("got %q, want it to contain %q", out, want)
	}
}

func TestContextItem(t *testing.T) {
	out := plain().ContextItem(drill.ContextItem{
		Question: "Where was Paul when he wrote this?",
		Options:  []string{"Rome", "Corinth", "Prison", "Ephesus"},
		Passage:  strength,
	})
	for _, want := range []string{"Where was Paul", "a) Rome", "c) Prison", "d) Ephesus"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestVerseMatchAndRearrange(t *testing.T) {
	r := plain()
	vm := &drill.VerseMatch{Pairs: []drill.VerseMatchPair{
		{Reference: "John 3:16", Text: "For God so loved"},
		{Reference: "Psalm 23:1", Text: "The Lord is my shepherd"},
	}}
	out := r.VerseMatch(vm, []string{"The Lord is my shepherd", "For God so loved"})
	if !strings.Contains(out, "1. John 3:16") || !strings.Contains(out, "a) The Lord is my shepherd") {
		t.Errorf("unexpected verse match output: %q", out)
	}

	re := &drill.Rearrange{
		Passage: strength,
		ShuffledVerses: []drill.RearrangeUnit{
			{ID: "u1", Text: "through Christ", OriginalIndex: 1},
			{ID: "u0", Text: "I can do all things", OriginalIndex: 0},
		},
	}
	out = r.Rearrange(re)
	if !strings.Contains(out, "1. through Christ") || !strings.Contains(out, "2. I can do all things") {
		t.Errorf("unexpected rearrange output: %q", out)
	}
}

func TestProgressBar(t *testing.T) {
	out := plain().ProgressBar("", 0.5)
	if !strings.HasPrefix(out, "[") || !strings.HasSuffix(out, "50%") {
		t.Fatalf("unexpected bar: %q", out)
	}
	filled := strings.Count(out, "#")
	empty := strings.Count(out, ".")
	if filled != empty {
		t.Errorf("half bar should split evenly, got %d filled %d empty", filled, empty)
	}
}

func TestWorkout(t *testing.T) {
	day := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	w, err := workout.GenerateDaily(corpus.Default(), "u1", day)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := w.RecordScore(drill.KindMemorization, 80); err != nil {
		t.Fatalf("record: %v", err)
	}

	out := plain().Workout(w)
	for _, want := range []string{"Daily Workout", "2024-03-15", "80%", "pending", "Total 80 / 400"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestMasteryLevel(t *testing.T) {
	rec := mastery.Start(strength, time.Now())
	r := plain()

	out := r.MasteryLevel(rec, mastery.LevelFirstLetter)
	if !strings.Contains(out, "Level 4: First Letter") {
		t.Errorf("missing level heading: %q", out)
	}
	if !strings.Contains(out, "I c__ d_ a__") {
		t.Errorf("missing first-letter text: %q", out)
	}

	out = r.MasteryLevel(rec, mastery.LevelFullRecall)
	if !strings.Contains(out, "from memory") {
		t.Errorf("full recall should prompt for memory: %q", out)
	}
}

func TestPacks(t *testing.T) {
	c := corpus.Default()
	pack := c.MasteryPacks[0]
	rec := mastery.Start(pack.Verses[0], time.Now())
	rec.Status = mastery.StatusMastered

	out := plain().Packs([]corpus.MasteryPack{pack}, map[string]*mastery.VerseMastery{rec.ID: rec})
	if !strings.Contains(out, pack.Name) {
		t.Errorf("missing pack name: %q", out)
	}
	if !strings.Contains(out, "[✓] "+pack.Verses[0].Reference) {
		t.Errorf("mastered verse not marked: %q", out)
	}
}

func TestLeaderboard(t *testing.T) {
	g := &group.Group{Name: "Tuesday Study", InviteCode: "ABC234"}
	members := []group.Member{
		{Name: "Ruth", AvatarInitials: "R", WeeklyScore: 320, Streak: 4},
		{Name: "Boaz", AvatarInitials: "B", WeeklyScore: 150, Streak: 1},
	}
	out := plain().Leaderboard(g, members)
	if !strings.Contains(out, "invite code ABC234") {
		t.Errorf("missing invite code: %q", out)
	}
	if strings.Index(out, "Ruth") > strings.Index(out, "Boaz") {
		t.Error("members should keep the given order")
	}
}

func TestGems(t *testing.T) {
	r := plain()
	out := r.GemCounts(map[string]int{"verse": 2, "streak": 1}, 3)
	if !strings.Contains(out, "Gems 3") || !strings.Contains(out, "Verse Mastered") {
		t.Errorf("unexpected counts output: %q", out)
	}

	out = r.GemAward(gems.GemAward{Type: gems.GemStreak, Rarity: gems.RarityRare, Reason: "10-day streak!"})
	if !strings.Contains(out, "Rare Streak") || !strings.Contains(out, "10-day streak!") {
		t.Errorf("unexpected award output: %q", out)
	}
}
