package mastery

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/rng"
)

const philippiansRef = "Philippians 4:13"
const philippiansText = "I can do all things through Christ who strengthens me."

func TestDisplay(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelRead, philippiansText},
		{LevelLightBlanks, "____ can do all things ____ Christ who ____"},
		{LevelHardBlanks, "____ can do ____ things ____ ____ who ____"},
		{LevelFirstLetter, "I c__ d_ a__ t_____ t______ C_____ w__ s__________ m_."},
		{LevelFullRecall, ""},
	}
	for _, tt := range tests {
		t.Run(tt.level.Name(), func(t *testing.T) {
			if got := Display(philippiansRef, philippiansText, tt.level); got != tt.want {
				t.Errorf("Display level %d =\n%q\nwant\n%q", tt.level, got, tt.want)
			}
		})
	}
}

func TestDisplaySameReferenceLengthMasksAlike(t *testing.T) {
	// Both references are 16 code units long.
	a := Display("Philippians 4:13", philippiansText, LevelHardBlanks)
	b := Display("Lamentations 3:2", philippiansText, LevelHardBlanks)
	if a != b {
		t.Errorf("masks differ:\n%q\n%q", a, b)
	}
}

func TestFirstLetterKeepsPunctuation(t *testing.T) {
	got := Display("X", "(For God's sake) 3 times", LevelFirstLetter)
	want := "(F__ G__'_ s___) 3 t____"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target string
		want   int
	}{
		{"exact", philippiansText, philippiansText, 100},
		{"no punctuation or case", "i can do all things through christ who strengthens me", philippiansText, 100},
		{"prefix", "I can do all", philippiansText, 44},
		{"one word wrong", "I can do all things through Jesus who strengthens me.", philippiansText, 89},
		{"shifted", "can do all things through Christ who strengthens me.", philippiansText, 0},
		{"extra spaces", "I  can do all things  through Christ who strengthens me", philippiansText, 100},
		{"empty input", "", philippiansText, 0},
		{"both empty", "", "", 100},
		{"empty target", "words", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accuracy(tt.input, tt.target); got != tt.want {
				t.Errorf("Accuracy = %d, want %d", got, tt.want)
			}
		})
	}
}

func newRecord() *VerseMastery {
	return Start(corpus.Passage{Reference: philippiansRef, Text: philippiansText}, time.Unix(0, 0))
}

func TestCompleteProgression(t *testing.T) {
	v := newRecord()
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	for l := LevelRead; l < LevelFirstLetter; l++ {
		tr, err := v.Complete(Attempt{Level: l, Accuracy: 95, Seconds: 30, At: now})
		if err != nil {
			t.Fatalf("level %d: %v", l, err)
		}
		if tr.Trigger != "level-cleared" || tr.ToLevel != l+1 {
			t.Fatalf("level %d: transition %+v", l, tr)
		}
		if v.Status != StatusLearning {
			t.Fatalf("mastered early at level %d", l)
		}
	}

	// Clearing level 4 lands on level 5 and masters the verse.
	tr, err := v.Complete(Attempt{Level: LevelFirstLetter, Accuracy: 90, Seconds: 45, At: now})
	if err != nil {
		t.Fatal(err)
	}
	if !tr.NewlyMastered() || tr.Trigger != "mastered" || v.Status != StatusMastered || v.CurrentLevel != MaxLevel {
		t.Errorf("after level 4: %+v, record %+v", tr, v)
	}
	if !v.LastPracticed.Equal(now) {
		t.Errorf("last practiced = %v", v.LastPracticed)
	}

	// Passing level 5 afterwards is a review.
	tr, err = v.Complete(Attempt{Level: MaxLevel, Accuracy: 100, Seconds: 40, At: now})
	if err != nil {
		t.Fatal(err)
	}
	if tr.NewlyMastered() || tr.Trigger != "review" || v.CurrentLevel != MaxLevel {
		t.Errorf("level 5 pass: %+v", tr)
	}

	// Practising again never un-masters.
	tr, err = v.Complete(Attempt{Level: LevelHardBlanks, Accuracy: 10, Seconds: 5, At: now})
	if err != nil {
		t.Fatal(err)
	}
	if tr.NewlyMastered() || v.Status != StatusMastered || v.CurrentLevel != MaxLevel {
		t.Errorf("regressed: %+v", v)
	}
}

func TestCompleteLevelFourBelowPass(t *testing.T) {
	v := newRecord()
	v.CurrentLevel = LevelFirstLetter

	tr, err := v.Complete(Attempt{Level: LevelFirstLetter, Accuracy: 89, Seconds: 20})
	if err != nil {
		t.Fatal(err)
	}
	if v.Status != StatusLearning || v.CurrentLevel != LevelFirstLetter || tr.Trigger != "level-failed" {
		t.Errorf("89%% at level 4: %+v", tr)
	}
}

func TestCompleteMastersLegacyLevelFive(t *testing.T) {
	v := newRecord()
	v.CurrentLevel = MaxLevel

	tr, err := v.Complete(Attempt{Level: MaxLevel, Accuracy: 92, Seconds: 20})
	if err != nil {
		t.Fatal(err)
	}
	if !tr.NewlyMastered() || v.Status != StatusMastered {
		t.Errorf("level 5 pass while learning: %+v", tr)
	}
}

func TestValidateRecord(t *testing.T) {
	if err := newRecord().Validate(); err != nil {
		t.Errorf("fresh record: %v", err)
	}

	done := newRecord()
	done.CurrentLevel, done.Status = MaxLevel, StatusMastered
	if err := done.Validate(); err != nil {
		t.Errorf("mastered record: %v", err)
	}

	bad := map[string]func(v *VerseMastery){
		"level 0":          func(v *VerseMastery) { v.CurrentLevel = 0 },
		"level 9":          func(v *VerseMastery) { v.CurrentLevel = 9 },
		"empty status":     func(v *VerseMastery) { v.Status = "" },
		"mastered early":   func(v *VerseMastery) { v.Status = StatusMastered },
		"negative best":    func(v *VerseMastery) { v.BestAccuracy = -1 },
		"negative seconds": func(v *VerseMastery) { v.BestTime = -3 },
	}
	for name, edit := range bad {
		v := newRecord()
		edit(v)
		if err := v.Validate(); !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}

func TestCompleteFailureStays(t *testing.T) {
	v := newRecord()
	tr, err := v.Complete(Attempt{Level: LevelRead, Accuracy: 89, Seconds: 12})
	if err != nil {
		t.Fatal(err)
	}
	if v.CurrentLevel != LevelRead || tr.Trigger != "level-failed" {
		t.Errorf("failed attempt advanced: %+v", tr)
	}
	if v.BestAccuracy != 89 || v.BestTime != 12 {
		t.Errorf("bests = %d%%, %ds", v.BestAccuracy, v.BestTime)
	}
}

func TestCompleteBests(t *testing.T) {
	v := newRecord()
	attempts := []struct {
		acc, secs         int
		wantAcc, wantTime int
	}{
		{50, 40, 50, 40},
		{30, 60, 50, 40},
		{70, 25, 70, 25},
		{60, 0, 70, 0},
	}
	for i, a := range attempts {
		if _, err := v.Complete(Attempt{Level: LevelRead, Accuracy: a.acc, Seconds: a.secs}); err != nil {
			t.Fatal(err)
		}
		if v.BestAccuracy != a.wantAcc || v.BestTime != a.wantTime {
			t.Errorf("attempt %d: bests = %d, %d; want %d, %d", i, v.BestAccuracy, v.BestTime, a.wantAcc, a.wantTime)
		}
	}
}

func TestCompleteReviewLowerLevel(t *testing.T) {
	v := newRecord()
	v.CurrentLevel = LevelFirstLetter
	tr, err := v.Complete(Attempt{Level: LevelLightBlanks, Accuracy: 100, Seconds: 10})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Trigger != "review" || v.CurrentLevel != LevelFirstLetter {
		t.Errorf("review changed level: %+v", tr)
	}
}

func TestCompleteErrors(t *testing.T) {
	v := newRecord()
	if _, err := v.Complete(Attempt{Level: 0, Accuracy: 50}); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("level 0 err = %v", err)
	}
	if _, err := v.Complete(Attempt{Level: 6, Accuracy: 50}); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("level 6 err = %v", err)
	}
	if _, err := v.Complete(Attempt{Level: LevelFullRecall, Accuracy: 100}); !errors.Is(err, ErrLevelLocked) {
		t.Errorf("locked err = %v", err)
	}
	if _, err := v.Complete(Attempt{Level: LevelRead, Accuracy: 101}); err == nil {
		t.Error("accuracy 101 accepted")
	}
	if _, err := v.Complete(Attempt{Level: LevelRead, Accuracy: 50, Seconds: -1}); err == nil {
		t.Error("negative seconds accepted")
	}
}

func TestCompleteMonotonic(t *testing.T) {
	src := rng.New(424242)
	v := newRecord()
	for i := 0; i < 500; i++ {
		prevLevel, prevStatus := v.CurrentLevel, v.Status
		a := Attempt{
			Level:    Level(1 + rng.Intn(src, int(v.CurrentLevel))),
			Accuracy: rng.Intn(src, 101),
			Seconds:  rng.Intn(src, 120),
		}
		if _, err := v.Complete(a); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if v.CurrentLevel < prevLevel {
			t.Fatalf("attempt %d: level dropped %d -> %d", i, prevLevel, v.CurrentLevel)
		}
		if prevStatus == StatusMastered && v.Status != StatusMastered {
			t.Fatalf("attempt %d: status reverted", i)
		}
		if v.CurrentLevel > MaxLevel {
			t.Fatalf("attempt %d: level %d beyond max", i, v.CurrentLevel)
		}
	}
}

func TestSummarize(t *testing.T) {
	if s := Summarize(nil); s != (Stats{}) {
		t.Errorf("empty = %+v", s)
	}
	records := map[string]*VerseMastery{
		"a": {Status: StatusMastered, BestAccuracy: 100},
		"b": {Status: StatusLearning, BestAccuracy: 50},
		"c": {Status: StatusLearning, BestAccuracy: 60},
	}
	want := Stats{TotalMastered: 1, Learning: 2, AverageBestAccuracy: 70}
	if s := Summarize(records); s != want {
		t.Errorf("Summarize = %+v, want %+v", s, want)
	}
}

func TestPackProgress(t *testing.T) {
	pack, _ := corpus.Default().Pack("faith")
	records := map[string]*VerseMastery{
		"Hebrews 11:1":      {Status: StatusMastered},
		"2 Corinthians 5:7": {Status: StatusLearning},
		"John 3:16":         {Status: StatusMastered},
	}
	m, total := PackProgress(pack, records)
	if m != 1 || total != 5 {
		t.Errorf("PackProgress = %d/%d, want 1/5", m, total)
	}
}

func TestLevelNames(t *testing.T) {
	if LevelFirstLetter.Name() != "First Letter" || Level(9).Name() != "Level 9" {
		t.Error("unexpected level names")
	}
	if LevelHardBlanks.HiddenShare() != 0.5 || LevelRead.HiddenShare() != 0 {
		t.Error("unexpected hidden shares")
	}
}
