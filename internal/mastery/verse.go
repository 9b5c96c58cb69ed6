package mastery

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/biblegym/internal/corpus"
)

// Status is a verse's position in the mastery lifecycle.
type Status string

const (
	StatusLearning Status = "learning"
	StatusMastered Status = "mastered"
)

var (
	ErrInvalidLevel  = errors.New("invalid mastery level")
	ErrLevelLocked   = errors.New("mastery level not unlocked yet")
	ErrInvalidRecord = errors.New("invalid mastery record")
)

// VerseMastery is a user's progress on one verse, keyed by reference.
type VerseMastery struct {
	ID            string         `json:"id"`
	Passage       corpus.Passage `json:"passage"`
	CurrentLevel  Level          `json:"currentLevel"`
	BestAccuracy  int            `json:"bestAccuracy"`
	BestTime      int            `json:"bestTime"` // seconds, 0 = unset
	Status        Status         `json:"status"`
	LastPracticed time.Time      `json:"lastPracticed"`
}

// Start opens a mastery record at level 1.
func Start(p corpus.Passage, now time.Time) *VerseMastery {
	return &VerseMastery{
		ID:            p.Reference,
		Passage:       p,
		CurrentLevel:  LevelRead,
		Status:        StatusLearning,
		LastPracticed: now,
	}
}

// Validate checks a record that came from outside, such as an API client.
// A mastered verse must sit at the last level.
func (v *VerseMastery) Validate() error {
	switch {
	case !v.CurrentLevel.Valid():
		return fmt.Errorf("%w: level %d", ErrInvalidRecord, v.CurrentLevel)
	case v.Status != StatusLearning && v.Status != StatusMastered:
		return fmt.Errorf("%w: status %q", ErrInvalidRecord, v.Status)
	case v.Status == StatusMastered && v.CurrentLevel != MaxLevel:
		return fmt.Errorf("%w: mastered at level %d", ErrInvalidRecord, v.CurrentLevel)
	case v.BestAccuracy < 0 || v.BestAccuracy > 100:
		return fmt.Errorf("%w: best accuracy %d", ErrInvalidRecord, v.BestAccuracy)
	case v.BestTime < 0:
		return fmt.Errorf("%w: best time %d", ErrInvalidRecord, v.BestTime)
	}
	return nil
}

// Attempt is one graded recall at a level.
type Attempt struct {
	Level    Level
	Accuracy int
	Seconds  int
	At       time.Time
}

// Passed reports whether the attempt clears its level.
func (a Attempt) Passed() bool {
	return a.Accuracy >= PassAccuracy
}

// StateTransition records what an attempt changed, for display and event
// logging.
type StateTransition struct {
	Reference  string
	Attempted  Level
	FromLevel  Level
	ToLevel    Level
	FromStatus Status
	ToStatus   Status
	Trigger    string // "level-cleared", "level-failed", "mastered", "review"
}

// NewlyMastered reports whether the attempt mastered the verse.
func (t StateTransition) NewlyMastered() bool {
	return t.FromStatus != StatusMastered && t.ToStatus == StatusMastered
}

// Complete applies an attempt. Best accuracy and time are kept, the
// current level advances by one when the current level is passed, and the
// verse is mastered once a pass brings it to level 5. Level and status
// never move backwards.
func (v *VerseMastery) Complete(a Attempt) (StateTransition, error) {
	if !a.Level.Valid() {
		return StateTransition{}, fmt.Errorf("%w: %d", ErrInvalidLevel, a.Level)
	}
	if a.Level > v.CurrentLevel {
		return StateTransition{}, fmt.Errorf("%w: attempted %d, current %d", ErrLevelLocked, a.Level, v.CurrentLevel)
	}
	if a.Accuracy < 0 || a.Accuracy > 100 {
		return StateTransition{}, fmt.Errorf("accuracy %d out of range [0,100]", a.Accuracy)
	}
	if a.Seconds < 0 {
		return StateTransition{}, fmt.Errorf("negative time %d", a.Seconds)
	}

	tr := StateTransition{
		Reference:  v.ID,
		Attempted:  a.Level,
		FromLevel:  v.CurrentLevel,
		FromStatus: v.Status,
	}

	v.BestAccuracy = max(v.BestAccuracy, a.Accuracy)
	if v.BestTime == 0 {
		v.BestTime = a.Seconds
	} else {
		v.BestTime = min(v.BestTime, a.Seconds)
	}
	v.LastPracticed = a.At

	switch {
	case !a.Passed():
		tr.Trigger = "level-failed"
	case a.Level != v.CurrentLevel:
		tr.Trigger = "review"
	default:
		v.CurrentLevel = min(v.CurrentLevel+1, MaxLevel)
		tr.Trigger = "level-cleared"
		if v.CurrentLevel == MaxLevel {
			if v.Status == StatusMastered {
				tr.Trigger = "review"
			} else {
				v.Status = StatusMastered
				tr.Trigger = "mastered"
			}
		}
	}

	tr.ToLevel = v.CurrentLevel
	tr.ToStatus = v.Status
	return tr, nil
}

// Clone returns an independent copy.
func (v *VerseMastery) Clone() *VerseMastery {
	c := *v
	return &c
}

// Stats summarizes mastery progress across verses.
type Stats struct {
	TotalMastered       int `json:"totalMastered"`
	Learning            int `json:"learning"`
	AverageBestAccuracy int `json:"averageBestAccuracy"`
}

// Summarize computes Stats over a set of records.
func Summarize(records map[string]*VerseMastery) Stats {
	var s Stats
	if len(records) == 0 {
		return s
	}
	sum := 0
	for _, r := range records {
		if r.Status == StatusMastered {
			s.TotalMastered++
		} else {
			s.Learning++
		}
		sum += r.BestAccuracy
	}
	s.AverageBestAccuracy = sum / len(records)
	return s
}

// PackProgress counts the verses of pack that are mastered.
func PackProgress(pack corpus.MasteryPack, records map[string]*VerseMastery) (mastered, total int) {
	for _, v := range pack.Verses {
		if r, ok := records[v.Reference]; ok && r.Status == StatusMastered {
			mastered++
		}
	}
	return mastered, len(pack.Verses)
}
