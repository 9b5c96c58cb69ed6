package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full application state at a point in time.
// State is opaque to the store; the app package owns its shape and bumps
// Version when that shape changes.
type SnapshotData struct {
	Version int             `json:"version"`
	State   json.RawMessage `json:"state,omitempty"`
}

// Snapshot represents a point-in-time capture of application state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages application state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStats aggregates LLM usage for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
	Failures     int
}

// ModelUsage aggregates token usage for one provider/model pair.
type ModelUsage struct {
	Provider     string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// WorkoutEventData captures a completed workout.
type WorkoutEventData struct {
	WorkoutID         string
	UserID            string
	Date              string
	Theme             string
	GroupChallenge    bool
	MemorizationScore int
	ContextScore      int
	VerseMatchScore   int
	RearrangeScore    *int
	TotalScore        int
	Streak            int
}

// WorkoutEventRecord is a persisted workout event.
type WorkoutEventRecord struct {
	WorkoutEventData
	Sequence  int64
	Timestamp time.Time
}

// DrillScoreEventData captures one scored drill.
type DrillScoreEventData struct {
	UserID      string
	WorkoutID   string // empty for practice
	DrillType   string
	Score       int
	AIGenerated bool
	Practice    map[string]string
}

// DrillAverage is the mean score for one drill type.
type DrillAverage struct {
	DrillType string
	Count     int
	Average   float64
}

// MasteryEventData captures a verse-mastery attempt and its transition.
type MasteryEventData struct {
	UserID     string
	Reference  string
	Level      int
	Accuracy   int
	Seconds    int
	FromLevel  int
	ToLevel    int
	FromStatus string
	ToStatus   string
	Trigger    string
}

// MasteryEventRecord is a persisted mastery event.
type MasteryEventRecord struct {
	MasteryEventData
	Sequence  int64
	Timestamp time.Time
}

// GemEventData captures a gem award.
type GemEventData struct {
	GemType   string
	Rarity    string
	Reference *string
	UserID    string
	WorkoutID *string
	Reason    string
}

// GemEventRecord is a persisted gem event.
type GemEventRecord struct {
	GemType   string
	Rarity    string
	Reference *string
	UserID    string
	WorkoutID *string
	Reason    string
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	AppendWorkoutEvent(ctx context.Context, data WorkoutEventData) error
	QueryWorkoutEvents(ctx context.Context, opts QueryOpts) ([]WorkoutEventRecord, error)

	AppendDrillScoreEvent(ctx context.Context, data DrillScoreEventData) error
	DrillAverages(ctx context.Context) ([]DrillAverage, error)

	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error
	QueryMasteryEvents(ctx context.Context, reference string, opts QueryOpts) ([]MasteryEventRecord, error)

	AppendGemEvent(ctx context.Context, data GemEventData) error
	QueryGemEvents(ctx context.Context, opts QueryOpts) ([]GemEventRecord, error)
	GemCounts(ctx context.Context) (map[string]int, int, error)

	// LatestSequence returns the highest sequence number assigned so far.
	LatestSequence(ctx context.Context) (int64, error)
}
