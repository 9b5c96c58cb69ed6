package gems

import "time"

// GemAward represents a single gem earned.
type GemAward struct {
	Type      GemType   `json:"type"`
	Rarity    Rarity    `json:"rarity"`
	Reference string    `json:"reference,omitempty"` // verse gems only
	UserID    string    `json:"userId,omitempty"`
	WorkoutID string    `json:"workoutId,omitempty"` // workout, streak and challenge gems
	Reason    string    `json:"reason"`              // e.g. "Mastered John 3:16"
	AwardedAt time.Time `json:"awardedAt"`
}
