// Package gems awards collectible gems for verse mastery, daily streaks,
// finished workouts and group challenges.
package gems

// GemType is what a gem was awarded for.
type GemType string

const (
	GemVerse     GemType = "verse"
	GemStreak    GemType = "streak"
	GemWorkout   GemType = "workout"
	GemChallenge GemType = "challenge"
)

type gemLabel struct {
	name string
	icon string
}

var gemLabels = map[GemType]gemLabel{
	GemVerse:     {"Verse Mastered", "💎"},
	GemStreak:    {"Streak", "🔥"},
	GemWorkout:   {"Workout", "🏆"},
	GemChallenge: {"Group Challenge", "🛡️"},
}

// AllGemTypes returns all gem types in display order.
func AllGemTypes() []GemType {
	return []GemType{GemVerse, GemStreak, GemWorkout, GemChallenge}
}

func (t GemType) DisplayName() string {
	if l, ok := gemLabels[t]; ok {
		return l.name
	}
	return string(t)
}

// Icon falls back to a generic star for unknown types.
func (t GemType) Icon() string {
	if l, ok := gemLabels[t]; ok {
		return l.icon
	}
	return "✦"
}
