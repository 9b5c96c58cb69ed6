package gems

import "strings"

// Rarity is the tier of a gem, common through legendary.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities lists tiers lowest first.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

func (r Rarity) DisplayName() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// tiers holds the minimum value for rare, epic and legendary.
type tiers [3]int

func (t tiers) grade(v int) Rarity {
	r := RarityCommon
	for i, floor := range t {
		if v >= floor {
			r = AllRarities()[i+1]
		}
	}
	return r
}

var (
	streakTiers  = tiers{10, 15, 20}
	workoutTiers = tiers{50, 75, 90}
	verseTiers   = tiers{20, 35, 60}
)

// StreakRarity grades a run of consecutive workout days.
func StreakRarity(days int) Rarity { return streakTiers.grade(days) }

// WorkoutRarity grades a workout by its average drill score, 0-100.
func WorkoutRarity(average int) Rarity { return workoutTiers.grade(average) }

// VerseRarity grades a mastered verse by its length in words.
func VerseRarity(words int) Rarity { return verseTiers.grade(words) }
