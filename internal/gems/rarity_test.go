package gems

import "testing"

func TestStreakRarity(t *testing.T) {
	tests := []struct {
		length int
		want   Rarity
	}{
		{5, RarityCommon},
		{9, RarityCommon},
		{10, RarityRare},
		{15, RarityEpic},
		{20, RarityLegendary},
		{45, RarityLegendary},
	}
	for _, tt := range tests {
		if got := StreakRarity(tt.length); got != tt.want {
			t.Errorf("StreakRarity(%d) = %s, want %s", tt.length, got, tt.want)
		}
	}
}

func TestWorkoutRarity(t *testing.T) {
	tests := []struct {
		average int
		want    Rarity
	}{
		{0, RarityCommon},
		{49, RarityCommon},
		{50, RarityRare},
		{75, RarityEpic},
		{89, RarityEpic},
		{90, RarityLegendary},
		{100, RarityLegendary},
	}
	for _, tt := range tests {
		if got := WorkoutRarity(tt.average); got != tt.want {
			t.Errorf("WorkoutRarity(%d) = %s, want %s", tt.average, got, tt.want)
		}
	}
}

func TestVerseRarity(t *testing.T) {
	tests := []struct {
		words int
		want  Rarity
	}{
		{8, RarityCommon},
		{20, RarityRare},
		{35, RarityEpic},
		{80, RarityLegendary},
	}
	for _, tt := range tests {
		if got := VerseRarity(tt.words); got != tt.want {
			t.Errorf("VerseRarity(%d) = %s, want %s", tt.words, got, tt.want)
		}
	}
}

func TestRarityDisplayName(t *testing.T) {
	for _, r := range AllRarities() {
		if r.DisplayName() == string(r) {
			t.Errorf("rarity %s has no display name", r)
		}
	}
	for _, g := range AllGemTypes() {
		if g.DisplayName() == string(g) && g != GemStreak {
			t.Errorf("gem type %s has no display name", g)
		}
		if g.Icon() == "✦" {
			t.Errorf("gem type %s has no icon", g)
		}
	}
}
