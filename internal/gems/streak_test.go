package gems

import "testing"

func TestNextStreakThreshold(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 5},
		{1, 5},
		{4, 5},
		{5, 10},
		{9, 10},
		{10, 15},
		{14, 15},
		{15, 20},
		{19, 20},
		{20, 25},
		{24, 25},
		{25, 30},
	}

	for _, tt := range tests {
		got := NextStreakThreshold(tt.current)
		if got != tt.want {
			t.Errorf("NextStreakThreshold(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestCrossedMilestone(t *testing.T) {
	tests := []struct {
		prev, next int
		want       bool
	}{
		{4, 5, true},
		{3, 4, false},
		{5, 5, false},
		{5, 6, false},
		{9, 10, true},
		{24, 25, true},
		{7, 1, false},
		{0, 1, false},
	}
	for _, tt := range tests {
		if got := CrossedMilestone(tt.prev, tt.next); got != tt.want {
			t.Errorf("CrossedMilestone(%d, %d) = %v, want %v", tt.prev, tt.next, got, tt.want)
		}
	}
}
