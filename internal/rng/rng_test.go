package rng

import (
	"slices"
	"testing"
	"time"
)

func TestSeededSequence(t *testing.T) {
	// Park-Miller minimal standard states for seed 1.
	states := []int64{16807, 282475249, 1622650073, 984943658, 1144108930}

	r := New(1)
	for i, s := range states {
		want := float64(s-1) / float64(Modulus-1)
		if got := r.Float64(); got != want {
			t.Errorf("draw %d = %v, want %v", i, got, want)
		}
	}
}

func TestSeededDeterministic(t *testing.T) {
	a, b := New(20240315), New(20240315)
	for i := 0; i < 100; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d diverged: %v != %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d = %v, out of [0,1)", i, x)
		}
	}
}

func TestCheckSeed(t *testing.T) {
	tests := []struct {
		seed    int64
		wantErr bool
	}{
		{1, false},
		{20240315, false},
		{0, true},
		{Modulus, true},
		{2 * Modulus, true},
	}
	for _, tt := range tests {
		err := CheckSeed(tt.seed)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckSeed(%d) error = %v, wantErr %v", tt.seed, err, tt.wantErr)
		}
	}
}

func TestDaySeed(t *testing.T) {
	d := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)
	if got := DaySeed(d); got != 20240315 {
		t.Errorf("DaySeed = %d, want 20240315", got)
	}

	// Same instant, different calendar day in another zone.
	tokyo := time.FixedZone("JST", 9*3600)
	if got := DaySeed(d.In(tokyo)); got != 20240316 {
		t.Errorf("DaySeed in JST = %d, want 20240316", got)
	}
}

func TestHashString(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"abc", 96354},
		{"hello", 99162322},
		// Wraps to math.MinInt32; the absolute value must not overflow.
		{"polygenelubricants", 2147483648},
	}
	for _, tt := range tests {
		if got := HashString(tt.in); got != tt.want {
			t.Errorf("HashString(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFinalSeed(t *testing.T) {
	d := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	if got := FinalSeed(d, "abc"); got != 20240315+96354 {
		t.Errorf("FinalSeed = %d", got)
	}
}

func TestShuffle(t *testing.T) {
	in := []string{"a", "b", "c"}
	got := Shuffle(in, New(1))

	if want := []string{"b", "c", "a"}; !slices.Equal(got, want) {
		t.Errorf("Shuffle = %v, want %v", got, want)
	}
	if !slices.Equal(in, []string{"a", "b", "c"}) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestShufflePermutation(t *testing.T) {
	in := make([]int, 50)
	for i := range in {
		in[i] = i
	}
	got := Shuffle(in, New(987654321))
	sorted := slices.Clone(got)
	slices.Sort(sorted)
	if !slices.Equal(sorted, in) {
		t.Fatalf("Shuffle lost or duplicated elements: %v", got)
	}

	again := Shuffle(in, New(987654321))
	if !slices.Equal(got, again) {
		t.Error("same seed produced different orders")
	}
}

func TestShuffleEmpty(t *testing.T) {
	if got := Shuffle([]int{}, New(7)); len(got) != 0 {
		t.Errorf("Shuffle(empty) = %v", got)
	}
	if got := Shuffle([]int{42}, New(7)); !slices.Equal(got, []int{42}) {
		t.Errorf("Shuffle(single) = %v", got)
	}
}
