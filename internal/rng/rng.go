// Package rng provides the deterministic random source that makes daily
// workouts reproducible: a Park-Miller style generator, seed derivation from
// a calendar day and user id, and a Fisher-Yates shuffle driven by any Source.
package rng

import (
	"errors"
	"math/rand/v2"
	"time"
	"unicode/utf16"
)

// Modulus is the Mersenne prime 2^31 - 1 used by the generator.
const Modulus int64 = 2147483647

const multiplier int64 = 16807

// ErrDegenerateSeed is returned when a seed would lock the generator at zero.
var ErrDegenerateSeed = errors.New("rng: seed is a multiple of the modulus")

// Source yields floats in [0, 1).
type Source interface {
	Float64() float64
}

// Seeded is the deterministic generator. The zero value is not usable; build
// one with New.
type Seeded struct {
	state int64
}

// New returns a generator whose sequence is fully determined by seed.
// Seeds that are multiples of Modulus produce a constant stream of
// -1/(Modulus-1); use CheckSeed to reject them up front.
func New(seed int64) *Seeded {
	return &Seeded{state: seed}
}

// CheckSeed reports ErrDegenerateSeed for seeds the generator cannot use.
func CheckSeed(seed int64) error {
	if seed%Modulus == 0 {
		return ErrDegenerateSeed
	}
	return nil
}

// Float64 advances the state and returns the next value in [0, 1).
func (s *Seeded) Float64() float64 {
	s.state = (s.state * multiplier) % Modulus
	return float64(s.state-1) / float64(Modulus-1)
}

// Intn returns floor(src.Float64() * n). n must be positive.
func Intn(src Source, n int) int {
	return int(src.Float64() * float64(n))
}

type system struct{}

func (system) Float64() float64 { return rand.Float64() }

// System returns a non-deterministic Source for content that does not need
// to be reproducible, such as practice drills.
func System() Source {
	return system{}
}

// DaySeed encodes the calendar date of t, in t's location, as YYYYMMDD.
func DaySeed(t time.Time) int64 {
	y, m, d := t.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// HashString folds s over its UTF-16 code units with h = h*31 + c in signed
// 32-bit arithmetic and returns the absolute value.
func HashString(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// FinalSeed is the seed of the daily workout for userID on t's calendar day.
func FinalSeed(t time.Time, userID string) int64 {
	return DaySeed(t) + HashString(userID)
}

// Shuffle returns a shuffled copy of items using a Fisher-Yates pass from
// the last index down, drawing j = floor(src.Float64() * (i+1)).
func Shuffle[T any](items []T, src Source) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := Intn(src, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
