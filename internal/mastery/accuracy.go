package mastery

import (
	"math"
	"strings"
	"unicode"
)

// PassAccuracy is the accuracy needed to clear a level.
const PassAccuracy = 90

// Accuracy grades a recall attempt against the target text, 0 to 100.
// Both sides are lowercased and stripped of everything but letters, digits
// and whitespace. Identical results score 100; otherwise the score is the
// share of target words matched at the same position.
func Accuracy(input, target string) int {
	in, want := normalize(input), normalize(target)
	if in == want {
		return 100
	}

	inWords := strings.Fields(in)
	targetWords := strings.Fields(want)
	if len(targetWords) == 0 {
		return 0
	}

	matches := 0
	for i, w := range targetWords {
		if i < len(inWords) && inWords[i] == w {
			matches++
		}
	}
	return int(math.Round(float64(matches) / float64(len(targetWords)) * 100))
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
