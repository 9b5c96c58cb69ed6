// Package mastery implements the five-level verse memorization track: how a
// verse is shown at each level, how a recall attempt is graded, and how a
// verse's progress record moves forward.
package mastery

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Level is a stage of the mastery track, 1 through 5.
type Level int

const (
	LevelRead Level = iota + 1
	LevelLightBlanks
	LevelHardBlanks
	LevelFirstLetter
	LevelFullRecall
)

// MaxLevel is the final level.
const MaxLevel = LevelFullRecall

// Blank replaces a hidden word at the blank levels.
const Blank = "____"

// Valid reports whether l is one of the five levels.
func (l Level) Valid() bool {
	return l >= LevelRead && l <= LevelFullRecall
}

// Name returns the level's display name.
func (l Level) Name() string {
	switch l {
	case LevelRead:
		return "Read Mode"
	case LevelLightBlanks:
		return "Light Blanks"
	case LevelHardBlanks:
		return "Hard Blanks"
	case LevelFirstLetter:
		return "First Letter"
	case LevelFullRecall:
		return "Full Recall"
	default:
		return fmt.Sprintf("Level %d", int(l))
	}
}

// Description tells the user what the level asks of them.
func (l Level) Description() string {
	switch l {
	case LevelRead:
		return "Read the verse carefully. Absorb the meaning."
	case LevelLightBlanks:
		return "Type the missing words. 25% hidden."
	case LevelHardBlanks:
		return "Increased difficulty. 50% hidden."
	case LevelFirstLetter:
		return "Every word is hidden except its first letter."
	case LevelFullRecall:
		return "Type the entire verse from memory."
	default:
		return ""
	}
}

// HiddenShare is the share of words blanked at levels 2 and 3.
func (l Level) HiddenShare() float64 {
	switch l {
	case LevelLightBlanks:
		return 0.25
	case LevelHardBlanks:
		return 0.5
	default:
		return 0
	}
}

// Display renders text the way level l shows it. Words are split on runs
// of whitespace and rejoined with single spaces. The blank levels mask word
// i when ((i*1337 + seed) % 100) / 100 falls below the level's share, with
// seed the UTF-16 length of reference, so a passage always masks the same
// way.
func Display(reference, text string, l Level) string {
	switch l {
	case LevelLightBlanks, LevelHardBlanks:
		seed := len(utf16.Encode([]rune(reference)))
		share := l.HiddenShare()
		words := strings.Fields(text)
		for i := range words {
			if float64((i*1337+seed)%100)/100 < share {
				words[i] = Blank
			}
		}
		return strings.Join(words, " ")
	case LevelFirstLetter:
		words := strings.Fields(text)
		for i, w := range words {
			words[i] = firstLetterOnly(w)
		}
		return strings.Join(words, " ")
	case LevelFullRecall:
		return ""
	default:
		return text
	}
}

// firstLetterOnly keeps the first letter of w and replaces every later
// letter with '_'. Other characters are untouched.
func firstLetterOnly(w string) string {
	var b strings.Builder
	seen := false
	for _, r := range w {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
		case !seen:
			b.WriteRune(r)
			seen = true
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
