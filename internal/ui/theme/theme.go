// Package theme holds the terminal palette and shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/biblegym/internal/gems"
	"github.com/abhisek/biblegym/internal/mastery"
)

// Palette: parchment and ink, with gold for highlights.
var (
	Ink       = lipgloss.Color("#3B2F2F")
	Parchment = lipgloss.Color("#F3E9D2")
	Faded     = lipgloss.Color("#A89F91")
	Gold      = lipgloss.Color("#C9A227")
	Olive     = lipgloss.Color("#6B8E23")
	Wine      = lipgloss.Color("#8E2C48")
	Sea       = lipgloss.Color("#2E6F95")
	Border    = lipgloss.Color("#5C5346")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Gold)
	Subtitle = lipgloss.NewStyle().Foreground(Faded)
	Body     = lipgloss.NewStyle().Foreground(Parchment)
	Hint     = lipgloss.NewStyle().Foreground(Faded).Italic(true)

	// Reference renders "John 3:16" style citations.
	Reference = lipgloss.NewStyle().Foreground(Gold).Bold(true)
)

var (
	Correct   = lipgloss.NewStyle().Foreground(Olive).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Wine).Bold(true)
	Blank     = lipgloss.NewStyle().Foreground(Sea).Underline(true)
)

var (
	ProgressFilled = lipgloss.NewStyle().Background(Sea)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)

// RarityColor maps a gem rarity to its display color.
func RarityColor(r gems.Rarity) color.Color {
	switch r {
	case gems.RarityRare:
		return Sea
	case gems.RarityEpic:
		return Wine
	case gems.RarityLegendary:
		return Gold
	default:
		return Parchment
	}
}

// LevelColor colors mastery levels from easy to hard.
func LevelColor(l mastery.Level) color.Color {
	switch l {
	case mastery.LevelRead:
		return Faded
	case mastery.LevelLightBlanks:
		return Sea
	case mastery.LevelHardBlanks:
		return Wine
	case mastery.LevelFirstLetter:
		return Gold
	default:
		return Olive
	}
}

// ScoreStyle picks a style for a 0-100 score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= mastery.PassAccuracy:
		return Correct
	case score >= 60:
		return lipgloss.NewStyle().Foreground(Gold).Bold(true)
	default:
		return Incorrect
	}
}
