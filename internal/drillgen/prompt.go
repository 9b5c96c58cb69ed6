package drillgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert Bible teacher creating drills for a Scripture memory app.

Rules:
- Return exactly 3 distinct passages, each 1-3 verses long.
- References use the form "Book Chapter:Verse" or "Book Chapter:Verse-Verse".
- When passage text is requested, quote it from the NIV or ESV without verse numbers.
- Context questions ask about author, audience, setting or meaning, never about wording alone.
- Each context question has exactly 4 options with exactly one correct; correctIndex is 0-3.
- Return only the JSON object described by the schema.`

func buildThemedMessage(theme string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a workout on the theme: %q.\n", theme)
	b.WriteString("For each passage give the text, reference, book, chapter, verse range and a context question.\n")
	return b.String()
}

func buildPracticeMessage(cfg PracticeConfig, withQuestion bool) string {
	var request string
	switch cfg.By {
	case ByBook:
		request = fmt.Sprintf("3 diverse passage references (1-3 verses each) from the book of %s", cfg.Value)
	case ByChapter:
		request = fmt.Sprintf("3 diverse passage references (1-3 verses each) from %s", cfg.Value)
	case ByTheme:
		request = fmt.Sprintf("3 diverse passage references (1-3 verses each) related to the theme: %s", cfg.Value)
	default:
		request = "3 diverse passage references (1-3 verses each) from random books and chapters across the entire Bible"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The user requested %s.\n", request)
	if withQuestion {
		b.WriteString("Include a context question for each passage.\n")
	}
	return b.String()
}
