// Package render formats drills, workouts and progress for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/gems"
	"github.com/abhisek/biblegym/internal/group"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/ui/theme"
	"github.com/abhisek/biblegym/internal/workout"
)

// Renderer turns domain values into terminal text. With Color off every
// style is stripped.
type Renderer struct {
	Color bool
	Width int
}

// New returns a Renderer that colors output only when w is a terminal.
func New(w io.Writer) *Renderer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) && os.Getenv("NO_COLOR") == ""
	}
	return &Renderer{Color: color, Width: 60}
}

func (r *Renderer) out(s string) string {
	if r.Color {
		return s
	}
	return ansi.Strip(s)
}

func (r *Renderer) rule() string {
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", r.Width))
}

// Passage renders a reference heading followed by the text.
func (r *Renderer) Passage(p corpus.Passage) string {
	return r.out(theme.Reference.Render(p.Reference) + "\n" + theme.Body.Render(p.Text))
}

// Workout renders a workout overview: its drills and any recorded scores.
func (r *Renderer) Workout(w *workout.Workout) string {
	var b strings.Builder

	title := "Daily Workout"
	if w.Theme != "" {
		title = "Workout: " + w.Theme
	}
	b.WriteString(theme.Title.Render(title))
	b.WriteString("  " + theme.Subtitle.Render(w.Date) + "\n")
	if w.IsGroupChallenge {
		b.WriteString(theme.Hint.Render("Group challenge") + "\n")
	}
	b.WriteString(r.rule() + "\n")

	for i, d := range w.Drills {
		status := theme.Subtitle.Render("pending")
		if score := w.Scores.Get(d.Kind()); w.Completed || score > 0 {
			status = theme.ScoreStyle(score).Render(fmt.Sprintf("%d%%", score))
		}
		fmt.Fprintf(&b, "%d. %-16s %s\n", i+1, d.Kind().DisplayName(), status)
	}

	b.WriteString(r.rule() + "\n")
	fmt.Fprintf(&b, "Total %d / %d", w.TotalScore, w.MaxScore())
	if w.Completed {
		b.WriteString("  " + theme.Correct.Render("completed"))
	}
	return r.out(b.String())
}

// DrillHeader renders the "Drill 2 of 4: Context" line.
func (r *Renderer) DrillHeader(i, n int, d drill.Drill) string {
	return r.out(theme.Title.Render(fmt.Sprintf("Drill %d of %d: %s", i+1, n, d.Kind().DisplayName())))
}

// MemorizationQuestion renders the passage with its blanks numbered.
func (r *Renderer) MemorizationQuestion(q drill.MemorizationQuestion) string {
	words := strings.Split(q.Passage.Text, " ")
	for n, bw := range q.BlankedWords {
		if bw.Index >= 0 && bw.Index < len(words) {
			words[bw.Index] = theme.Blank.Render(fmt.Sprintf("[%d]____", n+1))
		}
	}
	return r.out(theme.Reference.Render(q.Passage.Reference) + "\n" + strings.Join(words, " "))
}

// ContextItem renders a multiple-choice question with lettered options.
func (r *Renderer) ContextItem(q drill.ContextItem) string {
	var b strings.Builder
	b.WriteString(theme.Reference.Render(q.Passage.Reference) + "\n")
	b.WriteString(theme.Body.Bold(true).Render(q.Question) + "\n")
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %c) %s\n", 'a'+i, opt)
	}
	return r.out(strings.TrimRight(b.String(), "\n"))
}

// VerseMatch renders numbered references beside lettered texts, in the
// order given by texts.
func (r *Renderer) VerseMatch(vm *drill.VerseMatch, texts []string) string {
	var b strings.Builder
	for i, p := range vm.Pairs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, theme.Reference.Render(p.Reference))
	}
	b.WriteString("\n")
	for i, t := range texts {
		fmt.Fprintf(&b, "  %c) %s\n", 'a'+i, t)
	}
	return r.out(strings.TrimRight(b.String(), "\n"))
}

// Rearrange renders the shuffled clauses, numbered.
func (r *Renderer) Rearrange(d *drill.Rearrange) string {
	var b strings.Builder
	b.WriteString(theme.Reference.Render(d.Passage.Reference) + "\n")
	for i, u := range d.ShuffledVerses {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, u.Text)
	}
	return r.out(strings.TrimRight(b.String(), "\n"))
}

// Score renders a labeled percentage.
func (r *Renderer) Score(label string, score int) string {
	return r.out(fmt.Sprintf("%s %s", label, theme.ScoreStyle(score).Render(fmt.Sprintf("%d%%", score))))
}

// ProgressBar renders a horizontal bar; percent is 0 to 1.
func (r *Renderer) ProgressBar(label string, percent float64) string {
	var result string
	if label != "" {
		result = theme.Body.Render(label) + "  "
	}

	barWidth := max(4, r.Width-lipgloss.Width(result)-6)
	filled := min(barWidth, max(0, int(float64(barWidth)*percent)))

	if r.Color {
		result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
		result += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	} else {
		result += "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
	}
	result += theme.Subtitle.Render(fmt.Sprintf("  %d%%", int(percent*100)))
	return r.out(result)
}

// MasteryLevel renders a verse as shown at level l.
func (r *Renderer) MasteryLevel(rec *mastery.VerseMastery, l mastery.Level) string {
	var b strings.Builder
	style := lipgloss.NewStyle().Foreground(theme.LevelColor(l)).Bold(true)
	fmt.Fprintf(&b, "%s  %s\n", theme.Reference.Render(rec.Passage.Reference), style.Render(fmt.Sprintf("Level %d: %s", l, l.Name())))
	b.WriteString(theme.Hint.Render(l.Description()) + "\n")
	if text := mastery.Display(rec.Passage.Reference, rec.Passage.Text, l); text != "" {
		b.WriteString(theme.Body.Render(text))
	} else {
		b.WriteString(theme.Hint.Render("(type the verse from memory)"))
	}
	return r.out(b.String())
}

// MasteryRecord renders a verse's progress summary.
func (r *Renderer) MasteryRecord(rec *mastery.VerseMastery) string {
	var b strings.Builder
	b.WriteString(theme.Reference.Render(rec.Passage.Reference) + "\n")
	status := theme.Subtitle.Render(string(rec.Status))
	if rec.Status == mastery.StatusMastered {
		status = theme.Correct.Render(string(rec.Status))
	}
	fmt.Fprintf(&b, "Status:        %s\n", status)
	fmt.Fprintf(&b, "Current level: %d (%s)\n", rec.CurrentLevel, rec.CurrentLevel.Name())
	fmt.Fprintf(&b, "Best accuracy: %d%%\n", rec.BestAccuracy)
	if rec.BestTime > 0 {
		fmt.Fprintf(&b, "Best time:     %ds\n", rec.BestTime)
	}
	if !rec.LastPracticed.IsZero() {
		fmt.Fprintf(&b, "Last practice: %s", rec.LastPracticed.Local().Format("2006-01-02 15:04"))
	}
	return r.out(strings.TrimRight(b.String(), "\n"))
}

// Packs renders the mastery packs with progress against records.
func (r *Renderer) Packs(packs []corpus.MasteryPack, records map[string]*mastery.VerseMastery) string {
	var b strings.Builder
	for i, p := range packs {
		if i > 0 {
			b.WriteString("\n")
		}
		mastered, total := mastery.PackProgress(p, records)
		fmt.Fprintf(&b, "%s %s\n", theme.Title.Render(p.Name), theme.Subtitle.Render("("+p.ID+")"))
		b.WriteString(theme.Hint.Render(p.Description) + "\n")
		pct := 0.0
		if total > 0 {
			pct = float64(mastered) / float64(total)
		}
		b.WriteString(r.ProgressBar(fmt.Sprintf("%d/%d", mastered, total), pct) + "\n")
		for _, v := range p.Verses {
			mark := " "
			if rec, ok := records[v.Reference]; ok {
				if rec.Status == mastery.StatusMastered {
					mark = theme.Correct.Render("✓")
				} else {
					mark = fmt.Sprint(rec.CurrentLevel)
				}
			}
			fmt.Fprintf(&b, "  [%s] %s\n", mark, v.Reference)
		}
	}
	return r.out(strings.TrimRight(b.String(), "\n"))
}

// Leaderboard renders group members in the given order.
func (r *Renderer) Leaderboard(g *group.Group, members []group.Member) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", theme.Title.Render(g.Name), theme.Subtitle.Render("invite code "+g.InviteCode))
	b.WriteString(r.rule() + "\n")
	fmt.Fprintf(&b, "%-4s %-4s %-20s %8s %7s\n", "#", "", "Name", "Weekly", "Streak")
	for i, m := range members {
		fmt.Fprintf(&b, "%-4d %-4s %-20s %8d %7d\n", i+1, m.AvatarInitials, truncate(m.Name, 20), m.WeeklyScore, m.Streak)
	}
	if g.Challenge != nil {
		b.WriteString(r.rule() + "\n")
		label := "Challenge"
		if g.Challenge.Theme != "" {
			label += ": " + g.Challenge.Theme
		}
		fmt.Fprintf(&b, "%s (%d completed)", theme.Reference.Render(label), len(g.ChallengeParticipants))
	}
	return r.out(strings.TrimRight(b.String(), "\n"))
}

// GemAward renders a single newly awarded gem.
func (r *Renderer) GemAward(a gems.GemAward) string {
	style := lipgloss.NewStyle().Foreground(theme.RarityColor(a.Rarity)).Bold(true)
	return r.out(fmt.Sprintf("%s %s %s", a.Type.Icon(), style.Render(a.Rarity.DisplayName()+" "+a.Type.DisplayName()), theme.Hint.Render(a.Reason)))
}

// GemCounts renders totals per gem type.
func (r *Renderer) GemCounts(counts map[string]int, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", theme.Title.Render("Gems"), total)
	for _, t := range gems.AllGemTypes() {
		fmt.Fprintf(&b, "  %s %-16s %d\n", t.Icon(), t.DisplayName(), counts[string(t)])
	}
	return r.out(strings.TrimRight(b.String(), "\n"))
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
