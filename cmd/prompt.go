package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/rng"
	"github.com/abhisek/biblegym/internal/ui/render"
)

// errQuit is returned when the user types "q" at a prompt.
var errQuit = errors.New("quit")

// prompter reads answers line by line.
type prompter struct {
	in     *bufio.Reader
	out    io.Writer
	render *render.Renderer
	src    rng.Source
}

func newPrompter(in io.Reader, out io.Writer, r *render.Renderer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, render: r, src: rng.System()}
}

func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "q" {
		return "", errQuit
	}
	return line, nil
}

// letterIndex parses "b" or "2" into a zero-based index below n.
func letterIndex(s string, n int) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= 'a' && s[0] < byte('a'+n) {
		return int(s[0] - 'a'), true
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 1 && i <= n {
		return i - 1, true
	}
	return 0, false
}

// askIndex repeats the prompt until a valid choice is entered.
func (p *prompter) askIndex(label string, n int) (int, error) {
	for {
		s, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		if i, ok := letterIndex(s, n); ok {
			return i, nil
		}
		fmt.Fprintf(p.out, "Pick one of a-%c.\n", 'a'+n-1)
	}
}

// playDrill shows d and collects the user's answers.
func (p *prompter) playDrill(d drill.Drill) (drill.Answers, error) {
	var a drill.Answers
	switch v := d.(type) {
	case *drill.Memorization:
		a.Memorization = make(map[string]map[int]string, len(v.Questions))
		for _, q := range v.Questions {
			fmt.Fprintln(p.out, p.render.MemorizationQuestion(q))
			words := make(map[int]string, len(q.BlankedWords))
			for n, bw := range q.BlankedWords {
				s, err := p.ask(fmt.Sprintf("  [%d] > ", n+1))
				if err != nil {
					return a, err
				}
				words[bw.Index] = s
			}
			a.Memorization[q.ID] = words
			fmt.Fprintln(p.out)
		}

	case *drill.Context:
		a.Context = make(map[string]int, len(v.Questions))
		for _, q := range v.Questions {
			fmt.Fprintln(p.out, p.render.ContextItem(q))
			i, err := p.askIndex("  answer > ", len(q.Options))
			if err != nil {
				return a, err
			}
			a.Context[q.ID] = i
			fmt.Fprintln(p.out)
		}

	case *drill.VerseMatch:
		texts := make([]string, len(v.Pairs))
		for i, pair := range v.Pairs {
			texts[i] = pair.Text
		}
		texts = rng.Shuffle(texts, p.src)
		fmt.Fprintln(p.out, p.render.VerseMatch(v, texts))
		a.VerseMatch = make(map[string]string, len(v.Pairs))
		for i, pair := range v.Pairs {
			j, err := p.askIndex(fmt.Sprintf("  %d. %s > ", i+1, pair.Reference), len(texts))
			if err != nil {
				return a, err
			}
			a.VerseMatch[pair.Reference] = texts[j]
		}

	case *drill.Rearrange:
		fmt.Fprintln(p.out, p.render.Rearrange(v))
		for {
			s, err := p.ask("  order (e.g. 2 1 3) > ")
			if err != nil {
				return a, err
			}
			order, ok := parseOrder(s, v.ShuffledVerses)
			if ok {
				a.Rearrange = order
				break
			}
			fmt.Fprintf(p.out, "Enter each number from 1 to %d once.\n", len(v.ShuffledVerses))
		}

	default:
		return a, fmt.Errorf("%w: %T", drill.ErrUnknownKind, d)
	}
	return a, nil
}

// parseOrder maps "2 1 3" onto unit ids. Every position must appear once.
func parseOrder(s string, units []drill.RearrangeUnit) ([]string, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != len(units) {
		return nil, false
	}
	seen := make(map[int]bool, len(units))
	ids := make([]string, len(units))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > len(units) || seen[n] {
			return nil, false
		}
		seen[n] = true
		ids[i] = units[n-1].ID
	}
	return ids, true
}
