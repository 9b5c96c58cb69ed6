// Package corpus holds the read-only Scripture content that drills are built
// from: passages, context questions, verse-match items and mastery packs.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrEmptyCollection is wrapped with the collection name when a generator
// needs a non-empty collection and gets an empty one.
var ErrEmptyCollection = errors.New("empty collection")

// Collection names used in errors.
const (
	CollectionPassages         = "passages"
	CollectionContextQuestions = "context questions"
	CollectionVerseMatchItems  = "verse-match items"
)

// Passage is a unit of Scripture.
type Passage struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Verses    string `json:"verses"`
}

// ContextQuestion is a multiple-choice question about a passage's
// background.
type ContextQuestion struct {
	ID               string   `json:"id"`
	PassageReference string   `json:"passageReference"`
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	CorrectIndex     int      `json:"correctIndex"`
}

// VerseMatchItem pairs a reference with a short excerpt.
type VerseMatchItem struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// MasteryPack is a themed set of verses for the mastery track.
type MasteryPack struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Verses      []Passage `json:"verses"`
}

// Corpus groups the collections generators draw from.
type Corpus struct {
	Passages         []Passage         `json:"passages"`
	ContextQuestions []ContextQuestion `json:"contextQuestions"`
	VerseMatchItems  []VerseMatchItem  `json:"verseMatchItems"`
	MasteryPacks     []MasteryPack     `json:"masteryPacks"`
}

// Default returns the built-in corpus.
func Default() *Corpus {
	return &Corpus{
		Passages:         slices.Clone(defaultPassages),
		ContextQuestions: slices.Clone(defaultContextQuestions),
		VerseMatchItems:  slices.Clone(defaultVerseMatchItems),
		MasteryPacks:     slices.Clone(defaultMasteryPacks),
	}
}

// Load decodes a corpus from JSON. Collections missing from the document
// are filled from the built-in corpus.
func Load(r io.Reader) (*Corpus, error) {
	var c Corpus
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	def := Default()
	if c.Passages == nil {
		c.Passages = def.Passages
	}
	if c.ContextQuestions == nil {
		c.ContextQuestions = def.ContextQuestions
	}
	if c.VerseMatchItems == nil {
		c.VerseMatchItems = def.VerseMatchItems
	}
	if c.MasteryPacks == nil {
		c.MasteryPacks = def.MasteryPacks
	}
	return &c, c.Validate()
}

// Validate checks that every collection a daily workout needs is non-empty
// and that every context question is well formed.
func (c *Corpus) Validate() error {
	if err := RequireNonEmpty(CollectionPassages, len(c.Passages)); err != nil {
		return err
	}
	if err := RequireNonEmpty(CollectionContextQuestions, len(c.ContextQuestions)); err != nil {
		return err
	}
	if err := RequireNonEmpty(CollectionVerseMatchItems, len(c.VerseMatchItems)); err != nil {
		return err
	}
	for _, q := range c.ContextQuestions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("context question %s: correct index %d out of range for %d options",
				q.ID, q.CorrectIndex, len(q.Options))
		}
	}
	return nil
}

// RequireNonEmpty returns an ErrEmptyCollection naming the collection when
// n is zero.
func RequireNonEmpty(name string, n int) error {
	if n == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptyCollection)
	}
	return nil
}

// Passage returns the passage with the given reference.
func (c *Corpus) Passage(reference string) (Passage, bool) {
	for _, p := range c.Passages {
		if p.Reference == reference {
			return p, true
		}
	}
	return Passage{}, false
}

// QuestionFor returns the first context question about reference.
func (c *Corpus) QuestionFor(reference string) (ContextQuestion, bool) {
	for _, q := range c.ContextQuestions {
		if q.PassageReference == reference {
			return q, true
		}
	}
	return ContextQuestion{}, false
}

// Pack returns the mastery pack with the given id.
func (c *Corpus) Pack(id string) (MasteryPack, bool) {
	for _, p := range c.MasteryPacks {
		if p.ID == id {
			return p, true
		}
	}
	return MasteryPack{}, false
}

// MasteryVerse finds a verse by reference across all mastery packs,
// falling back to the passage list. Matching ignores case.
func (c *Corpus) MasteryVerse(reference string) (Passage, bool) {
	for _, pack := range c.MasteryPacks {
		for _, v := range pack.Verses {
			if strings.EqualFold(v.Reference, reference) {
				return v, true
			}
		}
	}
	for _, p := range c.Passages {
		if strings.EqualFold(p.Reference, reference) {
			return p, true
		}
	}
	return Passage{}, false
}

// FilterPassages returns the passages whose book, chapter or text matches
// by and value. Unknown selectors and "random" return every passage.
func (c *Corpus) FilterPassages(by, value string) []Passage {
	value = strings.TrimSpace(value)
	if value == "" {
		return slices.Clone(c.Passages)
	}
	var out []Passage
	for _, p := range c.Passages {
		switch by {
		case "book":
			if strings.EqualFold(p.Book, value) {
				out = append(out, p)
			}
		case "chapter":
			if strings.EqualFold(fmt.Sprintf("%s %d", p.Book, p.Chapter), value) {
				out = append(out, p)
			}
		case "theme":
			if strings.Contains(strings.ToLower(p.Text), strings.ToLower(value)) {
				out = append(out, p)
			}
		default:
			out = append(out, p)
		}
	}
	return out
}
