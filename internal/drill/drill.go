// Package drill defines the four drill shapes, their generators and their
// scorers. Everything here is pure: generators take their randomness from an
// rng.Source and scorers never look beyond their arguments.
package drill

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/biblegym/internal/corpus"
)

// Kind tags a drill variant.
type Kind string

const (
	KindMemorization Kind = "memorization"
	KindContext      Kind = "context"
	KindVerseMatch   Kind = "verse-match"
	KindRearrange    Kind = "rearrange"
)

// Kinds lists every drill kind in workout order.
var Kinds = []Kind{KindMemorization, KindContext, KindVerseMatch, KindRearrange}

// ErrUnknownKind is returned for drill tags or values this package does not
// define.
var ErrUnknownKind = errors.New("unknown drill kind")

// ParseKind validates a drill tag.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// DisplayName returns the human-readable name for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindMemorization:
		return "Memorization"
	case KindContext:
		return "Context Challenge"
	case KindVerseMatch:
		return "Verse Match"
	case KindRearrange:
		return "Rearrange"
	default:
		return string(k)
	}
}

// Drill is one of *Memorization, *Context, *VerseMatch or *Rearrange.
// The unexported method closes the set.
type Drill interface {
	Kind() Kind
	drill()
}

// BlankedWord is a word hidden from a memorization passage. Index is the
// position in the passage text split on single spaces; Word keeps its
// punctuation.
type BlankedWord struct {
	Index int    `json:"index"`
	Word  string `json:"word"`
}

// MemorizationQuestion is one fill-in-the-blanks passage.
type MemorizationQuestion struct {
	ID           string         `json:"id"`
	Passage      corpus.Passage `json:"passage"`
	BlankedWords []BlankedWord  `json:"blankedWords"`
}

// Memorization asks the user to fill blanked words back in.
type Memorization struct {
	Questions []MemorizationQuestion `json:"questions"`
}

// ContextItem is one multiple-choice background question.
type ContextItem struct {
	ID           string         `json:"id"`
	Question     string         `json:"question"`
	Options      []string       `json:"options"`
	CorrectIndex int            `json:"correctIndex"`
	Passage      corpus.Passage `json:"passage"`
}

// Context asks background questions about passages.
type Context struct {
	Questions []ContextItem `json:"questions"`
}

// VerseMatchPair is a ground-truth reference to text association.
type VerseMatchPair struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// VerseMatch asks the user to pair references with excerpts.
type VerseMatch struct {
	Pairs []VerseMatchPair `json:"pairs"`
}

// RearrangeUnit is one clause of a passage tagged with its correct position.
type RearrangeUnit struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	OriginalIndex int    `json:"originalIndex"`
}

// Rearrange asks the user to restore the clause order of a passage.
type Rearrange struct {
	Passage        corpus.Passage  `json:"passage"`
	ShuffledVerses []RearrangeUnit `json:"shuffledVerses"`
}

func (*Memorization) Kind() Kind { return KindMemorization }
func (*Context) Kind() Kind      { return KindContext }
func (*VerseMatch) Kind() Kind   { return KindVerseMatch }
func (*Rearrange) Kind() Kind    { return KindRearrange }

func (*Memorization) drill() {}
func (*Context) drill()      {}
func (*VerseMatch) drill()   {}
func (*Rearrange) drill()    {}

// Encode marshals a drill with its "type" tag alongside the variant fields.
func Encode(d Drill) ([]byte, error) {
	var body any
	switch v := d.(type) {
	case *Memorization:
		body = struct {
			Type Kind `json:"type"`
			*Memorization
		}{KindMemorization, v}
	case *Context:
		body = struct {
			Type Kind `json:"type"`
			*Context
		}{KindContext, v}
	case *VerseMatch:
		body = struct {
			Type Kind `json:"type"`
			*VerseMatch
		}{KindVerseMatch, v}
	case *Rearrange:
		body = struct {
			Type Kind `json:"type"`
			*Rearrange
		}{KindRearrange, v}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, d)
	}
	return json.Marshal(body)
}

// Decode reads a tagged drill produced by Encode.
func Decode(data []byte) (Drill, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("decode drill tag: %w", err)
	}
	kind, err := ParseKind(tag.Type)
	if err != nil {
		return nil, err
	}

	var d Drill
	switch kind {
	case KindMemorization:
		d = &Memorization{}
	case KindContext:
		d = &Context{}
	case KindVerseMatch:
		d = &VerseMatch{}
	case KindRearrange:
		d = &Rearrange{}
	}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("decode %s drill: %w", kind, err)
	}
	return d, nil
}

// List is an ordered drill sequence that survives a JSON round trip.
type List []Drill

func (l List) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, len(l))
	for i, d := range l {
		b, err := Encode(d)
		if err != nil {
			return nil, fmt.Errorf("drill %d: %w", i, err)
		}
		raw[i] = b
	}
	return json.Marshal(raw)
}

func (l *List) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(List, len(raw))
	for i, r := range raw {
		d, err := Decode(r)
		if err != nil {
			return fmt.Errorf("drill %d: %w", i, err)
		}
		out[i] = d
	}
	*l = out
	return nil
}
