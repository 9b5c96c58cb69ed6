package drillgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/abhisek/biblegym/internal/corpus"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/llm"
	"github.com/abhisek/biblegym/internal/rng"
)

// Practice selectors.
const (
	ByBook    = "book"
	ByChapter = "chapter"
	ByTheme   = "theme"
	ByRandom  = "random"
)

// PlaceholderText stands in for a passage whose text could not be fetched.
const PlaceholderText = "(Text could not be loaded)"

// PracticeConfig narrows where practice passages come from.
type PracticeConfig struct {
	By    string `json:"by"`
	Value string `json:"value"`
}

// PracticeResult is a single practice drill.
type PracticeResult struct {
	Drill         drill.Drill `json:"drill"`
	IsAIGenerated bool        `json:"isAiGenerated"`
}

// MarshalJSON tags the drill with its type.
func (r PracticeResult) MarshalJSON() ([]byte, error) {
	d, err := drill.Encode(r.Drill)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Drill         json.RawMessage `json:"drill"`
		IsAIGenerated bool            `json:"isAiGenerated"`
	}{d, r.IsAIGenerated})
}

// Practice builds one drill of kind. It asks the LLM for references and
// looks up their text; without a provider, or on any LLM failure, it falls
// back to the built-in corpus.
func (g *Generator) Practice(ctx context.Context, kind drill.Kind, cfg PracticeConfig) (*PracticeResult, error) {
	if _, err := drill.ParseKind(string(kind)); err != nil {
		return nil, err
	}

	if g.provider != nil {
		d, err := g.aiPractice(ctx, kind, cfg)
		if err == nil {
			return &PracticeResult{Drill: d, IsAIGenerated: true}, nil
		}
		slog.Warn("AI practice generation failed, using local corpus", "kind", kind, "error", err)
	}

	d, err := g.localPractice(kind, cfg)
	if err != nil {
		return nil, err
	}
	return &PracticeResult{Drill: d, IsAIGenerated: false}, nil
}

func (g *Generator) aiPractice(ctx context.Context, kind drill.Kind, cfg PracticeConfig) (drill.Drill, error) {
	ctx = llm.WithPurpose(ctx, PurposePracticeDrill)

	withQuestion := kind == drill.KindContext
	schema := PracticeReferencesSchema
	if withQuestion {
		schema = PracticeQuestionsSchema
	}

	batch, err := g.request(ctx, schema, buildPracticeMessage(cfg, withQuestion), false, withQuestion)
	if err != nil {
		return nil, err
	}

	passages := make([]corpus.Passage, len(batch.Passages))
	for i, p := range batch.Passages {
		passages[i] = g.resolve(ctx, p)
	}

	stamp := g.stamp()
	switch kind {
	case drill.KindMemorization:
		return g.memorization(passages, "practice-mem", stamp)
	case drill.KindContext:
		return contextFromBatch(batch, passages, "practice-ctx", stamp), nil
	case drill.KindVerseMatch:
		return verseMatchFrom(passages), nil
	default:
		return drill.GenerateRearrange(passages, g.src)
	}
}

// resolve fills in the passage text, keeping the LLM's metadata where the
// lookup has none.
func (g *Generator) resolve(ctx context.Context, p GeneratedPassage) corpus.Passage {
	fallback := p.Passage()
	fallback.Text = PlaceholderText
	if g.lookup == nil {
		return fallback
	}

	fetched, err := g.lookup.Lookup(ctx, p.Reference)
	if err != nil {
		slog.Debug("passage lookup failed", "reference", p.Reference, "error", err)
		return fallback
	}
	if fetched.Reference == "" {
		fetched.Reference = p.Reference
	}
	if fetched.Book == "" {
		fetched.Book = p.Book
	}
	if fetched.Chapter == 0 {
		fetched.Chapter = p.Chapter
	}
	if fetched.Verses == "" {
		fetched.Verses = p.Verses
	}
	return fetched
}

func (g *Generator) localPractice(kind drill.Kind, cfg PracticeConfig) (drill.Drill, error) {
	pool := g.corpus.FilterPassages(cfg.By, cfg.Value)
	if len(pool) == 0 {
		pool = slices.Clone(g.corpus.Passages)
	}
	if err := corpus.RequireNonEmpty(corpus.CollectionPassages, len(pool)); err != nil {
		return nil, err
	}

	stamp := g.stamp()
	picked := rng.Shuffle(pool, g.src)
	picked = picked[:min(PassagesPerBatch, len(picked))]

	switch kind {
	case drill.KindMemorization:
		return g.memorization(picked, "fallback-mem", stamp)
	case drill.KindContext:
		return g.localContext(picked, stamp)
	case drill.KindVerseMatch:
		return drill.GenerateVerseMatch(g.corpus.VerseMatchItems, g.src)
	default:
		return drill.GenerateRearrange(g.corpus.Passages, g.src)
	}
}

// localContext uses the first question tagged with each passage, or cycles
// through the pool when none is tagged.
func (g *Generator) localContext(passages []corpus.Passage, stamp int64) (*drill.Context, error) {
	questions := g.corpus.ContextQuestions
	if err := corpus.RequireNonEmpty(corpus.CollectionContextQuestions, len(questions)); err != nil {
		return nil, err
	}

	items := make([]drill.ContextItem, len(passages))
	for i, p := range passages {
		q, ok := g.corpus.QuestionFor(p.Reference)
		if !ok {
			q = questions[i%len(questions)]
		}
		items[i] = drill.ContextItem{
			ID:           fmt.Sprintf("fallback-ctx-%d-%d", stamp, i),
			Question:     q.Question,
			Options:      slices.Clone(q.Options),
			CorrectIndex: q.CorrectIndex,
			Passage:      p,
		}
	}
	return &drill.Context{Questions: items}, nil
}
