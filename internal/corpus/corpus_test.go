package corpus

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCorpus(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Len(t, c.Passages, 7)
	assert.Len(t, c.ContextQuestions, 10)
	assert.Len(t, c.VerseMatchItems, 10)
	require.Len(t, c.MasteryPacks, 5)
	for _, p := range c.MasteryPacks {
		assert.Len(t, p.Verses, 5, "pack %s", p.ID)
	}
}

func TestDefaultIsACopy(t *testing.T) {
	a := Default()
	a.Passages[0].Text = "changed"
	b := Default()
	assert.NotEqual(t, "changed", b.Passages[0].Text)
}

func TestValidateNamesEmptyCollection(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Corpus)
		want   string
	}{
		{"passages", func(c *Corpus) { c.Passages = nil }, CollectionPassages},
		{"questions", func(c *Corpus) { c.ContextQuestions = nil }, CollectionContextQuestions},
		{"verse match", func(c *Corpus) { c.VerseMatchItems = nil }, CollectionVerseMatchItems},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEmptyCollection))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateCorrectIndex(t *testing.T) {
	c := Default()
	c.ContextQuestions[0].CorrectIndex = 4
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q1")
}

func TestLoadFillsMissingCollections(t *testing.T) {
	doc := `{"passages":[{"reference":"John 11:35","text":"Jesus wept.","book":"John","chapter":11,"verses":"35"}]}`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, c.Passages, 1)
	assert.Equal(t, "Jesus wept.", c.Passages[0].Text)
	assert.Len(t, c.ContextQuestions, 10)
	assert.Len(t, c.MasteryPacks, 5)
}

func TestLoadRejectsEmptyPassages(t *testing.T) {
	_, err := Load(strings.NewReader(`{"passages":[]}`))
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestLookups(t *testing.T) {
	c := Default()

	p, ok := c.Passage("Joshua 1:9")
	require.True(t, ok)
	assert.Equal(t, "Joshua", p.Book)

	q, ok := c.QuestionFor("Romans 8:28")
	require.True(t, ok)
	assert.Equal(t, "q7", q.ID)

	_, ok = c.QuestionFor("Psalm 23:1-4")
	assert.False(t, ok)

	pack, ok := c.Pack("wisdom")
	require.True(t, ok)
	assert.Equal(t, "Wisdom", pack.Name)

	v, ok := c.MasteryVerse("john 3:16")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(v.Text, "For God so loved the world"))

	v, ok = c.MasteryVerse("Isaiah 40:31")
	require.True(t, ok)
	assert.Equal(t, "Isaiah", v.Book)
}

func TestFilterPassages(t *testing.T) {
	c := Default()

	assert.Len(t, c.FilterPassages("book", "romans"), 1)
	assert.Len(t, c.FilterPassages("chapter", "Psalm 23"), 1)
	assert.Len(t, c.FilterPassages("theme", "strength"), 2)
	assert.Len(t, c.FilterPassages("random", "anything"), 7)
	assert.Len(t, c.FilterPassages("book", ""), 7)
	assert.Empty(t, c.FilterPassages("book", "Obadiah"))
}
