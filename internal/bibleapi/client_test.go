package bibleapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"reference": "John 3:16-17",
			"text": "For God so loved the world...\nFor God sent not his Son...\n",
			"verses": [
				{"book_name": "John", "chapter": 3, "verse": 16},
				{"book_name": "John", "chapter": 3, "verse": 17}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	p, err := c.Lookup(context.Background(), "John 3:16-17")
	require.NoError(t, err)

	assert.Equal(t, "/John%203:16-17", gotPath)
	assert.Equal(t, "John 3:16-17", p.Reference)
	assert.Equal(t, "For God so loved the world...\nFor God sent not his Son...", p.Text)
	assert.Equal(t, "John", p.Book)
	assert.Equal(t, 3, p.Chapter)
	assert.Equal(t, "16-17", p.Verses)
}

func TestLookupSingleVerse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"reference":"John 11:35","text":"Jesus wept.","verses":[{"book_name":"John","chapter":11,"verse":35}]}`))
	}))
	defer srv.Close()

	p, err := New(srv.URL).Lookup(context.Background(), "John 11:35")
	require.NoError(t, err)
	assert.Equal(t, "35", p.Verses)
	assert.Equal(t, 11, p.Chapter)
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Lookup(context.Background(), "Hezekiah 1:1")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Lookup(context.Background(), "John 1:1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "502")
}

func TestLookupCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(srv.URL, WithHTTPClient(srv.Client())).Lookup(ctx, "John 1:1")
	assert.ErrorIs(t, err, context.Canceled)
}
