// Package bibleapi looks up passage text from a bible-api.com compatible
// service.
package bibleapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/abhisek/biblegym/internal/corpus"
)

// DefaultBaseURL is the public bible-api.com endpoint.
const DefaultBaseURL = "https://bible-api.com"

// ErrNotFound is returned when the service does not know the reference.
var ErrNotFound = errors.New("passage not found")

// Client fetches passages over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// New creates a client for baseURL. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type lookupResponse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
	Verses    []struct {
		BookName string `json:"book_name"`
		Chapter  int    `json:"chapter"`
		Verse    int    `json:"verse"`
	} `json:"verses"`
}

// Lookup fetches the passage for reference, e.g. "John 3:16-17".
func (c *Client) Lookup(ctx context.Context, reference string) (corpus.Passage, error) {
	u := c.baseURL + "/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return corpus.Passage{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return corpus.Passage{}, fmt.Errorf("fetch %q: %w", reference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return corpus.Passage{}, fmt.Errorf("%q: %w", reference, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return corpus.Passage{}, fmt.Errorf("fetch %q: status %d: %s", reference, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return corpus.Passage{}, fmt.Errorf("decode %q: %w", reference, err)
	}

	p := corpus.Passage{
		Reference: data.Reference,
		Text:      strings.TrimSpace(data.Text),
		Chapter:   1,
	}
	if p.Reference == "" {
		p.Reference = reference
	}
	if n := len(data.Verses); n > 0 {
		first, last := data.Verses[0], data.Verses[n-1]
		p.Book = first.BookName
		if first.Chapter > 0 {
			p.Chapter = first.Chapter
		}
		if first.Verse == last.Verse {
			p.Verses = fmt.Sprint(first.Verse)
		} else {
			p.Verses = fmt.Sprintf("%d-%d", first.Verse, last.Verse)
		}
	}
	return p, nil
}
