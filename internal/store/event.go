package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/biblegym/ent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) LatestSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

// window turns the range part of QueryOpts into predicates of one event
// table. Every table gets the same four from the event mixin.
type window[P any] struct {
	after, before func(int64) P
	from, to      func(time.Time) P
}

func (w window[P]) predicates(opts QueryOpts) []P {
	var ps []P
	if opts.After > 0 {
		ps = append(ps, w.after(opts.After))
	}
	if opts.Before > 0 {
		ps = append(ps, w.before(opts.Before))
	}
	if !opts.From.IsZero() {
		ps = append(ps, w.from(opts.From))
	}
	if !opts.To.IsZero() {
		ps = append(ps, w.to(opts.To))
	}
	return ps
}

// sequenceCounter hands out one sequence shared by all event tables, so
// workouts, mastery attempts, gems and LLM calls replay in the order they
// happened and a snapshot can name the last event it covers. The counter is
// a single-row table updated with RETURNING; the mutex keeps callers in this
// process from interleaving on the same connection pool.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

const (
	createSequenceTable = `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`
	seedSequence    = `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`
	advanceSequence = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`
	peekSequence    = `SELECT next_val - 1 FROM global_sequence WHERE id = 1`
)

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	for _, stmt := range []string{createSequenceTable, seedSequence} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init sequence: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next reserves the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	return sc.scan(ctx, advanceSequence)
}

// Current is the last number handed out, 0 before the first event.
func (sc *sequenceCounter) Current(ctx context.Context) (int64, error) {
	return sc.scan(ctx, peekSequence)
}

func (sc *sequenceCounter) scan(ctx context.Context, query string) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var n int64
	if err := sc.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("sequence: %w", err)
	}
	return n, nil
}
