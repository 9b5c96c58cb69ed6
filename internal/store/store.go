// Package store persists biblegym's event log and state snapshots in SQLite
// through ent.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/biblegym/ent"

	_ "modernc.org/sqlite"
)

// pragmas tune SQLite for one local user with the occasional concurrent
// reader (the HTTP server next to a CLI command).
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open connects to the SQLite database at dsn and migrates the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}
	return &Store{db: db, client: client, seq: seq}, nil
}

func (s *Store) Client() *ent.Client { return s.client }

// DB is the raw handle, used for the sequence table and in tests.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{client: s.client}
}

// EventRepo shares the store's sequence counter, so events from every repo
// returned here interleave in one order.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// Reset deletes every event and snapshot in one transaction. The sequence
// counter is left alone so numbers are never reused.
func (s *Store) Reset(ctx context.Context) (err error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	tables := map[string]interface {
		Exec(context.Context) (int, error)
	}{
		"workout events":     tx.WorkoutEvent.Delete(),
		"drill score events": tx.DrillScoreEvent.Delete(),
		"mastery events":     tx.MasteryEvent.Delete(),
		"gem events":         tx.GemEvent.Delete(),
		"llm request events": tx.LLMRequestEvent.Delete(),
		"snapshots":          tx.Snapshot.Delete(),
	}
	for name, del := range tables {
		if _, err := del.Exec(ctx); err != nil {
			return fmt.Errorf("delete %s: %w", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return nil
}

// DefaultDBPath is BIBLEGYM_DB when set, else biblegym/biblegym.db under
// $XDG_DATA_HOME or ~/.local/share. The parent directory is created.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("BIBLEGYM_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "biblegym", "biblegym.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
