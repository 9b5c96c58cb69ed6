package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/biblegym/ent"
	"github.com/abhisek/biblegym/ent/snapshot"
)

type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	var doc map[string]any
	if err := reencode(snap.Data, &doc); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	row, err := r.client.Snapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(doc).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	snap.ID = row.ID
	return nil
}

// Latest returns the snapshot with the highest sequence, or nil.
func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence), ent.Desc(snapshot.FieldID)).
		First(ctx)
	switch {
	case ent.IsNotFound(err):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}

	snap := &Snapshot{ID: row.ID, Sequence: row.Sequence, Timestamp: row.Timestamp}
	if err := reencode(row.Data, &snap.Data); err != nil {
		return nil, fmt.Errorf("decode snapshot %d: %w", row.ID, err)
	}
	return snap, nil
}

// Prune deletes all but the keep newest snapshots. IDs grow with each save,
// so everything at or below the first ID past keep goes.
func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	ids, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldID)).
		Offset(keep).
		Limit(1).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("find prune cutoff: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	if _, err := r.client.Snapshot.Delete().Where(snapshot.IDLTE(ids[0])).Exec(ctx); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// reencode copies src into dst through JSON. ent stores the snapshot as a
// generic JSON map while callers work with SnapshotData.
func reencode(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
