package store

import (
	"context"
	"fmt"

	"github.com/abhisek/biblegym/ent"
	"github.com/abhisek/biblegym/ent/gemevent"
	"github.com/abhisek/biblegym/ent/predicate"
)

var gemWindow = window[predicate.GemEvent]{
	after:  gemevent.SequenceGT,
	before: gemevent.SequenceLT,
	from:   gemevent.TimestampGTE,
	to:     gemevent.TimestampLTE,
}

func (r *eventRepo) AppendGemEvent(ctx context.Context, data GemEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GemEvent.Create().
		SetSequence(seqNum).
		SetGemType(data.GemType).
		SetRarity(data.Rarity).
		SetNillableReference(data.Reference).
		SetUserID(data.UserID).
		SetNillableWorkoutID(data.WorkoutID).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save gem event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGemEvents(ctx context.Context, opts QueryOpts) ([]GemEventRecord, error) {
	query := r.client.GemEvent.Query().
		Where(gemWindow.predicates(opts)...).
		Order(ent.Desc(gemevent.FieldSequence))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query gem events: %w", err)
	}

	records := make([]GemEventRecord, 0, len(rows))
	for _, g := range rows {
		records = append(records, GemEventRecord{
			GemType: g.GemType, Rarity: g.Rarity, Reference: g.Reference,
			UserID: g.UserID, WorkoutID: g.WorkoutID, Reason: g.Reason,
			Sequence: g.Sequence, Timestamp: g.Timestamp,
		})
	}
	return records, nil
}

// GemCounts returns the number of gems per type and in total.
func (r *eventRepo) GemCounts(ctx context.Context) (map[string]int, int, error) {
	var rows []struct {
		GemType string `json:"gem_type"`
		Count   int    `json:"count"`
	}
	err := r.client.GemEvent.Query().
		GroupBy(gemevent.FieldGemType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("count gems: %w", err)
	}

	byType := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		byType[row.GemType] = row.Count
		total += row.Count
	}
	return byType, total, nil
}
