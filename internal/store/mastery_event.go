package store

import (
	"context"
	"fmt"

	"github.com/abhisek/biblegym/ent"
	"github.com/abhisek/biblegym/ent/masteryevent"
	"github.com/abhisek/biblegym/ent/predicate"
)

var masteryWindow = window[predicate.MasteryEvent]{
	after:  masteryevent.SequenceGT,
	before: masteryevent.SequenceLT,
	from:   masteryevent.TimestampGTE,
	to:     masteryevent.TimestampLTE,
}

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetReference(data.Reference).
		SetLevel(data.Level).
		SetAccuracy(data.Accuracy).
		SetSeconds(data.Seconds).
		SetFromLevel(data.FromLevel).
		SetToLevel(data.ToLevel).
		SetFromStatus(data.FromStatus).
		SetToStatus(data.ToStatus).
		SetTrigger(data.Trigger)

	if data.UserID != "" {
		builder = builder.SetUserID(data.UserID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

// QueryMasteryEvents returns attempts newest first. An empty reference
// matches every verse.
func (r *eventRepo) QueryMasteryEvents(ctx context.Context, reference string, opts QueryOpts) ([]MasteryEventRecord, error) {
	query := r.client.MasteryEvent.Query().
		Order(ent.Desc(masteryevent.FieldSequence))

	if reference != "" {
		query = query.Where(masteryevent.ReferenceEqualFold(reference))
	}
	query = query.Where(masteryWindow.predicates(opts)...)
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}

	records := make([]MasteryEventRecord, len(events))
	for i, e := range events {
		records[i] = MasteryEventRecord{
			MasteryEventData: MasteryEventData{
				UserID:     e.UserID,
				Reference:  e.Reference,
				Level:      e.Level,
				Accuracy:   e.Accuracy,
				Seconds:    e.Seconds,
				FromLevel:  e.FromLevel,
				ToLevel:    e.ToLevel,
				FromStatus: e.FromStatus,
				ToStatus:   e.ToStatus,
				Trigger:    e.Trigger,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
