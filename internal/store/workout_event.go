package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/biblegym/ent"
	"github.com/abhisek/biblegym/ent/predicate"
	"github.com/abhisek/biblegym/ent/workoutevent"
)

var workoutWindow = window[predicate.WorkoutEvent]{
	after:  workoutevent.SequenceGT,
	before: workoutevent.SequenceLT,
	from:   workoutevent.TimestampGTE,
	to:     workoutevent.TimestampLTE,
}

func (r *eventRepo) AppendWorkoutEvent(ctx context.Context, data WorkoutEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.WorkoutEvent.Create().
		SetSequence(seqNum).
		SetWorkoutID(data.WorkoutID).
		SetDate(data.Date).
		SetGroupChallenge(data.GroupChallenge).
		SetMemorizationScore(data.MemorizationScore).
		SetContextScore(data.ContextScore).
		SetVerseMatchScore(data.VerseMatchScore).
		SetNillableRearrangeScore(data.RearrangeScore).
		SetTotalScore(data.TotalScore).
		SetStreak(data.Streak)

	if data.UserID != "" {
		builder = builder.SetUserID(data.UserID)
	}
	if data.Theme != "" {
		builder = builder.SetTheme(data.Theme)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save workout event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryWorkoutEvents(ctx context.Context, opts QueryOpts) ([]WorkoutEventRecord, error) {
	query := r.client.WorkoutEvent.Query().
		Where(workoutWindow.predicates(opts)...).
		Order(ent.Desc(workoutevent.FieldSequence))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query workout events: %w", err)
	}

	records := make([]WorkoutEventRecord, len(events))
	for i, e := range events {
		records[i] = WorkoutEventRecord{
			WorkoutEventData: WorkoutEventData{
				WorkoutID:         e.WorkoutID,
				UserID:            e.UserID,
				Date:              e.Date,
				Theme:             e.Theme,
				GroupChallenge:    e.GroupChallenge,
				MemorizationScore: e.MemorizationScore,
				ContextScore:      e.ContextScore,
				VerseMatchScore:   e.VerseMatchScore,
				RearrangeScore:    e.RearrangeScore,
				TotalScore:        e.TotalScore,
				Streak:            e.Streak,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) AppendDrillScoreEvent(ctx context.Context, data DrillScoreEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.DrillScoreEvent.Create().
		SetSequence(seqNum).
		SetDrillType(data.DrillType).
		SetScore(data.Score).
		SetAiGenerated(data.AIGenerated)

	if data.UserID != "" {
		builder = builder.SetUserID(data.UserID)
	}
	if data.WorkoutID != "" {
		builder = builder.SetWorkoutID(data.WorkoutID)
	}
	if len(data.Practice) > 0 {
		builder = builder.SetPractice(data.Practice)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save drill score event: %w", err)
	}
	return nil
}

// DrillAverages returns the mean score per drill type, ordered by type.
func (r *eventRepo) DrillAverages(ctx context.Context) ([]DrillAverage, error) {
	events, err := r.client.DrillScoreEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query drill scores: %w", err)
	}

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, e := range events {
		sums[e.DrillType] += e.Score
		counts[e.DrillType]++
	}

	avgs := make([]DrillAverage, 0, len(counts))
	for t, n := range counts {
		avgs = append(avgs, DrillAverage{
			DrillType: t,
			Count:     n,
			Average:   float64(sums[t]) / float64(n),
		})
	}
	sort.Slice(avgs, func(i, j int) bool { return avgs[i].DrillType < avgs[j].DrillType })
	return avgs, nil
}
