package store

import (
	"context"
	"fmt"

	"github.com/oselot/stitchpath/ent"
	"github.com/oselot/stitchpath/ent/masteryevent"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetContentID(data.ContentID).
		SetPathID(data.PathID).
		SetFromBand(data.FromBand).
		SetToBand(data.ToBand).
		SetMasteryLevel(data.MasteryLevel)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) MasteryTransitions(ctx context.Context, userID string, opts QueryOpts) ([]MasteryEventRecord, error) {
	query := r.client.MasteryEvent.Query().
		Where(masteryevent.UserID(userID)).
		Order(ent.Desc(masteryevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(masteryevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(masteryevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(masteryevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(masteryevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}

	records := make([]MasteryEventRecord, len(events))
	for i, e := range events {
		records[i] = MasteryEventRecord{
			MasteryEventData: MasteryEventData{
				UserID:       e.UserID,
				ContentID:    e.ContentID,
				PathID:       e.PathID,
				FromBand:     e.FromBand,
				ToBand:       e.ToBand,
				MasteryLevel: e.MasteryLevel,
				SessionID:    e.SessionID,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
