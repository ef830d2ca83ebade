package store

import (
	"context"
	"fmt"
	"time"

	"github.com/oselot/stitchpath/ent"
	"github.com/oselot/stitchpath/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetPathID(data.PathID).
		SetContentID(data.ContentID).
		SetQuestionCount(data.QuestionCount).
		SetFtcCount(data.FTCCount).
		SetEcCount(data.ECCount).
		SetIncorrectCount(data.IncorrectCount).
		SetDurationMs(data.DurationMs).
		SetBasePoints(data.BasePoints).
		SetBonusMultiplier(data.BonusMultiplier).
		SetTotalPoints(data.TotalPoints).
		SetEvolution(data.Evolution).
		SetMasteryAfter(data.MasteryAfter).
		SetDayStreak(data.DayStreak).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, userID string, opts QueryOpts) ([]SessionEventRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.UserID(userID)).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	records := make([]SessionEventRecord, len(events))
	for i, e := range events {
		records[i] = SessionEventRecord{
			SessionEventData: SessionEventData{
				SessionID:       e.SessionID,
				UserID:          e.UserID,
				PathID:          e.PathID,
				ContentID:       e.ContentID,
				QuestionCount:   e.QuestionCount,
				FTCCount:        e.FtcCount,
				ECCount:         e.EcCount,
				IncorrectCount:  e.IncorrectCount,
				DurationMs:      e.DurationMs,
				BasePoints:      e.BasePoints,
				BonusMultiplier: e.BonusMultiplier,
				TotalPoints:     e.TotalPoints,
				Evolution:       e.Evolution,
				MasteryAfter:    e.MasteryAfter,
				DayStreak:       e.DayStreak,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

// streakScanWindow bounds how far back DayStreak reads. A streak longer
// than a year is reported as capped rather than scanning the whole log.
const streakScanWindow = 366 * 24 * time.Hour

func (r *eventRepo) DayStreak(ctx context.Context, userID string, now time.Time) (int, error) {
	events, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.UserID(userID),
			sessionevent.TimestampGTE(now.Add(-streakScanWindow)),
		).
		Select(sessionevent.FieldTimestamp).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query session days: %w", err)
	}

	practiced := make(map[time.Time]bool, len(events))
	for _, e := range events {
		practiced[utcDay(e.Timestamp)] = true
	}

	// The session completing now counts for today whether or not an
	// earlier session was recorded today.
	streak := 1
	day := utcDay(now).AddDate(0, 0, -1)
	for practiced[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

// utcDay truncates a timestamp to its UTC calendar day.
func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
