package store

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyRegistered is returned when registering a user id that exists.
var ErrAlreadyRegistered = errors.New("user already registered")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData captures one completed practice session together with
// the score computed for it.
type SessionEventData struct {
	SessionID       string
	UserID          string
	PathID          string
	ContentID       string
	QuestionCount   int
	FTCCount        int
	ECCount         int
	IncorrectCount  int
	DurationMs      int
	BasePoints      int
	BonusMultiplier float64
	TotalPoints     int
	Evolution       int
	MasteryAfter    float64
	DayStreak       int
}

// SessionEventRecord is a stored session event.
type SessionEventRecord struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// MasteryEventData captures a display-band transition on one content item.
type MasteryEventData struct {
	UserID       string
	ContentID    string
	PathID       string
	FromBand     string
	ToBand       string
	MasteryLevel float64
	SessionID    string
}

// MasteryEventRecord is a stored mastery transition event.
type MasteryEventRecord struct {
	MasteryEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendSessionEvent records a completed session.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendMasteryEvent records a band transition.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// RecentSessions returns stored session events for a user, newest first.
	RecentSessions(ctx context.Context, userID string, opts QueryOpts) ([]SessionEventRecord, error)

	// DayStreak returns the streak a session completing at now belongs
	// to: one for now's day plus the run of consecutive practice days
	// immediately before it.
	DayStreak(ctx context.Context, userID string, now time.Time) (int, error)

	// MasteryTransitions returns stored band transitions for a user,
	// newest first.
	MasteryTransitions(ctx context.Context, userID string, opts QueryOpts) ([]MasteryEventRecord, error)
}
