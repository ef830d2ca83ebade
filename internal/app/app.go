package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oselot/stitchpath/internal/curriculum"
	"github.com/oselot/stitchpath/internal/mastery"
	"github.com/oselot/stitchpath/internal/scoring"
	"github.com/oselot/stitchpath/internal/store"
)

// Service drives the per-session workflow: score the completed session for
// immediate feedback, record it against the mastery tracker, then log it.
// The scorer needs no storage, so a scoring failure leaves no state behind.
type Service struct {
	tracker  *mastery.Tracker
	progress mastery.ProgressStore
	events   store.EventRepo
	paths    curriculum.Provider

	clock func() time.Time
	newID func() string
}

// New wires a Service from the storage ports and the path catalog.
func New(progress mastery.ProgressStore, events store.EventRepo, paths curriculum.Provider) *Service {
	return &Service{
		tracker:  mastery.NewTracker(progress, paths),
		progress: progress,
		events:   events,
		paths:    paths,
		clock:    time.Now,
		newID:    uuid.NewString,
	}
}

// SessionInput describes one completed practice session as captured by the
// presentation layer.
type SessionInput struct {
	UserID    string
	PathID    string
	ContentID string

	FTCCount       int // answered correctly on the first try
	ECCount        int // answered correctly after one or more retries
	IncorrectCount int // never answered correctly
	DurationMs     int

	// CorrectnessSeq optionally holds per-question correctness in answer
	// order. ResponseTimesMs optionally holds per-question response times
	// and switches the scorer to its timing speed strategy.
	CorrectnessSeq  []bool
	ResponseTimesMs []int

	// CompletedAt is when the session finished. Zero means now.
	CompletedAt time.Time
}

// SessionOutcome is everything a presentation layer shows after a session.
type SessionOutcome struct {
	SessionID string
	Score     *scoring.SessionScore
	Progress  *mastery.UserProgress
	Mastery   *mastery.ContentMastery
	DayStreak int

	// PreviousBand and CurrentBand describe the display-band transition
	// this session caused, if any.
	PreviousBand mastery.Band
	CurrentBand  mastery.Band
}

// BandChanged reports whether the session moved the item across a band edge.
func (o *SessionOutcome) BandChanged() bool {
	return o.PreviousBand != o.CurrentBand
}

// CompleteSession runs the full workflow for one finished session.
//
// Scoring happens before the mastery write: validation failures surface
// before any state changes, and the score is available even if the caller
// only wants feedback. Event-log appends happen last; an append failure is
// returned but does not undo the recorded session.
func (s *Service) CompleteSession(ctx context.Context, in SessionInput) (*SessionOutcome, error) {
	completedAt := in.CompletedAt
	if completedAt.IsZero() {
		completedAt = s.clock()
	}
	questionCount := in.FTCCount + in.ECCount + in.IncorrectCount

	priorBand, err := s.currentBand(ctx, in.UserID, in.ContentID)
	if err != nil {
		return nil, err
	}

	streak, err := s.events.DayStreak(ctx, in.UserID, completedAt)
	if err != nil {
		return nil, fmt.Errorf("day streak: %w", err)
	}

	speedMode := scoring.SpeedNeutral
	if in.ResponseTimesMs != nil {
		speedMode = scoring.SpeedFromTimings
	}
	score, err := scoring.Score(scoring.SessionData{
		QuestionCount:   questionCount,
		FTCCount:        in.FTCCount,
		ECCount:         in.ECCount,
		IncorrectCount:  in.IncorrectCount,
		DurationMs:      in.DurationMs,
		CorrectnessSeq:  in.CorrectnessSeq,
		ResponseTimesMs: in.ResponseTimesMs,
		SpeedMode:       speedMode,
		DayStreak:       streak,
	})
	if err != nil {
		return nil, err
	}

	progress, err := s.tracker.RecordSession(ctx, in.UserID, mastery.SessionResult{
		PathID:           in.PathID,
		ContentID:        in.ContentID,
		CorrectCount:     in.FTCCount + in.ECCount,
		TotalCount:       questionCount,
		CompletionTimeMs: in.DurationMs,
		Timestamp:        completedAt,
	})
	if err != nil {
		return nil, err
	}

	after, err := s.tracker.ContentMastery(ctx, in.UserID, in.ContentID)
	if err != nil {
		return nil, fmt.Errorf("read back mastery: %w", err)
	}
	currentBand := after.Band()

	sessionID := s.newID()
	if currentBand != priorBand {
		err = s.events.AppendMasteryEvent(ctx, store.MasteryEventData{
			UserID:       in.UserID,
			ContentID:    in.ContentID,
			PathID:       in.PathID,
			FromBand:     string(priorBand),
			ToBand:       string(currentBand),
			MasteryLevel: after.MasteryLevel,
			SessionID:    sessionID,
		})
		if err != nil {
			return nil, fmt.Errorf("log band transition: %w", err)
		}
	}

	err = s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       sessionID,
		UserID:          in.UserID,
		PathID:          in.PathID,
		ContentID:       in.ContentID,
		QuestionCount:   questionCount,
		FTCCount:        in.FTCCount,
		ECCount:         in.ECCount,
		IncorrectCount:  in.IncorrectCount,
		DurationMs:      in.DurationMs,
		BasePoints:      score.BasePoints,
		BonusMultiplier: score.BonusMultiplier,
		TotalPoints:     score.TotalPoints,
		Evolution:       int(score.Evolution),
		MasteryAfter:    after.MasteryLevel,
		DayStreak:       streak,
	})
	if err != nil {
		return nil, fmt.Errorf("log session: %w", err)
	}

	return &SessionOutcome{
		SessionID:    sessionID,
		Score:        score,
		Progress:     progress,
		Mastery:      after,
		DayStreak:    streak,
		PreviousBand: priorBand,
		CurrentBand:  currentBand,
	}, nil
}

// currentBand reads the item's band before the session is applied. An item
// without a mastery row yet (added to the catalog after the user was
// initialized) starts in the new band.
func (s *Service) currentBand(ctx context.Context, userID, contentID string) (mastery.Band, error) {
	cm, err := s.tracker.ContentMastery(ctx, userID, contentID)
	if err != nil {
		if errors.Is(err, mastery.ErrNoMasteryData) {
			return mastery.BandNew, nil
		}
		return "", err
	}
	return cm.Band(), nil
}

// Enroll registers a user identity and initializes zeroed progress for the
// whole catalog.
func (s *Service) Enroll(ctx context.Context, userID string) error {
	if err := s.progress.RegisterUser(ctx, userID); err != nil {
		return err
	}
	return s.tracker.Initialize(ctx, userID)
}

// Progress returns the account-level progress summary.
func (s *Service) Progress(ctx context.Context, userID string) (*mastery.UserProgress, error) {
	return s.tracker.UserProgress(ctx, userID)
}

// PathProgress returns per-item detail for one learning path.
func (s *Service) PathProgress(ctx context.Context, userID, pathID string) (*mastery.PathProgressDetails, error) {
	return s.tracker.PathProgress(ctx, userID, pathID)
}

// ItemMastery returns the mastery state of one content item.
func (s *Service) ItemMastery(ctx context.Context, userID, contentID string) (*mastery.ContentMastery, error) {
	return s.tracker.ContentMastery(ctx, userID, contentID)
}

// Due returns the items at or past their review time, most overdue first.
func (s *Service) Due(ctx context.Context, userID string) ([]mastery.DueItem, error) {
	return s.tracker.DueContent(ctx, userID, s.clock())
}

// History returns the user's most recent sessions, newest first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]store.SessionEventRecord, error) {
	return s.events.RecentSessions(ctx, userID, store.QueryOpts{Limit: limit})
}

// Transitions returns the user's band transitions, newest first.
func (s *Service) Transitions(ctx context.Context, userID string, limit int) ([]store.MasteryEventRecord, error) {
	return s.events.MasteryTransitions(ctx, userID, store.QueryOpts{Limit: limit})
}

// Reset deletes every stored record for a user.
func (s *Service) Reset(ctx context.Context, userID string) error {
	return s.tracker.Reset(ctx, userID)
}

// ExportBundle is the full stored state for one user, for analytics tooling.
type ExportBundle struct {
	Progress    *mastery.UserProgress              `json:"progress"`
	Items       map[string]*mastery.ContentMastery `json:"items"`
	Paths       []*mastery.PathProgressDetails     `json:"paths"`
	Sessions    []store.SessionEventRecord         `json:"sessions"`
	Transitions []store.MasteryEventRecord         `json:"transitions"`
}

// Export gathers everything stored for a user into one bundle.
func (s *Service) Export(ctx context.Context, userID string) (*ExportBundle, error) {
	progress, err := s.tracker.UserProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.progress.ListContentMastery(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("list mastery rows: %w", err)
	}

	var paths []*mastery.PathProgressDetails
	for _, p := range s.paths.Paths() {
		pp, err := s.tracker.PathProgress(ctx, userID, p.ID)
		if err != nil {
			return nil, err
		}
		paths = append(paths, pp)
	}

	sessions, err := s.events.RecentSessions(ctx, userID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	transitions, err := s.events.MasteryTransitions(ctx, userID, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("list transitions: %w", err)
	}

	return &ExportBundle{
		Progress:    progress,
		Items:       items,
		Paths:       paths,
		Sessions:    sessions,
		Transitions: transitions,
	}, nil
}
