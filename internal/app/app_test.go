package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/oselot/stitchpath/internal/curriculum"
	"github.com/oselot/stitchpath/internal/mastery"
	"github.com/oselot/stitchpath/internal/scoring"
	"github.com/oselot/stitchpath/internal/store"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// fakeProgressStore implements mastery.ProgressStore in memory.
type fakeProgressStore struct {
	users    map[string]bool
	progress map[string]*mastery.UserProgress
	rows     map[string]map[string]*mastery.ContentMastery
	pathRows map[string]map[string]*mastery.PathProgressDetails
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{
		users:    make(map[string]bool),
		progress: make(map[string]*mastery.UserProgress),
		rows:     make(map[string]map[string]*mastery.ContentMastery),
		pathRows: make(map[string]map[string]*mastery.PathProgressDetails),
	}
}

func (f *fakeProgressStore) UserExists(_ context.Context, userID string) (bool, error) {
	return f.users[userID], nil
}

func (f *fakeProgressStore) RegisterUser(_ context.Context, userID string) error {
	if f.users[userID] {
		return store.ErrAlreadyRegistered
	}
	f.users[userID] = true
	return nil
}

func (f *fakeProgressStore) DeleteUser(_ context.Context, userID string) error {
	delete(f.users, userID)
	delete(f.progress, userID)
	delete(f.rows, userID)
	delete(f.pathRows, userID)
	return nil
}

func (f *fakeProgressStore) GetUserProgress(_ context.Context, userID string) (*mastery.UserProgress, error) {
	return f.progress[userID].Clone(), nil
}

func (f *fakeProgressStore) SaveUserProgress(_ context.Context, up *mastery.UserProgress) error {
	f.progress[up.UserID] = up.Clone()
	return nil
}

func (f *fakeProgressStore) GetContentMastery(_ context.Context, userID, contentID string) (*mastery.ContentMastery, error) {
	return f.rows[userID][contentID].Clone(), nil
}

func (f *fakeProgressStore) ListContentMastery(_ context.Context, userID string, contentIDs []string) (map[string]*mastery.ContentMastery, error) {
	out := make(map[string]*mastery.ContentMastery)
	if contentIDs == nil {
		for id, cm := range f.rows[userID] {
			out[id] = cm.Clone()
		}
		return out, nil
	}
	for _, id := range contentIDs {
		if cm, ok := f.rows[userID][id]; ok {
			out[id] = cm.Clone()
		}
	}
	return out, nil
}

func (f *fakeProgressStore) SaveContentMastery(_ context.Context, userID string, cm *mastery.ContentMastery) error {
	if f.rows[userID] == nil {
		f.rows[userID] = make(map[string]*mastery.ContentMastery)
	}
	f.rows[userID][cm.ContentID] = cm.Clone()
	return nil
}

func (f *fakeProgressStore) CreateContentMasteries(_ context.Context, userID string, records []*mastery.ContentMastery) error {
	if f.rows[userID] == nil {
		f.rows[userID] = make(map[string]*mastery.ContentMastery)
	}
	for _, cm := range records {
		f.rows[userID][cm.ContentID] = cm.Clone()
	}
	return nil
}

func (f *fakeProgressStore) GetPathProgress(_ context.Context, userID, pathID string) (*mastery.PathProgressDetails, error) {
	return f.pathRows[userID][pathID].Clone(), nil
}

func (f *fakeProgressStore) SavePathProgress(_ context.Context, userID string, pp *mastery.PathProgressDetails) error {
	if f.pathRows[userID] == nil {
		f.pathRows[userID] = make(map[string]*mastery.PathProgressDetails)
	}
	f.pathRows[userID][pp.PathID] = pp.Clone()
	return nil
}

// fakeEventLog implements store.EventRepo in memory.
type fakeEventLog struct {
	streak      int
	sessions    []store.SessionEventRecord
	transitions []store.MasteryEventRecord
	seq         int64
}

func newFakeEventLog() *fakeEventLog {
	return &fakeEventLog{streak: 1}
}

func (l *fakeEventLog) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	l.seq++
	l.sessions = append(l.sessions, store.SessionEventRecord{
		SessionEventData: data,
		Sequence:         l.seq,
		Timestamp:        fixedNow,
	})
	return nil
}

func (l *fakeEventLog) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	l.seq++
	l.transitions = append(l.transitions, store.MasteryEventRecord{
		MasteryEventData: data,
		Sequence:         l.seq,
		Timestamp:        fixedNow,
	})
	return nil
}

func (l *fakeEventLog) RecentSessions(_ context.Context, userID string, opts store.QueryOpts) ([]store.SessionEventRecord, error) {
	var out []store.SessionEventRecord
	for i := len(l.sessions) - 1; i >= 0; i-- {
		if l.sessions[i].UserID != userID {
			continue
		}
		out = append(out, l.sessions[i])
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (l *fakeEventLog) DayStreak(_ context.Context, _ string, _ time.Time) (int, error) {
	return l.streak, nil
}

func (l *fakeEventLog) MasteryTransitions(_ context.Context, userID string, opts store.QueryOpts) ([]store.MasteryEventRecord, error) {
	var out []store.MasteryEventRecord
	for i := len(l.transitions) - 1; i >= 0; i-- {
		if l.transitions[i].UserID != userID {
			continue
		}
		out = append(out, l.transitions[i])
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func testCatalog(t *testing.T) *curriculum.Catalog {
	t.Helper()
	c, err := curriculum.NewCatalog([]*curriculum.Path{
		{
			ID: "addition", Name: "Addition", Weight: 1,
			Items: []curriculum.Item{
				{ID: "add-ones", Name: "Adding ones", ExpectedMs: 6000},
				{ID: "add-tens", Name: "Adding tens", ExpectedMs: 6000},
			},
		},
		{
			ID: "subtraction", Name: "Subtraction", Weight: 1,
			Items: []curriculum.Item{
				{ID: "sub-ones", Name: "Subtracting ones", ExpectedMs: 6000},
			},
		},
	})
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return c
}

func newTestService(t *testing.T) (*Service, *fakeProgressStore, *fakeEventLog) {
	t.Helper()
	progress := newFakeProgressStore()
	events := newFakeEventLog()
	svc := New(progress, events, testCatalog(t))
	svc.clock = func() time.Time { return fixedNow }
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
	return svc, progress, events
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEnroll(t *testing.T) {
	svc, progress, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Enroll(ctx, "ada"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if !progress.users["ada"] {
		t.Error("user not registered")
	}

	up, err := svc.Progress(ctx, "ada")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if up.TotalItemCount != 3 {
		t.Errorf("total items = %d, want 3", up.TotalItemCount)
	}
	if up.OverallCompletion != 0 || up.MasteredItemCount != 0 {
		t.Errorf("fresh progress = %v/%d, want zeroes",
			up.OverallCompletion, up.MasteredItemCount)
	}

	err = svc.Enroll(ctx, "ada")
	if !errors.Is(err, store.ErrAlreadyRegistered) {
		t.Errorf("second enroll error = %v, want ErrAlreadyRegistered", err)
	}
}

func TestCompleteSessionFirstSession(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()
	if err := svc.Enroll(ctx, "ada"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	out, err := svc.CompleteSession(ctx, SessionInput{
		UserID:         "ada",
		PathID:         "addition",
		ContentID:      "add-ones",
		FTCCount:       8,
		ECCount:        1,
		IncorrectCount: 1,
		DurationMs:     40000,
	})
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}

	// Score: base 8*3+1 = 25; ftc fraction 0.8 earns the 2.0 excellence
	// tier; blink 40000/8 = 5000 and streak 1 stay at 1.0.
	if out.Score.BasePoints != 25 {
		t.Errorf("base points = %d, want 25", out.Score.BasePoints)
	}
	if out.Score.BonusMultiplier != 2.0 {
		t.Errorf("bonus = %v, want 2.0", out.Score.BonusMultiplier)
	}
	if out.Score.TotalPoints != 50 {
		t.Errorf("total points = %d, want 50", out.Score.TotalPoints)
	}
	if out.Score.Evolution != 120 {
		t.Errorf("evolution = %v, want 120", out.Score.Evolution)
	}

	// Mastery: ratio 0.9 x time factor 6000/40000 blended at 0.3 weight.
	wantLevel := 0.3 * (0.9 * 0.15)
	if !almostEqual(out.Mastery.MasteryLevel, wantLevel) {
		t.Errorf("mastery = %v, want %v", out.Mastery.MasteryLevel, wantLevel)
	}
	if !out.Mastery.LastAttemptTime.Equal(fixedNow) {
		t.Errorf("last attempt = %v, want %v", out.Mastery.LastAttemptTime, fixedNow)
	}

	if out.PreviousBand != mastery.BandNew || out.CurrentBand != mastery.BandLearning {
		t.Errorf("bands = %s -> %s, want new -> learning",
			out.PreviousBand, out.CurrentBand)
	}
	if !out.BandChanged() {
		t.Error("expected band change")
	}
	if out.DayStreak != 1 {
		t.Errorf("day streak = %d, want 1", out.DayStreak)
	}

	// One session event and one transition event, tied by session id.
	if len(events.sessions) != 1 {
		t.Fatalf("session events = %d, want 1", len(events.sessions))
	}
	se := events.sessions[0]
	if se.SessionID != out.SessionID {
		t.Errorf("session event id = %s, want %s", se.SessionID, out.SessionID)
	}
	if se.QuestionCount != 10 || se.TotalPoints != 50 || se.DayStreak != 1 {
		t.Errorf("session event = %d questions %d points streak %d, want 10/50/1",
			se.QuestionCount, se.TotalPoints, se.DayStreak)
	}
	if !almostEqual(se.MasteryAfter, wantLevel) {
		t.Errorf("mastery after = %v, want %v", se.MasteryAfter, wantLevel)
	}
	if len(events.transitions) != 1 {
		t.Fatalf("transition events = %d, want 1", len(events.transitions))
	}
	tr := events.transitions[0]
	if tr.FromBand != "new" || tr.ToBand != "learning" || tr.SessionID != out.SessionID {
		t.Errorf("transition = %s -> %s (%s), want new -> learning (%s)",
			tr.FromBand, tr.ToBand, tr.SessionID, out.SessionID)
	}
}

func TestCompleteSessionSameBandLogsNoTransition(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()
	if err := svc.Enroll(ctx, "ada"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	in := SessionInput{
		UserID: "ada", PathID: "addition", ContentID: "add-ones",
		FTCCount: 8, ECCount: 1, IncorrectCount: 1, DurationMs: 40000,
	}
	if _, err := svc.CompleteSession(ctx, in); err != nil {
		t.Fatalf("first session: %v", err)
	}
	out, err := svc.CompleteSession(ctx, in)
	if err != nil {
		t.Fatalf("second session: %v", err)
	}

	if out.BandChanged() {
		t.Errorf("bands = %s -> %s, want unchanged", out.PreviousBand, out.CurrentBand)
	}
	if len(events.transitions) != 1 {
		t.Errorf("transition events = %d, want 1 (first session only)", len(events.transitions))
	}
	if len(events.sessions) != 2 {
		t.Errorf("session events = %d, want 2", len(events.sessions))
	}
}

func TestCompleteSessionValidationLeavesNoState(t *testing.T) {
	svc, progress, events := newTestService(t)
	ctx := context.Background()
	if err := svc.Enroll(ctx, "ada"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	_, err := svc.CompleteSession(ctx, SessionInput{
		UserID: "ada", PathID: "addition", ContentID: "add-ones",
		DurationMs: 1000, // zero questions
	})
	if !errors.Is(err, scoring.ErrInvalidSessionData) {
		t.Fatalf("error = %v, want ErrInvalidSessionData", err)
	}

	if len(events.sessions) != 0 || len(events.transitions) != 0 {
		t.Errorf("events logged on failure: %d sessions, %d transitions",
			len(events.sessions), len(events.transitions))
	}
	cm := progress.rows["ada"]["add-ones"]
	if cm.AttemptCount != 0 || cm.MasteryLevel != 0 {
		t.Errorf("mastery mutated on failure: %+v", cm)
	}
}

func TestCompleteSessionUsesLoggedStreak(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()
	if err := svc.Enroll(ctx, "ada"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	events.streak = 7

	out, err := svc.CompleteSession(ctx, SessionInput{
		UserID: "ada", PathID: "addition", ContentID: "add-ones",
		FTCCount: 5, ECCount: 5, DurationMs: 60000,
	})
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}

	if out.DayStreak != 7 {
		t.Errorf("day streak = %d, want 7", out.DayStreak)
	}
	// Excellence (ftc 0.5) and fluency (blink 12000) stay at 1.0; the
	// seven-day streak alone sets the multiplier.
	if out.Score.BonusMultiplier != 3.0 {
		t.Errorf("bonus = %v, want 3.0", out.Score.BonusMultiplier)
	}
	if events.sessions[0].DayStreak != 7 {
		t.Errorf("logged streak = %d, want 7", events.sessions[0].DayStreak)
	}
}

func TestCompleteSessionTimingSpeedMode(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.Enroll(ctx, "ada"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	times := make([]int, 10)
	for i := range times {
		times[i] = 3000
	}
	out, err := svc.CompleteSession(ctx, SessionInput{
		UserID: "ada", PathID: "addition", ContentID: "add-ones",
		FTCCount: 8, ECCount: 1, IncorrectCount: 1, DurationMs: 30000,
		ResponseTimesMs: times,
	})
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if out.Score.Speed != 1.0 {
		t.Errorf("speed = %v, want 1.0 (half the baseline)", out.Score.Speed)
	}

	neutral, err := svc.CompleteSession(ctx, SessionInput{
		UserID: "ada", PathID: "addition", ContentID: "add-ones",
		FTCCount: 8, ECCount: 1, IncorrectCount: 1, DurationMs: 30000,
	})
	if err != nil {
		t.Fatalf("neutral session: %v", err)
	}
	if neutral.Score.Speed != scoring.NeutralSpeed {
		t.Errorf("neutral speed = %v, want %v", neutral.Score.Speed, scoring.NeutralSpeed)
	}
}

func TestCompleteSessionUninitializedUser(t *testing.T) {
	svc, progress, _ := newTestService(t)
	ctx := context.Background()

	// Registered identity, but never initialized.
	if err := progress.RegisterUser(ctx, "ada"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.CompleteSession(ctx, SessionInput{
		UserID: "ada", PathID: "addition", ContentID: "add-ones",
		FTCCount: 10, DurationMs: 30000,
	})
	if !errors.Is(err, mastery.ErrNoProgressData) {
		t.Errorf("error = %v, want ErrNoProgressData", err)
	}
}

func TestExport(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.Enroll(ctx, "ada"); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	_, err := svc.CompleteSession(ctx, SessionInput{
		UserID: "ada", PathID: "addition", ContentID: "add-ones",
		FTCCount: 8, ECCount: 1, IncorrectCount: 1, DurationMs: 40000,
	})
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}

	bundle, err := svc.Export(ctx, "ada")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if bundle.Progress == nil {
		t.Fatal("missing progress")
	}
	if len(bundle.Items) != 3 {
		t.Errorf("items = %d, want 3", len(bundle.Items))
	}
	if len(bundle.Paths) != 2 {
		t.Errorf("paths = %d, want 2", len(bundle.Paths))
	}
	if len(bundle.Sessions) != 1 {
		t.Errorf("sessions = %d, want 1", len(bundle.Sessions))
	}
	if len(bundle.Transitions) != 1 {
		t.Errorf("transitions = %d, want 1", len(bundle.Transitions))
	}
}

func TestResetDeletesUser(t *testing.T) {
	svc, progress, _ := newTestService(t)
	ctx := context.Background()
	if err := svc.Enroll(ctx, "ada"); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	if err := svc.Reset(ctx, "ada"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if progress.users["ada"] {
		t.Error("user still registered after reset")
	}
	if _, err := svc.Progress(ctx, "ada"); !errors.Is(err, mastery.ErrUserNotFound) {
		t.Errorf("progress after reset = %v, want ErrUserNotFound", err)
	}
}
