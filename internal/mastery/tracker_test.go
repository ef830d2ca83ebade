package mastery

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/oselot/stitchpath/internal/curriculum"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// fakeStore is an in-memory ProgressStore for tracker tests. It clones on
// the way in and out so tests catch accidental sharing.
type fakeStore struct {
	mu       sync.RWMutex
	users    map[string]bool
	progress map[string]*UserProgress
	rows     map[string]map[string]*ContentMastery
	pathRows map[string]map[string]*PathProgressDetails

	failSaveMastery bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]bool),
		progress: make(map[string]*UserProgress),
		rows:     make(map[string]map[string]*ContentMastery),
		pathRows: make(map[string]map[string]*PathProgressDetails),
	}
}

func (f *fakeStore) UserExists(_ context.Context, userID string) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.users[userID], nil
}

func (f *fakeStore) RegisterUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.users[userID] {
		return errors.New("already registered")
	}
	f.users[userID] = true
	return nil
}

func (f *fakeStore) DeleteUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, userID)
	delete(f.progress, userID)
	delete(f.rows, userID)
	delete(f.pathRows, userID)
	return nil
}

func (f *fakeStore) GetUserProgress(_ context.Context, userID string) (*UserProgress, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.progress[userID].Clone(), nil
}

func (f *fakeStore) SaveUserProgress(_ context.Context, up *UserProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress[up.UserID] = up.Clone()
	return nil
}

func (f *fakeStore) GetContentMastery(_ context.Context, userID, contentID string) (*ContentMastery, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.rows[userID][contentID].Clone(), nil
}

func (f *fakeStore) ListContentMastery(_ context.Context, userID string, contentIDs []string) (map[string]*ContentMastery, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]*ContentMastery)
	if contentIDs == nil {
		for id, row := range f.rows[userID] {
			out[id] = row.Clone()
		}
		return out, nil
	}
	for _, id := range contentIDs {
		if row, ok := f.rows[userID][id]; ok {
			out[id] = row.Clone()
		}
	}
	return out, nil
}

func (f *fakeStore) SaveContentMastery(_ context.Context, userID string, cm *ContentMastery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSaveMastery {
		return errors.New("disk full")
	}
	byContent, ok := f.rows[userID]
	if !ok {
		byContent = make(map[string]*ContentMastery)
		f.rows[userID] = byContent
	}
	byContent[cm.ContentID] = cm.Clone()
	return nil
}

func (f *fakeStore) CreateContentMasteries(_ context.Context, userID string, records []*ContentMastery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	byContent, ok := f.rows[userID]
	if !ok {
		byContent = make(map[string]*ContentMastery)
		f.rows[userID] = byContent
	}
	for _, cm := range records {
		byContent[cm.ContentID] = cm.Clone()
	}
	return nil
}

func (f *fakeStore) GetPathProgress(_ context.Context, userID, pathID string) (*PathProgressDetails, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pathRows[userID][pathID].Clone(), nil
}

func (f *fakeStore) SavePathProgress(_ context.Context, userID string, pp *PathProgressDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	byPath, ok := f.pathRows[userID]
	if !ok {
		byPath = make(map[string]*PathProgressDetails)
		f.pathRows[userID] = byPath
	}
	byPath[pp.PathID] = pp.Clone()
	return nil
}

func testCatalog(t *testing.T) *curriculum.Catalog {
	t.Helper()
	cat, err := curriculum.NewCatalog([]*curriculum.Path{
		{
			ID:     "addition",
			Name:   "Addition",
			Weight: 1,
			Items: []curriculum.Item{
				{ID: "add-ones", Name: "Add ones"},
				{ID: "add-tens", Name: "Add tens", ExpectedMs: 6000},
			},
		},
		{
			ID:     "subtraction",
			Name:   "Subtraction",
			Weight: 1,
			Items:  []curriculum.Item{{ID: "sub-ones", Name: "Subtract ones"}},
		},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return cat
}

func newTestTracker(t *testing.T) (*Tracker, *fakeStore) {
	t.Helper()
	fs := newFakeStore()
	tr := NewTracker(fs, testCatalog(t))
	tr.clock = func() time.Time { return fixedNow }
	tr.jitter = func() float64 { return 1.0 }
	return tr, fs
}

func registerAndInit(t *testing.T, tr *Tracker, fs *fakeStore, userID string) {
	t.Helper()
	ctx := context.Background()
	if err := fs.RegisterUser(ctx, userID); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if err := tr.Initialize(ctx, userID); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
}

func session(pathID, contentID string, correct, total, ms int, ts time.Time) SessionResult {
	return SessionResult{
		PathID:           pathID,
		ContentID:        contentID,
		CorrectCount:     correct,
		TotalCount:       total,
		CompletionTimeMs: ms,
		Timestamp:        ts,
	}
}

func TestInitialize_CreatesZeroedState(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	up, err := tr.UserProgress(ctx, "casey")
	if err != nil {
		t.Fatalf("UserProgress() error = %v", err)
	}
	if up.OverallCompletion != 0 || up.MasteredItemCount != 0 {
		t.Errorf("fresh progress = %+v, want zeroed", up)
	}
	if up.TotalItemCount != 3 {
		t.Errorf("TotalItemCount = %d, want 3", up.TotalItemCount)
	}
	if len(up.PerPathCompletion) != 2 {
		t.Errorf("PerPathCompletion has %d paths, want 2", len(up.PerPathCompletion))
	}
	if !up.LastUpdate.Equal(fixedNow) {
		t.Errorf("LastUpdate = %v, want %v", up.LastUpdate, fixedNow)
	}

	cm, err := tr.ContentMastery(ctx, "casey", "add-ones")
	if err != nil {
		t.Fatalf("ContentMastery() error = %v", err)
	}
	if cm.MasteryLevel != 0 || cm.AttemptCount != 0 {
		t.Errorf("fresh row = %+v, want zeroed", cm)
	}
	if cm.Band() != BandNew {
		t.Errorf("Band() = %q, want %q", cm.Band(), BandNew)
	}
}

func TestInitialize_UnknownUser(t *testing.T) {
	tr, _ := newTestTracker(t)
	err := tr.Initialize(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Initialize() error = %v, want ErrUserNotFound", err)
	}
}

func TestInitialize_EmptyUserID(t *testing.T) {
	tr, _ := newTestTracker(t)
	err := tr.Initialize(context.Background(), "")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Initialize() error = %v, want ErrUserNotFound", err)
	}
}

func TestInitialize_Twice(t *testing.T) {
	tr, fs := newTestTracker(t)
	registerAndInit(t, tr, fs, "casey")

	err := tr.Initialize(context.Background(), "casey")
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Initialize() error = %v, want ErrAlreadyInitialized", err)
	}
}

func TestReset(t *testing.T) {
	tr, fs := newTestTracker(t)
	registerAndInit(t, tr, fs, "casey")
	ctx := context.Background()

	_, err := tr.RecordSession(ctx, "casey", session("addition", "add-ones", 10, 10, 6000, fixedNow))
	if err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}

	if err := tr.Reset(ctx, "casey"); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if _, err := tr.UserProgress(ctx, "casey"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UserProgress() after reset error = %v, want ErrUserNotFound", err)
	}

	// The same id enrolled again starts from zero, not from cached state.
	registerAndInit(t, tr, fs, "casey")
	up, err := tr.UserProgress(ctx, "casey")
	if err != nil {
		t.Fatalf("UserProgress() error = %v", err)
	}
	if up.OverallCompletion != 0 || up.MasteredItemCount != 0 {
		t.Errorf("progress after re-init = %v/%d, want zeroes",
			up.OverallCompletion, up.MasteredItemCount)
	}
	cm, err := tr.ContentMastery(ctx, "casey", "add-ones")
	if err != nil {
		t.Fatalf("ContentMastery() error = %v", err)
	}
	if cm.AttemptCount != 0 || cm.MasteryLevel != 0 {
		t.Errorf("mastery after re-init = %v/%d attempts, want zero row",
			cm.MasteryLevel, cm.AttemptCount)
	}

	// Resetting an unknown user is a no-op.
	if err := tr.Reset(ctx, "ghost"); err != nil {
		t.Errorf("Reset(unknown) error = %v, want nil", err)
	}
}

func TestRecordSession_FirstAttempt(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	up, err := tr.RecordSession(ctx, "casey", session("addition", "add-ones", 10, 10, 30000, fixedNow))
	if err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}

	cm, err := tr.ContentMastery(ctx, "casey", "add-ones")
	if err != nil {
		t.Fatalf("ContentMastery() error = %v", err)
	}
	if !almostEqual(cm.MasteryLevel, 0.3) {
		t.Errorf("MasteryLevel = %v, want 0.3", cm.MasteryLevel)
	}
	if cm.AttemptCount != 1 {
		t.Errorf("AttemptCount = %d, want 1", cm.AttemptCount)
	}
	if !cm.LastAttemptTime.Equal(fixedNow) {
		t.Errorf("LastAttemptTime = %v, want %v", cm.LastAttemptTime, fixedNow)
	}
	// ceil((0.3*5)^2 * 1.0) = 3 days out.
	wantNext := fixedNow.AddDate(0, 0, 3)
	if !cm.NextReviewTime.Equal(wantNext) {
		t.Errorf("NextReviewTime = %v, want %v", cm.NextReviewTime, wantNext)
	}

	if up.MasteredItemCount != 0 {
		t.Errorf("MasteredItemCount = %d, want 0", up.MasteredItemCount)
	}
	if !almostEqual(up.PerPathCompletion["addition"], 0) {
		t.Errorf("addition completion = %v, want 0", up.PerPathCompletion["addition"])
	}
}

// Two identical sessions back to back: the second must blend against the
// first call's result, not the original prior.
func TestRecordSession_ImmediateRepeatUsesUpdatedPrior(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	res := session("addition", "add-ones", 10, 10, 30000, fixedNow)
	if _, err := tr.RecordSession(ctx, "casey", res); err != nil {
		t.Fatalf("first RecordSession() error = %v", err)
	}
	if _, err := tr.RecordSession(ctx, "casey", res); err != nil {
		t.Fatalf("second RecordSession() error = %v", err)
	}

	cm, err := tr.ContentMastery(ctx, "casey", "add-ones")
	if err != nil {
		t.Fatalf("ContentMastery() error = %v", err)
	}
	// 0.3*1.0 + 0.7*0.3 = 0.51
	if !almostEqual(cm.MasteryLevel, 0.51) {
		t.Errorf("MasteryLevel after repeat = %v, want 0.51", cm.MasteryLevel)
	}
	if cm.AttemptCount != 2 {
		t.Errorf("AttemptCount = %d, want 2", cm.AttemptCount)
	}
	wantNext := fixedNow.AddDate(0, 0, 7) // ceil((0.51*5)^2)
	if !cm.NextReviewTime.Equal(wantNext) {
		t.Errorf("NextReviewTime = %v, want %v", cm.NextReviewTime, wantNext)
	}
}

func TestRecordSession_DecayAcrossGap(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	if _, err := tr.RecordSession(ctx, "casey", session("addition", "add-ones", 10, 10, 30000, fixedNow)); err != nil {
		t.Fatalf("first RecordSession() error = %v", err)
	}
	later := fixedNow.Add(72 * time.Hour)
	if _, err := tr.RecordSession(ctx, "casey", session("addition", "add-ones", 10, 10, 30000, later)); err != nil {
		t.Fatalf("second RecordSession() error = %v", err)
	}

	cm, err := tr.ContentMastery(ctx, "casey", "add-ones")
	if err != nil {
		t.Fatalf("ContentMastery() error = %v", err)
	}
	want := 0.3 + 0.7*0.3*math.Exp(-0.05*3)
	if !almostEqual(cm.MasteryLevel, want) {
		t.Errorf("MasteryLevel after 3-day gap = %v, want %v", cm.MasteryLevel, want)
	}
}

func TestRecordSession_TimeFactor(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	// add-tens expects 6000ms; twice as slow halves the attempt value.
	if _, err := tr.RecordSession(ctx, "casey", session("addition", "add-tens", 10, 10, 12000, fixedNow)); err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}
	cm, _ := tr.ContentMastery(ctx, "casey", "add-tens")
	if !almostEqual(cm.MasteryLevel, 0.15) {
		t.Errorf("MasteryLevel slow session = %v, want 0.15", cm.MasteryLevel)
	}

	// Faster than expected is capped at 1, never over-rewarded.
	tr2, fs2 := newTestTracker(t)
	registerAndInit(t, tr2, fs2, "drew")
	if _, err := tr2.RecordSession(ctx, "drew", session("addition", "add-tens", 10, 10, 3000, fixedNow)); err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}
	cm2, _ := tr2.ContentMastery(ctx, "drew", "add-tens")
	if !almostEqual(cm2.MasteryLevel, 0.3) {
		t.Errorf("MasteryLevel fast session = %v, want 0.3", cm2.MasteryLevel)
	}
}

func TestRecordSession_AggregatesAtThreshold(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	// Five same-day perfect sessions: 0.3, 0.51, 0.657, 0.7599, 0.83193.
	var up *UserProgress
	var err error
	for i := 0; i < 5; i++ {
		up, err = tr.RecordSession(ctx, "casey", session("addition", "add-ones", 10, 10, 30000, fixedNow))
		if err != nil {
			t.Fatalf("RecordSession() #%d error = %v", i+1, err)
		}
	}

	cm, _ := tr.ContentMastery(ctx, "casey", "add-ones")
	if !almostEqual(cm.MasteryLevel, 0.83193) {
		t.Errorf("MasteryLevel = %v, want 0.83193", cm.MasteryLevel)
	}
	if !cm.Mastered() {
		t.Error("Mastered() = false after five perfect sessions, want true")
	}

	if up.MasteredItemCount != 1 {
		t.Errorf("MasteredItemCount = %d, want 1", up.MasteredItemCount)
	}
	if !almostEqual(up.PerPathCompletion["addition"], 0.5) {
		t.Errorf("addition completion = %v, want 0.5", up.PerPathCompletion["addition"])
	}
	// Equal weights: (1*0.5 + 1*0) / 2.
	if !almostEqual(up.OverallCompletion, 0.25) {
		t.Errorf("OverallCompletion = %v, want 0.25", up.OverallCompletion)
	}

	pp, err := tr.PathProgress(ctx, "casey", "addition")
	if err != nil {
		t.Fatalf("PathProgress() error = %v", err)
	}
	if pp.MasteredCount != 1 || !almostEqual(pp.Completion, 0.5) {
		t.Errorf("PathProgress = %+v, want 1 mastered, 0.5 completion", pp)
	}
	st := pp.PerItemState["add-ones"]
	if st.AttemptCount != 5 || st.Position != 0 {
		t.Errorf("add-ones state = %+v, want 5 attempts at position 0", st)
	}
	if pp.PerItemState["add-tens"].Position != 1 {
		t.Errorf("add-tens position = %d, want 1", pp.PerItemState["add-tens"].Position)
	}
}

func TestRecordSession_Validation(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	base := session("addition", "add-ones", 10, 10, 30000, fixedNow)
	tests := []struct {
		name   string
		mutate func(*SessionResult)
	}{
		{"empty path", func(r *SessionResult) { r.PathID = "" }},
		{"empty content", func(r *SessionResult) { r.ContentID = "" }},
		{"zero total", func(r *SessionResult) { r.TotalCount = 0 }},
		{"negative correct", func(r *SessionResult) { r.CorrectCount = -1 }},
		{"correct above total", func(r *SessionResult) { r.CorrectCount = 11 }},
		{"zero duration", func(r *SessionResult) { r.CompletionTimeMs = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := base
			tt.mutate(&res)
			_, err := tr.RecordSession(ctx, "casey", res)
			if !errors.Is(err, ErrInvalidSessionResult) {
				t.Errorf("RecordSession() error = %v, want ErrInvalidSessionResult", err)
			}
		})
	}
}

func TestRecordSession_UnknownPathAndContent(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	_, err := tr.RecordSession(ctx, "casey", session("division", "div-ones", 5, 10, 30000, fixedNow))
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("unknown path error = %v, want ErrPathNotFound", err)
	}

	_, err = tr.RecordSession(ctx, "casey", session("addition", "sub-ones", 5, 10, 30000, fixedNow))
	if !errors.Is(err, ErrContentNotFound) {
		t.Errorf("content from another path error = %v, want ErrContentNotFound", err)
	}

	_, err = tr.RecordSession(ctx, "casey", session("addition", "mul-ones", 5, 10, 30000, fixedNow))
	if !errors.Is(err, ErrContentNotFound) {
		t.Errorf("unknown content error = %v, want ErrContentNotFound", err)
	}
}

func TestRecordSession_UnknownOrUninitializedUser(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.RecordSession(ctx, "nobody", session("addition", "add-ones", 5, 10, 30000, fixedNow))
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user error = %v, want ErrUserNotFound", err)
	}

	if err := fs.RegisterUser(ctx, "drew"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	_, err = tr.RecordSession(ctx, "drew", session("addition", "add-ones", 5, 10, 30000, fixedNow))
	if !errors.Is(err, ErrNoProgressData) {
		t.Errorf("uninitialized user error = %v, want ErrNoProgressData", err)
	}
}

func TestRecordSession_StorageFailure(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	fs.failSaveMastery = true
	_, err := tr.RecordSession(ctx, "casey", session("addition", "add-ones", 10, 10, 30000, fixedNow))
	if !errors.Is(err, ErrUpdateFailed) {
		t.Errorf("RecordSession() error = %v, want ErrUpdateFailed", err)
	}
}

func TestAccessors_MissingData(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()

	if _, err := tr.UserProgress(ctx, "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UserProgress(unknown) error = %v, want ErrUserNotFound", err)
	}
	if _, err := tr.ContentMastery(ctx, "casey", "div-ones"); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("ContentMastery(unknown content) error = %v, want ErrContentNotFound", err)
	}
	if _, err := tr.PathProgress(ctx, "casey", "division"); !errors.Is(err, ErrPathNotFound) {
		t.Errorf("PathProgress(unknown path) error = %v, want ErrPathNotFound", err)
	}

	if err := fs.RegisterUser(ctx, "casey"); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if _, err := tr.UserProgress(ctx, "casey"); !errors.Is(err, ErrNoProgressData) {
		t.Errorf("UserProgress(uninitialized) error = %v, want ErrNoProgressData", err)
	}
	if _, err := tr.ContentMastery(ctx, "casey", "add-ones"); !errors.Is(err, ErrNoMasteryData) {
		t.Errorf("ContentMastery(no row) error = %v, want ErrNoMasteryData", err)
	}
	if _, err := tr.PathProgress(ctx, "casey", "addition"); !errors.Is(err, ErrNoProgressData) {
		t.Errorf("PathProgress(uninitialized) error = %v, want ErrNoProgressData", err)
	}
}

func TestRecordSession_ItemAddedAfterInitialize(t *testing.T) {
	ctx := context.Background()
	fs := newFakeStore()

	tr := NewTracker(fs, testCatalog(t))
	tr.clock = func() time.Time { return fixedNow }
	tr.jitter = func() float64 { return 1.0 }
	registerAndInit(t, tr, fs, "casey")

	grown, err := curriculum.NewCatalog([]*curriculum.Path{
		{
			ID:     "addition",
			Name:   "Addition",
			Weight: 1,
			Items: []curriculum.Item{
				{ID: "add-ones", Name: "Add ones"},
				{ID: "add-tens", Name: "Add tens", ExpectedMs: 6000},
				{ID: "add-hundreds", Name: "Add hundreds"},
			},
		},
		{
			ID:     "subtraction",
			Name:   "Subtraction",
			Weight: 1,
			Items:  []curriculum.Item{{ID: "sub-ones", Name: "Subtract ones"}},
		},
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	tr2 := NewTracker(fs, grown)
	tr2.clock = func() time.Time { return fixedNow }
	tr2.jitter = func() float64 { return 1.0 }

	up, err := tr2.RecordSession(ctx, "casey", session("addition", "add-hundreds", 10, 10, 30000, fixedNow))
	if err != nil {
		t.Fatalf("RecordSession() on new item error = %v", err)
	}
	cm, err := tr2.ContentMastery(ctx, "casey", "add-hundreds")
	if err != nil {
		t.Fatalf("ContentMastery() error = %v", err)
	}
	if cm.AttemptCount != 1 || !almostEqual(cm.MasteryLevel, 0.3) {
		t.Errorf("lazily created row = %+v, want 1 attempt at 0.3", cm)
	}
	if up.TotalItemCount != 4 {
		t.Errorf("TotalItemCount = %d, want 4 after curriculum growth", up.TotalItemCount)
	}
}

func TestDueContent(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	// add-ones lands at mastery 0.3: due in 3 days.
	if _, err := tr.RecordSession(ctx, "casey", session("addition", "add-ones", 10, 10, 30000, fixedNow)); err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}
	// add-tens lands at 0.15: due in 1 day.
	if _, err := tr.RecordSession(ctx, "casey", session("addition", "add-tens", 10, 10, 12000, fixedNow)); err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}

	due, err := tr.DueContent(ctx, "casey", fixedNow)
	if err != nil {
		t.Fatalf("DueContent() error = %v", err)
	}
	if len(due) != 0 {
		t.Errorf("DueContent() right after practice = %d items, want 0", len(due))
	}

	due, err = tr.DueContent(ctx, "casey", fixedNow.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("DueContent() error = %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("DueContent() = %d items, want 2", len(due))
	}
	// Most overdue first: add-tens has been waiting 2 days, add-ones 0.
	if due[0].ContentID != "add-tens" || due[1].ContentID != "add-ones" {
		t.Errorf("DueContent() order = [%s, %s], want [add-tens, add-ones]", due[0].ContentID, due[1].ContentID)
	}
	if due[0].PathID != "addition" {
		t.Errorf("DueItem.PathID = %q, want %q", due[0].PathID, "addition")
	}
	if !almostEqual(due[0].OverdueDays, 2.0) {
		t.Errorf("OverdueDays = %v, want 2.0", due[0].OverdueDays)
	}
}

func TestRecordSession_ReturnsIndependentCopy(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	up, err := tr.RecordSession(ctx, "casey", session("addition", "add-ones", 10, 10, 30000, fixedNow))
	if err != nil {
		t.Fatalf("RecordSession() error = %v", err)
	}
	up.PerPathCompletion["addition"] = 0.99
	up.MasteredItemCount = 42

	reread, err := tr.UserProgress(ctx, "casey")
	if err != nil {
		t.Fatalf("UserProgress() error = %v", err)
	}
	if reread.PerPathCompletion["addition"] == 0.99 || reread.MasteredItemCount == 42 {
		t.Error("mutating the returned aggregate leaked into tracked state")
	}
}

// Serialization regression: concurrent sessions on one (user, content) key
// must all land. Without the per-key lock the read-blend-write sequence
// drops updates and the attempt count comes up short.
func TestRecordSession_ConcurrentSameKey(t *testing.T) {
	tr, fs := newTestTracker(t)
	ctx := context.Background()
	registerAndInit(t, tr, fs, "casey")

	const sessions = 16
	var wg sync.WaitGroup
	errs := make(chan error, sessions)
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tr.RecordSession(ctx, "casey", session("addition", "add-ones", 10, 10, 30000, fixedNow)); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("RecordSession() error = %v", err)
	}

	cm, err := tr.ContentMastery(ctx, "casey", "add-ones")
	if err != nil {
		t.Fatalf("ContentMastery() error = %v", err)
	}
	if cm.AttemptCount != sessions {
		t.Errorf("AttemptCount = %d, want %d", cm.AttemptCount, sessions)
	}

	// All sessions are identical and same-day, so the final level is the
	// blend recurrence applied 16 times regardless of arrival order.
	want := 0.0
	for i := 0; i < sessions; i++ {
		want = 0.3*1.0 + 0.7*want
	}
	if !almostEqual(cm.MasteryLevel, want) {
		t.Errorf("MasteryLevel = %v, want %v", cm.MasteryLevel, want)
	}

	up, err := tr.UserProgress(ctx, "casey")
	if err != nil {
		t.Fatalf("UserProgress() error = %v", err)
	}
	if up.MasteredItemCount != 1 {
		t.Errorf("MasteredItemCount = %d, want 1", up.MasteredItemCount)
	}
}
