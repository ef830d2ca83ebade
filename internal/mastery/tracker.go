package mastery

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oselot/stitchpath/internal/curriculum"
)

// SessionResult is one finished practice session on a single content item,
// as reported by the session workflow.
type SessionResult struct {
	PathID           string
	ContentID        string
	CorrectCount     int
	TotalCount       int
	CompletionTimeMs int
	// Timestamp is when the session finished. Zero means now.
	Timestamp time.Time
}

// Tracker owns all mastery state: per-item levels, review scheduling, and
// the path and account aggregates derived from them. Writes for the same
// (user, content) pair are serialized behind a per-key lock so the
// read-decay-blend-write sequence cannot lose updates; writes for
// different pairs run in parallel.
type Tracker struct {
	store ProgressStore
	paths curriculum.Provider
	cache *progressCache

	contentLocks *keyLock[contentKey]
	userLocks    *keyLock[string]

	clock  func() time.Time
	jitter JitterFunc
}

// NewTracker wires a tracker to its storage and path configuration.
func NewTracker(store ProgressStore, paths curriculum.Provider) *Tracker {
	return &Tracker{
		store:        store,
		paths:        paths,
		cache:        newProgressCache(),
		contentLocks: newKeyLock[contentKey](),
		userLocks:    newKeyLock[string](),
		clock:        time.Now,
		jitter:       defaultJitter,
	}
}

// Initialize creates the zeroed progress records for a registered user:
// one UserProgress row plus one zeroed ContentMastery row per configured
// content item.
func (t *Tracker) Initialize(ctx context.Context, userID string) error {
	if err := t.requireUser(ctx, userID, ErrInitializationFailed); err != nil {
		return err
	}

	t.userLocks.lock(userID)
	defer t.userLocks.unlock(userID)

	existing, err := t.store.GetUserProgress(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: load progress: %v", ErrInitializationFailed, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: user %q", ErrAlreadyInitialized, userID)
	}

	// A re-registered user id may still have cache entries from before
	// its account was deleted.
	t.cache.invalidateUser(userID)

	var rows []*ContentMastery
	perPath := make(map[string]float64)
	for _, p := range t.paths.Paths() {
		perPath[p.ID] = 0
		for _, id := range p.ContentIDs() {
			rows = append(rows, &ContentMastery{ContentID: id})
		}
	}
	if err := t.store.CreateContentMasteries(ctx, userID, rows); err != nil {
		return fmt.Errorf("%w: create mastery rows: %v", ErrInitializationFailed, err)
	}

	up := &UserProgress{
		UserID:            userID,
		PerPathCompletion: perPath,
		TotalItemCount:    t.paths.TotalContentCount(),
		LastUpdate:        t.clock(),
	}
	if err := t.store.SaveUserProgress(ctx, up); err != nil {
		return fmt.Errorf("%w: save progress: %v", ErrInitializationFailed, err)
	}
	t.cache.setUserProgress(up)
	return nil
}

// Reset deletes every stored record for a user and drops their cached
// state. Resetting an unknown user is a no-op.
func (t *Tracker) Reset(ctx context.Context, userID string) error {
	t.userLocks.lock(userID)
	defer t.userLocks.unlock(userID)

	if err := t.store.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("%w: delete user: %v", ErrUpdateFailed, err)
	}
	t.cache.invalidateUser(userID)
	return nil
}

// RecordSession folds one session result into the (user, content) mastery
// row, reschedules its review, and recomputes the owning path and account
// aggregates. It returns the updated account aggregate.
func (t *Tracker) RecordSession(ctx context.Context, userID string, res SessionResult) (*UserProgress, error) {
	if err := validateSessionResult(res); err != nil {
		return nil, err
	}
	if err := t.requireUser(ctx, userID, ErrUpdateFailed); err != nil {
		return nil, err
	}

	path, err := t.paths.Path(res.PathID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, res.PathID)
	}
	if !path.Contains(res.ContentID) {
		return nil, fmt.Errorf("%w: %q is not in path %q", ErrContentNotFound, res.ContentID, res.PathID)
	}

	// Reject sessions for a registered but uninitialized user before any
	// write happens.
	if up, err := t.store.GetUserProgress(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: load progress: %v", ErrUpdateFailed, err)
	} else if up == nil {
		return nil, fmt.Errorf("%w: user %q", ErrNoProgressData, userID)
	}

	ts := res.Timestamp
	if ts.IsZero() {
		ts = t.clock()
	}

	key := contentKey{userID: userID, contentID: res.ContentID}
	t.contentLocks.lock(key)
	defer t.contentLocks.unlock(key)

	prior, err := t.store.GetContentMastery(ctx, userID, res.ContentID)
	if err != nil {
		return nil, fmt.Errorf("%w: load mastery: %v", ErrUpdateFailed, err)
	}
	if prior == nil {
		// Items added to the curriculum after this user initialized have
		// no row yet; they start from zero.
		prior = &ContentMastery{ContentID: res.ContentID}
	}

	updated := t.applySession(prior, res, ts)
	if err := t.store.SaveContentMastery(ctx, userID, updated); err != nil {
		return nil, fmt.Errorf("%w: save mastery: %v", ErrUpdateFailed, err)
	}
	t.cache.setContentMastery(userID, updated)

	// Aggregates take the user-level lock while the per-content lock is
	// still held; lock order is always content first, then user.
	return t.recomputeAggregates(ctx, userID, path)
}

// applySession computes the successor mastery row for one session.
func (t *Tracker) applySession(prior *ContentMastery, res SessionResult, ts time.Time) *ContentMastery {
	elapsed := 0
	if prior.Attempted() {
		elapsed = WholeDaysBetween(prior.LastAttemptTime, ts)
	}
	decayed := DecayedMastery(prior.MasteryLevel, elapsed)

	ratio := float64(res.CorrectCount) / float64(res.TotalCount)

	// Faster than expected never over-rewards; items with no configured
	// expectation get a neutral factor.
	factor := 1.0
	if expected, ok := t.paths.ExpectedTime(res.ContentID); ok {
		factor = float64(expected) / float64(res.CompletionTimeMs)
		if factor > 1 {
			factor = 1
		}
	}

	level := BlendMastery(AttemptMastery(ratio, factor), decayed)

	return &ContentMastery{
		ContentID:       res.ContentID,
		MasteryLevel:    level,
		AttemptCount:    prior.AttemptCount + 1,
		LastAttemptTime: ts,
		NextReviewTime:  ts.AddDate(0, 0, ReviewIntervalDays(level, t.jitter())),
	}
}

// recomputeAggregates rebuilds the owning path aggregate from its item
// rows and folds the change into the account aggregate, all under the
// user-level lock.
func (t *Tracker) recomputeAggregates(ctx context.Context, userID string, path *curriculum.Path) (*UserProgress, error) {
	t.userLocks.lock(userID)
	defer t.userLocks.unlock(userID)

	details, err := t.derivePathProgress(ctx, userID, path)
	if err != nil {
		return nil, err
	}

	// Path rows are written on every recorded session, so a missing row
	// means no session ever touched this path: zero mastered before now.
	oldMastered := 0
	if old, err := t.store.GetPathProgress(ctx, userID, path.ID); err != nil {
		return nil, fmt.Errorf("%w: load path progress: %v", ErrUpdateFailed, err)
	} else if old != nil {
		oldMastered = old.MasteredCount
	}

	if err := t.store.SavePathProgress(ctx, userID, details); err != nil {
		return nil, fmt.Errorf("%w: save path progress: %v", ErrUpdateFailed, err)
	}
	t.cache.setPathProgress(userID, details)

	up, err := t.store.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load progress: %v", ErrUpdateFailed, err)
	}
	if up == nil {
		return nil, fmt.Errorf("%w: user %q", ErrNoProgressData, userID)
	}

	if up.PerPathCompletion == nil {
		up.PerPathCompletion = make(map[string]float64)
	}
	up.PerPathCompletion[path.ID] = details.Completion
	up.OverallCompletion = OverallCompletion(up.PerPathCompletion, t.pathWeights())
	up.MasteredItemCount += details.MasteredCount - oldMastered
	up.TotalItemCount = t.paths.TotalContentCount()
	up.LastUpdate = details.LastUpdate

	if err := t.store.SaveUserProgress(ctx, up); err != nil {
		return nil, fmt.Errorf("%w: save progress: %v", ErrUpdateFailed, err)
	}
	t.cache.setUserProgress(up)
	return up.Clone(), nil
}

// derivePathProgress rebuilds a path aggregate from its item rows. Items
// without a row count as zero mastery. LastUpdate is the latest attempt
// time across the path, zero if nothing was ever attempted.
func (t *Tracker) derivePathProgress(ctx context.Context, userID string, path *curriculum.Path) (*PathProgressDetails, error) {
	ids := path.ContentIDs()
	rows, err := t.store.ListContentMastery(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: list mastery: %v", ErrUpdateFailed, err)
	}

	details := &PathProgressDetails{
		PathID:       path.ID,
		PerItemState: make(map[string]ItemState, len(ids)),
	}
	for i, id := range ids {
		st := ItemState{Position: i}
		if row, ok := rows[id]; ok {
			st.MasteryLevel = row.MasteryLevel
			st.AttemptCount = row.AttemptCount
			if row.Mastered() {
				details.MasteredCount++
			}
			if row.LastAttemptTime.After(details.LastUpdate) {
				details.LastUpdate = row.LastAttemptTime
			}
		}
		details.PerItemState[id] = st
	}
	if len(ids) > 0 {
		details.Completion = clamp01(float64(details.MasteredCount) / float64(len(ids)))
	}
	return details, nil
}

// UserProgress returns the account-level aggregate for a user.
func (t *Tracker) UserProgress(ctx context.Context, userID string) (*UserProgress, error) {
	if err := t.requireUser(ctx, userID, ErrUpdateFailed); err != nil {
		return nil, err
	}
	if up, ok := t.cache.userProgress(userID); ok {
		return up, nil
	}
	up, err := t.store.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load progress: %v", ErrUpdateFailed, err)
	}
	if up == nil {
		return nil, fmt.Errorf("%w: user %q", ErrNoProgressData, userID)
	}
	return up, nil
}

// ContentMastery returns the mastery row for one (user, content) pair.
func (t *Tracker) ContentMastery(ctx context.Context, userID, contentID string) (*ContentMastery, error) {
	if _, _, err := t.paths.FindContent(contentID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrContentNotFound, contentID)
	}
	if err := t.requireUser(ctx, userID, ErrUpdateFailed); err != nil {
		return nil, err
	}
	if cm, ok := t.cache.contentMastery(userID, contentID); ok {
		return cm, nil
	}
	cm, err := t.store.GetContentMastery(ctx, userID, contentID)
	if err != nil {
		return nil, fmt.Errorf("%w: load mastery: %v", ErrUpdateFailed, err)
	}
	if cm == nil {
		return nil, fmt.Errorf("%w: %q for user %q", ErrNoMasteryData, contentID, userID)
	}
	return cm, nil
}

// PathProgress returns the per-path aggregate for a user, derived fresh
// from the item rows so curriculum changes are reflected immediately.
func (t *Tracker) PathProgress(ctx context.Context, userID, pathID string) (*PathProgressDetails, error) {
	path, err := t.paths.Path(pathID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, pathID)
	}
	if err := t.requireUser(ctx, userID, ErrUpdateFailed); err != nil {
		return nil, err
	}
	if pp, ok := t.cache.pathProgress(userID, pathID); ok {
		return pp, nil
	}
	if up, err := t.store.GetUserProgress(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: load progress: %v", ErrUpdateFailed, err)
	} else if up == nil {
		return nil, fmt.Errorf("%w: user %q", ErrNoProgressData, userID)
	}
	return t.derivePathProgress(ctx, userID, path)
}

// DueItem is one entry in the review queue.
type DueItem struct {
	ContentID      string
	PathID         string
	MasteryLevel   float64
	NextReviewTime time.Time
	OverdueDays    float64
}

// DueContent returns every attempted item at or past its review time,
// most overdue first. Items that left the curriculum are omitted.
func (t *Tracker) DueContent(ctx context.Context, userID string, now time.Time) ([]DueItem, error) {
	if err := t.requireUser(ctx, userID, ErrUpdateFailed); err != nil {
		return nil, err
	}
	if up, err := t.store.GetUserProgress(ctx, userID); err != nil {
		return nil, fmt.Errorf("%w: load progress: %v", ErrUpdateFailed, err)
	} else if up == nil {
		return nil, fmt.Errorf("%w: user %q", ErrNoProgressData, userID)
	}

	rows, err := t.store.ListContentMastery(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: list mastery: %v", ErrUpdateFailed, err)
	}

	due := make([]DueItem, 0)
	for _, row := range rows {
		if !row.IsDue(now) {
			continue
		}
		path, _, err := t.paths.FindContent(row.ContentID)
		if err != nil {
			continue
		}
		due = append(due, DueItem{
			ContentID:      row.ContentID,
			PathID:         path.ID,
			MasteryLevel:   row.MasteryLevel,
			NextReviewTime: row.NextReviewTime,
			OverdueDays:    row.OverdueDays(now),
		})
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].OverdueDays != due[j].OverdueDays {
			return due[i].OverdueDays > due[j].OverdueDays
		}
		return due[i].ContentID < due[j].ContentID
	})
	return due, nil
}

// requireUser checks the user identity, wrapping storage failures in kind.
func (t *Tracker) requireUser(ctx context.Context, userID string, kind error) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user id", ErrUserNotFound)
	}
	exists, err := t.store.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: user lookup: %v", kind, err)
	}
	if !exists {
		return fmt.Errorf("%w: %q", ErrUserNotFound, userID)
	}
	return nil
}

func (t *Tracker) pathWeights() map[string]float64 {
	ws := make(map[string]float64)
	for _, p := range t.paths.Paths() {
		ws[p.ID] = p.Weight
	}
	return ws
}

func validateSessionResult(res SessionResult) error {
	switch {
	case res.PathID == "":
		return fmt.Errorf("%w: empty path id", ErrInvalidSessionResult)
	case res.ContentID == "":
		return fmt.Errorf("%w: empty content id", ErrInvalidSessionResult)
	case res.TotalCount <= 0:
		return fmt.Errorf("%w: total count %d", ErrInvalidSessionResult, res.TotalCount)
	case res.CorrectCount < 0 || res.CorrectCount > res.TotalCount:
		return fmt.Errorf("%w: correct count %d of %d", ErrInvalidSessionResult, res.CorrectCount, res.TotalCount)
	case res.CompletionTimeMs <= 0:
		return fmt.Errorf("%w: completion time %dms", ErrInvalidSessionResult, res.CompletionTimeMs)
	}
	return nil
}
