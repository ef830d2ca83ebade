package mastery

import "time"

// ContentMastery holds the tracked state for one (user, content) pair.
// A row starts zeroed and is mutated on every recorded session; there is
// no terminal state.
type ContentMastery struct {
	ContentID       string    `json:"content_id"`
	MasteryLevel    float64   `json:"mastery_level"`
	AttemptCount    int       `json:"attempt_count"`
	LastAttemptTime time.Time `json:"last_attempt_time"` // zero until the first attempt
	NextReviewTime  time.Time `json:"next_review_time"`  // zero until the first attempt
}

// Mastered returns true if the level is at or above the mastery threshold.
func (cm *ContentMastery) Mastered() bool {
	return cm.MasteryLevel >= MasteryThreshold
}

// Attempted returns true once the item has been practiced at least once.
// Unattempted items never appear in review queues.
func (cm *ContentMastery) Attempted() bool {
	return cm.AttemptCount > 0
}

// IsDue returns true if the item is due for review (at or past the review time).
func (cm *ContentMastery) IsDue(now time.Time) bool {
	return cm.Attempted() && !now.Before(cm.NextReviewTime)
}

// OverdueDays returns how many days past due the item is. Returns 0 if not yet due.
func (cm *ContentMastery) OverdueDays(now time.Time) float64 {
	if !cm.IsDue(now) {
		return 0
	}
	return now.Sub(cm.NextReviewTime).Hours() / 24.0
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due or never attempted.
func (cm *ContentMastery) DaysUntilReview(now time.Time) int {
	if !cm.Attempted() || cm.IsDue(now) {
		return 0
	}
	return int(cm.NextReviewTime.Sub(now).Hours()/24.0) + 1
}

// Clone returns an independent copy.
func (cm *ContentMastery) Clone() *ContentMastery {
	if cm == nil {
		return nil
	}
	c := *cm
	return &c
}
