package mastery

import "time"

// UserProgress is the account-level aggregate, one row per user. It is
// derived from per-item mastery and recomputed on every recorded session;
// it is never edited directly.
type UserProgress struct {
	UserID            string             `json:"user_id"`
	OverallCompletion float64            `json:"overall_completion"`
	PerPathCompletion map[string]float64 `json:"per_path_completion"`
	MasteredItemCount int                `json:"mastered_item_count"`
	TotalItemCount    int                `json:"total_item_count"`
	LastUpdate        time.Time          `json:"last_update"`
}

// Clone returns an independent copy, including the per-path map.
func (up *UserProgress) Clone() *UserProgress {
	if up == nil {
		return nil
	}
	c := *up
	c.PerPathCompletion = make(map[string]float64, len(up.PerPathCompletion))
	for id, v := range up.PerPathCompletion {
		c.PerPathCompletion[id] = v
	}
	return &c
}

// ItemState is the per-item slice of a path progress report.
type ItemState struct {
	MasteryLevel float64 `json:"mastery_level"`
	AttemptCount int     `json:"attempt_count"`
	Position     int     `json:"position"` // zero-based position in path order
}

// PathProgressDetails is the per-path aggregate for one user. Like
// UserProgress it is derived from the item rows, never authored.
type PathProgressDetails struct {
	PathID        string               `json:"path_id"`
	Completion    float64              `json:"completion"`
	PerItemState  map[string]ItemState `json:"per_item_state"`
	MasteredCount int                  `json:"mastered_count"`
	LastUpdate    time.Time            `json:"last_update"`
}

// Clone returns an independent copy, including the per-item map.
func (pp *PathProgressDetails) Clone() *PathProgressDetails {
	if pp == nil {
		return nil
	}
	c := *pp
	c.PerItemState = make(map[string]ItemState, len(pp.PerItemState))
	for id, st := range pp.PerItemState {
		c.PerItemState[id] = st
	}
	return &c
}

// OverallCompletion returns the weight-normalized average of per-path
// completion values. Paths missing from completions count as zero, so a
// path the user never touched still drags the overall figure down.
// Returns 0 when the total weight is zero.
func OverallCompletion(completions map[string]float64, weights map[string]float64) float64 {
	var sum, total float64
	for pathID, w := range weights {
		if w <= 0 {
			continue
		}
		sum += w * completions[pathID]
		total += w
	}
	if total == 0 {
		return 0
	}
	return clamp01(sum / total)
}
