package mastery

import (
	"math"
	"time"
)

const (
	// DecayRate is the per-day exponential decay applied to a stored
	// mastery level before blending in a new attempt. At 0.05 a skill
	// loses roughly 5% of its strength per idle day and falls to about
	// half strength after two idle weeks.
	DecayRate = 0.05

	// AttemptWeight and PriorWeight blend a fresh attempt score with the
	// decayed prior. They must sum to 1 so mastery stays in [0, 1].
	AttemptWeight = 0.3
	PriorWeight   = 0.7

	// MasteryThreshold is the level at or above which an item counts as
	// mastered for completion percentages.
	MasteryThreshold = 0.8
)

// DecayedMastery returns prior after elapsedDays of exponential decay.
// Elapsed time under one whole day applies no decay.
func DecayedMastery(prior float64, elapsedDays int) float64 {
	if elapsedDays <= 0 {
		return clamp01(prior)
	}
	return clamp01(prior * math.Exp(-DecayRate*float64(elapsedDays)))
}

// AttemptMastery converts a single session into a mastery sample:
// the correctness ratio scaled by the speed factor.
func AttemptMastery(correctRatio, timeFactor float64) float64 {
	return clamp01(correctRatio * timeFactor)
}

// BlendMastery folds an attempt sample into the decayed prior. A single
// perfect session cannot saturate mastery; a single failure cannot erase
// it. Repetition dominates either way.
func BlendMastery(attempt, decayedPrior float64) float64 {
	return clamp01(AttemptWeight*attempt + PriorWeight*decayedPrior)
}

// WholeDaysBetween returns the number of whole days from `from` to `to`,
// never negative. Partial days are truncated so that two sessions on the
// same day see no decay between them.
func WholeDaysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
