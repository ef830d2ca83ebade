package scoring

import (
	"fmt"
	"math"
)

const (
	// MinMultiplier is the floor for every bonus track.
	MinMultiplier = 1.0

	// MaxMultiplier is the ceiling for every bonus track.
	MaxMultiplier = 10.0
)

// ExcellenceMultiplier returns the single-session excellence bonus for a
// first-time-correct fraction (0.0-1.0). The ladder jumps at 80/90/95/100%.
func ExcellenceMultiplier(ftcFraction float64) float64 {
	switch {
	case ftcFraction >= 1.0:
		return 10.0
	case ftcFraction >= 0.95:
		return 5.0
	case ftcFraction >= 0.90:
		return 3.0
	case ftcFraction >= 0.80:
		return 2.0
	default:
		return MinMultiplier
	}
}

// FluencyMultiplier returns the fluency bonus for a blink speed in
// milliseconds. Faster blink speeds earn higher multipliers.
func FluencyMultiplier(blinkSpeedMs float64) float64 {
	switch {
	case blinkSpeedMs < 2000:
		return 10.0
	case blinkSpeedMs < 3000:
		return 5.0
	case blinkSpeedMs < 4000:
		return 3.0
	case blinkSpeedMs < 5000:
		return 2.0
	default:
		return MinMultiplier
	}
}

// ConsistencyMultiplier returns the consistency-over-time bonus for a
// streak of consecutive practice days ending today.
func ConsistencyMultiplier(dayStreak int) float64 {
	switch {
	case dayStreak >= 30:
		return 10.0
	case dayStreak >= 14:
		return 5.0
	case dayStreak >= 7:
		return 3.0
	case dayStreak >= 3:
		return 2.0
	default:
		return MinMultiplier
	}
}

// BonusMultiplier combines the three bonus tracks by taking the MAXIMUM
// track value, rounded to one decimal and clamped to
// [MinMultiplier, MaxMultiplier]. A learner need only excel on one axis to
// earn the top multiplier. The first-generation weighted-average formula
// is kept as LegacyBonusMultiplier and must not be reintroduced here.
func BonusMultiplier(ftcFraction, blinkSpeedMs float64, dayStreak int) (float64, error) {
	if ftcFraction < 0 || ftcFraction > 1 {
		return 0, fmt.Errorf("%w: ftc fraction %.3f outside [0, 1]", ErrInvalidScore, ftcFraction)
	}
	if blinkSpeedMs < 0 {
		return 0, fmt.Errorf("%w: blink speed %.1fms", ErrInvalidDuration, blinkSpeedMs)
	}
	if dayStreak < 0 {
		return 0, fmt.Errorf("%w: day streak %d", ErrInvalidCount, dayStreak)
	}

	m := ConsistencyMultiplier(dayStreak)
	if e := ExcellenceMultiplier(ftcFraction); e > m {
		m = e
	}
	if f := FluencyMultiplier(blinkSpeedMs); f > m {
		m = f
	}

	m = math.Round(m*10) / 10
	return clamp(m, MinMultiplier, MaxMultiplier), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
