package scoring

import (
	"fmt"
	"math"
)

const (
	// FTCWeight is the points awarded per first-time-correct answer.
	FTCWeight = 3

	// ECWeight is the points awarded per eventually-correct answer.
	ECWeight = 1
)

// FTCPoints returns the points earned for n first-time-correct answers.
func FTCPoints(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: ftc count %d", ErrInvalidCount, n)
	}
	return n * FTCWeight, nil
}

// ECPoints returns the points earned for n eventually-correct answers.
func ECPoints(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: ec count %d", ErrInvalidCount, n)
	}
	return n * ECWeight, nil
}

// TotalPoints applies a bonus multiplier to base points, rounding to the
// nearest whole point.
func TotalPoints(basePoints int, multiplier float64) (int, error) {
	if basePoints < 0 {
		return 0, fmt.Errorf("%w: base points %d", ErrInvalidCount, basePoints)
	}
	if multiplier < MinMultiplier || multiplier > MaxMultiplier {
		return 0, fmt.Errorf("%w: multiplier %.2f outside [%.1f, %.1f]", ErrInvalidScore, multiplier, MinMultiplier, MaxMultiplier)
	}
	return int(math.Round(float64(basePoints) * multiplier)), nil
}
