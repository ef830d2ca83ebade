package scoring

import (
	"fmt"
	"math"
)

// TargetBlinkSpeedMs normalizes evolution so that a session scoring its
// total points at the target blink speed has evolution == total points.
const TargetBlinkSpeedMs = 12000.0

// BlinkSpeed returns the average milliseconds per first-time-correct
// answer. When ftcCount is zero the whole session counts as one very slow
// blink and the session duration itself is returned; this path never
// fails on a zero divisor.
func BlinkSpeed(durationMs, ftcCount int) (float64, error) {
	if durationMs < 0 {
		return 0, fmt.Errorf("%w: duration %dms", ErrInvalidDuration, durationMs)
	}
	if ftcCount < 0 {
		return 0, fmt.Errorf("%w: ftc count %d", ErrInvalidCount, ftcCount)
	}
	if ftcCount == 0 {
		return float64(durationMs), nil
	}
	return float64(durationMs) / float64(ftcCount), nil
}

// Evolution combines total points and fluency into one composite progress
// scalar: round(totalPoints / blinkSpeedMs * TargetBlinkSpeedMs).
//
// Unlike the composite Score path, this standalone primitive returns
// ErrDivisionByZero for a zero blink speed rather than a sentinel.
func Evolution(totalPoints, blinkSpeedMs float64) (float64, error) {
	if totalPoints < 0 {
		return 0, fmt.Errorf("%w: total points %.1f", ErrInvalidScore, totalPoints)
	}
	if blinkSpeedMs < 0 {
		return 0, fmt.Errorf("%w: blink speed %.1fms", ErrInvalidDuration, blinkSpeedMs)
	}
	if blinkSpeedMs == 0 {
		return 0, fmt.Errorf("%w: blink speed is zero", ErrDivisionByZero)
	}
	return math.Round(totalPoints / blinkSpeedMs * TargetBlinkSpeedMs), nil
}
