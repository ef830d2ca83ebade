package mastery

import (
	"math"
	"math/rand"
)

const (
	// ReviewScale stretches mastery into a review horizon: the interval
	// grows with the square of mastery*ReviewScale, so weak items come
	// back within a day or two while mastered items rest for weeks.
	ReviewScale = 5

	// JitterLow and JitterHigh bound the random factor applied to every
	// review interval. The spread stops items practiced together from
	// all falling due on the same day forever.
	JitterLow  = 0.9
	JitterHigh = 1.1
)

// JitterFunc produces the random interval factor. The tracker draws one
// value per recorded session.
type JitterFunc func() float64

func defaultJitter() float64 {
	return JitterLow + (JitterHigh-JitterLow)*rand.Float64()
}

// ReviewIntervalDays returns the scheduling interval in whole days for a
// mastery level, with the given jitter factor applied before rounding up.
// Any non-zero mastery yields at least one day; zero mastery yields zero,
// putting the item due again immediately.
func ReviewIntervalDays(mastery, jitter float64) int {
	base := mastery * ReviewScale
	return int(math.Ceil(base * base * jitter))
}
