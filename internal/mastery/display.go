package mastery

// Band buckets a numeric mastery level into the lifecycle stage shown to
// learners. Bands are presentation only; all engine decisions use the
// numeric level.
type Band string

const (
	BandNew        Band = "new"
	BandLearning   Band = "learning"
	BandPracticing Band = "practicing"
	BandMastered   Band = "mastered"
)

// practicingFloor is where "learning" turns into "practicing" on screen.
const practicingFloor = 0.4

// LevelBand maps a mastery level and attempt count to its display band.
// Never-attempted items are "new" regardless of level.
func LevelBand(level float64, attempts int) Band {
	switch {
	case attempts == 0:
		return BandNew
	case level >= MasteryThreshold:
		return BandMastered
	case level >= practicingFloor:
		return BandPracticing
	default:
		return BandLearning
	}
}

// Band returns the display band for this row.
func (cm *ContentMastery) Band() Band {
	return LevelBand(cm.MasteryLevel, cm.AttemptCount)
}
