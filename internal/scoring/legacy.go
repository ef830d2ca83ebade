package scoring

// First-generation scoring formulas, superseded by the MAX-of-tracks
// generation in bonus.go. Kept so historical scores can be recomputed for
// comparison; nothing in the current pipeline calls these.

const (
	// LegacyFTCWeight is the first-generation per-FTC point weight.
	//
	// Deprecated: superseded by FTCWeight.
	LegacyFTCWeight = 5

	// LegacyECWeight is the first-generation per-EC point weight.
	//
	// Deprecated: superseded by ECWeight.
	LegacyECWeight = 2
)

// LegacyBonusMultiplier implements the first-generation additive bonus:
// a weighted average of the three tracks (0.5 excellence, 0.3 fluency,
// 0.2 consistency) instead of their maximum. Under it a learner had to
// excel on every axis to approach the top multiplier.
//
// Deprecated: superseded by BonusMultiplier. Do not wire this into the
// scoring pipeline; a regression test guards the MAX semantics.
func LegacyBonusMultiplier(ftcFraction, blinkSpeedMs float64, dayStreak int) float64 {
	e := ExcellenceMultiplier(clamp(ftcFraction, 0, 1))
	f := FluencyMultiplier(blinkSpeedMs)
	c := ConsistencyMultiplier(dayStreak)
	return clamp(0.5*e+0.3*f+0.2*c, MinMultiplier, MaxMultiplier)
}
