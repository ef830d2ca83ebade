package scoring

import (
	"fmt"
	"math"
)

const (
	// NeutralSpeed is the speed component used when no per-question
	// response times were captured for the session.
	NeutralSpeed = 0.5

	// ExpectedResponseMs is the baseline per-question response time used
	// by the timing speed strategy.
	ExpectedResponseMs = 6000
)

// SpeedMode selects the strategy for the speed component of a score.
// The mode is an explicit capability declaration by the caller; the scorer
// never infers it from the presence of optional timing data.
type SpeedMode int

const (
	// SpeedNeutral scores speed as the fixed NeutralSpeed value.
	// Use when the session capture layer records no per-question timings.
	SpeedNeutral SpeedMode = iota

	// SpeedFromTimings derives speed from per-question response times
	// against the ExpectedResponseMs baseline.
	SpeedFromTimings
)

// SessionData describes one completed practice session.
type SessionData struct {
	QuestionCount  int
	FTCCount       int // answered correctly on the first try
	ECCount        int // answered correctly after one or more retries
	IncorrectCount int // never answered correctly
	DurationMs     int

	// CorrectnessSeq optionally holds per-question correctness in answer
	// order; when present it drives the consistency component.
	CorrectnessSeq []bool

	// ResponseTimesMs holds per-question response times; required when
	// SpeedMode is SpeedFromTimings, ignored otherwise.
	ResponseTimesMs []int

	// SpeedMode selects the speed-component strategy.
	SpeedMode SpeedMode

	// DayStreak is the learner's run of consecutive practice days ending
	// with this session. Zero disables the consistency bonus track.
	DayStreak int
}

// SessionScore is the full scoring breakdown for one session.
type SessionScore struct {
	FTCPoints  int
	ECPoints   int
	BasePoints int

	Accuracy    float64 // (ftc+ec)/questions, in [0,1]
	Consistency float64 // streak stability, in [0,1]
	Speed       float64 // response-time component, in [0,1]

	BonusMultiplier float64
	BlinkSpeedMs    float64
	TotalPoints     int

	// Evolution is the composite progress scalar. Zero is the documented
	// sentinel when BlinkSpeedMs is zero.
	Evolution float64
}

// Score converts one completed session's raw tallies into a full
// SessionScore. It is a pure function: no state, safe to call from any
// number of goroutines.
func Score(d SessionData) (*SessionScore, error) {
	if err := validate(d); err != nil {
		return nil, err
	}

	ftcPoints := d.FTCCount * FTCWeight
	ecPoints := d.ECCount * ECWeight
	base := ftcPoints + ecPoints

	accuracy := float64(d.FTCCount+d.ECCount) / float64(d.QuestionCount)
	ftcFraction := float64(d.FTCCount) / float64(d.QuestionCount)
	consistency := consistencyScore(d, accuracy)
	speed := speedScore(d)

	// Validated inputs cannot fail the blink computation.
	blink, err := BlinkSpeed(d.DurationMs, d.FTCCount)
	if err != nil {
		return nil, err
	}

	bonus, err := BonusMultiplier(ftcFraction, blink, d.DayStreak)
	if err != nil {
		return nil, err
	}

	total := int(math.Round(float64(base) * bonus))

	// Sentinel policy: the composite path never raises on a zero blink
	// speed; the standalone Evolution primitive is the throwing variant.
	var evolution float64
	if blink > 0 {
		evolution = math.Round(float64(total) / blink * TargetBlinkSpeedMs)
	}

	return &SessionScore{
		FTCPoints:       ftcPoints,
		ECPoints:        ecPoints,
		BasePoints:      base,
		Accuracy:        accuracy,
		Consistency:     consistency,
		Speed:           speed,
		BonusMultiplier: bonus,
		BlinkSpeedMs:    blink,
		TotalPoints:     total,
		Evolution:       evolution,
	}, nil
}

func validate(d SessionData) error {
	if d.QuestionCount <= 0 {
		return fmt.Errorf("%w: question count %d", ErrInvalidSessionData, d.QuestionCount)
	}
	if d.FTCCount < 0 || d.ECCount < 0 || d.IncorrectCount < 0 {
		return fmt.Errorf("%w: negative answer count (ftc=%d ec=%d incorrect=%d)",
			ErrInvalidSessionData, d.FTCCount, d.ECCount, d.IncorrectCount)
	}
	if d.FTCCount+d.ECCount+d.IncorrectCount != d.QuestionCount {
		return fmt.Errorf("%w: counts %d+%d+%d do not sum to %d questions",
			ErrInvalidSessionData, d.FTCCount, d.ECCount, d.IncorrectCount, d.QuestionCount)
	}
	if d.DurationMs < 0 {
		return fmt.Errorf("%w: duration %dms", ErrInvalidSessionData, d.DurationMs)
	}
	if d.DayStreak < 0 {
		return fmt.Errorf("%w: day streak %d", ErrInvalidSessionData, d.DayStreak)
	}
	if d.CorrectnessSeq != nil && len(d.CorrectnessSeq) != d.QuestionCount {
		return fmt.Errorf("%w: correctness sequence has %d entries for %d questions",
			ErrInvalidSessionData, len(d.CorrectnessSeq), d.QuestionCount)
	}
	if d.SpeedMode == SpeedFromTimings {
		if len(d.ResponseTimesMs) != d.QuestionCount {
			return fmt.Errorf("%w: timing mode needs %d response times, got %d",
				ErrInvalidSessionData, d.QuestionCount, len(d.ResponseTimesMs))
		}
		for i, ms := range d.ResponseTimesMs {
			if ms < 0 {
				return fmt.Errorf("%w: response time %d is %dms", ErrInvalidSessionData, i, ms)
			}
		}
	}
	return nil
}

// consistencyScore measures answer-streak stability. With a per-question
// correctness sequence it counts streak breaks (adjacent answers that
// differ); without one it falls back to accuracy.
func consistencyScore(d SessionData, accuracy float64) float64 {
	if d.CorrectnessSeq == nil {
		return accuracy
	}
	if d.QuestionCount < 2 {
		// A single answer has no adjacent pair to break.
		return 1.0
	}
	breaks := 0
	for i := 1; i < len(d.CorrectnessSeq); i++ {
		if d.CorrectnessSeq[i] != d.CorrectnessSeq[i-1] {
			breaks++
		}
	}
	return clamp(1.0-float64(breaks)/float64(d.QuestionCount-1), 0, 1)
}

// speedScore computes the speed component under the declared strategy.
// The timing curve matches the mastery engine's response-time shape:
// full credit at half the baseline or faster, fading linearly past it.
func speedScore(d SessionData) float64 {
	if d.SpeedMode != SpeedFromTimings {
		return NeutralSpeed
	}
	sum := 0
	for _, ms := range d.ResponseTimesMs {
		sum += ms
	}
	avg := float64(sum) / float64(len(d.ResponseTimesMs))
	ratio := avg / float64(ExpectedResponseMs)

	switch {
	case ratio <= 0.5:
		return 1.0
	case ratio <= 1.0:
		return 1.0 - (ratio - 0.5)
	default:
		return clamp(0.5-0.5*(ratio-1.0), 0, 1)
	}
}
