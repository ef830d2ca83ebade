package scoring

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// The reference session: 20 questions in 4 minutes, 16 first-time-correct,
// 3 eventually-correct, 1 incorrect.
func referenceSession() SessionData {
	return SessionData{
		QuestionCount:  20,
		FTCCount:       16,
		ECCount:        3,
		IncorrectCount: 1,
		DurationMs:     240000,
	}
}

func TestScore_ReferenceSession(t *testing.T) {
	score, err := Score(referenceSession())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if score.FTCPoints != 48 {
		t.Errorf("FTCPoints = %d, want 48", score.FTCPoints)
	}
	if score.ECPoints != 3 {
		t.Errorf("ECPoints = %d, want 3", score.ECPoints)
	}
	if score.BasePoints != 51 {
		t.Errorf("BasePoints = %d, want 51", score.BasePoints)
	}
	if !almostEqual(score.Accuracy, 0.95) {
		t.Errorf("Accuracy = %f, want 0.95", score.Accuracy)
	}
	if score.BlinkSpeedMs != 15000 {
		t.Errorf("BlinkSpeedMs = %.0f, want 15000", score.BlinkSpeedMs)
	}
	// 16/20 = 80% first-time-correct lands on the 0.80 excellence step;
	// the other tracks are idle (15s blink, no day streak).
	if score.BonusMultiplier != 2.0 {
		t.Errorf("BonusMultiplier = %.1f, want 2.0", score.BonusMultiplier)
	}
	if score.TotalPoints != 102 {
		t.Errorf("TotalPoints = %d, want 102", score.TotalPoints)
	}
	// 102/15000*12000 = 81.6 rounds to 82.
	if score.Evolution != 82 {
		t.Errorf("Evolution = %.1f, want 82", score.Evolution)
	}
}

func TestScore_ExcellenceStepAt90Percent(t *testing.T) {
	d := SessionData{
		QuestionCount:  20,
		FTCCount:       18,
		ECCount:        1,
		IncorrectCount: 1,
		DurationMs:     240000,
	}
	score, err := Score(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 18/20 = 90% first-time-correct.
	if score.BonusMultiplier != 3.0 {
		t.Errorf("BonusMultiplier = %.1f, want 3.0", score.BonusMultiplier)
	}
}

func TestScore_ConsistencyFallsBackToAccuracy(t *testing.T) {
	score, err := Score(referenceSession())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(score.Consistency, score.Accuracy) {
		t.Errorf("Consistency = %f, want accuracy %f", score.Consistency, score.Accuracy)
	}
}

func TestScore_ConsistencyFromSequence(t *testing.T) {
	d := SessionData{
		QuestionCount:  5,
		FTCCount:       2,
		ECCount:        1,
		IncorrectCount: 2,
		DurationMs:     60000,
		// Two breaks across four adjacent pairs: 1 - 2/4 = 0.5.
		CorrectnessSeq: []bool{true, true, false, false, true},
	}
	score, err := Score(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(score.Consistency, 0.5) {
		t.Errorf("Consistency = %f, want 0.5", score.Consistency)
	}
}

func TestScore_SingleQuestionConsistency(t *testing.T) {
	d := SessionData{
		QuestionCount:  1,
		FTCCount:       0,
		ECCount:        0,
		IncorrectCount: 1,
		DurationMs:     5000,
		CorrectnessSeq: []bool{false},
	}
	score, err := Score(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// One answer has no adjacent pair to break.
	if score.Consistency != 1.0 {
		t.Errorf("Consistency = %f, want 1.0", score.Consistency)
	}
}

func TestScore_SpeedNeutralDefault(t *testing.T) {
	score, err := Score(referenceSession())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Speed != NeutralSpeed {
		t.Errorf("Speed = %f, want %f", score.Speed, NeutralSpeed)
	}
}

func TestScore_SpeedFromTimings(t *testing.T) {
	tests := []struct {
		name  string
		avgMs int
		want  float64
	}{
		// Against the 6000ms baseline (same curve as the tracker's
		// response-time shaping).
		{"half the baseline", 3000, 1.0},
		{"at the baseline", 6000, 0.5},
		{"half over", 9000, 0.25},
		{"double and beyond", 12000, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times := make([]int, 4)
			for i := range times {
				times[i] = tt.avgMs
			}
			d := SessionData{
				QuestionCount:   4,
				FTCCount:        4,
				DurationMs:      tt.avgMs * 4,
				ResponseTimesMs: times,
				SpeedMode:       SpeedFromTimings,
			}
			score, err := Score(d)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(score.Speed, tt.want) {
				t.Errorf("Speed = %f, want %f", score.Speed, tt.want)
			}
		})
	}
}

func TestScore_TimingModeRequiresTimes(t *testing.T) {
	d := referenceSession()
	d.SpeedMode = SpeedFromTimings
	if _, err := Score(d); !errors.Is(err, ErrInvalidSessionData) {
		t.Fatalf("err = %v, want ErrInvalidSessionData", err)
	}
}

func TestScore_ZeroFTCUsesDurationBlink(t *testing.T) {
	d := SessionData{
		QuestionCount:  10,
		FTCCount:       0,
		ECCount:        6,
		IncorrectCount: 4,
		DurationMs:     120000,
	}
	score, err := Score(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.BlinkSpeedMs != 120000 {
		t.Errorf("BlinkSpeedMs = %.0f, want 120000", score.BlinkSpeedMs)
	}
	if score.BasePoints != 6 {
		t.Errorf("BasePoints = %d, want 6", score.BasePoints)
	}
}

func TestScore_ZeroBlinkSpeedSentinel(t *testing.T) {
	// A zero duration with zero FTC gives a zero blink speed; the
	// composite path resolves evolution to the 0 sentinel, never an error.
	d := SessionData{
		QuestionCount:  2,
		FTCCount:       0,
		ECCount:        1,
		IncorrectCount: 1,
		DurationMs:     0,
	}
	score, err := Score(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Evolution != 0 {
		t.Errorf("Evolution = %f, want sentinel 0", score.Evolution)
	}
}

func TestScore_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		d    SessionData
	}{
		{"zero questions", SessionData{QuestionCount: 0}},
		{"negative ftc", SessionData{QuestionCount: 5, FTCCount: -1, ECCount: 4, IncorrectCount: 2}},
		{"counts do not sum", SessionData{QuestionCount: 5, FTCCount: 1, ECCount: 1, IncorrectCount: 1}},
		{"negative duration", SessionData{QuestionCount: 2, FTCCount: 2, DurationMs: -1}},
		{"negative streak", SessionData{QuestionCount: 2, FTCCount: 2, DurationMs: 100, DayStreak: -1}},
		{"sequence length mismatch", SessionData{QuestionCount: 3, FTCCount: 3, DurationMs: 100, CorrectnessSeq: []bool{true}}},
		{"negative response time", SessionData{QuestionCount: 2, FTCCount: 2, DurationMs: 100, SpeedMode: SpeedFromTimings, ResponseTimesMs: []int{50, -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Score(tt.d); !errors.Is(err, ErrInvalidSessionData) {
				t.Errorf("err = %v, want ErrInvalidSessionData", err)
			}
		})
	}
}

// Randomized sweep of valid sessions: every unit-range output stays in
// [0,1] and the multiplier stays on its clamp range.
func TestScore_RangesUnderRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		qc := 1 + rng.Intn(40)
		ftc := rng.Intn(qc + 1)
		ec := rng.Intn(qc - ftc + 1)
		d := SessionData{
			QuestionCount:  qc,
			FTCCount:       ftc,
			ECCount:        ec,
			IncorrectCount: qc - ftc - ec,
			DurationMs:     rng.Intn(600000),
			DayStreak:      rng.Intn(60),
		}
		if rng.Intn(2) == 0 {
			seq := make([]bool, qc)
			for j := range seq {
				seq[j] = rng.Intn(2) == 0
			}
			d.CorrectnessSeq = seq
		}
		if rng.Intn(2) == 0 {
			times := make([]int, qc)
			for j := range times {
				times[j] = rng.Intn(20000)
			}
			d.ResponseTimesMs = times
			d.SpeedMode = SpeedFromTimings
		}

		score, err := Score(d)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		for name, v := range map[string]float64{
			"Accuracy":    score.Accuracy,
			"Consistency": score.Consistency,
			"Speed":       score.Speed,
		} {
			if v < 0 || v > 1 {
				t.Errorf("case %d: %s = %f outside [0,1]", i, name, v)
			}
		}
		if score.BonusMultiplier < MinMultiplier || score.BonusMultiplier > MaxMultiplier {
			t.Errorf("case %d: BonusMultiplier = %f outside [%.1f,%.1f]",
				i, score.BonusMultiplier, MinMultiplier, MaxMultiplier)
		}
		if score.TotalPoints < 0 || score.BlinkSpeedMs < 0 || score.Evolution < 0 {
			t.Errorf("case %d: negative output: total=%d blink=%f evolution=%f",
				i, score.TotalPoints, score.BlinkSpeedMs, score.Evolution)
		}
	}
}
