package mastery

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDecayedMastery_NoElapsedDays(t *testing.T) {
	got := DecayedMastery(0.6, 0)
	if !almostEqual(got, 0.6) {
		t.Errorf("DecayedMastery(0.6, 0) = %v, want 0.6", got)
	}
}

func TestDecayedMastery_OneDay(t *testing.T) {
	want := 0.6 * math.Exp(-0.05)
	got := DecayedMastery(0.6, 1)
	if !almostEqual(got, want) {
		t.Errorf("DecayedMastery(0.6, 1) = %v, want %v", got, want)
	}
}

func TestDecayedMastery_TwoWeeksHalvesRoughly(t *testing.T) {
	got := DecayedMastery(1.0, 14)
	want := math.Exp(-0.05 * 14)
	if !almostEqual(got, want) {
		t.Errorf("DecayedMastery(1.0, 14) = %v, want %v", got, want)
	}
	if got < 0.45 || got > 0.55 {
		t.Errorf("DecayedMastery(1.0, 14) = %v, want roughly half", got)
	}
}

func TestDecayedMastery_ClampsPrior(t *testing.T) {
	if got := DecayedMastery(1.5, 0); got != 1.0 {
		t.Errorf("DecayedMastery(1.5, 0) = %v, want 1.0", got)
	}
	if got := DecayedMastery(-0.2, 0); got != 0.0 {
		t.Errorf("DecayedMastery(-0.2, 0) = %v, want 0.0", got)
	}
}

func TestAttemptMastery(t *testing.T) {
	tests := []struct {
		name   string
		ratio  float64
		factor float64
		want   float64
	}{
		{"perfect fast", 1.0, 1.0, 1.0},
		{"perfect slow", 1.0, 0.5, 0.5},
		{"partial", 0.8, 1.0, 0.8},
		{"clamped", 1.2, 1.5, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttemptMastery(tt.ratio, tt.factor)
			if !almostEqual(got, tt.want) {
				t.Errorf("AttemptMastery(%v, %v) = %v, want %v", tt.ratio, tt.factor, got, tt.want)
			}
		})
	}
}

func TestBlendMastery_FirstAttempt(t *testing.T) {
	got := BlendMastery(1.0, 0)
	if !almostEqual(got, 0.3) {
		t.Errorf("BlendMastery(1.0, 0) = %v, want 0.3", got)
	}
}

func TestBlendMastery_PriorDominates(t *testing.T) {
	got := BlendMastery(0, 1.0)
	if !almostEqual(got, 0.7) {
		t.Errorf("BlendMastery(0, 1.0) = %v, want 0.7", got)
	}
}

func TestBlendMastery_StaysInUnitRange(t *testing.T) {
	for _, attempt := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		for _, prior := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
			got := BlendMastery(attempt, prior)
			if got < 0 || got > 1 {
				t.Errorf("BlendMastery(%v, %v) = %v, out of [0,1]", attempt, prior, got)
			}
		}
	}
}

func TestWholeDaysBetween(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same instant", base, base, 0},
		{"same day", base, base.Add(5 * time.Hour), 0},
		{"one day", base, base.Add(24 * time.Hour), 1},
		{"partial second day", base, base.Add(36 * time.Hour), 1},
		{"three days", base, base.Add(72 * time.Hour), 3},
		{"to before from", base, base.Add(-48 * time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WholeDaysBetween(tt.from, tt.to)
			if got != tt.want {
				t.Errorf("WholeDaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
