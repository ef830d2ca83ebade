package scoring

import (
	"errors"
	"testing"
)

func TestExcellenceMultiplier_Ladder(t *testing.T) {
	tests := []struct {
		ftcFraction float64
		want        float64
	}{
		{0.00, 1.0},
		{0.79, 1.0},
		{0.80, 2.0},
		{0.89, 2.0},
		{0.90, 3.0},
		{0.94, 3.0},
		{0.95, 5.0},
		{0.99, 5.0},
		{1.00, 10.0},
	}
	for _, tt := range tests {
		if got := ExcellenceMultiplier(tt.ftcFraction); got != tt.want {
			t.Errorf("ExcellenceMultiplier(%.2f) = %.1f, want %.1f", tt.ftcFraction, got, tt.want)
		}
	}
}

func TestFluencyMultiplier_Ladder(t *testing.T) {
	tests := []struct {
		blinkMs float64
		want    float64
	}{
		{1000, 10.0},
		{1999, 10.0},
		{2000, 5.0},
		{2999, 5.0},
		{3000, 3.0},
		{3999, 3.0},
		{4000, 2.0},
		{4999, 2.0},
		{5000, 1.0},
		{15000, 1.0},
	}
	for _, tt := range tests {
		if got := FluencyMultiplier(tt.blinkMs); got != tt.want {
			t.Errorf("FluencyMultiplier(%.0f) = %.1f, want %.1f", tt.blinkMs, got, tt.want)
		}
	}
}

func TestConsistencyMultiplier_Ladder(t *testing.T) {
	tests := []struct {
		streak int
		want   float64
	}{
		{0, 1.0},
		{2, 1.0},
		{3, 2.0},
		{6, 2.0},
		{7, 3.0},
		{13, 3.0},
		{14, 5.0},
		{29, 5.0},
		{30, 10.0},
		{90, 10.0},
	}
	for _, tt := range tests {
		if got := ConsistencyMultiplier(tt.streak); got != tt.want {
			t.Errorf("ConsistencyMultiplier(%d) = %.1f, want %.1f", tt.streak, got, tt.want)
		}
	}
}

// Regression guard: the combined multiplier must be the MAXIMUM of the
// three tracks, never their weighted average (the superseded formula).
func TestBonusMultiplier_IsMaxOfTracks(t *testing.T) {
	// fluency 10.0, excellence 1.0, consistency 1.0
	got, err := BonusMultiplier(0.5, 1500, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10.0 {
		t.Fatalf("BonusMultiplier = %.1f, want 10.0 (max of tracks)", got)
	}

	// The additive generation would have produced 0.5*1 + 0.3*10 + 0.2*1 = 3.7.
	if legacy := LegacyBonusMultiplier(0.5, 1500, 0); got == legacy {
		t.Errorf("BonusMultiplier matches the superseded additive value %.1f", legacy)
	}
}

func TestBonusMultiplier_AllTracksLow(t *testing.T) {
	got, err := BonusMultiplier(0.2, 20000, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != MinMultiplier {
		t.Errorf("BonusMultiplier = %.1f, want %.1f", got, MinMultiplier)
	}
}

func TestBonusMultiplier_PicksHighestTrack(t *testing.T) {
	tests := []struct {
		name    string
		ftc     float64
		blinkMs float64
		streak  int
		want    float64
	}{
		{"excellence wins", 1.0, 20000, 0, 10.0},
		{"fluency wins", 0.5, 2500, 2, 5.0},
		{"consistency wins", 0.5, 20000, 14, 5.0},
		{"tie resolves to shared value", 0.90, 3500, 7, 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BonusMultiplier(tt.ftc, tt.blinkMs, tt.streak)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BonusMultiplier = %.1f, want %.1f", got, tt.want)
			}
		})
	}
}

func TestBonusMultiplier_InvalidInputs(t *testing.T) {
	if _, err := BonusMultiplier(-0.1, 1000, 0); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("ftc -0.1: err = %v, want ErrInvalidScore", err)
	}
	if _, err := BonusMultiplier(1.1, 1000, 0); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("ftc 1.1: err = %v, want ErrInvalidScore", err)
	}
	if _, err := BonusMultiplier(0.5, -1, 0); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("blink -1: err = %v, want ErrInvalidDuration", err)
	}
	if _, err := BonusMultiplier(0.5, 1000, -1); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("streak -1: err = %v, want ErrInvalidCount", err)
	}
}

func TestLegacyBonusMultiplier_WeightedAverage(t *testing.T) {
	// excellence 2.0 (85% ftc), fluency 1.0 (10s blink), consistency 1.0:
	// 0.5*2 + 0.3*1 + 0.2*1 = 1.5
	if got := LegacyBonusMultiplier(0.85, 10000, 0); got != 1.5 {
		t.Errorf("LegacyBonusMultiplier = %.2f, want 1.5", got)
	}
}

func TestLegacyBonusMultiplier_ClampsToFloor(t *testing.T) {
	if got := LegacyBonusMultiplier(0.1, 20000, 0); got != MinMultiplier {
		t.Errorf("LegacyBonusMultiplier = %.2f, want %.1f", got, MinMultiplier)
	}
}
