package scoring

import (
	"errors"
	"testing"
)

func TestBlinkSpeed(t *testing.T) {
	got, err := BlinkSpeed(240000, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12000 {
		t.Errorf("BlinkSpeed(240000, 20) = %.0f, want 12000", got)
	}
}

func TestBlinkSpeed_ZeroFTC(t *testing.T) {
	// The whole session counts as one very slow blink; never an error.
	got, err := BlinkSpeed(240000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 240000 {
		t.Errorf("BlinkSpeed(240000, 0) = %.0f, want 240000", got)
	}
}

func TestBlinkSpeed_Invalid(t *testing.T) {
	if _, err := BlinkSpeed(-1, 5); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative duration: err = %v, want ErrInvalidDuration", err)
	}
	if _, err := BlinkSpeed(1000, -1); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("negative ftc: err = %v, want ErrInvalidCount", err)
	}
}

func TestEvolution(t *testing.T) {
	// 102 points at a 15000ms blink: 102/15000*12000 = 81.6, rounds to 82.
	got, err := Evolution(102, 15000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 82 {
		t.Errorf("Evolution(102, 15000) = %.1f, want 82", got)
	}
}

func TestEvolution_AtTargetBlinkSpeed(t *testing.T) {
	// At the target blink speed, evolution equals total points.
	got, err := Evolution(57, TargetBlinkSpeedMs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 57 {
		t.Errorf("Evolution(57, target) = %.1f, want 57", got)
	}
}

func TestEvolution_ZeroBlinkSpeed(t *testing.T) {
	// The standalone primitive throws; only the composite Score path
	// resolves this case with a sentinel.
	_, err := Evolution(100, 0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("err = %v, want ErrDivisionByZero", err)
	}
}

func TestEvolution_Invalid(t *testing.T) {
	if _, err := Evolution(-1, 5000); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("negative points: err = %v, want ErrInvalidScore", err)
	}
	if _, err := Evolution(10, -5000); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative blink: err = %v, want ErrInvalidDuration", err)
	}
}
