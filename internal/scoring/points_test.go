package scoring

import (
	"errors"
	"testing"
)

func TestFTCPoints(t *testing.T) {
	got, err := FTCPoints(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5 first-time-correct at 3 points each.
	if got != 15 {
		t.Errorf("FTCPoints(5) = %d, want 15", got)
	}
}

func TestFTCPoints_Zero(t *testing.T) {
	got, err := FTCPoints(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("FTCPoints(0) = %d, want 0", got)
	}
}

func TestFTCPoints_Negative(t *testing.T) {
	_, err := FTCPoints(-1)
	if !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("err = %v, want ErrInvalidCount", err)
	}
}

func TestECPoints(t *testing.T) {
	got, err := ECPoints(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("ECPoints(3) = %d, want 3", got)
	}
}

func TestECPoints_Negative(t *testing.T) {
	_, err := ECPoints(-2)
	if !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("err = %v, want ErrInvalidCount", err)
	}
}

func TestTotalPoints(t *testing.T) {
	got, err := TotalPoints(51, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 102 {
		t.Errorf("TotalPoints(51, 2.0) = %d, want 102", got)
	}
}

func TestTotalPoints_Rounds(t *testing.T) {
	// 7 * 1.5 = 10.5 rounds up.
	got, err := TotalPoints(7, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 11 {
		t.Errorf("TotalPoints(7, 1.5) = %d, want 11", got)
	}
}

func TestTotalPoints_MultiplierOutOfRange(t *testing.T) {
	if _, err := TotalPoints(10, 0.5); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("multiplier 0.5: err = %v, want ErrInvalidScore", err)
	}
	if _, err := TotalPoints(10, 10.1); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("multiplier 10.1: err = %v, want ErrInvalidScore", err)
	}
}

func TestTotalPoints_NegativeBase(t *testing.T) {
	if _, err := TotalPoints(-1, 2.0); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("err = %v, want ErrInvalidCount", err)
	}
}
