package mastery

import "testing"

func TestReviewIntervalDays(t *testing.T) {
	tests := []struct {
		name    string
		mastery float64
		jitter  float64
		want    int
	}{
		{"zero mastery is due immediately", 0, 1.0, 0},
		{"low mastery", 0.3, 1.0, 3},  // ceil(1.5^2) = ceil(2.25)
		{"mid mastery", 0.51, 1.0, 7}, // ceil(2.55^2) = ceil(6.5025)
		{"threshold mastery", 0.8, 1.0, 16},
		{"full mastery", 1.0, 1.0, 25},
		{"full mastery high jitter", 1.0, 1.1, 28}, // ceil(27.5)
		{"full mastery low jitter", 1.0, 0.9, 23},  // ceil(22.5)
		{"tiny mastery still waits a day", 0.05, 1.0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReviewIntervalDays(tt.mastery, tt.jitter)
			if got != tt.want {
				t.Errorf("ReviewIntervalDays(%v, %v) = %d, want %d", tt.mastery, tt.jitter, got, tt.want)
			}
		})
	}
}

func TestReviewIntervalDays_GrowsWithMastery(t *testing.T) {
	prev := -1
	for _, m := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0} {
		got := ReviewIntervalDays(m, 1.0)
		if got < prev {
			t.Errorf("ReviewIntervalDays(%v, 1.0) = %d, shrank from %d", m, got, prev)
		}
		prev = got
	}
}

func TestDefaultJitter_WithinBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		j := defaultJitter()
		if j < JitterLow || j > JitterHigh {
			t.Fatalf("defaultJitter() = %v, out of [%v, %v]", j, JitterLow, JitterHigh)
		}
	}
}
