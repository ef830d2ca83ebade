package mastery

import (
	"testing"
	"time"
)

func attemptedRow(next time.Time) *ContentMastery {
	return &ContentMastery{
		ContentID:       "add-ones",
		MasteryLevel:    0.5,
		AttemptCount:    3,
		LastAttemptTime: next.AddDate(0, 0, -4),
		NextReviewTime:  next,
	}
}

func TestIsDue_BeforeReviewTime(t *testing.T) {
	next := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cm := attemptedRow(next)
	if cm.IsDue(next.Add(-time.Hour)) {
		t.Error("IsDue() = true before review time, want false")
	}
}

func TestIsDue_AtReviewTime(t *testing.T) {
	next := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cm := attemptedRow(next)
	if !cm.IsDue(next) {
		t.Error("IsDue() = false at review time, want true")
	}
}

func TestIsDue_NeverAttempted(t *testing.T) {
	cm := &ContentMastery{ContentID: "add-ones"}
	if cm.IsDue(time.Now()) {
		t.Error("IsDue() = true for unattempted item, want false")
	}
}

func TestOverdueDays_NotDue(t *testing.T) {
	next := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cm := attemptedRow(next)
	if got := cm.OverdueDays(next.Add(-time.Hour)); got != 0 {
		t.Errorf("OverdueDays() = %v, want 0", got)
	}
}

func TestOverdueDays_ThreeDaysPast(t *testing.T) {
	next := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cm := attemptedRow(next)
	got := cm.OverdueDays(next.Add(72 * time.Hour))
	if !almostEqual(got, 3.0) {
		t.Errorf("OverdueDays() = %v, want 3.0", got)
	}
}

func TestDaysUntilReview(t *testing.T) {
	next := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cm := attemptedRow(next)
	if got := cm.DaysUntilReview(next.Add(-36 * time.Hour)); got != 2 {
		t.Errorf("DaysUntilReview() = %d, want 2", got)
	}
	if got := cm.DaysUntilReview(next); got != 0 {
		t.Errorf("DaysUntilReview() at review time = %d, want 0", got)
	}
	unseen := &ContentMastery{ContentID: "add-ones"}
	if got := unseen.DaysUntilReview(next); got != 0 {
		t.Errorf("DaysUntilReview() for unattempted item = %d, want 0", got)
	}
}

func TestMastered(t *testing.T) {
	tests := []struct {
		level float64
		want  bool
	}{
		{0.79, false},
		{0.8, true},
		{1.0, true},
		{0, false},
	}
	for _, tt := range tests {
		cm := &ContentMastery{MasteryLevel: tt.level}
		if got := cm.Mastered(); got != tt.want {
			t.Errorf("Mastered() with level %v = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLevelBand(t *testing.T) {
	tests := []struct {
		name     string
		level    float64
		attempts int
		want     Band
	}{
		{"never attempted", 0.9, 0, BandNew},
		{"just started", 0.1, 1, BandLearning},
		{"practicing", 0.4, 2, BandPracticing},
		{"under threshold", 0.79, 9, BandPracticing},
		{"mastered", 0.8, 5, BandMastered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevelBand(tt.level, tt.attempts)
			if got != tt.want {
				t.Errorf("LevelBand(%v, %d) = %q, want %q", tt.level, tt.attempts, got, tt.want)
			}
		})
	}
}

func TestContentMasteryClone(t *testing.T) {
	next := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cm := attemptedRow(next)
	c := cm.Clone()
	c.MasteryLevel = 0.99
	if cm.MasteryLevel != 0.5 {
		t.Errorf("Clone() shares state: original level = %v, want 0.5", cm.MasteryLevel)
	}
	var nilRow *ContentMastery
	if nilRow.Clone() != nil {
		t.Error("Clone() of nil = non-nil, want nil")
	}
}
