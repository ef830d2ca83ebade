package mastery

import (
	"testing"
	"time"
)

func TestProgressCache_UserProgressRoundTrip(t *testing.T) {
	c := newProgressCache()
	if _, ok := c.userProgress("casey"); ok {
		t.Fatal("userProgress() hit on empty cache")
	}
	c.setUserProgress(&UserProgress{UserID: "casey", OverallCompletion: 0.25})
	up, ok := c.userProgress("casey")
	if !ok {
		t.Fatal("userProgress() miss after set")
	}
	if up.OverallCompletion != 0.25 {
		t.Errorf("cached completion = %v, want 0.25", up.OverallCompletion)
	}
}

func TestProgressCache_ReturnsCopies(t *testing.T) {
	c := newProgressCache()
	c.setUserProgress(&UserProgress{
		UserID:            "casey",
		PerPathCompletion: map[string]float64{"addition": 0.5},
	})
	up, _ := c.userProgress("casey")
	up.PerPathCompletion["addition"] = 1.0
	again, _ := c.userProgress("casey")
	if again.PerPathCompletion["addition"] != 0.5 {
		t.Errorf("cache entry mutated through returned copy: %v, want 0.5", again.PerPathCompletion["addition"])
	}
}

func TestProgressCache_ContentAndPathEntries(t *testing.T) {
	c := newProgressCache()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c.setContentMastery("casey", &ContentMastery{ContentID: "add-ones", MasteryLevel: 0.3, AttemptCount: 1, LastAttemptTime: now})
	c.setPathProgress("casey", &PathProgressDetails{PathID: "addition", Completion: 0.5})

	if cm, ok := c.contentMastery("casey", "add-ones"); !ok || cm.MasteryLevel != 0.3 {
		t.Errorf("contentMastery() = %+v, %v, want level 0.3 hit", cm, ok)
	}
	if _, ok := c.contentMastery("casey", "add-tens"); ok {
		t.Error("contentMastery() hit for never-cached item")
	}
	if pp, ok := c.pathProgress("casey", "addition"); !ok || pp.Completion != 0.5 {
		t.Errorf("pathProgress() = %+v, %v, want completion 0.5 hit", pp, ok)
	}
}

func TestProgressCache_InvalidateUser(t *testing.T) {
	c := newProgressCache()
	c.setUserProgress(&UserProgress{UserID: "casey"})
	c.setUserProgress(&UserProgress{UserID: "drew"})
	c.setContentMastery("casey", &ContentMastery{ContentID: "add-ones"})
	c.setPathProgress("casey", &PathProgressDetails{PathID: "addition"})

	c.invalidateUser("casey")

	if _, ok := c.userProgress("casey"); ok {
		t.Error("userProgress() hit after invalidateUser")
	}
	if _, ok := c.contentMastery("casey", "add-ones"); ok {
		t.Error("contentMastery() hit after invalidateUser")
	}
	if _, ok := c.pathProgress("casey", "addition"); ok {
		t.Error("pathProgress() hit after invalidateUser")
	}
	if _, ok := c.userProgress("drew"); !ok {
		t.Error("invalidateUser() dropped another user's entry")
	}
}
