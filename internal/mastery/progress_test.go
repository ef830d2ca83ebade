package mastery

import (
	"math/rand"
	"testing"
)

func TestOverallCompletion_EqualWeights(t *testing.T) {
	completions := map[string]float64{"a": 1.0, "b": 0.5, "c": 0.0}
	weights := map[string]float64{"a": 1, "b": 1, "c": 1}
	got := OverallCompletion(completions, weights)
	if !almostEqual(got, 0.5) {
		t.Errorf("OverallCompletion() = %v, want 0.5", got)
	}
}

func TestOverallCompletion_Weighted(t *testing.T) {
	completions := map[string]float64{"a": 1.0, "b": 0.0}
	weights := map[string]float64{"a": 3, "b": 1}
	got := OverallCompletion(completions, weights)
	if !almostEqual(got, 0.75) {
		t.Errorf("OverallCompletion() = %v, want 0.75", got)
	}
}

func TestOverallCompletion_MissingPathCountsAsZero(t *testing.T) {
	completions := map[string]float64{"a": 1.0}
	weights := map[string]float64{"a": 1, "b": 1}
	got := OverallCompletion(completions, weights)
	if !almostEqual(got, 0.5) {
		t.Errorf("OverallCompletion() = %v, want 0.5", got)
	}
}

func TestOverallCompletion_NoWeights(t *testing.T) {
	if got := OverallCompletion(map[string]float64{"a": 1}, nil); got != 0 {
		t.Errorf("OverallCompletion() with no weights = %v, want 0", got)
	}
	if got := OverallCompletion(nil, map[string]float64{"a": 0}); got != 0 {
		t.Errorf("OverallCompletion() with zero total weight = %v, want 0", got)
	}
}

// Scaling every weight by the same constant must not change the result,
// and the result must stay within the completion bounds.
func TestOverallCompletion_NormalizationProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ids := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 200; i++ {
		completions := make(map[string]float64, len(ids))
		weights := make(map[string]float64, len(ids))
		scaled := make(map[string]float64, len(ids))
		k := 0.1 + rng.Float64()*9.9
		lo, hi := 1.0, 0.0
		for _, id := range ids {
			c := rng.Float64()
			w := 0.1 + rng.Float64()*4.9
			completions[id] = c
			weights[id] = w
			scaled[id] = w * k
			if c < lo {
				lo = c
			}
			if c > hi {
				hi = c
			}
		}
		got := OverallCompletion(completions, weights)
		if got < lo-1e-9 || got > hi+1e-9 {
			t.Fatalf("OverallCompletion() = %v, outside completion bounds [%v, %v]", got, lo, hi)
		}
		if rescaled := OverallCompletion(completions, scaled); !almostEqual(got, rescaled) {
			t.Fatalf("OverallCompletion() = %v but %v after scaling weights by %v", got, rescaled, k)
		}
	}
}

func TestUserProgressClone(t *testing.T) {
	up := &UserProgress{
		UserID:            "casey",
		OverallCompletion: 0.25,
		PerPathCompletion: map[string]float64{"addition": 0.5},
	}
	c := up.Clone()
	c.PerPathCompletion["addition"] = 1.0
	if up.PerPathCompletion["addition"] != 0.5 {
		t.Errorf("Clone() shares per-path map: original = %v, want 0.5", up.PerPathCompletion["addition"])
	}
	var nilUp *UserProgress
	if nilUp.Clone() != nil {
		t.Error("Clone() of nil = non-nil, want nil")
	}
}

func TestPathProgressDetailsClone(t *testing.T) {
	pp := &PathProgressDetails{
		PathID:       "addition",
		Completion:   0.5,
		PerItemState: map[string]ItemState{"add-ones": {MasteryLevel: 0.9, AttemptCount: 4}},
	}
	c := pp.Clone()
	c.PerItemState["add-ones"] = ItemState{MasteryLevel: 0.1}
	if pp.PerItemState["add-ones"].MasteryLevel != 0.9 {
		t.Errorf("Clone() shares per-item map: original = %v, want 0.9", pp.PerItemState["add-ones"].MasteryLevel)
	}
}
