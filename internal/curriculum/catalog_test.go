package curriculum

import (
	"errors"
	"testing"
)

func TestDefault_PathCount(t *testing.T) {
	paths := Default().Paths()
	if len(paths) != 3 {
		t.Errorf("got %d paths, want 3", len(paths))
	}
}

func TestDefault_TotalContentCount(t *testing.T) {
	if got := Default().TotalContentCount(); got != 25 {
		t.Errorf("TotalContentCount = %d, want 25", got)
	}
}

func TestPath_Exists(t *testing.T) {
	p, err := Default().Path("multiplication")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Multiplication Facts" {
		t.Errorf("got name %q, want %q", p.Name, "Multiplication Facts")
	}
	if p.Weight != 1.5 {
		t.Errorf("got weight %g, want 1.5", p.Weight)
	}
	if len(p.Items) != 10 {
		t.Errorf("got %d items, want 10", len(p.Items))
	}
}

func TestPath_NotFound(t *testing.T) {
	_, err := Default().Path("nonexistent")
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("err = %v, want ErrPathNotFound", err)
	}
}

func TestFindContent(t *testing.T) {
	p, it, err := Default().FindContent("sub-fact-families")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "subtraction" {
		t.Errorf("owning path = %q, want %q", p.ID, "subtraction")
	}
	if it.Name != "Fact families" {
		t.Errorf("item name = %q, want %q", it.Name, "Fact families")
	}
}

func TestFindContent_NotFound(t *testing.T) {
	_, _, err := Default().FindContent("nope")
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("err = %v, want ErrContentNotFound", err)
	}
}

func TestExpectedTime(t *testing.T) {
	ms, ok := Default().ExpectedTime("add-within-10")
	if !ok {
		t.Fatal("expected a configured time for add-within-10")
	}
	if ms != 120000 {
		t.Errorf("ExpectedTime = %d, want 120000", ms)
	}
}

func TestExpectedTime_Uncalibrated(t *testing.T) {
	// Items seeded with ExpectedMs 0 report no expectation.
	if _, ok := Default().ExpectedTime("add-hundreds"); ok {
		t.Error("expected no configured time for add-hundreds")
	}
	if _, ok := Default().ExpectedTime("unknown-item"); ok {
		t.Error("expected no configured time for unknown item")
	}
}

func TestPath_PositionAndContains(t *testing.T) {
	p, err := Default().Path("addition")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Position("add-doubles"); got != 2 {
		t.Errorf("Position(add-doubles) = %d, want 2", got)
	}
	if got := p.Position("mul-twos"); got != -1 {
		t.Errorf("Position(mul-twos) = %d, want -1", got)
	}
	if !p.Contains("add-within-10") {
		t.Error("Contains(add-within-10) = false, want true")
	}
	if p.Contains("sub-within-10") {
		t.Error("Contains(sub-within-10) = true, want false")
	}
}

func TestContentIDs_Order(t *testing.T) {
	p, err := Default().Path("subtraction")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := p.ContentIDs()
	if len(ids) != len(p.Items) {
		t.Fatalf("got %d ids, want %d", len(ids), len(p.Items))
	}
	if ids[0] != "sub-within-10" {
		t.Errorf("first id = %q, want sub-within-10", ids[0])
	}
	for i, it := range p.Items {
		if ids[i] != it.ID {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], it.ID)
		}
	}
}
