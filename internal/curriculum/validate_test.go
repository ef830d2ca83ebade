package curriculum

import (
	"strings"
	"testing"
)

func validTestPaths() []*Path {
	return []*Path{
		{
			ID:     "alpha",
			Name:   "Alpha",
			Weight: 1.0,
			Items:  []Item{{ID: "a1"}, {ID: "a2", ExpectedMs: 1000}},
		},
		{
			ID:     "beta",
			Name:   "Beta",
			Weight: 2.0,
			Items:  []Item{{ID: "b1"}},
		},
	}
}

func TestNewCatalog_Valid(t *testing.T) {
	c, err := NewCatalog(validTestPaths())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.TotalContentCount() != 3 {
		t.Errorf("TotalContentCount = %d, want 3", c.TotalContentCount())
	}
}

func TestNewCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]*Path) []*Path
		wantMsg string
	}{
		{
			name:    "empty set",
			mutate:  func([]*Path) []*Path { return nil },
			wantMsg: "no paths configured",
		},
		{
			name: "duplicate path ID",
			mutate: func(ps []*Path) []*Path {
				ps[1].ID = ps[0].ID
				return ps
			},
			wantMsg: "duplicate path ID",
		},
		{
			name: "zero weight",
			mutate: func(ps []*Path) []*Path {
				ps[0].Weight = 0
				return ps
			},
			wantMsg: "Weight must be > 0",
		},
		{
			name: "negative weight",
			mutate: func(ps []*Path) []*Path {
				ps[0].Weight = -1
				return ps
			},
			wantMsg: "Weight must be > 0",
		},
		{
			name: "empty path",
			mutate: func(ps []*Path) []*Path {
				ps[1].Items = nil
				return ps
			},
			wantMsg: "has no content items",
		},
		{
			name: "content in two paths",
			mutate: func(ps []*Path) []*Path {
				ps[1].Items = append(ps[1].Items, Item{ID: "a1"})
				return ps
			},
			wantMsg: "exactly one path",
		},
		{
			name: "empty item ID",
			mutate: func(ps []*Path) []*Path {
				ps[0].Items = append(ps[0].Items, Item{})
				return ps
			},
			wantMsg: "item with empty ID",
		},
		{
			name: "negative expected time",
			mutate: func(ps []*Path) []*Path {
				ps[0].Items[0].ExpectedMs = -5
				return ps
			},
			wantMsg: "ExpectedMs must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.mutate(validTestPaths()))
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestNewCatalog_ReportsAllProblems(t *testing.T) {
	ps := validTestPaths()
	ps[0].Weight = 0
	ps[1].Items = nil

	_, err := NewCatalog(ps)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Weight must be > 0") || !strings.Contains(msg, "has no content items") {
		t.Errorf("combined error misses a problem: %q", msg)
	}
}
