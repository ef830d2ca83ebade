package curriculum

import (
	"fmt"
	"strings"
)

// validatePaths performs all structural checks on the given path set.
// Returns a combined error describing all problems found, or nil if valid.
func validatePaths(paths []*Path) error {
	var errs []string

	if len(paths) == 0 {
		errs = append(errs, "no paths configured (at least one path is required)")
	}

	pathIDs := make(map[string]bool, len(paths))
	contentIDs := make(map[string]string) // content ID -> owning path ID

	for _, p := range paths {
		if p.ID == "" {
			errs = append(errs, "path with empty ID")
			continue
		}
		if pathIDs[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate path ID: %q", p.ID))
		}
		pathIDs[p.ID] = true

		if p.Weight <= 0 {
			errs = append(errs, fmt.Sprintf("path %q: Weight must be > 0, got %g", p.ID, p.Weight))
		}
		if len(p.Items) == 0 {
			errs = append(errs, fmt.Sprintf("path %q has no content items", p.ID))
		}

		for _, it := range p.Items {
			if it.ID == "" {
				errs = append(errs, fmt.Sprintf("path %q: item with empty ID", p.ID))
				continue
			}
			if owner, dup := contentIDs[it.ID]; dup {
				errs = append(errs, fmt.Sprintf("content %q appears in both %q and %q (items must belong to exactly one path)", it.ID, owner, p.ID))
			}
			contentIDs[it.ID] = p.ID

			if it.ExpectedMs < 0 {
				errs = append(errs, fmt.Sprintf("item %q: ExpectedMs must be >= 0, got %d", it.ID, it.ExpectedMs))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
