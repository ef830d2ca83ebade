package curriculum

import (
	"errors"
	"fmt"
)

// ErrPathNotFound is returned when a path ID is not in the catalog.
var ErrPathNotFound = errors.New("learning path not found")

// ErrContentNotFound is returned when a content ID is not in any path.
var ErrContentNotFound = errors.New("content not found")

// Provider supplies learning-path configuration to the mastery engine:
// path shapes, weights, and per-item expected completion times.
type Provider interface {
	// Path returns the path with the given ID, or ErrPathNotFound.
	Path(id string) (*Path, error)

	// Paths returns all configured paths in a stable order.
	Paths() []*Path

	// FindContent returns the owning path and item for a content ID,
	// or ErrContentNotFound.
	FindContent(contentID string) (*Path, *Item, error)

	// ExpectedTime returns the configured expected completion time in
	// milliseconds for a content item. ok is false when the item exists
	// but carries no expectation.
	ExpectedTime(contentID string) (ms int, ok bool)

	// TotalContentCount returns the number of content items across all paths.
	TotalContentCount() int
}

// contentRef locates an item inside its owning path.
type contentRef struct {
	path *Path
	item *Item
}

// Catalog is an immutable, validated Provider built from a fixed path set.
type Catalog struct {
	paths     []*Path
	byID      map[string]*Path
	byContent map[string]contentRef
	itemCount int
}

// NewCatalog builds a catalog from the given paths.
// It validates the configuration and returns a combined error describing
// all problems found.
func NewCatalog(paths []*Path) (*Catalog, error) {
	if err := validatePaths(paths); err != nil {
		return nil, err
	}

	c := &Catalog{
		paths:     paths,
		byID:      make(map[string]*Path, len(paths)),
		byContent: make(map[string]contentRef),
	}
	for _, p := range paths {
		c.byID[p.ID] = p
		for i := range p.Items {
			c.byContent[p.Items[i].ID] = contentRef{path: p, item: &p.Items[i]}
			c.itemCount++
		}
	}
	return c, nil
}

// Path returns the path with the given ID.
func (c *Catalog) Path(id string) (*Path, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, id)
	}
	return p, nil
}

// Paths returns all paths in seed order.
func (c *Catalog) Paths() []*Path {
	out := make([]*Path, len(c.paths))
	copy(out, c.paths)
	return out
}

// FindContent returns the owning path and item for a content ID.
func (c *Catalog) FindContent(contentID string) (*Path, *Item, error) {
	ref, ok := c.byContent[contentID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrContentNotFound, contentID)
	}
	return ref.path, ref.item, nil
}

// ExpectedTime returns the expected completion time for a content item.
func (c *Catalog) ExpectedTime(contentID string) (int, bool) {
	ref, ok := c.byContent[contentID]
	if !ok || ref.item.ExpectedMs <= 0 {
		return 0, false
	}
	return ref.item.ExpectedMs, true
}

// TotalContentCount returns the number of items across all paths.
func (c *Catalog) TotalContentCount() int {
	return c.itemCount
}
