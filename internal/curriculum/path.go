package curriculum

// Item is an atomic unit of practice content (a "stitch") within a path.
type Item struct {
	ID   string
	Name string
	// ExpectedMs is the expected completion time for one session on this
	// item, in milliseconds. Zero means no expectation is configured.
	ExpectedMs int
}

// Path is one ordered strand of a multi-strand curriculum.
type Path struct {
	ID    string
	Name  string
	Items []Item
	// Weight controls this path's share of overall completion. Must be > 0.
	Weight float64
}

// ContentIDs returns the path's item IDs in curriculum order.
func (p *Path) ContentIDs() []string {
	ids := make([]string, len(p.Items))
	for i, it := range p.Items {
		ids[i] = it.ID
	}
	return ids
}

// Contains reports whether the path includes the given content item.
func (p *Path) Contains(contentID string) bool {
	for _, it := range p.Items {
		if it.ID == contentID {
			return true
		}
	}
	return false
}

// Position returns the zero-based position of contentID in the path,
// or -1 if the path does not contain it.
func (p *Path) Position(contentID string) int {
	for i, it := range p.Items {
		if it.ID == contentID {
			return i
		}
	}
	return -1
}
