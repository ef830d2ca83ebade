package curriculum

// defaultCatalog is the compiled-in curriculum, set by init().
var defaultCatalog *Catalog

// Default returns the built-in catalog of practice paths.
func Default() *Catalog {
	return defaultCatalog
}

func init() {
	c, err := NewCatalog(seedPaths())
	if err != nil {
		panic("curriculum: invalid seed: " + err.Error())
	}
	defaultCatalog = c
}

// seedPaths returns the built-in triple-strand arithmetic curriculum.
// Items are ordered easiest-first within each path. Expected times are
// calibrated per item; a zero ExpectedMs means no expectation has been
// calibrated yet and the engine treats completion time as neutral.
func seedPaths() []*Path {
	return []*Path{
		{
			ID:     "addition",
			Name:   "Addition Facts",
			Weight: 1.0,
			Items: []Item{
				{ID: "add-within-10", Name: "Addition within 10", ExpectedMs: 120000},
				{ID: "add-within-20", Name: "Addition within 20", ExpectedMs: 150000},
				{ID: "add-doubles", Name: "Doubles", ExpectedMs: 120000},
				{ID: "add-near-doubles", Name: "Near doubles", ExpectedMs: 150000},
				{ID: "add-bridging-10", Name: "Bridging through 10", ExpectedMs: 180000},
				{ID: "add-two-digit", Name: "Two-digit addition", ExpectedMs: 210000},
				{ID: "add-three-addends", Name: "Three addends", ExpectedMs: 240000},
				{ID: "add-hundreds", Name: "Adding hundreds", ExpectedMs: 0},
			},
		},
		{
			ID:     "subtraction",
			Name:   "Subtraction Facts",
			Weight: 1.0,
			Items: []Item{
				{ID: "sub-within-10", Name: "Subtraction within 10", ExpectedMs: 120000},
				{ID: "sub-within-20", Name: "Subtraction within 20", ExpectedMs: 150000},
				{ID: "sub-fact-families", Name: "Fact families", ExpectedMs: 150000},
				{ID: "sub-bridging-10", Name: "Bridging back through 10", ExpectedMs: 180000},
				{ID: "sub-two-digit", Name: "Two-digit subtraction", ExpectedMs: 210000},
				{ID: "sub-difference", Name: "Finding the difference", ExpectedMs: 210000},
				{ID: "sub-hundreds", Name: "Subtracting hundreds", ExpectedMs: 0},
			},
		},
		{
			ID:     "multiplication",
			Name:   "Multiplication Facts",
			Weight: 1.5,
			Items: []Item{
				{ID: "mul-twos", Name: "Two times table", ExpectedMs: 120000},
				{ID: "mul-fives", Name: "Five times table", ExpectedMs: 120000},
				{ID: "mul-tens", Name: "Ten times table", ExpectedMs: 120000},
				{ID: "mul-threes", Name: "Three times table", ExpectedMs: 150000},
				{ID: "mul-fours", Name: "Four times table", ExpectedMs: 150000},
				{ID: "mul-sixes", Name: "Six times table", ExpectedMs: 180000},
				{ID: "mul-sevens", Name: "Seven times table", ExpectedMs: 180000},
				{ID: "mul-eights", Name: "Eight times table", ExpectedMs: 180000},
				{ID: "mul-nines", Name: "Nine times table", ExpectedMs: 180000},
				{ID: "mul-mixed", Name: "Mixed tables", ExpectedMs: 240000},
			},
		},
	}
}
