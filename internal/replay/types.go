package replay

// Sheet is a score sheet loaded from YAML: a list of named roll sequences.
type Sheet struct {
	Version string     `yaml:"version"`
	Notes   string     `yaml:"notes,omitempty"`
	Games   []GameSpec `yaml:"games"`
}

// GameSpec is one recorded game.
type GameSpec struct {
	Name   string `yaml:"name"`
	Rolls  []int  `yaml:"rolls"`
	Expect *int   `yaml:"expect,omitempty"` // optional expected final score
}

// Result is the outcome of replaying one GameSpec through the scorer.
type Result struct {
	Name     string
	Marks    []string // scorecard marks of the throws that were accepted
	Score    int
	Complete bool
	Expect   *int
	Err      error // first rejected roll, wrapped with its index
}

// Matched reports whether the game finished with the expected score.
// Games without an expectation match as long as they finished cleanly.
func (r Result) Matched() bool {
	if r.Err != nil || !r.Complete {
		return false
	}
	return r.Expect == nil || *r.Expect == r.Score
}
