package model

// FoldReport is the classification result for a single file.
type FoldReport struct {
	Path     Path        `json:"path"      yaml:"path"`
	Hash     string      `json:"hash"      yaml:"hash"`
	Lines    int         `json:"lines"     yaml:"lines"`
	Levels   []int       `json:"levels"    yaml:"levels"`
	Ranges   []FoldRange `json:"ranges"    yaml:"ranges"`
	MaxLevel int         `json:"max_level" yaml:"max_level"`
	Cached   bool        `json:"-"         yaml:"-"`
}

// TopLevelFolds counts the level-1 ranges of the report.
func (r FoldReport) TopLevelFolds() int {
	count := 0

	for _, fold := range r.Ranges {
		if fold.Level == 1 {
			count++
		}
	}

	return count
}

// LevelChange records a line whose fold level changed after an edit.
type LevelChange struct {
	Line   int // 1-based, in the edited buffer
	Before int // -1 when the line was inserted
	After  int
}

// EditResult is the outcome of replaying one edit through the incremental
// driver.
type EditResult struct {
	Path    Path
	Edit    Edit
	Lines   []string
	Levels  []int
	Changes []LevelChange
	// Rescanned is the number of lines the driver had to visit.
	Rescanned int
	// Reused is set when the tail of the previous levels was kept.
	Reused bool
}
