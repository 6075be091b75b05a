package types

import "sort"

// Issue represents a lint issue found in a Python source file.
type Issue struct {
	Rule    string `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
}

// Issues is the ordered issue collection produced by one analysis.
type Issues []Issue

// Sort orders the issues by line. Issues on the same line keep the
// order in which they were reported.
func (is Issues) Sort() {
	sort.SliceStable(is, func(i, j int) bool {
		return is[i].Line < is[j].Line
	})
}

// IsSorted reports whether the issues are ordered by line.
func (is Issues) IsSorted() bool {
	return sort.SliceIsSorted(is, func(i, j int) bool {
		return is[i].Line < is[j].Line
	})
}
