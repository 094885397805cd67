package model

import "strconv"

// PRNumber is a pull request number that may not be known yet.
// The zero value is unresolved.
type PRNumber struct {
	n  int
	ok bool
}

// Resolved returns a resolved PR number
func Resolved(n int) PRNumber {
	return PRNumber{n: n, ok: true}
}

// Value returns the number and whether it has been resolved
func (p PRNumber) Value() (int, bool) {
	return p.n, p.ok
}

// IsResolved reports whether the number is known
func (p PRNumber) IsResolved() bool {
	return p.ok
}

// Int returns the number, or 0 when unresolved
func (p PRNumber) Int() int {
	if !p.ok {
		return 0
	}
	return p.n
}

func (p PRNumber) String() string {
	if !p.ok {
		return "unresolved"
	}
	return "#" + strconv.Itoa(p.n)
}

// PRNode is a merged pull request in the integration forest.
// Top-level nodes own the nested merges they absorbed; nested nodes never
// have children of their own.
type PRNode struct {
	Number     PRNumber
	MergeDate  string
	Author     string
	SourceHash string // second parent of the merge commit, matched against refs/pull/<n>/head
	Children   []PRNode
}

// Forest is the ordered list of top-level merges between two branches
type Forest []PRNode

// Len returns the number of nodes at both levels
func (f Forest) Len() int {
	total := 0
	for _, node := range f {
		total += 1 + len(node.Children)
	}
	return total
}

// Walk calls fn for every node in render order: each top-level node followed
// by its children. Nested nodes are reported with depth 1.
func (f Forest) Walk(fn func(node *PRNode, depth int)) {
	for i := range f {
		fn(&f[i], 0)
		for j := range f[i].Children {
			fn(&f[i].Children[j], 1)
		}
	}
}
