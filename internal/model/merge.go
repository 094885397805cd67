package model

import "strings"

// MergeRecord is one merge commit as reported by git log
type MergeRecord struct {
	Parents []string // parent hashes in git order; a merge has at least two
	Date    string   // committer date, ISO-8601 with offset
}

// Key returns the identity of the record. Two records taken from different
// log views of the same range describe the same commit iff their keys match.
func (r MergeRecord) Key() string {
	return strings.Join(r.Parents, " ") + " " + r.Date
}

// SourceHash returns the tip of the merged-in branch (the second parent)
func (r MergeRecord) SourceHash() string {
	if len(r.Parents) < 2 {
		return ""
	}
	return r.Parents[1]
}
