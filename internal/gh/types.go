package gh

import (
	"fmt"
	"time"
)

// PRSpec defines all parameters for creating a PR
type PRSpec struct {
	Title string // PR title
	Body  string // PR description
	Base  string // base branch name
	Head  string // head branch name
}

// PR contains GitHub PR information returned from gh CLI
type PR struct {
	Number    int       // PR number
	URL       string    // PR URL
	State     string    // "open", "draft", "closed", "merged"
	Body      string    // PR description
	Author    string    // login of the PR author
	Base      string    // base branch name
	Head      string    // head branch name
	CreatedAt time.Time // when PR was created
}

// MergeMethod selects how a PR is merged
type MergeMethod string

const (
	MergeNone   MergeMethod = ""
	MergeCommit MergeMethod = "merge"
	MergeSquash MergeMethod = "squash"
	MergeRebase MergeMethod = "rebase"
)

// ParseMergeMethod validates a merge method name
func ParseMergeMethod(s string) (MergeMethod, error) {
	switch m := MergeMethod(s); m {
	case MergeNone, MergeCommit, MergeSquash, MergeRebase:
		return m, nil
	default:
		return MergeNone, fmt.Errorf("unknown merge method %q: use merge, squash or rebase", s)
	}
}

// flag returns the gh pr merge flag for the method
func (m MergeMethod) flag() string {
	return "--" + string(m)
}
