package testutil

import "testing"

// Merge dates used by NewMergeHistory
const (
	MergeBDate = "2024-01-02T00:00:00+09:00"
	MergeADate = "2024-01-03T00:00:00+09:00"
	MergeCDate = "2024-01-04T00:00:00+09:00"
)

// MergeHistory is a repository where develop has absorbed three feature
// branches:
//
//	feature-b ──╮
//	feature-a ──┴─ MergeB ──╮
//	develop ────────────────┴─ MergeA ─┬─ MergeC
//	feature-c ─────────────────────────╯
//
// MergeA and MergeC are on develop's first-parent chain; MergeB is nested
// inside feature-a.
type MergeHistory struct {
	*TestRepo

	FeatureBTip string // second parent of MergeB
	FeatureATip string // second parent of MergeA (equal to MergeB)
	FeatureCTip string // second parent of MergeC

	MergeA string
	MergeB string
	MergeC string
}

// NewMergeHistory builds the history described on MergeHistory and pushes
// main and develop to origin. No pull request refs are published.
func NewMergeHistory(t *testing.T) *MergeHistory {
	t.Helper()
	repo := NewTestRepo(t)
	h := &MergeHistory{TestRepo: repo}

	repo.Checkout(t, "develop", true)

	repo.Checkout(t, "feature-a", true)
	repo.Commit(t, "Feature A")

	repo.Checkout(t, "feature-b", true)
	h.FeatureBTip = repo.Commit(t, "Feature B")

	repo.Checkout(t, "feature-a", false)
	h.MergeB = repo.Merge(t, "feature-b", MergeBDate)
	h.FeatureATip = h.MergeB

	repo.Checkout(t, "develop", false)
	h.MergeA = repo.Merge(t, "feature-a", MergeADate)

	repo.Checkout(t, "feature-c", true)
	h.FeatureCTip = repo.Commit(t, "Feature C")

	repo.Checkout(t, "develop", false)
	h.MergeC = repo.Merge(t, "feature-c", MergeCDate)

	repo.Push(t, "main", "develop")
	return h
}
