package forest

import "github.com/bjulian5/integrate/internal/model"

// Build classifies the merges of a range into a two-level forest.
//
// all is every merge in the range in git log order; firstParent is the same
// range restricted to the first-parent chain. A merge that also appears in
// firstParent starts a new top-level node; any other merge becomes a child
// of the most recent top-level node. A nested merge seen before any
// top-level node is kept as a top-level candidate so that nothing is
// dropped before resolution.
func Build(all, firstParent []model.MergeRecord) model.Forest {
	mainline := make(map[string]struct{}, len(firstParent))
	for _, record := range firstParent {
		mainline[record.Key()] = struct{}{}
	}

	forest := model.Forest{}
	for _, record := range all {
		node := model.PRNode{
			SourceHash: record.SourceHash(),
			MergeDate:  record.Date,
		}

		_, onMainline := mainline[record.Key()]
		if onMainline || len(forest) == 0 {
			forest = append(forest, node)
			continue
		}

		last := &forest[len(forest)-1]
		last.Children = append(last.Children, node)
	}

	return forest
}
