package forest

import "github.com/bjulian5/integrate/internal/model"

// Resolve attaches pull request numbers to the forest and prunes every node
// that cannot be attributed to a pull request.
//
// A top-level node without a number is dropped together with its children,
// even when some of those children resolve. The input forest is left
// untouched, so resolving the same forest again gives the same result.
func Resolve(f model.Forest, refs RefMap) model.Forest {
	resolved := model.Forest{}
	for _, top := range f {
		number, ok := lookup(refs, top.SourceHash)
		if !ok {
			continue
		}

		node := top
		node.Number = number
		node.Children = nil
		for _, child := range top.Children {
			childNumber, ok := lookup(refs, child.SourceHash)
			if !ok {
				continue
			}
			child.Number = childNumber
			child.Children = nil
			node.Children = append(node.Children, child)
		}

		resolved = append(resolved, node)
	}
	return resolved
}

func lookup(refs RefMap, hash string) (model.PRNumber, bool) {
	if hash == "" {
		return model.PRNumber{}, false
	}
	n, ok := refs[hash]
	if !ok {
		return model.PRNumber{}, false
	}
	return model.Resolved(n), true
}
