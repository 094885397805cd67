package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bjulian5/integrate/internal/model"
)

// treeIndentWidth is the width of one level of enumerator or indenter
const treeIndentWidth = 3

// RenderForestTree renders the merged PRs between two branches as a tree.
// Labels are truncated to the terminal width.
// Example output:
//
//	main ← develop
//	├─ #12 @carol 2024-01-04T00:00:00+09:00 (8c1d2e3)
//	╰─ #10 @alice 2024-01-03T00:00:00+09:00 (a1b2c3d)
//	   ╰─ #11 @bob 2024-01-02T00:00:00+09:00 (b2c3d4e)
func RenderForestTree(base, head string, f model.Forest) string {
	title := TreeRootStyle.Render(fmt.Sprintf("%s ← %s", base, head))
	if len(f) == 0 {
		return title + "\n" + Dim("  No merged pull requests")
	}

	width := GetTerminalWidth()
	t := tree.Root(title)
	for _, node := range f {
		label := Truncate(formatNodeForTree(node, 0), width-treeIndentWidth)
		if len(node.Children) == 0 {
			t.Child(label)
			continue
		}

		sub := tree.Root(label)
		for _, child := range node.Children {
			sub.Child(Truncate(formatNodeForTree(child, 1), width-2*treeIndentWidth))
		}
		t.Child(sub)
	}

	t.Enumerator(getRoundedEnumerator()).
		EnumeratorStyle(TreeEnumeratorStyle).
		Indenter(RenderTreeIndenter())

	return t.String()
}

// formatNodeForTree formats a PR for display in a tree
func formatNodeForTree(node model.PRNode, depth int) string {
	style := TreeTopLevelStyle
	if depth > 0 {
		style = TreeNestedStyle
	}

	line := fmt.Sprintf("%s %s %s",
		style.Render(node.Number.String()),
		Bold("@"+node.Author),
		node.MergeDate,
	)

	if hash := shortHash(node.SourceHash); hash != "" {
		line += " " + Dim(fmt.Sprintf("(%s)", hash))
	}
	return line
}

func shortHash(hash string) string {
	if len(hash) > Display.CommitHashDisplayLength {
		return hash[:Display.CommitHashDisplayLength]
	}
	return hash
}

// getRoundedEnumerator returns a custom rounded enumerator for trees
func getRoundedEnumerator() tree.Enumerator {
	return func(children tree.Children, i int) string {
		if children.Length() == 0 {
			return ""
		}

		// Check if this is the last child
		isLast := i == children.Length()-1

		if isLast {
			return "╰─ "
		}
		return "├─ "
	}
}

// RenderTreeIndenter returns an indenter function for trees
func RenderTreeIndenter() tree.Indenter {
	return func(children tree.Children, i int) string {
		if children.Length() == 0 {
			return ""
		}

		// Check if this is the last child
		isLast := i == children.Length()-1

		if isLast {
			return "   " // No vertical line after last child
		}
		return "│  " // Vertical line for non-last children
	}
}
