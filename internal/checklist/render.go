package checklist

import (
	"fmt"
	"strings"

	"github.com/bjulian5/integrate/internal/model"
)

const nestedIndent = "  "

// Render renders a resolved forest as a markdown task list.
// Every top-level PR is followed by its nested PRs, indented one level.
func Render(f model.Forest) string {
	var sb strings.Builder
	f.Walk(func(node *model.PRNode, depth int) {
		sb.WriteString(strings.Repeat(nestedIndent, depth))
		sb.WriteString(Line(*node))
		sb.WriteString("\n")
	})
	return sb.String()
}

// Line renders a single unchecked task without indentation
func Line(node model.PRNode) string {
	return fmt.Sprintf("- [ ] #%d @%s %s", node.Number.Int(), node.Author, node.MergeDate)
}
