package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bjulian5/integrate/internal/model"
)

// Truncate truncates text to maxLen with an ellipsis if needed
// Uses lipgloss for proper ANSI-aware width handling
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	// Use lipgloss width to handle ANSI codes properly
	width := lipgloss.Width(text)
	if width <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return lipgloss.NewStyle().MaxWidth(maxLen).Render(text)
	}

	return lipgloss.NewStyle().MaxWidth(maxLen-3).Render(text) + "..."
}

func RenderKeyValue(key string, value string) string {
	keyStyled := DimStyle.Render(key + ":")
	return fmt.Sprintf("%s %s", keyStyled, value)
}

// RenderForestTable renders the forest as a table, one row per PR
func RenderForestTable(f model.Forest) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		BorderRow(false).
		BorderColumn(true).
		StyleFunc(defaultTableStyleFunc).
		Headers("PR", "Author", "Merged", "Absorbed by", "Commit")

	for _, choice := range FlattenForest(f) {
		absorbedBy := ""
		if choice.Parent != nil {
			absorbedBy = choice.Parent.Number.String()
		}
		t.Row(
			choice.Node.Number.String(),
			Truncate("@"+choice.Node.Author, Display.MaxAuthorLength),
			choice.Node.MergeDate,
			absorbedBy,
			shortHash(choice.Node.SourceHash),
		)
	}

	return t.Render()
}

// defaultTableStyleFunc provides default styling for table cells
func defaultTableStyleFunc(row, col int) lipgloss.Style {
	switch {
	case row == table.HeaderRow:
		return TableHeaderStyle
	case row%2 == 0:
		return TableCellStyle
	default:
		return TableRowAltStyle
	}
}

// FormatPRFinderLine formats a PR for fuzzy finder display.
// Fuzzy finder doesn't support ANSI codes, so we use plain text.
// The line is truncated to fit the terminal.
func FormatPRFinderLine(choice PRChoice) string {
	indent := ""
	if choice.Parent != nil {
		indent = "  "
	}
	line := fmt.Sprintf("%s%s @%s %s",
		indent,
		choice.Node.Number,
		choice.Node.Author,
		choice.Node.MergeDate)
	return Truncate(line, GetTerminalWidth())
}

// FormatPRPreview formats a PR for the fuzzy finder preview window.
// Preview pane supports ANSI codes, so we can use styling.
func FormatPRPreview(choice PRChoice) string {
	node := choice.Node
	lines := []string{
		RenderKeyValue("PR", Bold(node.Number.String())),
		RenderKeyValue("Author", "@"+node.Author),
		RenderKeyValue("Merged", node.MergeDate),
		RenderKeyValue("Commit", Muted(node.SourceHash)),
	}

	if choice.Parent != nil {
		lines = append(lines, RenderKeyValue("Absorbed by", Highlight(choice.Parent.Number.String())))
	}

	if len(node.Children) > 0 {
		lines = append(lines, "", Bold("Absorbed PRs:"))

		maxPreview := Display.MaxPreviewLines
		if len(node.Children) < maxPreview {
			maxPreview = len(node.Children)
		}
		for _, child := range node.Children[:maxPreview] {
			lines = append(lines, fmt.Sprintf("  %s @%s", child.Number, child.Author))
		}
		if len(node.Children) > maxPreview {
			lines = append(lines, Dim(fmt.Sprintf("  ... and %d more", len(node.Children)-maxPreview)))
		}
	}

	return strings.Join(lines, "\n")
}
