package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjulian5/integrate/internal/model"
)

func testForest() model.Forest {
	return model.Forest{
		{
			Number:     model.Resolved(12),
			Author:     "carol",
			MergeDate:  "2024-01-04",
			SourceHash: "cccccccccccccccccccccccccccccccccccccccc",
		},
		{
			Number:     model.Resolved(10),
			Author:     "alice",
			MergeDate:  "2024-01-03",
			SourceHash: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			Children: []model.PRNode{
				{
					Number:     model.Resolved(11),
					Author:     "bob",
					MergeDate:  "2024-01-02",
					SourceHash: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
				},
			},
		},
	}
}

// withDisplay overrides the display config for the duration of a test.
// Tests never run on a TTY, so DefaultTerminalWidth is the terminal width.
func withDisplay(t *testing.T, change func(c *DisplayConfig)) {
	saved := Display
	t.Cleanup(func() { Display = saved })
	change(&Display)
}

func TestRenderForestTree(t *testing.T) {
	t.Run("lists every PR in order", func(t *testing.T) {
		out := RenderForestTree("main", "develop", testForest())

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], "main ← develop")
		assert.Contains(t, lines[1], "#12 @carol 2024-01-04 (ccccccc)")
		assert.Contains(t, lines[2], "#10 @alice 2024-01-03 (aaaaaaa)")
		assert.Contains(t, lines[3], "#11 @bob 2024-01-02 (bbbbbbb)")
	})

	t.Run("nested PRs are indented under their parent", func(t *testing.T) {
		out := RenderForestTree("main", "develop", testForest())
		lines := strings.Split(out, "\n")

		parentAt := strings.Index(lines[2], "#10")
		childAt := strings.Index(lines[3], "#11")
		assert.Greater(t, childAt, parentAt)
	})

	t.Run("labels fit a narrow terminal", func(t *testing.T) {
		withDisplay(t, func(c *DisplayConfig) { c.DefaultTerminalWidth = 24 })

		out := RenderForestTree("main", "develop", testForest())
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), 24, line)
		}
		assert.Contains(t, out, "...")
		assert.Contains(t, out, "#11")
	})

	t.Run("empty forest", func(t *testing.T) {
		out := RenderForestTree("main", "develop", model.Forest{})
		assert.Contains(t, out, "No merged pull requests")
	})
}

func TestFlattenForest(t *testing.T) {
	choices := FlattenForest(testForest())
	require.Len(t, choices, 3)

	assert.Equal(t, model.Resolved(12), choices[0].Node.Number)
	assert.Nil(t, choices[0].Parent)

	assert.Equal(t, model.Resolved(10), choices[1].Node.Number)
	assert.Nil(t, choices[1].Parent)

	assert.Equal(t, model.Resolved(11), choices[2].Node.Number)
	require.NotNil(t, choices[2].Parent)
	assert.Equal(t, model.Resolved(10), choices[2].Parent.Number)
}

func TestFormatPRFinderLine(t *testing.T) {
	choices := FlattenForest(testForest())

	assert.Equal(t, "#10 @alice 2024-01-03", FormatPRFinderLine(choices[1]))
	assert.Equal(t, "  #11 @bob 2024-01-02", FormatPRFinderLine(choices[2]))

	withDisplay(t, func(c *DisplayConfig) { c.DefaultTerminalWidth = 12 })
	assert.Equal(t, "#10 @alic...", FormatPRFinderLine(choices[1]))
}

func TestFormatPRPreview(t *testing.T) {
	choices := FlattenForest(testForest())

	preview := FormatPRPreview(choices[1])
	assert.Contains(t, preview, "Absorbed PRs:")
	assert.Contains(t, preview, "#11 @bob")

	preview = FormatPRPreview(choices[2])
	assert.Contains(t, preview, "Absorbed by:")
	assert.Contains(t, preview, "#10")
}

func TestRenderForestTable(t *testing.T) {
	t.Run("one row per PR", func(t *testing.T) {
		out := RenderForestTable(testForest())

		assert.Contains(t, out, "Absorbed by")
		assert.Contains(t, out, "@carol")
		assert.Contains(t, out, "aaaaaaa")
		assert.Less(t, strings.Index(out, "#12"), strings.Index(out, "#11"))
	})

	t.Run("long author is truncated", func(t *testing.T) {
		withDisplay(t, func(c *DisplayConfig) { c.MaxAuthorLength = 8 })

		f := model.Forest{{Number: model.Resolved(10), Author: "dependabot-preview", MergeDate: "2024-01-01"}}
		out := RenderForestTable(f)
		assert.Contains(t, out, "@depe...")
		assert.NotContains(t, out, "dependabot-preview")
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxLen   int
		expected string
	}{
		{"fits", "main", 10, "main"},
		{"ellipsis", "integration", 8, "integ..."},
		{"tiny", "integration", 3, "int"},
		{"zero", "integration", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.text, tt.maxLen))
		})
	}
}
