package ui

import (
	"errors"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/bjulian5/integrate/internal/model"
)

func init() {
	// Force lipgloss to initialize and detect terminal before fuzzy finder starts
	// This prevents ANSI escape sequences from leaking into the finder input
	_ = lipgloss.NewStyle().Render("")
	// Ensure color profile is detected early
	_ = lipgloss.HasDarkBackground()
}

// PRChoice is one pull request offered by SelectPR
type PRChoice struct {
	Node   model.PRNode
	Parent *model.PRNode // top-level PR that absorbed this one; nil for top-level PRs
}

// FlattenForest lists every PR in the forest in checklist order
func FlattenForest(f model.Forest) []PRChoice {
	choices := make([]PRChoice, 0, f.Len())
	for i := range f {
		top := &f[i]
		choices = append(choices, PRChoice{Node: *top})
		for _, child := range top.Children {
			choices = append(choices, PRChoice{Node: child, Parent: top})
		}
	}
	return choices
}

// SelectPR presents a fuzzy finder to select a pull request from the forest.
// Returns the selected PR, or nil if the user cancelled the selection.
// Returns an error only if the fuzzy finder encounters an unexpected error.
func SelectPR(f model.Forest) (*PRChoice, error) {
	choices := FlattenForest(f)
	if len(choices) == 0 {
		return nil, nil
	}

	// Flush stdout/stderr before starting fuzzy finder to clear any ANSI sequences
	os.Stdout.Sync()
	os.Stderr.Sync()

	idx, err := fuzzyfinder.Find(
		choices,
		func(i int) string {
			return FormatPRFinderLine(choices[i])
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return FormatPRPreview(choices[i])
		}),
	)

	if errors.Is(err, fuzzyfinder.ErrAbort) {
		// User cancelled (Ctrl+C or ESC)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &choices[idx], nil
}
