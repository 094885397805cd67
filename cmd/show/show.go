package show

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjulian5/integrate/internal/checklist"
	"github.com/bjulian5/integrate/internal/common"
	"github.com/bjulian5/integrate/internal/model"
	"github.com/bjulian5/integrate/internal/ui"
)

// Output formats
const (
	FormatTree     = "tree"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// Previewer builds the forest of merged PRs between two branches
type Previewer interface {
	Preview(ctx context.Context, base, head string, fetch bool) (model.Forest, error)
}

// Command shows the pull requests an integration PR would list
type Command struct {
	// Flags
	Base    string
	Head    string
	NoFetch bool
	Format  string

	// Clients (can be mocked in tests)
	Integration Previewer
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the pull requests merged between two branches",
		Long: `Show the pull requests merged into --head since it diverged from --base,
nested the same way the integration PR checklist nests them. Nothing on
GitHub is changed.

Example:
  integrate show --base main --head develop
  integrate show --base main --head develop --format markdown
  integrate show --base main --head develop --format yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(c.Format); err != nil {
				return err
			}
			if c.Integration != nil {
				return nil
			}
			_, _, client, err := common.InitClients(cmd.Context(), common.Globals)
			if err != nil {
				return err
			}
			c.Integration = client
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&c.Base, "base", "", "Branch the integration PR merges into")
	cmd.Flags().StringVar(&c.Head, "head", "", "Branch holding the merged pull requests")
	cmd.Flags().BoolVar(&c.NoFetch, "no-fetch", false, "Use remote-tracking branches as they are")
	cmd.Flags().StringVarP(&c.Format, "format", "f", FormatTree, "Output format: tree, table, markdown or yaml")

	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("head")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	if err := validateFormat(c.Format); err != nil {
		return err
	}

	f, err := c.Integration.Preview(ctx, c.Base, c.Head, !c.NoFetch)
	if err != nil {
		return err
	}

	out, err := Render(f, c.Base, c.Head, c.Format)
	if err != nil {
		return err
	}
	ui.Printf("%s", out)
	return nil
}

// Render formats the forest for display
func Render(f model.Forest, base, head, format string) (string, error) {
	switch format {
	case FormatTree:
		return ui.RenderForestTree(base, head, f) + "\n", nil
	case FormatTable:
		return ui.RenderForestTable(f) + "\n", nil
	case FormatMarkdown:
		return checklist.Render(f), nil
	case FormatYAML:
		data, err := yaml.Marshal(toDocument(base, head, f))
		if err != nil {
			return "", fmt.Errorf("failed to marshal forest: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func validateFormat(format string) error {
	switch format {
	case FormatTree, FormatTable, FormatMarkdown, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q: use tree, table, markdown or yaml", format)
	}
}

// document is the yaml shape of a forest
type document struct {
	Base         string        `yaml:"base"`
	Head         string        `yaml:"head"`
	PullRequests []pullRequest `yaml:"pull_requests"`
}

type pullRequest struct {
	Number   int           `yaml:"number"`
	Author   string        `yaml:"author"`
	Merged   string        `yaml:"merged"`
	Commit   string        `yaml:"commit"`
	Absorbed []pullRequest `yaml:"absorbed,omitempty"`
}

func toDocument(base, head string, f model.Forest) document {
	doc := document{Base: base, Head: head, PullRequests: []pullRequest{}}
	for _, node := range f {
		pr := toPullRequest(node)
		for _, child := range node.Children {
			pr.Absorbed = append(pr.Absorbed, toPullRequest(child))
		}
		doc.PullRequests = append(doc.PullRequests, pr)
	}
	return doc
}

func toPullRequest(node model.PRNode) pullRequest {
	return pullRequest{
		Number: node.Number.Int(),
		Author: node.Author,
		Merged: node.MergeDate,
		Commit: node.SourceHash,
	}
}
