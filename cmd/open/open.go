package open

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/integrate/internal/common"
	"github.com/bjulian5/integrate/internal/model"
	"github.com/bjulian5/integrate/internal/ui"
)

// Client is what the open command needs from the integration client
type Client interface {
	Preview(ctx context.Context, base, head string, fetch bool) (model.Forest, error)
	OpenPR(ctx context.Context, number int) error
}

// Command opens one of the merged PRs in the browser
type Command struct {
	// Flags
	Base    string
	Head    string
	NoFetch bool

	// Clients (can be mocked in tests)
	Integration Client
	// Select picks a PR from the forest; nil when the user cancels
	Select func(f model.Forest) (*ui.PRChoice, error)
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	command := &cobra.Command{
		Use:   "open",
		Short: "Open a merged PR in the browser",
		Long: `Pick one of the pull requests merged between --base and --head with an
interactive fuzzy finder and open it in the browser.

Example:
  integrate open --base main --head develop`,
		Args: cobra.NoArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			if c.Select == nil {
				if !ui.IsTerminal() {
					return fmt.Errorf("open needs an interactive terminal: use 'integrate show' instead")
				}
				c.Select = ui.SelectPR
			}
			if c.Integration != nil {
				return nil
			}
			_, _, client, err := common.InitClients(cobraCmd.Context(), common.Globals)
			if err != nil {
				return err
			}
			c.Integration = client
			return nil
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return c.Run(cobraCmd.Context())
		},
	}

	command.Flags().StringVar(&c.Base, "base", "", "Branch the integration PR merges into")
	command.Flags().StringVar(&c.Head, "head", "", "Branch holding the merged pull requests")
	command.Flags().BoolVar(&c.NoFetch, "no-fetch", false, "Use remote-tracking branches as they are")

	_ = command.MarkFlagRequired("base")
	_ = command.MarkFlagRequired("head")

	parent.AddCommand(command)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	f, err := c.Integration.Preview(ctx, c.Base, c.Head, !c.NoFetch)
	if err != nil {
		return err
	}

	if len(f) == 0 {
		ui.Warningf("No merged pull requests between %s and %s", c.Base, c.Head)
		return nil
	}

	choice, err := c.Select(f)
	if err != nil {
		return fmt.Errorf("failed to select a PR: %w", err)
	}
	if choice == nil {
		// User cancelled
		return nil
	}

	number := choice.Node.Number.Int()
	if err := c.Integration.OpenPR(ctx, number); err != nil {
		return fmt.Errorf("failed to open PR in browser: %w", err)
	}
	ui.Successf("Opening PR #%d by @%s", number, choice.Node.Author)
	return nil
}
