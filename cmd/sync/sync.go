package synccmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjulian5/integrate/internal/common"
	"github.com/bjulian5/integrate/internal/gh"
	"github.com/bjulian5/integrate/internal/integration"
	"github.com/bjulian5/integrate/internal/ui"
)

// Syncer creates or refreshes an integration PR
type Syncer interface {
	Sync(ctx context.Context, opts integration.SyncOptions) (*integration.SyncResult, error)
	DefaultMergeMethod() gh.MergeMethod
}

// Command creates or updates the integration PR between two branches
type Command struct {
	// Flags
	Base        string
	Head        string
	Merge       bool
	MergeSquash bool
	MergeRebase bool
	NoMerge     bool
	NoFetch     bool
	DryRun      bool // Show what would happen without touching GitHub

	// Clients (can be mocked in tests)
	Integration Syncer
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create or update the integration PR",
		Long: `Create or update the integration PR from --head into --base.

The PR body is a checklist of every pull request merged into head since it
diverged from base. PRs merged into a feature branch before that branch was
merged are nested under it. Checkmarks already ticked on the open integration
PR are kept as long as the line they belong to is unchanged.

Example:
  integrate sync --base main --head develop
  integrate sync --base main --head develop --dry-run
  integrate sync --base main --head develop --merge-squash`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
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
	cmd.Flags().BoolVar(&c.Merge, "merge", false, "Merge the integration PR with a merge commit")
	cmd.Flags().BoolVar(&c.MergeSquash, "merge-squash", false, "Squash-merge the integration PR")
	cmd.Flags().BoolVar(&c.MergeRebase, "merge-rebase", false, "Rebase-merge the integration PR")
	cmd.Flags().BoolVar(&c.NoMerge, "no-merge", false, "Do not merge, even if merge_method is configured")
	cmd.Flags().BoolVar(&c.NoFetch, "no-fetch", false, "Use remote-tracking branches as they are")
	cmd.Flags().BoolVar(&c.DryRun, "dry-run", false, "Print the PR body without creating, updating or merging")

	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("head")
	cmd.MarkFlagsMutuallyExclusive("merge", "merge-squash", "merge-rebase", "no-merge")

	parent.AddCommand(cmd)
}

// MergeMethod returns the merge method selected by the merge flags, falling
// back to the configured merge_method when none is given
func (c *Command) MergeMethod() gh.MergeMethod {
	switch {
	case c.NoMerge:
		return gh.MergeNone
	case c.MergeSquash:
		return gh.MergeSquash
	case c.MergeRebase:
		return gh.MergeRebase
	case c.Merge:
		return gh.MergeCommit
	default:
		return c.Integration.DefaultMergeMethod()
	}
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	if c.Base == c.Head {
		return fmt.Errorf("base and head must be different branches")
	}

	method := c.MergeMethod()
	result, err := c.Integration.Sync(ctx, integration.SyncOptions{
		Base:   c.Base,
		Head:   c.Head,
		Fetch:  !c.NoFetch,
		DryRun: c.DryRun,
		Merge:  method,
	})
	if err != nil {
		if result != nil && result.Number > 0 {
			ui.Warningf("Integration PR #%d was %s but not merged", result.Number, result.Action)
		}
		return err
	}

	switch result.Action {
	case integration.ActionDryRun:
		if result.Number > 0 {
			ui.Infof("Dry run: would update PR #%d with:", result.Number)
		} else {
			ui.Info("Dry run: would create a new integration PR with:")
		}
		ui.Printf("%s", result.Body)
		if method != gh.MergeNone {
			ui.Infof("Dry run: would merge with %s", method)
		}
		return nil
	case integration.ActionCreated:
		ui.Successf("Created integration PR #%d: %s", result.Number, result.URL)
	case integration.ActionUpdated:
		ui.Successf("Updated integration PR #%d: %s", result.Number, result.URL)
	case integration.ActionUnchanged:
		ui.Infof("Integration PR #%d is up to date: %s", result.Number, result.URL)
	}

	if result.Forest.Len() == 0 {
		ui.Warning("No merged pull requests found between the branches")
	}

	if result.Merged {
		ui.Successf("Merged integration PR #%d", result.Number)
	}

	return nil
}
