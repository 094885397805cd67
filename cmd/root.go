package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjulian5/integrate/cmd/open"
	"github.com/bjulian5/integrate/cmd/show"
	synccmd "github.com/bjulian5/integrate/cmd/sync"
	"github.com/bjulian5/integrate/internal/common"
	"github.com/bjulian5/integrate/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Integration pull request builder",
	Long: `Integrate maintains an integration pull request between two long-lived
branches, such as develop into main.

The pull request body is a checklist of every feature pull request merged
into the head branch, with pull requests that were merged into a feature
branch nested under it. Reviewers tick items off on GitHub; re-running sync
refreshes the list and keeps the ticks of unchanged items.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&common.Globals.ConfigPath, "config", "", "Config file (default <git-root>/.integrate.toml)")
	flags.StringVar(&common.Globals.Remote, "remote", "", "Git remote holding the branches and pull request refs (overrides config)")
	flags.BoolVarP(&common.Globals.Verbose, "verbose", "v", false, "Print the steps being run")

	// Register all commands
	commands := []Command{
		&synccmd.Command{},
		&show.Command{},
		&open.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
