package common

import (
	"context"
	"fmt"

	"github.com/bjulian5/integrate/internal/config"
	"github.com/bjulian5/integrate/internal/gh"
	"github.com/bjulian5/integrate/internal/git"
	"github.com/bjulian5/integrate/internal/integration"
	"github.com/bjulian5/integrate/internal/ui"
)

// GlobalOptions holds the root command's persistent flags
type GlobalOptions struct {
	ConfigPath string // empty means <git-root>/.integrate.toml
	Remote     string // overrides the configured remote when set
	Verbose    bool
}

// Globals is bound to the root command's persistent flags
var Globals GlobalOptions

// LoadConfig reads the config for the repository at gitRoot and applies flag
// overrides
func LoadConfig(gitRoot string, opts GlobalOptions) (*config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath(gitRoot)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.Remote != "" {
		cfg.Remote = opts.Remote
	}
	if _, err := gh.ParseMergeMethod(cfg.MergeMethod); err != nil {
		return nil, fmt.Errorf("invalid merge_method in %s: %w", path, err)
	}
	return cfg, nil
}

// InitClients initializes git, GitHub, and integration clients
// Returns an error that is suitable for use in PreRunE hooks
func InitClients(ctx context.Context, opts GlobalOptions) (*git.Client, *gh.Client, *integration.Client, error) {
	ui.SetVerbose(opts.Verbose)

	gitClient, err := git.NewClient()
	if err != nil {
		ui.Error("Not in a git repository")
		return nil, nil, nil, fmt.Errorf("git client initialization failed: %w", err)
	}

	cfg, err := LoadConfig(gitClient.GitRoot(), opts)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.RequireToken(); err != nil {
		return nil, nil, nil, err
	}

	remoteURL, err := gitClient.GetRemoteURL(ctx, cfg.Remote)
	if err != nil {
		return nil, nil, nil, err
	}
	repo, err := git.ParseRemoteURL(remoteURL)
	if err != nil {
		return nil, nil, nil, err
	}
	ghClient := gh.NewClient(repo.String(), cfg.Token)
	ui.Debugf("using %s (%s) for pull requests on %s", cfg.Remote, remoteURL, ghClient.Repo())

	integrationClient := integration.NewClient(gitClient, ghClient, cfg)
	return gitClient, ghClient, integrationClient, nil
}
