package integration

import (
	"context"

	"github.com/bjulian5/integrate/internal/checklist"
	"github.com/bjulian5/integrate/internal/config"
	"github.com/bjulian5/integrate/internal/forest"
	"github.com/bjulian5/integrate/internal/gh"
	"github.com/bjulian5/integrate/internal/model"
	"github.com/bjulian5/integrate/internal/ui"
)

// GitClient defines the git operations needed by the integration Client
type GitClient interface {
	Fetch(ctx context.Context, remote string) error
	MergeLog(ctx context.Context, remote, base, head string, firstParent bool) ([]string, error)
	ListPullHeads(ctx context.Context, remote string) ([]string, error)
}

// GithubClient defines the GitHub operations needed by the integration Client
type GithubClient interface {
	forest.AuthorLookup
	FindOpenPR(ctx context.Context, base, head string) (*gh.PR, error)
	CreatePR(ctx context.Context, spec gh.PRSpec) (*gh.PR, error)
	UpdatePRBody(ctx context.Context, number int, body string) (*gh.PR, error)
	MergePR(ctx context.Context, number int, method gh.MergeMethod) error
	OpenPR(ctx context.Context, number int) error
}

// Client builds and maintains integration pull requests
type Client struct {
	git        GitClient
	gh         GithubClient
	cfg        *config.Config
	reconciler checklist.Reconciler
}

// NewClient creates a new integration client. A nil cfg uses the defaults.
func NewClient(gitOps GitClient, ghClient GithubClient, cfg *config.Config) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Client{
		git:        gitOps,
		gh:         ghClient,
		cfg:        cfg,
		reconciler: checklist.LineReconciler{},
	}
}

// Remote returns the git remote the client reads branches and PR refs from
func (c *Client) Remote() string {
	return c.cfg.Remote
}

// DefaultMergeMethod returns the configured merge method used when sync is
// not told how to merge
func (c *Client) DefaultMergeMethod() gh.MergeMethod {
	return gh.MergeMethod(c.cfg.MergeMethod)
}

// Preview builds the resolved forest of merged PRs between base and head
// without touching any pull request. With fetch the remote is fetched first.
func (c *Client) Preview(ctx context.Context, base, head string, fetch bool) (model.Forest, error) {
	remote := c.cfg.Remote

	if fetch {
		ui.Debugf("fetching %s", remote)
		if err := c.git.Fetch(ctx, remote); err != nil {
			return nil, err
		}
	}

	allLines, err := c.git.MergeLog(ctx, remote, base, head, false)
	if err != nil {
		return nil, err
	}
	all, err := forest.ParseMergeLog(allLines)
	if err != nil {
		return nil, err
	}

	firstParentLines, err := c.git.MergeLog(ctx, remote, base, head, true)
	if err != nil {
		return nil, err
	}
	firstParent, err := forest.ParseMergeLog(firstParentLines)
	if err != nil {
		return nil, err
	}
	ui.Debugf("found %d merges, %d on the first-parent chain", len(all), len(firstParent))

	refLines, err := c.git.ListPullHeads(ctx, remote)
	if err != nil {
		return nil, err
	}
	refs, err := forest.ParseRefs(refLines)
	if err != nil {
		return nil, err
	}
	ui.Debugf("found %d pull request refs on %s", len(refs), remote)

	built := forest.Build(all, firstParent)
	resolved := forest.Resolve(built, refs)
	if dropped := built.Len() - resolved.Len(); dropped > 0 {
		ui.Debugf("dropped %d merges without a pull request", dropped)
	}

	if err := forest.Enrich(ctx, resolved, c.gh, c.cfg.Concurrency); err != nil {
		return nil, err
	}
	return resolved, nil
}

// OpenPR opens a pull request in the browser
func (c *Client) OpenPR(ctx context.Context, number int) error {
	return c.gh.OpenPR(ctx, number)
}
