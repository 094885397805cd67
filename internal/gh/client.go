package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// prFields is the --json field list requested for every PR query
const prFields = "number,url,state,isDraft,body,author,baseRefName,headRefName,createdAt"

// runner executes gh with extra environment and returns its stdout
type runner func(ctx context.Context, env []string, args ...string) ([]byte, error)

// Client provides GitHub operations via gh CLI for a single repository
type Client struct {
	repo  string // [HOST/]OWNER/REPO
	token string
	run   runner
}

// NewClient creates a new GitHub client for repo, authenticating with token
func NewClient(repo string, token string) *Client {
	return &Client{
		repo:  repo,
		token: token,
		run:   runGH,
	}
}

// Repo returns the repository the client operates on
func (c *Client) Repo() string {
	return c.repo
}

// GetPR fetches PR details by number
func (c *Client) GetPR(ctx context.Context, number int) (*PR, error) {
	output, err := c.execGH(ctx,
		"pr", "view", fmt.Sprintf("%d", number),
		"--json", prFields,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch PR #%d: %w", number, err)
	}

	return parsePRJSON(output)
}

// LookupAuthor returns the login of the author of a PR
func (c *Client) LookupAuthor(ctx context.Context, number int) (string, error) {
	pr, err := c.GetPR(ctx, number)
	if err != nil {
		return "", err
	}
	if pr.Author == "" {
		return "", fmt.Errorf("PR #%d has no author", number)
	}
	return pr.Author, nil
}

// FindOpenPR returns the most recently created open PR from head into base,
// or nil if there is none
func (c *Client) FindOpenPR(ctx context.Context, base, head string) (*PR, error) {
	output, err := c.execGH(ctx,
		"pr", "list",
		"--state", "open",
		"--base", base,
		"--head", head,
		"--json", prFields,
		"--limit", "1",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list PRs for %s <- %s: %w", base, head, err)
	}

	var prs []prJSON
	if err := json.Unmarshal(output, &prs); err != nil {
		return nil, fmt.Errorf("failed to parse PR list: %w", err)
	}

	if len(prs) == 0 {
		return nil, nil // No PR found
	}

	return prs[0].toPR(), nil
}

// CreatePR creates a new PR on GitHub
func (c *Client) CreatePR(ctx context.Context, spec PRSpec) (*PR, error) {
	// Create the PR (outputs URL to stdout)
	_, err := c.execGH(ctx,
		"pr", "create",
		"--title", spec.Title,
		"--body", spec.Body,
		"--base", spec.Base,
		"--head", spec.Head,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create PR: %w", err)
	}

	// Query GitHub for the newly created PR details
	pr, err := c.FindOpenPR(ctx, spec.Base, spec.Head)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created PR details: %w", err)
	}
	if pr == nil {
		return nil, fmt.Errorf("PR was created but not found")
	}

	return pr, nil
}

// UpdatePRBody replaces the description of an existing PR
func (c *Client) UpdatePRBody(ctx context.Context, number int, body string) (*PR, error) {
	if _, err := c.execGH(ctx, "pr", "edit", fmt.Sprintf("%d", number), "--body", body); err != nil {
		return nil, fmt.Errorf("failed to update PR #%d: %w", number, err)
	}

	// Fetch and return updated PR data
	return c.GetPR(ctx, number)
}

// MergePR merges a PR with the given method
func (c *Client) MergePR(ctx context.Context, number int, method MergeMethod) error {
	if method == MergeNone {
		return fmt.Errorf("no merge method given for PR #%d", number)
	}
	if _, err := c.execGH(ctx, "pr", "merge", fmt.Sprintf("%d", number), method.flag()); err != nil {
		return fmt.Errorf("failed to merge PR #%d: %w", number, err)
	}
	return nil
}

// OpenPR opens a pull request in the browser using gh CLI
func (c *Client) OpenPR(ctx context.Context, number int) error {
	_, err := c.execGH(ctx, "pr", "view", fmt.Sprintf("%d", number), "--web")
	return err
}

// prJSON is the common structure for PR data from gh CLI
type prJSON struct {
	Number  int    `json:"number"`
	URL     string `json:"url"`
	State   string `json:"state"`
	IsDraft bool   `json:"isDraft"`
	Body    string `json:"body"`
	Author  struct {
		Login string `json:"login"`
	} `json:"author"`
	BaseRefName string    `json:"baseRefName"`
	HeadRefName string    `json:"headRefName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// toPR converts a prJSON to a PR
func (p *prJSON) toPR() *PR {
	return &PR{
		Number:    p.Number,
		URL:       p.URL,
		State:     normalizeState(p.State, p.IsDraft),
		Body:      p.Body,
		Author:    p.Author.Login,
		Base:      p.BaseRefName,
		Head:      p.HeadRefName,
		CreatedAt: p.CreatedAt,
	}
}

// parsePRJSON parses PR data from gh CLI JSON output (single PR)
func parsePRJSON(data []byte) (*PR, error) {
	var ghPR prJSON
	if err := json.Unmarshal(data, &ghPR); err != nil {
		return nil, fmt.Errorf("failed to parse PR JSON: %w", err)
	}
	return ghPR.toPR(), nil
}

// execGH runs a gh subcommand against the client's repository
func (c *Client) execGH(ctx context.Context, args ...string) ([]byte, error) {
	args = append(args, "--repo", c.repo)

	var env []string
	if c.token != "" {
		env = append(env, "GH_TOKEN="+c.token)
	}
	return c.run(ctx, env, args...)
}

// runGH executes a gh CLI command and returns the output
func runGH(ctx context.Context, env []string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("gh CLI error: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("failed to execute gh: %w", err)
	}
	return output, nil
}

// normalizeState converts GitHub API state to our internal format
// GitHub returns: OPEN, CLOSED, MERGED (uppercase)
// We need: open, draft, closed, merged (lowercase, with draft derived from isDraft)
func normalizeState(state string, isDraft bool) string {
	state = strings.ToLower(state)

	if state == "open" && isDraft {
		return "draft"
	}

	return state
}
