package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// mergeLogFormat prints the parents and strict ISO-8601 committer date of a commit
const mergeLogFormat = "--pretty=format:%P %cI"

// Client provides git operations for a repository
type Client struct {
	gitRoot string
}

// NewClient creates a new git client for the current directory
func NewClient() (*Client, error) {
	return NewClientAt("")
}

// NewClientAt creates a new git client for the repository containing dir.
// An empty dir means the current directory.
func NewClientAt(dir string) (*Client, error) {
	c := &Client{gitRoot: dir}
	output, err := c.run(context.Background(), "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not in a git repository: %w", err)
	}
	c.gitRoot = strings.TrimSpace(string(output))
	return c, nil
}

// GitRoot returns the root directory of the git repository
func (c *Client) GitRoot() string {
	return c.gitRoot
}

// Fetch refreshes remote-tracking branches from the remote
func (c *Client) Fetch(ctx context.Context, remote string) error {
	if _, err := c.run(ctx, "fetch", remote); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", remote, err)
	}
	return nil
}

// MergeLog returns one "<parents> <date>" line per merge commit reachable from
// remote/head but not from remote/base, newest first. With firstParent only
// merges on the first-parent chain of head are listed.
func (c *Client) MergeLog(ctx context.Context, remote, base, head string, firstParent bool) ([]string, error) {
	rangeSpec := fmt.Sprintf("%s..%s", remoteRef(remote, base), remoteRef(remote, head))
	args := []string{"log", rangeSpec, "--merges", mergeLogFormat}
	if firstParent {
		args = append(args, "--first-parent")
	}

	output, err := c.run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list merges in %s: %w", rangeSpec, err)
	}
	return splitLines(output), nil
}

// ListPullHeads returns the "<hash>\t<ref>" lines of every pull request head
// ref advertised by the remote
func (c *Client) ListPullHeads(ctx context.Context, remote string) ([]string, error) {
	output, err := c.run(ctx, "ls-remote", remote, "pull/*/head")
	if err != nil {
		return nil, fmt.Errorf("failed to list pull request refs on %s: %w", remote, err)
	}
	return splitLines(output), nil
}

// GetRemoteURL returns the fetch URL of the remote
func (c *Client) GetRemoteURL(ctx context.Context, remote string) (string, error) {
	output, err := c.run(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("failed to get url of remote %s: %w", remote, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// run executes a git command in the repository and returns its stdout
func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.gitRoot
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("failed to execute git: %w", err)
	}
	return output, nil
}

// remoteRef returns the remote-tracking ref for a branch. An empty remote
// refers to the local branch.
func remoteRef(remote, branch string) string {
	if remote == "" {
		return branch
	}
	return remote + "/" + branch
}

func splitLines(output []byte) []string {
	trimmed := strings.TrimRight(string(output), "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}
