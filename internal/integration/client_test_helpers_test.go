package integration

import (
	"fmt"
	"strings"

	"github.com/bjulian5/integrate/internal/config"
)

var (
	p1 = strings.Repeat("1", 40)
	p2 = strings.Repeat("2", 40)
	p3 = strings.Repeat("3", 40)
	p4 = strings.Repeat("4", 40)
)

// logLine formats a merge the way git log --pretty=format:'%P %cI' prints it
func logLine(first, second, date string) string {
	return fmt.Sprintf("%s %s %s", first, second, date)
}

// refLine formats a pull request head the way git ls-remote prints it
func refLine(hash string, number int) string {
	return fmt.Sprintf("%s\trefs/pull/%d/head", hash, number)
}

// newScenarioGit returns a git mock where develop holds a top-level merge of
// p2 which absorbed a nested merge of p4, with the given pull request refs
func newScenarioGit(refs ...string) *MockGitClient {
	mockGit := &MockGitClient{}
	mockGit.On("MergeLog", "origin", "main", "develop", false).Return([]string{
		logLine(p1, p2, "2024-01-01"),
		logLine(p3, p4, "2024-01-02"),
	}, nil)
	mockGit.On("MergeLog", "origin", "main", "develop", true).Return([]string{
		logLine(p1, p2, "2024-01-01"),
	}, nil)
	mockGit.On("ListPullHeads", "origin").Return(refs, nil)
	return mockGit
}

// newScenarioGithub returns a GitHub mock that knows the authors of PRs 10 and 11
func newScenarioGithub() *MockGithubClient {
	mockGithub := &MockGithubClient{}
	mockGithub.On("LookupAuthor", 10).Return("alice", nil)
	mockGithub.On("LookupAuthor", 11).Return("bob", nil)
	return mockGithub
}

func newTestIntegrationClient(gitOps GitClient, ghClient GithubClient) *Client {
	return NewClient(gitOps, ghClient, config.Default())
}
