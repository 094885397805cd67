package integration

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bjulian5/integrate/internal/gh"
)

type MockGitClient struct {
	mock.Mock
}

// Fetch implements GitClient.
func (m *MockGitClient) Fetch(ctx context.Context, remote string) error {
	args := m.Called(remote)
	return args.Error(0)
}

// MergeLog implements GitClient.
func (m *MockGitClient) MergeLog(ctx context.Context, remote, base, head string, firstParent bool) ([]string, error) {
	args := m.Called(remote, base, head, firstParent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// ListPullHeads implements GitClient.
func (m *MockGitClient) ListPullHeads(ctx context.Context, remote string) ([]string, error) {
	args := m.Called(remote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockGithubClient struct {
	mock.Mock
}

// LookupAuthor implements GithubClient.
func (m *MockGithubClient) LookupAuthor(ctx context.Context, number int) (string, error) {
	args := m.Called(number)
	return args.String(0), args.Error(1)
}

// FindOpenPR implements GithubClient.
func (m *MockGithubClient) FindOpenPR(ctx context.Context, base, head string) (*gh.PR, error) {
	args := m.Called(base, head)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gh.PR), args.Error(1)
}

// CreatePR implements GithubClient.
func (m *MockGithubClient) CreatePR(ctx context.Context, spec gh.PRSpec) (*gh.PR, error) {
	args := m.Called(spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gh.PR), args.Error(1)
}

// UpdatePRBody implements GithubClient.
func (m *MockGithubClient) UpdatePRBody(ctx context.Context, number int, body string) (*gh.PR, error) {
	args := m.Called(number, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gh.PR), args.Error(1)
}

// MergePR implements GithubClient.
func (m *MockGithubClient) MergePR(ctx context.Context, number int, method gh.MergeMethod) error {
	args := m.Called(number, method)
	return args.Error(0)
}

// OpenPR implements GithubClient.
func (m *MockGithubClient) OpenPR(ctx context.Context, number int) error {
	args := m.Called(number)
	return args.Error(0)
}
