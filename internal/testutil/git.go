package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bjulian5/integrate/internal/git"
)

// defaultDate is used for every commit that does not ask for a specific date
const defaultDate = "2024-01-01T00:00:00+09:00"

// TestRepo is a working clone with a bare "origin" remote, both in temp dirs
type TestRepo struct {
	Dir    string // working clone
	Origin string // bare remote
	Git    *git.Client
}

// NewTestRepo creates a bare origin and a clone of it with an initial commit
// on main pushed to origin
func NewTestRepo(t *testing.T) *TestRepo {
	t.Helper()
	root := t.TempDir()
	origin := filepath.Join(root, "origin.git")
	dir := filepath.Join(root, "work")

	runIn(t, root, "", "init", "--bare", "--initial-branch=main", origin)
	runIn(t, root, "", "init", "--initial-branch=main", dir)

	// Set user name and email for reproducible commits
	runIn(t, dir, "", "config", "user.email", "test@example.com")
	runIn(t, dir, "", "config", "user.name", "Test User")
	runIn(t, dir, "", "config", "commit.gpgsign", "false")
	runIn(t, dir, "", "remote", "add", "origin", origin)

	gitClient, err := git.NewClientAt(dir)
	require.NoError(t, err)

	repo := &TestRepo{Dir: dir, Origin: origin, Git: gitClient}
	repo.Commit(t, "Initial commit")
	repo.Push(t, "main")
	return repo
}

// Run runs git in the working clone and returns its trimmed output
func (r *TestRepo) Run(t *testing.T, args ...string) string {
	t.Helper()
	return runIn(t, r.Dir, "", args...)
}

// Commit writes a file named after title and commits it on the current branch
func (r *TestRepo) Commit(t *testing.T, title string) string {
	t.Helper()
	// use the title for uniqueness; time.Now() doesn't work in synctest as time is frozen
	testFile := filepath.Join(r.Dir, fmt.Sprintf("file-%s.txt", strings.ReplaceAll(title, " ", "-")))
	require.NoError(t, os.WriteFile(testFile, []byte(title+"\n"), 0644))

	r.Run(t, "add", ".")
	runIn(t, r.Dir, defaultDate, "commit", "-m", title)
	return r.Run(t, "rev-parse", "HEAD")
}

// Checkout switches to branch, creating it from the current HEAD when create is set
func (r *TestRepo) Checkout(t *testing.T, branch string, create bool) {
	t.Helper()
	if create {
		r.Run(t, "checkout", "-b", branch)
		return
	}
	r.Run(t, "checkout", branch)
}

// Merge merges branch into the current branch with a merge commit dated date
// and returns the merge commit hash
func (r *TestRepo) Merge(t *testing.T, branch string, date string) string {
	t.Helper()
	runIn(t, r.Dir, date, "merge", "--no-ff", "-m", "Merge branch "+branch, branch)
	return r.Run(t, "rev-parse", "HEAD")
}

// Push pushes branches to origin
func (r *TestRepo) Push(t *testing.T, branches ...string) {
	t.Helper()
	r.Run(t, append([]string{"push", "origin"}, branches...)...)
}

// PushPullRef publishes commit as refs/pull/<number>/head on origin, the way
// GitHub exposes pull request heads
func (r *TestRepo) PushPullRef(t *testing.T, commit string, number int) {
	t.Helper()
	r.Run(t, "push", "origin", fmt.Sprintf("%s:refs/pull/%d/head", commit, number))
}

func runIn(t *testing.T, dir string, date string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	if date != "" {
		cmd.Env = append(cmd.Env,
			"GIT_AUTHOR_DATE="+date,
			"GIT_COMMITTER_DATE="+date,
		)
	}
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))
	return strings.TrimSpace(string(output))
}
