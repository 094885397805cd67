package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

const defaultHost = "github.com"

// ErrMalformedRemoteURL is returned when a remote URL does not name an owner/repo pair
var ErrMalformedRemoteURL = errors.New("git remote url is invalid")

// Repo identifies a hosted repository
type Repo struct {
	Host  string
	Owner string
	Name  string
}

// String returns the repository in the [HOST/]OWNER/REPO form understood by gh
func (r Repo) String() string {
	if r.Host == "" || r.Host == defaultHost {
		return r.Owner + "/" + r.Name
	}
	return r.Host + "/" + r.Owner + "/" + r.Name
}

// ParseRemoteURL decomposes a remote URL such as git@github.com:owner/repo.git
// or https://github.com/owner/repo into its host, owner and name
func ParseRemoteURL(rawURL string) (Repo, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return Repo{}, fmt.Errorf("%w: empty url", ErrMalformedRemoteURL)
	}

	ep, err := transport.NewEndpoint(rawURL)
	if err != nil {
		return Repo{}, fmt.Errorf("%w: %q: %v", ErrMalformedRemoteURL, rawURL, err)
	}
	if ep.Protocol == "file" || ep.Host == "" {
		return Repo{}, fmt.Errorf("%w: %q is not a hosted repository", ErrMalformedRemoteURL, rawURL)
	}

	path := strings.Trim(ep.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, fmt.Errorf("%w: %q does not name owner/repo", ErrMalformedRemoteURL, rawURL)
	}

	return Repo{Host: ep.Host, Owner: parts[0], Name: parts[1]}, nil
}
