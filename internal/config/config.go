package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the repository-level config file, looked up at the git root
const FileName = ".integrate.toml"

// Environment variables checked for the GitHub credential, in order
var tokenEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN"}

// ErrMissingCredential is returned when no GitHub token is available
var ErrMissingCredential = errors.New("GITHUB_TOKEN environment variable is required")

// Config holds integrate settings
type Config struct {
	Remote      string `toml:"remote"`       // git remote holding base, head and refs/pull/*
	TitleFormat string `toml:"title_format"` // title for new integration PRs; {base} and {head} are substituted
	Concurrency int    `toml:"concurrency"`  // parallel author lookups
	MergeMethod string `toml:"merge_method"` // merge, squash or rebase after every sync; empty means no merge

	// Token is only ever read from the environment
	Token string `toml:"-"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Remote:      "origin",
		TitleFormat: "{base} from {head}",
		Concurrency: 4,
	}
}

// DefaultPath returns the config file location for a repository
func DefaultPath(gitRoot string) string {
	return filepath.Join(gitRoot, FileName)
}

// Load reads configuration from a TOML file, falling back to defaults when
// the file does not exist, and picks up the token from the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err == nil {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if cfg.Remote == "" {
		cfg.Remote = Default().Remote
	}
	if cfg.TitleFormat == "" {
		cfg.TitleFormat = Default().TitleFormat
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = Default().Concurrency
	}

	cfg.Token = tokenFromEnv()
	return cfg, nil
}

// RequireToken fails with ErrMissingCredential when no token was found
func (c *Config) RequireToken() error {
	if c.Token == "" {
		return ErrMissingCredential
	}
	return nil
}

// Title formats the title of a new integration pull request
func (c *Config) Title(base, head string) string {
	return strings.NewReplacer("{base}", base, "{head}", head).Replace(c.TitleFormat)
}

func tokenFromEnv() string {
	for _, name := range tokenEnvVars {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			return value
		}
	}
	return ""
}
