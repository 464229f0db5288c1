// Package runtime provides the context handed to actions: the git runner,
// the logger, the repository root, and the resolved repository config.
package runtime

import (
	"syncmain.dev/syncmain/internal/config"
	"syncmain.dev/syncmain/internal/git"
	"syncmain.dev/syncmain/internal/tui"
)

// Context provides access to the engine and output for actions
type Context struct {
	Runner   git.Runner
	Splog    *tui.Splog
	RepoRoot string
	Config   *config.RepoConfig
}

// NewContext creates a context with explicit collaborators, used by tests
func NewContext(runner git.Runner, repoRoot string, cfg *config.RepoConfig) *Context {
	if cfg == nil {
		cfg = &config.RepoConfig{}
	}
	return &Context{
		Runner:   runner,
		Splog:    tui.NewSplog(),
		RepoRoot: repoRoot,
		Config:   cfg,
	}
}

// GetContext builds the real context for the repository containing the
// current working directory. Fails when invoked outside a git repository.
func GetContext() (*Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.GetRepoConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	return &Context{
		Runner:   git.NewRunnerInDir(repoRoot),
		Splog:    tui.NewSplog(),
		RepoRoot: repoRoot,
		Config:   cfg,
	}, nil
}
