// Package testhelpers provides throwaway git repositories for tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a git repository created for a single test
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new repository with a main branch and a configured
// test identity. GIT_CONFIG_GLOBAL is suppressed so host configuration cannot
// leak into tests.
func NewGitRepo(dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	repo := &GitRepo{Dir: dir}
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	return repo, nil
}

// RunGitCommand executes a git command in the repository directory
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s failed: %s: %w", strings.Join(args, " "), out, err)
	}
	return nil
}

// RunGitCommandAndGetOutput executes a git command and returns trimmed output
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CommitFile writes a file and commits it with the given message
func (r *GitRepo) CommitFile(name, content, message string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return err
	}
	if err := r.RunGitCommand("add", name); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", message)
}

// CreateBranch creates and checks out a branch from the current HEAD
func (r *GitRepo) CreateBranch(name string) error {
	return r.RunGitCommand("checkout", "-b", name)
}

// Checkout switches to an existing branch
func (r *GitRepo) Checkout(name string) error {
	return r.RunGitCommand("checkout", name)
}

// AddBareRemote creates a bare repository at dir and registers it under the
// given remote name. Returns the bare repository path.
func (r *GitRepo) AddBareRemote(name, dir string) (string, error) {
	cmd := exec.Command("git", "init", "--bare", dir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to init bare repo: %w", err)
	}
	if err := r.RunGitCommand("remote", "add", name, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// PushBranch pushes a local branch to a remote
func (r *GitRepo) PushBranch(remote, branch string) error {
	return r.RunGitCommand("push", remote, branch)
}

// HeadSubject returns the subject of the current HEAD commit
func (r *GitRepo) HeadSubject() (string, error) {
	return r.RunGitCommandAndGetOutput("log", "-1", "--format=%s")
}

// Subjects returns the subject lines reachable from rev, newest first
func (r *GitRepo) Subjects(rev string) ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("log", "--format=%s", rev)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}
