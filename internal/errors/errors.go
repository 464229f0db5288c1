// Package errors provides sentinel errors and custom error types for the syncmain application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrMergeConflict indicates that a squash-merge halted with unresolved paths
	ErrMergeConflict = errors.New("merge conflict")

	// ErrNoEligibleBranches indicates that auto-discovery found no branches to compose
	ErrNoEligibleBranches = errors.New("no eligible branches")

	// ErrNoSyncInProgress indicates that --continue was invoked with no persisted state
	ErrNoSyncInProgress = errors.New("no sync in progress")

	// ErrWorkspaceMissing indicates that resume state exists but the workspace is gone
	ErrWorkspaceMissing = errors.New("workspace missing")

	// ErrNotARepository indicates the tool was not invoked from inside a git repository
	ErrNotARepository = errors.New("not a git repository")
)

// MergeConflictError represents a squash-merge that halted with unresolved paths
type MergeConflictError struct {
	Branch string
	Paths  []string
}

func (e *MergeConflictError) Error() string {
	if len(e.Paths) > 0 {
		return fmt.Sprintf("merge conflict on branch %s: %s", e.Branch, strings.Join(e.Paths, ", "))
	}
	return fmt.Sprintf("merge conflict on branch %s", e.Branch)
}

// Is returns true if the target error is ErrMergeConflict
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

// NewMergeConflictError creates a new MergeConflictError
func NewMergeConflictError(branch string, paths []string) *MergeConflictError {
	return &MergeConflictError{Branch: branch, Paths: paths}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
