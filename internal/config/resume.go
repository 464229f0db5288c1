// Package config provides repository configuration and the persisted resume
// state that lets a sync run span process invocations across a conflict halt.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	syncerrors "syncmain.dev/syncmain/internal/errors"
)

// ResumeState is the persisted resume point of a sync halted by a merge
// conflict. The branch list is stored verbatim so a resumed run uses exactly
// the original order even if origin branches change mid-run.
type ResumeState struct {
	BranchIndex int
	Branches    []string
}

func resumePath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ".syncmain_resume")
}

// HasResumeState reports whether a sync is in progress. Presence of the state
// file is the signal; absence means clean state.
func HasResumeState(repoRoot string) bool {
	_, err := os.Stat(resumePath(repoRoot))
	return err == nil
}

// GetResumeState reads the resume state from disk.
// Returns ErrNoSyncInProgress when no state file exists.
func GetResumeState(repoRoot string) (*ResumeState, error) {
	data, err := os.ReadFile(resumePath(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, syncerrors.ErrNoSyncInProgress
		}
		return nil, fmt.Errorf("failed to read resume state: %w", err)
	}

	state := &ResumeState{BranchIndex: -1}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("failed to parse resume state line %q", line)
		}
		switch key {
		case "branch_index":
			index, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("failed to parse branch_index: %w", err)
			}
			state.BranchIndex = index
		case "branches":
			state.Branches = strings.Fields(value)
		}
	}

	if state.BranchIndex < 0 || state.BranchIndex >= len(state.Branches) {
		return nil, fmt.Errorf("corrupt resume state: index %d out of range for %d branches",
			state.BranchIndex, len(state.Branches))
	}
	return state, nil
}

// PersistResumeState writes the resume state to disk as a small key-value
// text file under .git, outside the disposable workspace, so it survives
// workspace recreation.
func PersistResumeState(repoRoot string, state *ResumeState) error {
	content := fmt.Sprintf("branch_index=%d\nbranches=%s\n",
		state.BranchIndex, strings.Join(state.Branches, " "))
	if err := os.WriteFile(resumePath(repoRoot), []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to persist resume state: %w", err)
	}
	return nil
}

// ClearResumeState removes the resume state file. Missing state is not an error.
func ClearResumeState(repoRoot string) error {
	err := os.Remove(resumePath(repoRoot))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear resume state: %w", err)
	}
	return nil
}
