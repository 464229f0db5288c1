package git

import (
	"context"
	"fmt"
	"strings"
)

// LatestUniqueSubject returns the subject line of the most recent commit on
// ref that is not reachable from exclude. Returns "" when ref contributes no
// unique commits.
func (r *realRunner) LatestUniqueSubject(ctx context.Context, ref, exclude string) (string, error) {
	output, err := r.runner().Run(ctx, "log", "-1", "--format=%s", ref, "^"+exclude)
	if err != nil {
		return "", fmt.Errorf("failed to derive subject for %s: %w", ref, err)
	}
	return strings.TrimSpace(output), nil
}

// Commit records the staged index with the given message
func (r *realRunner) Commit(ctx context.Context, message string, allowEmpty bool) error {
	args := []string{"commit", "-m", message}
	if allowEmpty {
		args = append(args, "--allow-empty")
	}
	_, err := r.runner().Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// StageAll stages all changes including untracked files
func (r *realRunner) StageAll(ctx context.Context) error {
	_, err := r.runner().Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if the staged tree differs from HEAD
func (r *realRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.runner().Run(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}
