package git

import (
	"context"
	"fmt"
)

// AddWorktree creates a worktree at path on a new branch created from startPoint
func (r *realRunner) AddWorktree(ctx context.Context, path, newBranch, startPoint string) error {
	_, err := r.runner().Run(ctx, "worktree", "add", "-b", newBranch, path, startPoint)
	if err != nil {
		return fmt.Errorf("failed to add worktree at %s: %w", path, err)
	}
	return nil
}

// RemoveWorktree removes the worktree at path, discarding any local modifications
func (r *realRunner) RemoveWorktree(ctx context.Context, path string) error {
	_, err := r.runner().Run(ctx, "worktree", "remove", "--force", path)
	if err != nil {
		return fmt.Errorf("failed to remove worktree at %s: %w", path, err)
	}
	return nil
}

// PruneWorktrees drops worktree bookkeeping for directories that no longer exist
func (r *realRunner) PruneWorktrees(ctx context.Context) error {
	_, err := r.runner().Run(ctx, "worktree", "prune")
	if err != nil {
		return fmt.Errorf("failed to prune worktrees: %w", err)
	}
	return nil
}
