package git

import (
	"context"
	"errors"
	"fmt"

	syncerrors "syncmain.dev/syncmain/internal/errors"
)

// SquashMerge merges ref into the current checkout as staged changes without
// committing. A merge that stops on conflicting paths is reported as a
// MergeConflictError carrying the unresolved paths; any other failure is
// returned as-is.
func (r *realRunner) SquashMerge(ctx context.Context, ref string) error {
	_, err := r.runner().Run(ctx, "merge", "--squash", ref)
	if err == nil {
		return nil
	}

	var cmdErr *syncerrors.GitCommandError
	if !errors.As(err, &cmdErr) {
		return err
	}

	paths, pathsErr := r.UnmergedFiles(ctx)
	if pathsErr == nil && len(paths) > 0 {
		return syncerrors.NewMergeConflictError(ref, paths)
	}
	return fmt.Errorf("failed to squash-merge %s: %w", ref, err)
}

// UnmergedFiles returns the paths currently in conflict in the index
func (r *realRunner) UnmergedFiles(ctx context.Context) ([]string, error) {
	lines, err := r.runner().RunLines(ctx, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, fmt.Errorf("failed to list unmerged files: %w", err)
	}
	return lines, nil
}

// ResetHard discards all staged and working-tree modifications
func (r *realRunner) ResetHard(ctx context.Context, rev string) error {
	_, err := r.runner().Run(ctx, "reset", "--hard", rev)
	if err != nil {
		return fmt.Errorf("failed to hard reset to %s: %w", rev, err)
	}
	return nil
}
