package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"syncmain.dev/syncmain/internal/config"
	syncerrors "syncmain.dev/syncmain/internal/errors"
)

func TestComposeFrom(t *testing.T) {
	t.Parallel()

	t.Run("one squash commit per branch, in order", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.subjects["origin/a"] = "subject a"
		repo.subjects["origin/b"] = "subject b"
		// origin/c contributes no unique commit: synthesized subject
		ctx := newTestContext(t, repo)

		ws, err := SetupWorkspace(ctx, context.Background())
		require.NoError(t, err)

		err = composeFrom(ctx, context.Background(), ws, []string{"a", "b", "c"}, 0)
		require.NoError(t, err)
		require.Equal(t, []string{"subject a", "subject b", "merge c"}, repo.commits)
		require.False(t, config.HasResumeState(ctx.RepoRoot))
	})

	t.Run("conflict persists resume state and halts", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.subjects["origin/a"] = "subject a"
		repo.conflicts["origin/b"] = []string{"src/app.go", "README"}
		ctx := newTestContext(t, repo)

		ws, err := SetupWorkspace(ctx, context.Background())
		require.NoError(t, err)

		err = composeFrom(ctx, context.Background(), ws, []string{"a", "b", "c"}, 0)
		require.ErrorIs(t, err, syncerrors.ErrMergeConflict)

		// Only the branch before the conflict was committed
		require.Equal(t, []string{"subject a"}, repo.commits)

		state, err := config.GetResumeState(ctx.RepoRoot)
		require.NoError(t, err)
		require.Equal(t, 1, state.BranchIndex)
		require.Equal(t, []string{"a", "b", "c"}, state.Branches)
	})

	t.Run("starts at the given index", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.subjects["origin/c"] = "subject c"
		ctx := newTestContext(t, repo)

		ws, err := SetupWorkspace(ctx, context.Background())
		require.NoError(t, err)

		err = composeFrom(ctx, context.Background(), ws, []string{"a", "b", "c"}, 2)
		require.NoError(t, err)
		require.Equal(t, []string{"subject c"}, repo.commits)
	})
}
