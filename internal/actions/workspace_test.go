package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"syncmain.dev/syncmain/internal/config"
)

func TestSetupWorkspace(t *testing.T) {
	t.Parallel()

	t.Run("creates the workspace on the disposable branch", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		ctx := newTestContext(t, repo)

		ws, err := SetupWorkspace(ctx, context.Background())
		require.NoError(t, err)
		require.Equal(t, WorkspacePath(ctx.RepoRoot), ws.Path)
		require.True(t, WorkspaceExists(ctx.RepoRoot))
		require.True(t, repo.localBranches[DisposableBranch])
	})

	t.Run("setup is idempotent against crash debris", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		ctx := newTestContext(t, repo)

		_, err := SetupWorkspace(ctx, context.Background())
		require.NoError(t, err)

		// Second setup without teardown: still exactly one workspace, one
		// disposable branch, no error.
		ws, err := SetupWorkspace(ctx, context.Background())
		require.NoError(t, err)
		require.True(t, WorkspaceExists(ctx.RepoRoot))
		require.Equal(t, WorkspacePath(ctx.RepoRoot), ws.Path)
		require.True(t, repo.localBranches[DisposableBranch])
	})
}

func TestTeardownWorkspace(t *testing.T) {
	t.Parallel()

	t.Run("removes workspace, branch, and resume state", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		ctx := newTestContext(t, repo)

		_, err := SetupWorkspace(ctx, context.Background())
		require.NoError(t, err)
		require.NoError(t, config.PersistResumeState(ctx.RepoRoot, &config.ResumeState{
			BranchIndex: 0,
			Branches:    []string{"a"},
		}))

		TeardownWorkspace(ctx, context.Background())
		require.False(t, WorkspaceExists(ctx.RepoRoot))
		require.False(t, repo.localBranches[DisposableBranch])
		require.False(t, config.HasResumeState(ctx.RepoRoot))
	})

	t.Run("tolerates missing state", func(t *testing.T) {
		t.Parallel()
		ctx := newTestContext(t, newFakeRepo())

		TeardownWorkspace(ctx, context.Background())
		require.False(t, WorkspaceExists(ctx.RepoRoot))
	})
}
