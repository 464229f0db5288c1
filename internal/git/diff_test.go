package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffAndApplyRoundTrip(t *testing.T) {
	t.Parallel()

	repo, runner := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CommitFile("base.txt", "updated\n", "update base"))

	patch, err := runner.DiffPatch(ctx, "HEAD~1", "HEAD")
	require.NoError(t, err)
	require.NotEmpty(t, patch)

	require.NoError(t, runner.ResetHard(ctx, "HEAD~1"))
	require.NoError(t, runner.ApplyPatch(ctx, patch))

	content, err := os.ReadFile(filepath.Join(repo.Dir, "base.txt"))
	require.NoError(t, err)
	require.Equal(t, "updated\n", string(content))

	require.NoError(t, runner.StageAll(ctx))
	staged, err := runner.HasStagedChanges(ctx)
	require.NoError(t, err)
	require.True(t, staged)
}

func TestDiffPatchEmptyWhenIdentical(t *testing.T) {
	t.Parallel()

	_, runner := newTestRepo(t)

	patch, err := runner.DiffPatch(context.Background(), "HEAD", "HEAD")
	require.NoError(t, err)
	require.Empty(t, patch)
}

func TestRevParse(t *testing.T) {
	t.Parallel()

	_, runner := newTestRepo(t)

	sha, err := runner.RevParse(context.Background(), "HEAD")
	require.NoError(t, err)
	require.Len(t, sha, 40)
}
