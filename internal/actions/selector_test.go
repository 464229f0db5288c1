package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	syncerrors "syncmain.dev/syncmain/internal/errors"
)

func TestSelectBranches(t *testing.T) {
	t.Parallel()

	t.Run("explicit list is taken verbatim", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.remoteBranches["origin"] = []string{"other"}

		branches, err := SelectBranches([]string{"c", "a", "main"}, newFakeRunner(repo), "origin", "main", "no_pr")
		require.NoError(t, err)
		require.Equal(t, []string{"c", "a", "main"}, branches)
	})

	t.Run("auto-discovery excludes shared branch, HEAD, and prefixed names", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.remoteBranches["origin"] = []string{"main", "HEAD", "no_pr_x", "feat_y"}

		branches, err := SelectBranches(nil, newFakeRunner(repo), "origin", "main", "no_pr")
		require.NoError(t, err)
		require.Equal(t, []string{"feat_y"}, branches)
	})

	t.Run("discovery preserves enumeration order", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.remoteBranches["origin"] = []string{"zeta", "alpha", "main", "mid"}

		branches, err := SelectBranches(nil, newFakeRunner(repo), "origin", "main", "no_pr")
		require.NoError(t, err)
		require.Equal(t, []string{"zeta", "alpha", "mid"}, branches)
	})

	t.Run("custom exclusion prefix", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.remoteBranches["origin"] = []string{"exp_a", "feat_b"}

		branches, err := SelectBranches(nil, newFakeRunner(repo), "origin", "main", "exp")
		require.NoError(t, err)
		require.Equal(t, []string{"feat_b"}, branches)
	})

	t.Run("empty discovery is terminal", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.remoteBranches["origin"] = []string{"main", "HEAD", "no_pr_only"}

		_, err := SelectBranches(nil, newFakeRunner(repo), "origin", "main", "no_pr")
		require.ErrorIs(t, err, syncerrors.ErrNoEligibleBranches)
	})
}
