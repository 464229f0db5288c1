package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepoConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		root := newRepoRoot(t)

		cfg, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.Equal(t, "origin", cfg.GetSharedRemote())
		require.Equal(t, "main", cfg.GetSharedBranch())
		require.Equal(t, "upstream", cfg.GetUpstreamRemote())
		require.Equal(t, "main", cfg.GetUpstreamBranch())
		require.Equal(t, "tools/syncmain", cfg.GetSelfUpdatePath())
		require.Equal(t, "origin/main", cfg.SharedRef())
		require.Equal(t, "upstream/main", cfg.UpstreamRef())
	})

	t.Run("configured values win", func(t *testing.T) {
		root := newRepoRoot(t)

		configPath := filepath.Join(root, ".git", ".syncmain_config")
		content := `{"sharedBranch": "integration", "upstreamRemote": "source"}`
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

		cfg, err := GetRepoConfig(root)
		require.NoError(t, err)
		require.Equal(t, "origin/integration", cfg.SharedRef())
		require.Equal(t, "source/main", cfg.UpstreamRef())
	})

	t.Run("malformed config is an error", func(t *testing.T) {
		root := newRepoRoot(t)

		configPath := filepath.Join(root, ".git", ".syncmain_config")
		require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0600))

		_, err := GetRepoConfig(root)
		require.ErrorContains(t, err, "failed to parse repo config")
	})
}

func TestGetExcludePrefix(t *testing.T) {
	t.Run("defaults to no_pr", func(t *testing.T) {
		t.Setenv(ExcludePrefixEnv, "")
		require.Equal(t, "no_pr", GetExcludePrefix())
	})

	t.Run("environment override wins", func(t *testing.T) {
		t.Setenv(ExcludePrefixEnv, "wip_")
		require.Equal(t, "wip_", GetExcludePrefix())
	})
}
