package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default remote and branch layout. Overridable per repository via
// .git/.syncmain_config.
const (
	DefaultSharedRemote   = "origin"
	DefaultSharedBranch   = "main"
	DefaultUpstreamRemote = "upstream"
	DefaultUpstreamBranch = "main"
	DefaultSelfUpdatePath = "tools/syncmain"
)

// ExcludePrefixEnv overrides the auto-discovery exclusion prefix
const ExcludePrefixEnv = "SYNCMAIN_EXCLUDE_PREFIX"

// DefaultExcludePrefix is the prefix of origin branches skipped during auto-discovery
const DefaultExcludePrefix = "no_pr"

// RepoConfig represents the optional repository configuration
type RepoConfig struct {
	SharedRemote   *string `json:"sharedRemote,omitempty"`
	SharedBranch   *string `json:"sharedBranch,omitempty"`
	UpstreamRemote *string `json:"upstreamRemote,omitempty"`
	UpstreamBranch *string `json:"upstreamBranch,omitempty"`
	SelfUpdatePath *string `json:"selfUpdatePath,omitempty"`
}

// GetRepoConfig reads the repository configuration.
// A missing config file yields all defaults.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", ".syncmain_config")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	return &config, nil
}

func orDefault(value *string, fallback string) string {
	if value != nil && *value != "" {
		return *value
	}
	return fallback
}

// GetSharedRemote returns the remote hosting the shared integration branch
func (c *RepoConfig) GetSharedRemote() string {
	return orDefault(c.SharedRemote, DefaultSharedRemote)
}

// GetSharedBranch returns the name of the shared integration branch
func (c *RepoConfig) GetSharedBranch() string {
	return orDefault(c.SharedBranch, DefaultSharedBranch)
}

// GetUpstreamRemote returns the remote hosting the upstream baseline
func (c *RepoConfig) GetUpstreamRemote() string {
	return orDefault(c.UpstreamRemote, DefaultUpstreamRemote)
}

// GetUpstreamBranch returns the upstream baseline branch name
func (c *RepoConfig) GetUpstreamBranch() string {
	return orDefault(c.UpstreamBranch, DefaultUpstreamBranch)
}

// GetSelfUpdatePath returns the in-tree path where the running executable is
// copied on every successful run.
func (c *RepoConfig) GetSelfUpdatePath() string {
	return orDefault(c.SelfUpdatePath, DefaultSelfUpdatePath)
}

// SharedRef returns the remote-tracking ref of the shared branch
func (c *RepoConfig) SharedRef() string {
	return c.GetSharedRemote() + "/" + c.GetSharedBranch()
}

// UpstreamRef returns the remote-tracking ref of the upstream baseline
func (c *RepoConfig) UpstreamRef() string {
	return c.GetUpstreamRemote() + "/" + c.GetUpstreamBranch()
}

// GetExcludePrefix returns the auto-discovery exclusion prefix, honoring the
// environment override.
func GetExcludePrefix() string {
	if prefix := os.Getenv(ExcludePrefixEnv); prefix != "" {
		return prefix
	}
	return DefaultExcludePrefix
}
