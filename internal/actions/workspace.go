package actions

import (
	"context"
	"os"
	"path/filepath"

	"syncmain.dev/syncmain/internal/config"
	"syncmain.dev/syncmain/internal/git"
	"syncmain.dev/syncmain/internal/runtime"
)

// DisposableBranch is the temporary branch pointer the workspace is rooted at
const DisposableBranch = "_sync-main-tmp"

// worktreeDirName lives under .git so the invoker's working files are never touched
const worktreeDirName = "syncmain-worktree"

// Workspace is the isolated checkout the shared branch is rebuilt in
type Workspace struct {
	Path   string
	Runner git.Runner
}

// WorkspacePath returns the well-known workspace location for a repository
func WorkspacePath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", worktreeDirName)
}

// WorkspaceExists reports whether the workspace directory is present
func WorkspaceExists(repoRoot string) bool {
	info, err := os.Stat(WorkspacePath(repoRoot))
	return err == nil && info.IsDir()
}

// OpenWorkspace returns a handle to an existing workspace, as used by
// --continue after the operator resolved conflicts in place.
func OpenWorkspace(ctx *runtime.Context) *Workspace {
	path := WorkspacePath(ctx.RepoRoot)
	return &Workspace{Path: path, Runner: ctx.Runner.InDir(path)}
}

// SetupWorkspace creates a fresh workspace rooted at the upstream baseline
// tip. Debris from a previous run that never reached teardown — a stale
// worktree directory, the disposable branch pointer — is destroyed first,
// which makes setup idempotent.
func SetupWorkspace(ctx *runtime.Context, cctx context.Context) (*Workspace, error) {
	path := WorkspacePath(ctx.RepoRoot)
	runner := ctx.Runner

	if WorkspaceExists(ctx.RepoRoot) {
		ctx.Splog.Debug("Removing stale workspace at %s", path)
		if err := runner.RemoveWorktree(cctx, path); err != nil {
			// The worktree may be unregistered but the directory left behind
			_ = os.RemoveAll(path)
			_ = runner.PruneWorktrees(cctx)
		}
	}
	if exists, _ := runner.BranchExists(cctx, DisposableBranch); exists {
		if err := runner.DeleteBranch(cctx, DisposableBranch); err != nil {
			return nil, err
		}
	}

	if err := runner.AddWorktree(cctx, path, DisposableBranch, ctx.Config.UpstreamRef()); err != nil {
		return nil, err
	}

	return &Workspace{Path: path, Runner: runner.InDir(path)}, nil
}

// TeardownWorkspace removes the workspace, the disposable branch pointer, and
// the resume state. Best-effort: partial or missing state never fails the run.
func TeardownWorkspace(ctx *runtime.Context, cctx context.Context) {
	path := WorkspacePath(ctx.RepoRoot)
	runner := ctx.Runner

	if err := runner.RemoveWorktree(cctx, path); err != nil {
		_ = os.RemoveAll(path)
		_ = runner.PruneWorktrees(cctx)
	}
	if exists, _ := runner.BranchExists(cctx, DisposableBranch); exists {
		_ = runner.DeleteBranch(cctx, DisposableBranch)
	}
	if err := config.ClearResumeState(ctx.RepoRoot); err != nil {
		ctx.Splog.Debug("Failed to clear resume state: %v", err)
	}
}
