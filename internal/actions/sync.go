package actions

import (
	"context"
	"fmt"

	"syncmain.dev/syncmain/internal/config"
	"syncmain.dev/syncmain/internal/runtime"
	"syncmain.dev/syncmain/internal/tui"
)

// SyncOptions are options for a full sync run
type SyncOptions struct {
	// Branches is the explicit ordered branch list; empty means auto-discovery
	Branches []string
}

// SyncAction rebuilds the shared integration branch: fetch, select branches,
// create the workspace at the upstream baseline, compose each branch as one
// squash commit, reconcile the personal layer, publish, tear down.
//
// Only one sync may be in flight per repository; a leftover resume state from
// an earlier run is discarded along with its workspace debris.
func SyncAction(ctx *runtime.Context, cctx context.Context, opts SyncOptions) error {
	if config.HasResumeState(ctx.RepoRoot) {
		ctx.Splog.Warn("Discarding the unfinished sync left behind by a previous run.")
		if err := config.ClearResumeState(ctx.RepoRoot); err != nil {
			return err
		}
	}

	if err := ensureRemotes(ctx, cctx); err != nil {
		return err
	}

	ctx.Splog.Info("Fetching %s and %s...", ctx.Config.GetUpstreamRemote(), ctx.Config.GetSharedRemote())
	if err := ctx.Runner.Fetch(cctx, ctx.Config.GetUpstreamRemote()); err != nil {
		return err
	}
	if ctx.Config.GetSharedRemote() != ctx.Config.GetUpstreamRemote() {
		if err := ctx.Runner.Fetch(cctx, ctx.Config.GetSharedRemote()); err != nil {
			return err
		}
	}

	branches, err := SelectBranches(opts.Branches, ctx.Runner,
		ctx.Config.GetSharedRemote(), ctx.Config.GetSharedBranch(), config.GetExcludePrefix())
	if err != nil {
		return err
	}
	ctx.Splog.Info("Rebuilding %s from %s plus %d branch(es)",
		tui.ColorBranchName(ctx.Config.SharedRef()), tui.ColorBranchName(ctx.Config.UpstreamRef()), len(branches))

	ws, err := SetupWorkspace(ctx, cctx)
	if err != nil {
		return err
	}

	if err := composeFrom(ctx, cctx, ws, branches, 0); err != nil {
		// On conflict the workspace and resume state intentionally survive
		return err
	}

	return finishRun(ctx, cctx, ws)
}

// finishRun is the shared tail of a full run and a resumed run
func finishRun(ctx *runtime.Context, cctx context.Context, ws *Workspace) error {
	if err := reconcilePersonalLayer(ctx, cctx, ws); err != nil {
		return err
	}
	if err := publish(ctx, cctx, ws); err != nil {
		return err
	}
	TeardownWorkspace(ctx, cctx)
	ctx.Splog.Info("Rebuilt %s.", tui.ColorBranchName(ctx.Config.SharedRef()))
	return nil
}

func ensureRemotes(ctx *runtime.Context, cctx context.Context) error {
	for _, remote := range []string{ctx.Config.GetUpstreamRemote(), ctx.Config.GetSharedRemote()} {
		exists, err := ctx.Runner.RemoteExists(cctx, remote)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("remote %q is not configured; add it with 'git remote add'", remote)
		}
	}
	return nil
}
