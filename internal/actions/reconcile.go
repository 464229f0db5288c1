package actions

import (
	"context"

	"syncmain.dev/syncmain/internal/runtime"
)

// personalLayerSubject is the commit message of the reconciliation commit
const personalLayerSubject = "restore personal layer"

// reconcilePersonalLayer reapplies, as one trailing commit, whatever the
// previously published shared branch carried that the rebuilt baseline does
// not. Best-effort on purpose: a patch that no longer applies is skipped with
// a warning, because the primary composition already succeeded and blocking
// the publish would trade availability for consistency.
func reconcilePersonalLayer(ctx *runtime.Context, cctx context.Context, ws *Workspace) error {
	exists, err := ctx.Runner.RemoteBranchExists(cctx, ctx.Config.GetSharedRemote(), ctx.Config.GetSharedBranch())
	if err != nil {
		return err
	}
	if !exists {
		ctx.Splog.Debug("Shared branch %s has not been published yet; skipping reconciliation", ctx.Config.SharedRef())
		return nil
	}

	patch, err := ws.Runner.DiffPatch(cctx, "HEAD", ctx.Config.SharedRef())
	if err != nil {
		return err
	}
	if patch == "" {
		ctx.Splog.Debug("No personal layer to restore")
		return nil
	}

	if err := ws.Runner.ApplyPatch(cctx, patch); err != nil {
		ctx.Splog.Warn("Could not reapply the personal layer from %s; continuing without it.", ctx.Config.SharedRef())
		ctx.Splog.Warn("Reconcile those edits manually after the sync completes.")
		ctx.Splog.Debug("Patch apply failed: %v", err)
		return nil
	}

	if err := ws.Runner.StageAll(cctx); err != nil {
		return err
	}

	// The patch can apply yet normalize to no change; only commit a real diff
	staged, err := ws.Runner.HasStagedChanges(cctx)
	if err != nil {
		return err
	}
	if !staged {
		return nil
	}

	ctx.Splog.Info("Restoring personal layer from %s", ctx.Config.SharedRef())
	return ws.Runner.Commit(cctx, personalLayerSubject, false)
}
