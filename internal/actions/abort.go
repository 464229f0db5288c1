package actions

import (
	"context"

	"syncmain.dev/syncmain/internal/config"
	"syncmain.dev/syncmain/internal/runtime"
	"syncmain.dev/syncmain/internal/tui"
)

// AbortOptions contains options for the abort command
type AbortOptions struct {
	Force bool
}

// AbortAction discards an in-progress sync: all workspace modifications are
// dropped, the workspace and resume state are removed, and the shared branch
// is left exactly as it was before the run started.
func AbortAction(ctx *runtime.Context, cctx context.Context, opts AbortOptions) error {
	hasState := config.HasResumeState(ctx.RepoRoot)
	hasWorkspace := WorkspaceExists(ctx.RepoRoot)

	if !hasState && !hasWorkspace {
		ctx.Splog.Info("No sync in progress to abort.")
		return nil
	}

	if !opts.Force && tui.IsInteractive() {
		confirmed, err := tui.PromptConfirm("Abort the in-progress sync? Workspace changes will be discarded.", false)
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.Splog.Info("Abort canceled.")
			return nil
		}
	}

	if hasWorkspace {
		// Drop the half-staged squash merge before removing the worktree
		ws := OpenWorkspace(ctx)
		_ = ws.Runner.ResetHard(cctx, "HEAD")
	}
	TeardownWorkspace(ctx, cctx)

	ctx.Splog.Info("Sync aborted. The shared branch was not modified.")
	return nil
}
