package actions

import (
	"context"
	"fmt"
	"strings"

	"syncmain.dev/syncmain/internal/config"
	syncerrors "syncmain.dev/syncmain/internal/errors"
	"syncmain.dev/syncmain/internal/runtime"
	"syncmain.dev/syncmain/internal/tui"
)

// ContinueAction resumes a sync halted by a merge conflict. The operator has
// staged resolutions directly in the workspace; the conflicted branch is
// committed with a freshly derived subject, then composition resumes at the
// next index and the run finishes normally.
func ContinueAction(ctx *runtime.Context, cctx context.Context) error {
	state, err := config.GetResumeState(ctx.RepoRoot)
	if err != nil {
		return err
	}

	if !WorkspaceExists(ctx.RepoRoot) {
		return fmt.Errorf("%w: resume state exists but the workspace is gone; run 'syncmain --abort' and restart the sync",
			syncerrors.ErrWorkspaceMissing)
	}
	ws := OpenWorkspace(ctx)

	unmerged, err := ws.Runner.UnmergedFiles(cctx)
	if err != nil {
		return err
	}
	if len(unmerged) > 0 {
		return fmt.Errorf("unresolved conflicts remain: %s\nstage the resolutions with 'git add' and rerun 'syncmain --continue'",
			strings.Join(unmerged, ", "))
	}

	branch := state.Branches[state.BranchIndex]
	subject, err := deriveSubject(ctx, cctx, ws, branch)
	if err != nil {
		return err
	}
	if err := ws.Runner.Commit(cctx, subject, true); err != nil {
		return err
	}
	ctx.Splog.Info("Resolved conflict for %s.", tui.ColorBranchName(branch))

	// composeFrom re-persists the state if a later branch conflicts
	if err := config.ClearResumeState(ctx.RepoRoot); err != nil {
		return err
	}
	if err := composeFrom(ctx, cctx, ws, state.Branches, state.BranchIndex+1); err != nil {
		return err
	}

	return finishRun(ctx, cctx, ws)
}
