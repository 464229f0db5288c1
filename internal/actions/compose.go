package actions

import (
	"context"
	"errors"
	"fmt"

	"syncmain.dev/syncmain/internal/config"
	syncerrors "syncmain.dev/syncmain/internal/errors"
	"syncmain.dev/syncmain/internal/runtime"
	"syncmain.dev/syncmain/internal/tui"
)

// composeFrom applies branches[start:] to the workspace, one squash commit
// per branch, strictly in order. A merge conflict persists the resume state
// and returns a MergeConflictError; the caller exits non-zero and the
// operator re-enters through --continue.
func composeFrom(ctx *runtime.Context, cctx context.Context, ws *Workspace, branches []string, start int) error {
	state := Resume(start, len(branches))

	for state.Phase == PhasePending {
		branch := branches[state.Index]
		ctx.Splog.Info("Composing %s (%d of %d)...", tui.ColorBranchName(branch), state.Index+1, len(branches))

		err := composeBranch(ctx, cctx, ws, branch)
		if err == nil {
			state = Next(state, len(branches), StepClean)
			continue
		}

		var conflict *syncerrors.MergeConflictError
		if !errors.As(err, &conflict) {
			return err
		}

		state = Next(state, len(branches), StepConflict)
		if persistErr := config.PersistResumeState(ctx.RepoRoot, &config.ResumeState{
			BranchIndex: state.Index,
			Branches:    branches,
		}); persistErr != nil {
			return persistErr
		}
		reportConflict(ctx, ws, branch, conflict.Paths)
		return conflict
	}

	return nil
}

// composeBranch squash-merges one branch and commits it with the derived subject
func composeBranch(ctx *runtime.Context, cctx context.Context, ws *Workspace, branch string) error {
	ref := ctx.Config.GetSharedRemote() + "/" + branch

	if err := ws.Runner.SquashMerge(cctx, ref); err != nil {
		return err
	}

	subject, err := deriveSubject(ctx, cctx, ws, branch)
	if err != nil {
		return err
	}

	// A branch contributing no unique history still produces a commit, so
	// the final commit count always matches the branch count.
	if err := ws.Runner.Commit(cctx, subject, true); err != nil {
		return fmt.Errorf("failed to commit %s: %w", branch, err)
	}
	return nil
}

// deriveSubject returns the subject line of the branch's most recent commit
// not reachable from the upstream baseline, falling back to a synthesized
// subject when the branch contributes nothing unique.
func deriveSubject(ctx *runtime.Context, cctx context.Context, ws *Workspace, branch string) (string, error) {
	ref := ctx.Config.GetSharedRemote() + "/" + branch
	subject, err := ws.Runner.LatestUniqueSubject(cctx, ref, ctx.Config.UpstreamRef())
	if err != nil {
		return "", err
	}
	if subject == "" {
		subject = "merge " + branch
	}
	return subject, nil
}

func reportConflict(ctx *runtime.Context, ws *Workspace, branch string, paths []string) {
	ctx.Splog.Error("Merge conflict while composing %s.", tui.ColorBranchName(branch))
	if len(paths) > 0 {
		ctx.Splog.Info("Conflicting files:")
		for _, path := range paths {
			ctx.Splog.Info("  %s", tui.ColorRed(path))
		}
	}
	ctx.Splog.Newline()
	ctx.Splog.Info("Resolve the conflicts in %s and stage the result with 'git add'.", ws.Path)
	ctx.Splog.Tip("Then run 'syncmain --continue' to resume, or 'syncmain --abort' to discard the run.")
}
