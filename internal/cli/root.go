// Package cli wires the cobra command surface to the sync actions.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"syncmain.dev/syncmain/internal/actions"
	"syncmain.dev/syncmain/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		continueRun bool
		abortRun    bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "syncmain [branch...]",
		Short: "Rebuild the shared integration branch from upstream plus curated branches",
		Long: `Syncmain rebuilds the shared integration branch from the upstream baseline
plus an ordered set of origin branches, each applied as a single squash
commit inside a disposable worktree.

With no arguments, origin branches are auto-discovered (excluding the shared
branch, HEAD, and names carrying the exclusion prefix, default "no_pr",
override via SYNCMAIN_EXCLUDE_PREFIX). With arguments, exactly those branches
are composed in the given order.

A merge conflict halts the run; resolve the conflicts in the workspace, stage
them with 'git add', then rerun with --continue. Use --abort to discard an
in-progress run without touching the shared branch.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if continueRun && abortRun {
				return fmt.Errorf("--continue and --abort are mutually exclusive")
			}
			if (continueRun || abortRun) && len(args) > 0 {
				return fmt.Errorf("branch arguments cannot be combined with --continue or --abort")
			}

			ctx, err := runtime.GetContext()
			if err != nil {
				return err
			}
			defer func() { _ = ctx.Splog.Close() }()

			switch {
			case continueRun:
				return actions.ContinueAction(ctx, cmd.Context())
			case abortRun:
				return actions.AbortAction(ctx, cmd.Context(), actions.AbortOptions{Force: force})
			default:
				return actions.SyncAction(ctx, cmd.Context(), actions.SyncOptions{Branches: args})
			}
		},
	}

	cmd.Flags().BoolVar(&continueRun, "continue", false, "Resume the sync halted by a merge conflict")
	cmd.Flags().BoolVar(&abortRun, "abort", false, "Discard the in-progress sync")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not prompt for confirmation with --abort")

	return cmd
}
