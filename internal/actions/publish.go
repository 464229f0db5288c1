package actions

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"syncmain.dev/syncmain/internal/runtime"
)

// selfUpdateSubject is the commit message of the tool distribution commit
const selfUpdateSubject = "update syncmain"

// publish force-updates the shared remote branch to the workspace tip and
// re-fetches it so the invoker's remote-tracking ref matches without touching
// any working files. The shared branch is always fully rebuilt; nothing
// observable changes on it until the push succeeds.
func publish(ctx *runtime.Context, cctx context.Context, ws *Workspace) error {
	if err := selfUpdate(ctx, cctx, ws); err != nil {
		return err
	}

	remote := ctx.Config.GetSharedRemote()
	branch := ctx.Config.GetSharedBranch()

	ctx.Splog.Info("Publishing %s", ctx.Config.SharedRef())
	if err := ws.Runner.ForcePush(cctx, remote, DisposableBranch, branch); err != nil {
		return err
	}

	return ctx.Runner.Fetch(cctx, remote, branch)
}

// selfUpdate copies the running executable into the rebuilt branch so future
// fetches of the shared branch carry the current tool version. This is a
// distribution mechanism, not incidental.
func selfUpdate(ctx *runtime.Context, cctx context.Context, ws *Workspace) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate own executable: %w", err)
	}

	dst := filepath.Join(ws.Path, filepath.FromSlash(ctx.Config.GetSelfUpdatePath()))
	if err := copySelf(exe, dst); err != nil {
		return err
	}

	if err := ws.Runner.StageAll(cctx); err != nil {
		return err
	}
	staged, err := ws.Runner.HasStagedChanges(cctx)
	if err != nil {
		return err
	}
	if !staged {
		return nil
	}
	return ws.Runner.Commit(cctx, selfUpdateSubject, false)
}

// copySelf copies the tool verbatim, preserving the executable bit
func copySelf(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(dst), err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
