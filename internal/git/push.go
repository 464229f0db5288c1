package git

import (
	"context"
	"fmt"
)

// Fetch fetches from a remote. With no refspecs it fetches everything and
// prunes deleted remote-tracking branches; transport failures propagate.
func (r *realRunner) Fetch(ctx context.Context, remote string, refspecs ...string) error {
	args := []string{"fetch"}
	if len(refspecs) == 0 {
		args = append(args, "--prune")
	}
	args = append(args, remote)
	args = append(args, refspecs...)

	_, err := r.runner().Run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to fetch from %s: %w", remote, err)
	}
	return nil
}

// ForcePush force-updates dst on the remote to point at src. This is the
// single externally visible commit point of a sync run.
func (r *realRunner) ForcePush(ctx context.Context, remote, src, dst string) error {
	_, err := r.runner().Run(ctx, "push", "--force", remote, src+":"+dst)
	if err != nil {
		return fmt.Errorf("failed to push %s to %s/%s: %w", src, remote, dst, err)
	}
	return nil
}
