package git

import (
	"context"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ListRemoteBranches returns the names of all remote-tracking branches under
// the given remote, in the enumeration order of the underlying reference
// store. The symbolic HEAD entry is included and is filtered by the caller.
func ListRemoteBranches(repoRoot, remote string) ([]string, error) {
	repo, err := gogit.PlainOpenWithOptions(repoRoot, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}

	prefix := "refs/remotes/" + remote + "/"
	var names []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if strings.HasPrefix(name, prefix) {
			names = append(names, strings.TrimPrefix(name, prefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}

	return names, nil
}

func (r *realRunner) ListRemoteBranches(remote string) ([]string, error) {
	root := r.workingDir
	if root == "" {
		root = "."
	}
	return ListRemoteBranches(root, remote)
}

func (r *realRunner) RemoteExists(ctx context.Context, remote string) (bool, error) {
	_, err := r.runner().Run(ctx, "remote", "get-url", remote)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *realRunner) RemoteBranchExists(ctx context.Context, remote, branch string) (bool, error) {
	_, err := r.runner().Run(ctx, "rev-parse", "--verify", "--quiet", "refs/remotes/"+remote+"/"+branch)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *realRunner) BranchExists(ctx context.Context, branch string) (bool, error) {
	_, err := r.runner().Run(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// DeleteBranch force-deletes a local branch
func (r *realRunner) DeleteBranch(ctx context.Context, branch string) error {
	_, err := r.runner().Run(ctx, "branch", "-D", branch)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branch, err)
	}
	return nil
}
