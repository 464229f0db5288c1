package actions

import (
	"context"
	"os"

	syncerrors "syncmain.dev/syncmain/internal/errors"
	"syncmain.dev/syncmain/internal/git"
)

// fakeRepo is the repository state shared by all InDir clones of a fakeRunner
type fakeRepo struct {
	remotes        map[string]bool
	remoteBranches map[string][]string
	remoteRefs     map[string]bool
	localBranches  map[string]bool
	subjects       map[string]string   // ref -> unique subject, "" means none
	conflicts      map[string][]string // ref -> unmerged paths

	commits  []string // committed subjects, in order
	fetches  []string
	pushes   []string
	resets   []string
	applied  []string
	unmerged []string

	diffs        map[string]string // "from to" -> patch
	applyErr     error
	applyIsNoop  bool
	pendingStage bool
	stagedDirty  bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		remotes:        map[string]bool{"origin": true, "upstream": true},
		remoteBranches: map[string][]string{},
		remoteRefs:     map[string]bool{},
		localBranches:  map[string]bool{},
		subjects:       map[string]string{},
		conflicts:      map[string][]string{},
		diffs:          map[string]string{},
	}
}

type fakeRunner struct {
	dir  string
	repo *fakeRepo
}

func newFakeRunner(repo *fakeRepo) *fakeRunner {
	return &fakeRunner{repo: repo}
}

func (f *fakeRunner) InDir(dir string) git.Runner {
	return &fakeRunner{dir: dir, repo: f.repo}
}

func (f *fakeRunner) Dir() string { return f.dir }

func (f *fakeRunner) RemoteExists(_ context.Context, remote string) (bool, error) {
	return f.repo.remotes[remote], nil
}

func (f *fakeRunner) Fetch(_ context.Context, remote string, refspecs ...string) error {
	entry := remote
	for _, refspec := range refspecs {
		entry += " " + refspec
	}
	f.repo.fetches = append(f.repo.fetches, entry)
	return nil
}

func (f *fakeRunner) ListRemoteBranches(remote string) ([]string, error) {
	return f.repo.remoteBranches[remote], nil
}

func (f *fakeRunner) RemoteBranchExists(_ context.Context, remote, branch string) (bool, error) {
	return f.repo.remoteRefs[remote+"/"+branch], nil
}

func (f *fakeRunner) BranchExists(_ context.Context, branch string) (bool, error) {
	return f.repo.localBranches[branch], nil
}

func (f *fakeRunner) DeleteBranch(_ context.Context, branch string) error {
	delete(f.repo.localBranches, branch)
	return nil
}

func (f *fakeRunner) AddWorktree(_ context.Context, path, newBranch, _ string) error {
	if err := os.MkdirAll(path, 0750); err != nil {
		return err
	}
	f.repo.localBranches[newBranch] = true
	return nil
}

func (f *fakeRunner) RemoveWorktree(_ context.Context, path string) error {
	return os.RemoveAll(path)
}

func (f *fakeRunner) PruneWorktrees(context.Context) error { return nil }

func (f *fakeRunner) SquashMerge(_ context.Context, ref string) error {
	if paths, ok := f.repo.conflicts[ref]; ok {
		f.repo.unmerged = paths
		return syncerrors.NewMergeConflictError(ref, paths)
	}
	f.repo.stagedDirty = true
	return nil
}

func (f *fakeRunner) UnmergedFiles(context.Context) ([]string, error) {
	return f.repo.unmerged, nil
}

func (f *fakeRunner) LatestUniqueSubject(_ context.Context, ref, _ string) (string, error) {
	return f.repo.subjects[ref], nil
}

func (f *fakeRunner) Commit(_ context.Context, message string, _ bool) error {
	f.repo.commits = append(f.repo.commits, message)
	f.repo.stagedDirty = false
	return nil
}

func (f *fakeRunner) StageAll(context.Context) error {
	if f.repo.pendingStage {
		f.repo.stagedDirty = true
		f.repo.pendingStage = false
	}
	return nil
}

func (f *fakeRunner) HasStagedChanges(context.Context) (bool, error) {
	return f.repo.stagedDirty, nil
}

func (f *fakeRunner) ResetHard(_ context.Context, rev string) error {
	f.repo.resets = append(f.repo.resets, rev)
	f.repo.unmerged = nil
	f.repo.stagedDirty = false
	return nil
}

func (f *fakeRunner) DiffPatch(_ context.Context, from, to string) (string, error) {
	return f.repo.diffs[from+" "+to], nil
}

func (f *fakeRunner) ApplyPatch(_ context.Context, patch string) error {
	if f.repo.applyErr != nil {
		return f.repo.applyErr
	}
	f.repo.applied = append(f.repo.applied, patch)
	if !f.repo.applyIsNoop {
		f.repo.pendingStage = true
	}
	return nil
}

func (f *fakeRunner) RevParse(context.Context, string) (string, error) {
	return "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef", nil
}

func (f *fakeRunner) ForcePush(_ context.Context, remote, src, dst string) error {
	f.repo.pushes = append(f.repo.pushes, remote+" "+src+":"+dst)
	return nil
}
