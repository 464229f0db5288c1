// Package git wraps the external version-control engine. Repository reads go
// through go-git; anything that mutates repository state shells out to the
// git CLI through CommandRunner.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	syncerrors "syncmain.dev/syncmain/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner rooted at dir
func NewCommandRunner(dir string) *CommandRunner {
	return &CommandRunner{workingDir: dir}
}

// Run executes a git command with the given context and returns trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, "", true, args...)
}

// RunRaw executes a git command and returns the raw output (no trimming)
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, "", false, args...)
}

// RunWithInput executes a git command with the given stdin and returns trimmed output
func (r *CommandRunner) RunWithInput(ctx context.Context, input string, args ...string) (string, error) {
	return r.runInternal(ctx, input, true, args...)
}

// RunLines executes a git command and returns its output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

func (r *CommandRunner) runInternal(ctx context.Context, input string, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", syncerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", syncerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// Runner is the narrow collaborator interface consumed by the sync workflow.
// It covers exactly the engine operations the workflow needs, so the
// composition and state-machine logic can be tested against a fake
// implementation without a real repository.
type Runner interface {
	// InDir returns a Runner bound to a different working directory.
	// Used to run workspace-confined operations inside the disposable worktree.
	InDir(dir string) Runner
	Dir() string

	// Remotes and fetch
	RemoteExists(ctx context.Context, remote string) (bool, error)
	Fetch(ctx context.Context, remote string, refspecs ...string) error
	ListRemoteBranches(remote string) ([]string, error)
	RemoteBranchExists(ctx context.Context, remote, branch string) (bool, error)

	// Branches and worktrees
	BranchExists(ctx context.Context, branch string) (bool, error)
	DeleteBranch(ctx context.Context, branch string) error
	AddWorktree(ctx context.Context, path, newBranch, startPoint string) error
	RemoveWorktree(ctx context.Context, path string) error
	PruneWorktrees(ctx context.Context) error

	// Merge and commit
	SquashMerge(ctx context.Context, ref string) error
	UnmergedFiles(ctx context.Context) ([]string, error)
	LatestUniqueSubject(ctx context.Context, ref, exclude string) (string, error)
	Commit(ctx context.Context, message string, allowEmpty bool) error
	StageAll(ctx context.Context) error
	HasStagedChanges(ctx context.Context) (bool, error)
	ResetHard(ctx context.Context, rev string) error

	// Diff and patch
	DiffPatch(ctx context.Context, from, to string) (string, error)
	ApplyPatch(ctx context.Context, patch string) error
	RevParse(ctx context.Context, rev string) (string, error)

	// Publish
	ForcePush(ctx context.Context, remote, src, dst string) error
}

// NewRunner returns the standard Runner implementation, operating in the
// process working directory.
func NewRunner() Runner {
	return &realRunner{}
}

// NewRunnerInDir returns the standard Runner implementation bound to dir.
func NewRunnerInDir(dir string) Runner {
	return &realRunner{workingDir: dir}
}

// realRunner implements Runner by shelling out to git (and go-git for reads)
type realRunner struct {
	workingDir string
}

func (r *realRunner) InDir(dir string) Runner {
	return &realRunner{workingDir: dir}
}

func (r *realRunner) Dir() string {
	return r.workingDir
}

func (r *realRunner) runner() *CommandRunner {
	return &CommandRunner{workingDir: r.workingDir}
}
