package actions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"syncmain.dev/syncmain/internal/runtime"
)

// newTestContext builds a runtime context over a fake repository with a
// throwaway repo root that has a .git directory for persisted state.
func newTestContext(t *testing.T, repo *fakeRepo) *runtime.Context {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0750))
	return runtime.NewContext(newFakeRunner(repo), root, nil)
}
