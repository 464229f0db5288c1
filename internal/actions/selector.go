package actions

import (
	"fmt"
	"strings"

	syncerrors "syncmain.dev/syncmain/internal/errors"
	"syncmain.dev/syncmain/internal/git"
)

// SelectBranches builds the ordered branch selection list. Explicit names are
// taken verbatim, in the given order, with no validation against existence —
// a bad name surfaces later, at merge time. With no explicit names, origin
// branches are auto-discovered, skipping the shared branch itself, the
// symbolic HEAD entry, and any name carrying the exclusion prefix.
//
// Discovery order is whatever the reference store yields; it is not sorted.
func SelectBranches(explicit []string, runner git.Runner, sharedRemote, sharedBranch, excludePrefix string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}

	names, err := runner.ListRemoteBranches(sharedRemote)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s branches: %w", sharedRemote, err)
	}

	var selected []string
	for _, name := range names {
		if name == sharedBranch || name == "HEAD" {
			continue
		}
		if excludePrefix != "" && strings.HasPrefix(name, excludePrefix) {
			continue
		}
		selected = append(selected, name)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: no %s branches eligible for composition (exclusion prefix %q)",
			syncerrors.ErrNoEligibleBranches, sharedRemote, excludePrefix)
	}
	return selected, nil
}
