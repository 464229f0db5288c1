package git

import (
	"context"
	"fmt"
)

// DiffPatch returns the full-tree patch transforming from into to.
// Output is raw so the patch survives a round-trip through apply.
func (r *realRunner) DiffPatch(ctx context.Context, from, to string) (string, error) {
	output, err := r.runner().RunRaw(ctx, "diff", "--binary", from, to)
	if err != nil {
		return "", fmt.Errorf("failed to diff %s against %s: %w", from, to, err)
	}
	return output, nil
}

// ApplyPatch applies a patch to the working tree. Patches that add no content
// (empty-file creation) are permitted.
func (r *realRunner) ApplyPatch(ctx context.Context, patch string) error {
	_, err := r.runner().RunWithInput(ctx, patch, "apply", "--allow-empty", "--whitespace=nowarn")
	if err != nil {
		return fmt.Errorf("failed to apply patch: %w", err)
	}
	return nil
}

// RevParse resolves rev to a commit SHA
func (r *realRunner) RevParse(ctx context.Context, rev string) (string, error) {
	output, err := r.runner().Run(ctx, "rev-parse", rev)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", rev, err)
	}
	return output, nil
}
