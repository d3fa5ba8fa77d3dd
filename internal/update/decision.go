package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillman-io/skillman/internal/gitops"
)

// Decision classifies one checkout for update eligibility.
type Decision struct {
	Eligible bool
	// Reason explains a skip; empty when eligible.
	Reason string
}

// artifactExcludes are generated files kept out of version-control tracking
// so they never count as local drift.
var artifactExcludes = []string{"*.pyc", "__pycache__/", "settings.json"}

// shouldUpdate applies the conservative update policy: only a clean
// checkout sitting on the mainline branch, not ahead of its upstream, with
// a non-interactive remote, is eligible. Any drift means skip, never a
// forced or merged update.
func shouldUpdate(ctx context.Context, dir, mainline string) (Decision, error) {
	remote, err := gitops.RemoteURL(ctx, dir)
	if err != nil {
		return Decision{}, fmt.Errorf("reading remote: %w", err)
	}
	if interactiveRemote(remote) {
		return Decision{Reason: "remote requires interactive authentication"}, nil
	}

	branch, err := gitops.CurrentBranch(ctx, dir)
	if err != nil {
		return Decision{}, fmt.Errorf("reading branch: %w", err)
	}
	if branch != mainline {
		return Decision{Reason: fmt.Sprintf("on branch %s, not %s", branch, mainline)}, nil
	}

	dirty, err := gitops.HasTrackedChanges(ctx, dir)
	if err != nil {
		return Decision{}, fmt.Errorf("reading status: %w", err)
	}
	if dirty {
		return Decision{Reason: "local modifications"}, nil
	}

	ahead, err := gitops.AheadCount(ctx, dir)
	if err != nil {
		return Decision{}, fmt.Errorf("comparing with upstream: %w", err)
	}
	if ahead > 0 {
		return Decision{Reason: "ahead of upstream"}, nil
	}

	return Decision{Eligible: true}, nil
}

// interactiveRemote reports whether a remote URL uses a transport that may
// prompt for credentials. Updates must be non-interactive, so such remotes
// are always skipped.
func interactiveRemote(url string) bool {
	return strings.HasPrefix(url, "git@") || strings.HasPrefix(url, "ssh://")
}
