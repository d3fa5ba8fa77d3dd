package update

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/skillman-io/skillman/internal/gitops"
	"github.com/skillman-io/skillman/internal/lifecycle"
	"github.com/skillman-io/skillman/internal/status"
)

// Outcome classifies one skill's update result.
type Outcome int

const (
	// Unchanged means the checkout was already at the mainline tip.
	Unchanged Outcome = iota
	// Updated means the checkout advanced to a new revision.
	Updated
	// Skipped means the update policy refused to touch the checkout.
	Skipped
	// Failed means the update was attempted and errored.
	Failed
)

// String returns the display label for an outcome.
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is one skill's terminal update outcome.
type Result struct {
	Name    string
	Dir     string
	Outcome Outcome
	// Reason carries the skip reason or failure message.
	Reason string
	Code   status.Code
}

// Orchestrator updates every checkout under Root concurrently.
type Orchestrator struct {
	Root     string
	Mainline string
	// Concurrency caps simultaneous updates; zero means unbounded.
	Concurrency int
	Engine      *lifecycle.Engine
	Log         zerolog.Logger
}

// UpdateAll enumerates checkouts under the root and updates each in its own
// goroutine. It waits for every task before returning; partial results are
// never reported. The error return covers only enumeration failure.
func (o *Orchestrator) UpdateAll(ctx context.Context) ([]Result, error) {
	dirs, err := gitops.ListCheckouts(o.Root)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, nil
	}

	results := make([]Result, len(dirs))

	var g errgroup.Group
	if o.Concurrency > 0 {
		g.SetLimit(o.Concurrency)
	}
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			// Each task owns its own result slot; no shared state.
			results[i] = o.updateOne(ctx, dir)
			return nil
		})
	}
	// Tasks never return errors; Wait is purely a join point.
	_ = g.Wait()

	return results, nil
}

// updateOne classifies and, when eligible, fast-forwards a single checkout.
func (o *Orchestrator) updateOne(ctx context.Context, dir string) Result {
	name := filepath.Base(dir)

	// Keep generated artifacts out of tracking so they never read as
	// drift. Idempotent and not failure-sensitive.
	if err := gitops.EnsureExcluded(dir, artifactExcludes); err != nil {
		o.Log.Debug().Err(err).Str("skill", name).Msg("updating exclude file")
	}

	decision, err := shouldUpdate(ctx, dir, o.Mainline)
	if err != nil {
		return Result{Name: name, Dir: dir, Outcome: Failed, Reason: err.Error(), Code: status.UpdateFailed}
	}
	if !decision.Eligible {
		o.Log.Debug().Str("skill", name).Str("reason", decision.Reason).Msg("update skipped")
		return Result{Name: name, Dir: dir, Outcome: Skipped, Reason: decision.Reason, Code: status.UpdateSkipped}
	}

	before, err := gitops.HeadRev(ctx, dir)
	if err != nil {
		return Result{Name: name, Dir: dir, Outcome: Failed, Reason: err.Error(), Code: status.UpdateFailed}
	}
	fingerprintBefore := lifecycle.DepsFingerprint(dir)

	if err := gitops.Fetch(ctx, dir); err != nil {
		return Result{Name: name, Dir: dir, Outcome: Failed, Reason: err.Error(), Code: status.UpdateFailed}
	}
	if err := gitops.ResetHard(ctx, dir, "origin/"+o.Mainline); err != nil {
		return Result{Name: name, Dir: dir, Outcome: Failed, Reason: err.Error(), Code: status.UpdateFailed}
	}

	after, err := gitops.HeadRev(ctx, dir)
	if err != nil {
		return Result{Name: name, Dir: dir, Outcome: Failed, Reason: err.Error(), Code: status.UpdateFailed}
	}

	// Dependency manifests changed across the reset: re-run the hooks.
	if lifecycle.DepsFingerprint(dir) != fingerprintBefore {
		o.Log.Debug().Str("skill", name).Msg("dependency manifests changed, reinstalling")
		if err := o.Engine.InstallDeps(ctx, dir); err != nil {
			return Result{Name: name, Dir: dir, Outcome: Failed, Reason: err.Error(), Code: status.CodeOf(err)}
		}
	}

	if before != after {
		return Result{Name: name, Dir: dir, Outcome: Updated, Code: status.OK}
	}
	return Result{Name: name, Dir: dir, Outcome: Unchanged, Code: status.OK}
}

// ExitCode aggregates per-skill outcomes into the process exit code.
func ExitCode(results []Result) int {
	codes := make([]status.Code, 0, len(results))
	for _, r := range results {
		codes = append(codes, r.Code)
	}
	return status.Aggregate(codes)
}
