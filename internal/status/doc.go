// Package status defines the stable exit-code taxonomy shared by the
// lifecycle engine, the update orchestrator, and the CLI. Every terminal
// outcome maps to one distinct code; benign outcomes (already installed,
// not installed, update skipped) carry severity zero so they never fail a
// run on their own. The process exit code of a bulk operation is the
// maximum severity across its per-item outcomes.
package status
