// Package gitops wraps the git binary for the operations the skill
// lifecycle needs: clone, fetch, hard reset, and the read-only queries
// (branch, revision, cleanliness, upstream divergence, remote URL) that
// drive update eligibility. All commands run through exec with a context.
package gitops
