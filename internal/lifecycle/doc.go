// Package lifecycle implements install and remove for a single resolved
// skill. Install is idempotent on the derived skill name: an existing
// checkout short-circuits before any network work, and a failed clone
// never leaves a partial directory behind. Remove verifies the directory
// is actually gone before reporting success.
package lifecycle
