package gitops

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// run executes git with the given args and returns trimmed stdout.
// Stderr is folded into the returned error.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Clone clones url into target.
func Clone(ctx context.Context, url, target string) error {
	_, err := run(ctx, "", "clone", url, target)
	return err
}

// Fetch updates remote tracking refs for the checkout at dir.
func Fetch(ctx context.Context, dir string) error {
	_, err := run(ctx, dir, "fetch", "--all")
	return err
}

// ResetHard resets the checkout at dir to ref (e.g. "origin/master").
func ResetHard(ctx context.Context, dir, ref string) error {
	_, err := run(ctx, dir, "reset", "--hard", ref)
	return err
}

// CurrentBranch returns the checked-out branch name, or "HEAD" when detached.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	return run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
}

// HeadRev returns the full HEAD commit hash.
func HeadRev(ctx context.Context, dir string) (string, error) {
	return run(ctx, dir, "rev-parse", "HEAD")
}

// RemoteURL returns the fetch URL of the origin remote.
func RemoteURL(ctx context.Context, dir string) (string, error) {
	return run(ctx, dir, "remote", "get-url", "origin")
}

// HasTrackedChanges reports whether tracked files in the checkout have
// uncommitted modifications. Untracked files are ignored.
func HasTrackedChanges(ctx context.Context, dir string) (bool, error) {
	out, err := run(ctx, dir, "status", "--porcelain", "--untracked-files=no")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// AheadCount returns how many commits the checkout is ahead of its
// upstream. A checkout with no upstream counts as ahead so callers treat
// it as diverged.
func AheadCount(ctx context.Context, dir string) (int, error) {
	out, err := run(ctx, dir, "rev-list", "--count", "@{u}..HEAD")
	if err != nil {
		if strings.Contains(err.Error(), "no upstream") {
			return 1, nil
		}
		return 0, err
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("parsing rev-list count %q: %w", out, err)
	}
	return n, nil
}

// IsRepo reports whether dir looks like a git checkout.
func IsRepo(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// ListCheckouts returns the immediate subdirectories of root that are git
// checkouts, sorted by directory name (os.ReadDir order).
func ListCheckouts(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if IsRepo(dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

// EnsureExcluded appends the given patterns to .git/info/exclude unless
// already present. Idempotent; errors are returned but callers generally
// treat them as non-fatal.
func EnsureExcluded(dir string, patterns []string) error {
	excludePath := filepath.Join(dir, ".git", "info", "exclude")
	existing, err := os.ReadFile(excludePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", excludePath, err)
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(existing), "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, p := range patterns {
		if !present[p] {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(excludePath), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(excludePath), err)
	}

	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += strings.Join(missing, "\n") + "\n"

	if err := os.WriteFile(excludePath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", excludePath, err)
	}
	return nil
}
