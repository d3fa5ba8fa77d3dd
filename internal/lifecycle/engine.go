package lifecycle

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skillman-io/skillman/internal/catalog"
	"github.com/skillman-io/skillman/internal/gitops"
	"github.com/skillman-io/skillman/internal/skillmeta"
	"github.com/skillman-io/skillman/internal/status"
)

// Engine performs install and remove operations under a single skills
// directory. The engine exclusively owns directory creation and deletion
// inside that root.
type Engine struct {
	SkillsDir string
	Python    string
	Log       zerolog.Logger
}

// New returns an Engine rooted at skillsDir using the given python
// interpreter for dependency installs.
func New(skillsDir, python string, log zerolog.Logger) *Engine {
	return &Engine{SkillsDir: skillsDir, Python: python, Log: log}
}

// DeriveName returns the skill name implied by a repository URL: the final
// path segment with any .git suffix and #fragment stripped.
func DeriveName(url string) string {
	if idx := strings.Index(url, "#"); idx >= 0 {
		url = url[:idx]
	}
	url = strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if idx := strings.LastIndexAny(url, "/:"); idx >= 0 {
		url = url[idx+1:]
	}
	return url
}

// EntryFromURL builds a synthetic catalog entry for a raw repository URL
// supplied directly by the user. URL-form input never consults the catalog.
func EntryFromURL(url string) catalog.Entry {
	name := DeriveName(url)
	return catalog.Entry{Name: name, Path: name, URL: url}
}

// Dir returns the checkout directory for a resolved entry.
func (e *Engine) Dir(entry catalog.Entry) string {
	return filepath.Join(e.SkillsDir, DeriveName(entry.URL))
}

// Installed reports whether a checkout for the entry already exists.
func (e *Engine) Installed(entry catalog.Entry) bool {
	_, err := os.Stat(e.Dir(entry))
	return err == nil
}

// Install clones the entry's repository and runs its dependency hooks.
// Every failure path carries its own status code: AlreadyInstalled (benign),
// PermissionFailed, CloneFailed, NativeSetupFailed, DependencyInstallFailed.
func (e *Engine) Install(ctx context.Context, entry catalog.Entry) error {
	name := DeriveName(entry.URL)
	target := e.Dir(entry)

	if _, err := os.Stat(target); err == nil {
		return status.Errorf(status.AlreadyInstalled, "%s is already installed", name)
	}

	if err := os.MkdirAll(e.SkillsDir, 0o755); err != nil {
		if os.IsPermission(err) {
			return status.Errorf(status.PermissionFailed, "creating %s: %v", e.SkillsDir, err)
		}
		return status.Errorf(status.CloneFailed, "creating %s: %v", e.SkillsDir, err)
	}

	e.Log.Debug().Str("skill", name).Str("url", entry.URL).Msg("cloning")
	if err := gitops.Clone(ctx, cloneURL(entry.URL), target); err != nil {
		// Never leave a partial checkout registered as installed.
		_ = os.RemoveAll(target)
		return status.Errorf(status.CloneFailed, "cloning %s: %v", name, err)
	}

	if err := e.InstallDeps(ctx, target); err != nil {
		return err
	}

	e.checkMeta(target, name)
	return nil
}

// Remove deletes the entry's checkout. A missing checkout is the benign
// NotInstalled outcome; a deletion that leaves residue is RemoveFailed.
func (e *Engine) Remove(ctx context.Context, entry catalog.Entry) error {
	name := DeriveName(entry.URL)
	target := e.Dir(entry)

	if _, err := os.Stat(target); os.IsNotExist(err) {
		return status.Errorf(status.NotInstalled, "%s is not installed", name)
	}

	if err := os.RemoveAll(target); err != nil {
		if os.IsPermission(err) {
			return status.Errorf(status.PermissionFailed, "removing %s: %v", name, err)
		}
		return status.Errorf(status.RemoveFailed, "removing %s: %v", name, err)
	}

	// Verify the post-condition; RemoveAll can report success while
	// leaving residue on odd filesystems.
	if _, err := os.Stat(target); err == nil {
		return status.Errorf(status.RemoveFailed, "removing %s: directory still present", name)
	}

	return nil
}

// checkMeta validates the optional skill.yaml and logs problems as
// warnings. Metadata never fails an install.
func (e *Engine) checkMeta(dir, name string) {
	meta, issues, err := skillmeta.Load(dir)
	if err != nil {
		e.Log.Warn().Err(err).Str("skill", name).Msg("unreadable skill metadata")
		return
	}
	for _, issue := range issues {
		e.Log.Warn().Str("skill", name).Str("issue", issue.String()).Msg("invalid skill metadata")
	}
	if meta != nil && meta.Description != "" {
		e.Log.Debug().Str("skill", name).Str("description", meta.Description).Msg("skill metadata")
	}
}

// cloneURL strips a #fragment from a repository URL before cloning.
func cloneURL(url string) string {
	if idx := strings.Index(url, "#"); idx >= 0 {
		return url[:idx]
	}
	return url
}
