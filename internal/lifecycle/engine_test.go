package lifecycle

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/skillman-io/skillman/internal/catalog"
	"github.com/skillman-io/skillman/internal/logging"
	"github.com/skillman-io/skillman/internal/status"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/acme/weather-skill.git", "weather-skill"},
		{"https://github.com/acme/weather-skill", "weather-skill"},
		{"https://github.com/acme/weather-skill/", "weather-skill"},
		{"git@github.com:acme/timer-skill.git", "timer-skill"},
		{"https://gitlab.com/acme/news-skill.git#feature", "news-skill"},
		{"weather-skill", "weather-skill"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := DeriveName(tt.url); got != tt.want {
				t.Errorf("DeriveName(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestEntryFromURL(t *testing.T) {
	entry := EntryFromURL("https://github.com/acme/podcast-skill.git")
	if entry.Name != "podcast-skill" || entry.URL != "https://github.com/acme/podcast-skill.git" {
		t.Errorf("got %+v", entry)
	}
}

// ---------------------------------------------------------------------------
// Install/remove tests against local git repositories
// ---------------------------------------------------------------------------

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// makeSourceRepo creates a git repository with one committed file and
// returns its path, usable as a clone URL over the file transport.
func makeSourceRepo(t *testing.T, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)

	git := func(args ...string) {
		t.Helper()
		full := append([]string{"-C", dir, "-c", "user.email=test@example.com", "-c", "user.name=test"}, args...)
		if out, err := exec.Command("git", full...).CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if out, err := exec.Command("git", "init", "-b", "master", dir).CombinedOutput(); err != nil {
		t.Fatalf("git init: %v\n%s", err, out)
	}

	if files == nil {
		files = map[string]string{"__init__.py": "# skill entry point\n"}
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	git("add", ".")
	git("commit", "-m", "initial")
	return dir
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(t.TempDir(), "python3", logging.New(io.Discard, "test"))
}

func TestInstallAndRemoveRoundTrip(t *testing.T) {
	requireGit(t)

	src := makeSourceRepo(t, "weather-skill", nil)
	eng := testEngine(t)
	entry := catalog.Entry{Name: "weather-skill", Path: "weather-skill", URL: src}

	if err := eng.Install(context.Background(), entry); err != nil {
		t.Fatalf("Install: %v", err)
	}
	target := filepath.Join(eng.SkillsDir, "weather-skill")
	if _, err := os.Stat(filepath.Join(target, ".git")); err != nil {
		t.Fatalf("no checkout at %s: %v", target, err)
	}
	if !eng.Installed(entry) {
		t.Error("Installed = false after install")
	}

	// Second install is the benign AlreadyInstalled skip, never a re-clone.
	err := eng.Install(context.Background(), entry)
	if code := status.CodeOf(err); code != status.AlreadyInstalled {
		t.Fatalf("second install code = %v, want AlreadyInstalled", code)
	}

	if err := eng.Remove(context.Background(), entry); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("directory still present after remove")
	}

	// Removing again is the benign NotInstalled outcome.
	err = eng.Remove(context.Background(), entry)
	if code := status.CodeOf(err); code != status.NotInstalled {
		t.Fatalf("second remove code = %v, want NotInstalled", code)
	}

	// A fresh install after remove succeeds as if never installed.
	if err := eng.Install(context.Background(), entry); err != nil {
		t.Fatalf("reinstall: %v", err)
	}
}

func TestInstallCloneFailureLeavesNoResidue(t *testing.T) {
	requireGit(t)

	eng := testEngine(t)
	entry := catalog.Entry{Name: "ghost-skill", URL: filepath.Join(t.TempDir(), "does-not-exist")}

	err := eng.Install(context.Background(), entry)
	if code := status.CodeOf(err); code != status.CloneFailed {
		t.Fatalf("code = %v, want CloneFailed", code)
	}

	// A failed clone must never leave a partial directory behind.
	if _, statErr := os.Stat(eng.Dir(entry)); !os.IsNotExist(statErr) {
		t.Error("partial checkout left behind after failed clone")
	}
}

func TestInstallNativeSetupFailure(t *testing.T) {
	requireGit(t)
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}

	src := makeSourceRepo(t, "broken-skill", map[string]string{
		SetupScript: "#!/usr/bin/env bash\nexit 1\n",
	})
	eng := testEngine(t)
	entry := catalog.Entry{Name: "broken-skill", URL: src}

	err := eng.Install(context.Background(), entry)
	if code := status.CodeOf(err); code != status.NativeSetupFailed {
		t.Fatalf("code = %v, want NativeSetupFailed", code)
	}
}

func TestDepsFingerprint(t *testing.T) {
	dir := t.TempDir()

	base := DepsFingerprint(dir)
	if DepsFingerprint(dir) != base {
		t.Fatal("fingerprint not stable for unchanged directory")
	}

	if err := os.WriteFile(filepath.Join(dir, PythonManifest), []byte("requests\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	withDeps := DepsFingerprint(dir)
	if withDeps == base {
		t.Fatal("fingerprint unchanged after adding a manifest")
	}

	if err := os.WriteFile(filepath.Join(dir, PythonManifest), []byte("requests\nflask\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if DepsFingerprint(dir) == withDeps {
		t.Fatal("fingerprint unchanged after editing the manifest")
	}
}
