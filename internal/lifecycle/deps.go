package lifecycle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/skillman-io/skillman/internal/status"
)

// Dependency manifest files recognized inside a skill checkout.
const (
	SetupScript    = "requirements.sh"
	PythonManifest = "requirements.txt"
)

// InstallDeps runs the skill's dependency hooks in order: the native setup
// script first (its failure aborts before python dependencies), then the
// python manifest via pip. Each failure carries its own status code.
func (e *Engine) InstallDeps(ctx context.Context, dir string) error {
	script := filepath.Join(dir, SetupScript)
	if _, err := os.Stat(script); err == nil {
		e.Log.Debug().Str("dir", dir).Msg("running native setup script")
		cmd := exec.CommandContext(ctx, "bash", SetupScript)
		cmd.Dir = dir
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return status.Errorf(status.NativeSetupFailed, "running %s in %s: %v", SetupScript, dir, err)
		}
	}

	manifest := filepath.Join(dir, PythonManifest)
	if _, err := os.Stat(manifest); err == nil {
		e.Log.Debug().Str("dir", dir).Msg("installing python dependencies")
		cmd := exec.CommandContext(ctx, e.Python, "-m", "pip", "install", "-r", PythonManifest)
		cmd.Dir = dir
		cmd.Stdout = os.Stderr
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return status.Errorf(status.DependencyInstallFailed, "pip install in %s: %v", dir, err)
		}
	}

	return nil
}

// DepsFingerprint hashes the dependency manifest files of a checkout.
// The update orchestrator compares fingerprints across a reset to decide
// whether dependency installation must re-run. Missing files hash as empty.
func DepsFingerprint(dir string) string {
	h := sha256.New()
	for _, name := range []string{SetupScript, PythonManifest} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			data = nil
		}
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write(data)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
