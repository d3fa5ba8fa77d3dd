// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the values into the binary; hard defaults cover a missing or
// partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GitHubRepo  string `yaml:"github_repo"`
	ManifestURL string `yaml:"manifest_url"`
	BusURL      string `yaml:"bus_url"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "skillman",
			DisplayName: "Skillman",
			Description: "Manager for git-backed voice assistant skills",
			HomeDir:     ".skillman",
			EnvPrefix:   "SKILLMAN",
			GitHubRepo:  "skillman-io/skillman",
			ManifestURL: "https://raw.githubusercontent.com/skillman-io/skills/master/.gitmodules",
			BusURL:      "ws://127.0.0.1:8181/core",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "skillman").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".skillman").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SKILLMAN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string used by the release check.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// ManifestURL returns the default URL of the published skills manifest.
func ManifestURL() string { load(); return defaults.ManifestURL }

// BusURL returns the default websocket address of the message bus.
func BusURL() string { load(); return defaults.BusURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "SKILLMAN_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
