package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillman-io/skillman/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys understood by the typed getters below. Any other key
// can still be read and written through Get/Set.
const (
	KeySkillsDir         = "skills_dir"
	KeyManifestURL       = "manifest_url"
	KeyMainline          = "mainline"
	KeyBusURL            = "bus_url"
	KeyPython            = "python"
	KeyUpdateConcurrency = "update_concurrency"
	KeyDefaultSkills     = "default_skills"
)

// Dir returns the path to the config directory (~/.skillman/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.skillman/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// SkillsDir returns the directory that holds skill checkouts
// (default ~/.skillman/skills).
func SkillsDir() string {
	if v := Get(KeySkillsDir); v != "" {
		return v
	}
	return filepath.Join(Dir(), "skills")
}

// ManifestURL returns the URL of the published skills manifest.
func ManifestURL() string {
	if v := Get(KeyManifestURL); v != "" {
		return v
	}
	return branding.ManifestURL()
}

// Mainline returns the branch name eligible for automatic update.
func Mainline() string {
	if v := Get(KeyMainline); v != "" {
		return v
	}
	return "master"
}

// BusURL returns the websocket address of the message bus, or empty if
// notifications are disabled.
func BusURL() string {
	if viper.IsSet(KeyBusURL) {
		return Get(KeyBusURL)
	}
	return branding.BusURL()
}

// Python returns the python interpreter used for skill dependency installs.
func Python() string {
	if v := Get(KeyPython); v != "" {
		return v
	}
	return "python3"
}

// UpdateConcurrency returns the cap on concurrent skill updates.
// Zero means unbounded.
func UpdateConcurrency() int {
	return viper.GetInt(KeyUpdateConcurrency)
}

// DefaultSkills returns the names installed by the `default` command.
func DefaultSkills() []string {
	return viper.GetStringSlice(KeyDefaultSkills)
}
