package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaults(t *testing.T) {
	reset(t)

	if got := Mainline(); got != "master" {
		t.Errorf("Mainline = %q, want master", got)
	}
	if got := Python(); got != "python3" {
		t.Errorf("Python = %q, want python3", got)
	}
	if got := UpdateConcurrency(); got != 0 {
		t.Errorf("UpdateConcurrency = %d, want 0", got)
	}
	if got := SkillsDir(); filepath.Base(got) != "skills" {
		t.Errorf("SkillsDir = %q, want a skills subdirectory", got)
	}
	if got := ManifestURL(); !strings.HasPrefix(got, "http") {
		t.Errorf("ManifestURL = %q, want an http(s) URL", got)
	}
}

func TestOverrides(t *testing.T) {
	reset(t)

	viper.Set(KeySkillsDir, "/opt/skills")
	viper.Set(KeyMainline, "main")
	viper.Set(KeyUpdateConcurrency, "4")
	viper.Set(KeyDefaultSkills, []string{"weather-skill", "timer-skill"})

	if got := SkillsDir(); got != "/opt/skills" {
		t.Errorf("SkillsDir = %q", got)
	}
	if got := Mainline(); got != "main" {
		t.Errorf("Mainline = %q", got)
	}
	if got := UpdateConcurrency(); got != 4 {
		t.Errorf("UpdateConcurrency = %d", got)
	}
	if got := DefaultSkills(); len(got) != 2 || got[0] != "weather-skill" {
		t.Errorf("DefaultSkills = %v", got)
	}
}

func TestBusURLDisabled(t *testing.T) {
	reset(t)

	// Explicitly empty disables notifications.
	viper.Set(KeyBusURL, "")
	if got := BusURL(); got != "" {
		t.Errorf("BusURL = %q, want empty", got)
	}
}
