package branding

import "testing"

func TestDefaults(t *testing.T) {
	if CLIName() == "" {
		t.Error("CLIName is empty")
	}
	if HomeDir() == "" || HomeDir()[0] != '.' {
		t.Errorf("HomeDir = %q, want a dot-directory", HomeDir())
	}
	if ManifestURL() == "" {
		t.Error("ManifestURL is empty")
	}
}

func TestEnvVar(t *testing.T) {
	got := EnvVar("manifest_url")
	want := EnvPrefix() + "_MANIFEST_URL"
	if got != want {
		t.Errorf("EnvVar = %q, want %q", got, want)
	}
}
