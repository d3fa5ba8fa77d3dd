package updater

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    int
	}{
		{"1.0.0", "1.0.0", 0},
		{"v1.0.0", "1.0.0", 0},
		{"1.0.0", "1.1.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2.3", "v1.2.4", -1},
	}

	for _, tt := range tests {
		t.Run(tt.current+"_vs_"+tt.latest, func(t *testing.T) {
			got, err := CompareVersions(tt.current, tt.latest)
			if err != nil {
				t.Fatalf("CompareVersions: %v", err)
			}
			if got != tt.want {
				t.Errorf("CompareVersions = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompareVersionsInvalid(t *testing.T) {
	if _, err := CompareVersions("dev", "1.0.0"); err == nil {
		t.Fatal("expected error for non-semver current version")
	}
}

func TestIsUpdateAvailable(t *testing.T) {
	available, err := IsUpdateAvailable("1.0.0", "1.1.0")
	if err != nil {
		t.Fatalf("IsUpdateAvailable: %v", err)
	}
	if !available {
		t.Error("1.1.0 should be an available update over 1.0.0")
	}

	available, err = IsUpdateAvailable("1.1.0", "1.1.0")
	if err != nil {
		t.Fatal(err)
	}
	if available {
		t.Error("equal versions should not report an update")
	}
}
