package cli

import (
	"testing"
)

func TestIsRepoURL(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"https://github.com/acme/weather-skill.git", true},
		{"http://internal.example/skill.git", true},
		{"git@github.com:acme/weather-skill.git", true},
		{"ssh://git@github.com/acme/weather-skill.git", true},
		{"weather-skill", false},
		{"daily meditation", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			if got := isRepoURL(tt.arg); got != tt.want {
				t.Errorf("isRepoURL(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	err := &exitError{code: 40}
	if err.Error() != "exit code 40" {
		t.Errorf("Error() = %q", err.Error())
	}
}
