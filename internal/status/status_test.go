package status

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreDistinct(t *testing.T) {
	codes := []Code{
		OK, PermissionFailed, NotFound, AmbiguousMatch,
		CatalogUnavailable, CatalogEmpty,
		CloneFailed, NativeSetupFailed, DependencyInstallFailed,
		RemoveFailed, UpdateFailed,
		AlreadyInstalled, NotInstalled, UpdateSkipped,
	}

	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("code %d (%s) reused", int(c), c)
		}
		seen[c] = true
	}
}

func TestBenignSeverity(t *testing.T) {
	tests := []struct {
		code   Code
		benign bool
	}{
		{OK, true},
		{AlreadyInstalled, true},
		{NotInstalled, true},
		{UpdateSkipped, true},
		{CloneFailed, false},
		{AmbiguousMatch, false},
		{RemoveFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Benign(); got != tt.benign {
				t.Errorf("Benign() = %v, want %v", got, tt.benign)
			}
			if tt.benign && tt.code.Severity() != 0 {
				t.Errorf("benign code has severity %d, want 0", tt.code.Severity())
			}
			if !tt.benign && tt.code.Severity() != int(tt.code) {
				t.Errorf("Severity() = %d, want %d", tt.code.Severity(), int(tt.code))
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(nil); got != OK {
		t.Errorf("CodeOf(nil) = %v, want OK", got)
	}

	err := Errorf(CloneFailed, "cloning foo: network down")
	if got := CodeOf(err); got != CloneFailed {
		t.Errorf("CodeOf = %v, want CloneFailed", got)
	}

	// Codes survive wrapping.
	wrapped := fmt.Errorf("installing: %w", err)
	if got := CodeOf(wrapped); got != CloneFailed {
		t.Errorf("CodeOf(wrapped) = %v, want CloneFailed", got)
	}

	if got := CodeOf(errors.New("plain")); got != Code(1) {
		t.Errorf("CodeOf(plain) = %v, want 1", got)
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		codes []Code
		want  int
	}{
		{"empty", nil, 0},
		{"all ok", []Code{OK, OK}, 0},
		{"benign only", []Code{OK, AlreadyInstalled, UpdateSkipped}, 0},
		{"one failure", []Code{OK, CloneFailed, OK}, int(CloneFailed)},
		{"worst wins", []Code{NotFound, RemoveFailed, CloneFailed}, int(RemoveFailed)},
		{"benign never outranks", []Code{UpdateSkipped, NotFound}, int(NotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Aggregate(tt.codes); got != tt.want {
				t.Errorf("Aggregate = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := E(RemoveFailed, inner)
	if !errors.Is(err, inner) {
		t.Error("E should wrap the inner error")
	}
}
