package status

import (
	"errors"
	"fmt"
)

// Code identifies a terminal outcome. Codes are stable across releases and
// are never reused for a different condition.
type Code int

const (
	OK               Code = 0
	PermissionFailed Code = 5

	NotFound       Code = 20
	AmbiguousMatch Code = 21

	CatalogUnavailable Code = 30
	CatalogEmpty       Code = 31

	CloneFailed             Code = 40
	NativeSetupFailed       Code = 41
	DependencyInstallFailed Code = 42

	RemoveFailed Code = 50
	UpdateFailed Code = 51

	AlreadyInstalled Code = 60
	NotInstalled     Code = 61
	UpdateSkipped    Code = 62
)

// String returns the symbolic name of the code.
func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case PermissionFailed:
		return "permission-failed"
	case NotFound:
		return "not-found"
	case AmbiguousMatch:
		return "ambiguous-match"
	case CatalogUnavailable:
		return "catalog-unavailable"
	case CatalogEmpty:
		return "catalog-empty"
	case CloneFailed:
		return "clone-failed"
	case NativeSetupFailed:
		return "native-setup-failed"
	case DependencyInstallFailed:
		return "dependency-install-failed"
	case RemoveFailed:
		return "remove-failed"
	case UpdateFailed:
		return "update-failed"
	case AlreadyInstalled:
		return "already-installed"
	case NotInstalled:
		return "not-installed"
	case UpdateSkipped:
		return "update-skipped"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Benign reports whether the code describes a skip rather than a failure.
func (c Code) Benign() bool {
	switch c {
	case OK, AlreadyInstalled, NotInstalled, UpdateSkipped:
		return true
	}
	return false
}

// Severity returns the value used for exit-code aggregation. Benign codes
// collapse to zero so a run whose worst outcome is a skip still exits 0.
func (c Code) Severity() int {
	if c.Benign() {
		return 0
	}
	return int(c)
}

// Error is an error carrying a status code. The CLI unwraps it at the top
// of the process to pick the exit code.
type Error struct {
	Code Code
	Err  error
}

// E wraps err with the given code. A nil err gets a generic message so the
// code is never silently lost.
func E(code Code, err error) *Error {
	if err == nil {
		err = errors.New(code.String())
	}
	return &Error{Code: code, Err: err}
}

// Errorf wraps a formatted error with the given code.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// CodeOf extracts the status code from err. A nil error is OK; an error
// without an embedded code maps to severity 1 via the generic code below.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return Code(1)
}

// Aggregate computes the process exit code for a set of per-item outcomes:
// the maximum severity across all codes.
func Aggregate(codes []Code) int {
	max := 0
	for _, c := range codes {
		if s := c.Severity(); s > max {
			max = s
		}
	}
	return max
}
