package status

import (
	"github.com/skillman-io/skillman/internal/notify"
)

// Reporter forwards lifecycle transitions for one bulk operation to the
// message bus. The started latch is per-Reporter state: each operation
// carries its own, instead of a process-wide flag.
type Reporter struct {
	kind    string // "install", "remove", or "update"
	bus     notify.Notifier
	started bool
}

// NewReporter returns a Reporter for one operation kind.
func NewReporter(kind string, bus notify.Notifier) *Reporter {
	return &Reporter{kind: kind, bus: bus}
}

// Begin emits the operation-started event once, no matter how many items
// the bulk operation covers.
func (r *Reporter) Begin() {
	if r.started {
		return
	}
	r.started = true
	r.bus.Emit("skillman."+r.kind+".start", map[string]any{})
}

// Success emits a per-item success event.
func (r *Reporter) Success(skill string) {
	r.bus.Emit("skillman."+r.kind+".succeeded", map[string]any{"skill": skill})
}

// Failure emits a per-item failure event carrying the status code.
func (r *Reporter) Failure(skill string, code Code) {
	r.bus.Emit("skillman."+r.kind+".failed", map[string]any{
		"skill": skill,
		"code":  int(code),
		"error": code.String(),
	})
}

// End emits the operation-completed event if the operation ever started.
func (r *Reporter) End() {
	if !r.started {
		return
	}
	r.bus.Emit("skillman."+r.kind+".complete", map[string]any{})
}
