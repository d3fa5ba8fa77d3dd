// Package update drives the bulk update of all locally checked-out skills.
// Each checkout is classified independently (mainline branch, clean tracked
// files, not ahead of upstream, non-interactive remote) and eligible ones
// are fast-forwarded by fetch plus hard reset. Updates fan out one
// goroutine per checkout; a fault in one skill never aborts another.
package update
