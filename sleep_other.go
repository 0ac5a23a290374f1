//go:build !linux

package sco

import "runtime"

// sleepBackoff is the portable fallback for platforms without Sched_yield
// wired up: hand the P back to the Go scheduler for a turn.
func sleepBackoff() {
	runtime.Gosched()
}
