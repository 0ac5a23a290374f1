//go:build linux

package sco

import "golang.org/x/sys/unix"

// sleepBackoff gives the OS scheduler a chance to run other threads between
// Sleep's polls, via the same syscall the teacher's busy-wait paths reach
// for on Linux rather than the coarser runtime.Gosched.
func sleepBackoff() {
	_ = unix.Sched_yield()
}
