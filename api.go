package sco

import "runtime"

// Yield suspends the calling coroutine and places it at the tail of its
// Thread's scheduled queue; it resumes at the next round that reaches it.
// Must be called from inside a coroutine.
func Yield() {
	r := requireCurrent("Yield")
	r.baton.suspend(reasonYielded)
}

// Pause suspends the calling coroutine and moves it to its Thread's paused
// set, where it stays until resumed by id. Must be called from inside a
// coroutine.
func Pause() {
	r := requireCurrent("Pause")
	r.baton.suspend(reasonPaused)
}

// Exit terminates the calling coroutine immediately: Cleanup still runs,
// from the driving context, but no code after this call executes. Built on
// runtime.Goexit, which exists for exactly this "abandon the rest of this
// goroutine's function" case and, unlike a panic, is never caught by a
// recover in the coroutine body.
func Exit() {
	requireCurrent("Exit")
	runtime.Goexit()
}

// Sleep busy-waits, yielding between checks, until at least ns nanoseconds
// of the owning Thread's clock have elapsed. Must be called from inside a
// coroutine. Every other coroutine scheduled on the same Thread gets turns
// while this one sleeps, since each check is one Yield.
func Sleep(ns int64) {
	r := requireCurrent("Sleep")
	t := r.owner.Load()
	start := t.clock()
	r.wakeDeadline = start + ns
	for t.clock()-start < ns {
		r.baton.suspend(reasonYielded)
		sleepBackoff()
	}
	r.wakeDeadline = 0
}

// ID returns the id of the currently running coroutine, or 0 if called
// outside one.
func ID() int64 {
	r := currentRecord()
	if r == nil {
		return 0
	}
	return r.id
}

// UData returns the opaque value passed to Start for the currently running
// coroutine. Must be called from inside a coroutine.
func UData() any {
	r := requireCurrent("UData")
	return r.desc.UData
}

// Resume is the "from inside a coroutine" form of resume(id): it moves a
// paused id to the tail of its Thread's scheduled queue without switching
// into it, so the caller keeps running until its own next suspension.
//
// Calling this from outside any coroutine is a usage fault — use a
// *Thread's own Resume method, the run-loop pump, there instead.
func Resume(id int64) {
	r := requireCurrent("Resume")
	r.owner.Load().enqueueResume(id)
}

func requireCurrent(op string) *record {
	r := currentRecord()
	if r == nil {
		usageFault(op, "must be called from inside a coroutine")
	}
	return r
}
