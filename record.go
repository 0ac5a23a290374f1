package sco

import "sync/atomic"

// state is the lifecycle of a coroutine record.
type state uint32

const (
	stateScheduled state = iota
	stateRunning
	statePaused
	stateDetached
	stateFinished
)

func (s state) String() string {
	switch s {
	case stateScheduled:
		return "scheduled"
	case stateRunning:
		return "running"
	case statePaused:
		return "paused"
	case stateDetached:
		return "detached"
	case stateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Descriptor carries the caller-owned stack, entry point, cleanup hook, and
// opaque data passed to Start. The scheduler neither allocates nor frees
// Stack; it is returned to Cleanup byte-for-byte.
type Descriptor struct {
	// Stack is caller-owned memory of at least StackSize bytes. The
	// scheduler never writes to it; it exists so Cleanup receives the
	// same buffer the caller handed to Start, matching the reference
	// library's contract even though this backend does not run the
	// coroutine body on it (see DESIGN.md).
	Stack []byte
	// StackSize must be >= MinStackSize.
	StackSize int
	// Entry is called exactly once, on the coroutine's first resume.
	Entry func(udata any)
	// Cleanup is called exactly once, after Entry returns or Exit is
	// called, from the thread that observed the coroutine finish — never
	// from the coroutine's own goroutine.
	Cleanup func(stack []byte, stackSize int, udata any)
	// UData is opaque and passed through unmodified.
	UData any
}

// record is the scheduler's bookkeeping object for one coroutine.
type record struct {
	id    int64
	desc  Descriptor
	state atomic.Uint32

	// owner is the Thread currently responsible for this record, or nil
	// while detached.
	owner atomic.Pointer[Thread]

	// wakeDeadline is set while sleeping; zero otherwise.
	wakeDeadline int64

	// baton is this coroutine's half of the handoff rendezvous (see
	// handoff.go). It is created once, when the backing goroutine is
	// spawned, and lives for the record's entire lifetime.
	baton *baton

	// next links records in the scheduled FIFO (see thread.go's pushBack
	// and popScheduled). Only the owning Thread touches this field.
	next *record
}

func (r *record) getState() state {
	return state(r.state.Load())
}

func (r *record) setState(s state) {
	r.state.Store(uint32(s))
}

var nextID atomic.Int64

// allocID returns the next process-unique, monotonically increasing id.
// Zero is reserved and never returned.
func allocID() int64 {
	return nextID.Add(1)
}
