package sco

import "fmt"

// UsageFault is panicked when the scheduler is called from the wrong
// context, or a precondition is violated: Yield/Pause/Sleep/Exit/UData/
// Resume outside a coroutine where a coroutine is required, Detach of a
// non-paused record, Attach of an unknown id, or Start with a stack
// smaller than MinStackSize. These are programmer errors, not recoverable
// conditions — the reference C library asserts and aborts; panicking a
// typed value is the Go equivalent.
type UsageFault struct {
	Op  string
	Msg string
}

func (e *UsageFault) Error() string {
	return fmt.Sprintf("sco: usage fault in %s: %s", e.Op, e.Msg)
}

// ResourceFault is panicked when internal bookkeeping fails in a way that
// should be structurally impossible (an allocation or an invariant check).
// The scheduler never attempts partial progress after one of these.
type ResourceFault struct {
	Op  string
	Err error
}

func (e *ResourceFault) Error() string {
	return fmt.Sprintf("sco: resource fault in %s: %v", e.Op, e.Err)
}

func usageFault(op, msg string) {
	panic(&UsageFault{Op: op, Msg: msg})
}
