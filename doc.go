// Package sco implements a symmetric coroutine scheduler: many cooperative
// tasks multiplexed onto a single driving execution context, with explicit
// primitives for pausing, resuming, yielding, sleeping, and migrating a
// coroutine between threads.
//
// A coroutine is started with Start, which first gives every record already
// on the calling Thread's scheduled queue one turn, then switches into the
// new coroutine and returns once that coroutine reaches its first
// suspension. Apart from Start, control only ever transfers at an explicit
// suspension point: Yield, Pause, Sleep, Exit, or the coroutine's entry
// function returning. There is no preemption.
package sco

// MinStackSize is the smallest stack a caller may pass to Start. The
// backend in this implementation runs coroutine bodies on ordinary Go
// goroutine stacks rather than the caller-supplied buffer (see DESIGN.md),
// but Descriptor.StackSize is still validated against this bound and the
// buffer is threaded through to Cleanup unchanged, matching the contract a caller of the original C
// library depends on.
const MinStackSize = 16 * 1024

// Method is the name of the context-switch backend this build selected.
// The reference C implementation picks this at compile time per
// architecture; this implementation has exactly one backend.
const Method = "goroutine-channel-handoff"
