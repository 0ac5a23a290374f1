package sco

// reason identifies why a coroutine handed the baton back to its driver.
type reason uint8

const (
	reasonYielded reason = iota
	reasonPaused
	reasonFinished
)

// baton is the context-switch primitive (C1): a private, synchronous
// rendezvous between a coroutine's backing goroutine and whichever
// execution context is currently driving it.
//
// Adapted from the teacher's thread_parker.go, which parks a waiting
// goroutine and wakes it with minimal overhead via the runtime's own
// gopark/goready pair. That technique only guarantees that some parked
// goroutine resumes soon after Ready is called, not that execution is
// confined to exactly the two parties of a single swap — Go's M:N runtime
// scheduler is free to run other ready goroutines on other OS threads in
// the meantime. The scheduling-order guarantees this package makes (see
// thread.go) need the latter, so the handoff here is a plain two-channel
// ping-pong instead: each side blocks until the other signals, which is
// exactly the "save one context, restore the other" contract a real
// swap(from, to) provides, expressed with channels instead of registers.
type baton struct {
	wake chan struct{} // driver -> coroutine: "it's your turn"
	back chan reason   // coroutine -> driver: "I've suspended, here's why"
}

func newBaton() *baton {
	return &baton{
		wake: make(chan struct{}),
		back: make(chan reason),
	}
}

// resumeAndWait hands the baton to the coroutine and blocks until it hands
// it back. Called only from the driving context (the Thread's run loop).
func (b *baton) resumeAndWait() reason {
	b.wake <- struct{}{}
	return <-b.back
}

// suspend hands the baton back to the driver with the given reason, then
// blocks until the driver hands it forward again. Called only from inside
// the coroutine's own backing goroutine.
func (b *baton) suspend(r reason) {
	b.back <- r
	<-b.wake
}

// awaitFirstTurn blocks a freshly spawned backing goroutine until the
// driver calls resumeAndWait for the first time.
func (b *baton) awaitFirstTurn() {
	<-b.wake
}

// finish hands the baton back one last time, reporting that the
// coroutine's entry function has returned. The backing goroutine exits
// immediately afterward; there is no corresponding wait.
func (b *baton) finish() {
	b.back <- reasonFinished
}
