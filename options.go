package sco

// Option configures a Thread at construction time. Grounded in the
// functional-options shape used by eventloop/options.go in the example
// pack's go-utilpkg monorepo.
type Option func(*Thread)

// WithLogger attaches a structured logger to a Thread. Pass nil to
// restore the silent default.
func WithLogger(l Logger) Option {
	return func(t *Thread) {
		if l == nil {
			l = noopLogger{}
		}
		t.logger = l
	}
}

// WithMinStackSize overrides MinStackSize for a single Thread, e.g. in
// tests that want to exercise B1 without allocating MinStackSize bytes.
// It must still be a positive number of bytes.
func WithMinStackSize(n int) Option {
	return func(t *Thread) {
		if n <= 0 {
			usageFault("WithMinStackSize", "stack size override must be positive")
		}
		t.minStackSize = n
	}
}

// WithClock overrides the monotonic clock Sleep measures against. Defaults
// to Nanotime (the runtime's own clock, linked directly in
// runtime_linkage.go). Tests use this to fake time passing without an
// actual sleep.
func WithClock(clock func() int64) Option {
	return func(t *Thread) {
		if clock == nil {
			usageFault("WithClock", "clock must not be nil")
		}
		t.clock = clock
	}
}
