package sco

import "github.com/rs/zerolog"

// Logger receives diagnostic events from a Thread: coroutine start and
// finish, detach and attach. A Thread with no configured Logger is
// silent, matching the teacher's own default of producing no output
// unless asked. Usage faults panic a typed value instead of logging —
// several of their call sites (option validation, the no-current-
// coroutine case) have no Thread, and thus no Logger, in scope at all.
type Logger interface {
	Info() *zerolog.Event
}

// noopLogger discards every event. It is the default so that a *Thread
// built with NewThread(nil options) behaves exactly like one with logging
// compiled out.
type noopLogger struct{}

func (noopLogger) Info() *zerolog.Event { return nil }

func logEvent(e *zerolog.Event, msg string, kv map[string]any) {
	if e == nil {
		return
	}
	for k, v := range kv {
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}
