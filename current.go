package sco

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// current maps a goroutine id to the record it is currently running as.
// This is the closest Go gets to thread-local storage, and is what lets
// ID, UData, Yield, Pause, Sleep, and Exit work with no explicit handle:
// they look up "who am I" rather than being passed it.
//
// A goroutine id is assigned to this table exactly once, when the
// coroutine's backing goroutine is spawned (see thread.go's spawnBacking), and
// removed once the coroutine finishes. Parking and resuming the same
// goroutine never changes its id, so no further bookkeeping is needed
// across suspend/resume cycles.
var current = struct {
	mu sync.Mutex
	m  map[uint64]*record
}{m: make(map[uint64]*record)}

func setCurrent(gid uint64, r *record) {
	current.mu.Lock()
	current.m[gid] = r
	current.mu.Unlock()
}

func clearCurrent(gid uint64) {
	current.mu.Lock()
	delete(current.m, gid)
	current.mu.Unlock()
}

func currentRecord() *record {
	gid := goroutineID()
	current.mu.Lock()
	r := current.m[gid]
	current.mu.Unlock()
	return r
}

// goroutineID extracts the runtime's numeric goroutine id from a stack
// trace header ("goroutine 123 [running]:"). This is the standard
// allocation-light way to do it in pure Go, without resorting to the
// compiler-internal getg() that would require a hand-written assembly
// stub for every supported architecture.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		panic(&ResourceFault{Op: "goroutineID", Err: err})
	}
	return id
}
