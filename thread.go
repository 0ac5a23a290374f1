package sco

// Thread is one per-thread scheduler instance (C3): it owns the scheduled
// FIFO, the paused set, and the single running slot for whichever
// goroutine is currently driving it. A *Thread should be driven by a
// single logical execution context at a time — typically one goroutine,
// optionally pinned to an OS thread with runtime.LockOSThread if the
// caller cares about true OS-thread affinity, matching how the reference
// C library is inherently thread-local via __thread globals.
type Thread struct {
	logger       Logger
	minStackSize int
	clock        func() int64

	schedHead, schedTail *record
	scheduledCount       int

	paused       map[int64]*record
	pausedCount  int

	// incoming holds records handed to this Thread by Attach from another
	// goroutine entirely. It is the one part of a Thread's state that is
	// genuinely touched concurrently, hence the lock-free queue rather
	// than a plain map entry (see queue.go). drainIncoming folds it into
	// paused at the start of every round this Thread drives.
	incoming *recordQueue

	running *record
}

// NewThread creates a new, empty per-thread scheduler state.
func NewThread(opts ...Option) *Thread {
	t := &Thread{
		logger:       noopLogger{},
		minStackSize: MinStackSize,
		clock:        Nanotime,
		paused:       make(map[int64]*record),
		incoming:     newRecordQueue(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start creates a coroutine record and switches into it immediately: it
// runs on its backing goroutine, with the caller blocked, until its first
// suspension (yield, pause, or finish), matching the reference library's start-transfers-control
// semantics, valid both from the driving context and from inside a
// coroutine already running on this Thread.
//
// Before switching into the new record, anything already scheduled here
// gets its next turn first — this is what reproduces the reference
// suite's interleaving: a coroutine that starts several children in a
// row sees each already-waiting one run again before the newest one gets
// to (see the ABCDEFGH ordering test and DESIGN.md).
func (t *Thread) Start(desc Descriptor) int64 {
	if desc.StackSize < t.minStackSize {
		usageFault("Start", "stack_size is smaller than MinStackSize")
	}
	if desc.Entry == nil {
		usageFault("Start", "Entry must not be nil")
	}

	resumer := t.running
	t.runRound(0)
	t.running = resumer

	r := &record{id: allocID(), desc: desc, baton: newBaton()}
	r.owner.Store(t)
	r.setState(stateScheduled)
	t.spawnBacking(r)
	logEvent(t.logger.Info(), "coroutine started", map[string]any{"id": r.id})

	t.runToSuspend(r)
	t.running = resumer

	return r.id
}

// spawnBacking starts the dedicated backing goroutine for r. It blocks
// immediately on its first turn and does not begin executing Entry until
// this Thread's run loop resumes it.
func (t *Thread) spawnBacking(r *record) {
	go func() {
		gid := goroutineID()
		setCurrent(gid, r)
		defer func() {
			clearCurrent(gid)
			r.baton.finish()
		}()
		r.baton.awaitFirstTurn()
		r.desc.Entry(r.desc.UData)
	}()
}

// Resume is the run-loop pump. Called from outside any coroutine (id 0
// runs whatever is scheduled; a nonzero id first moves that paused record
// to the front of the scheduled queue), it drives one round of round-robin
// scheduling: records are popped from the head of the scheduled queue in
// FIFO order and each gets one turn, until the head is a record already
// popped in this round or the queue is empty. Finishing, yielding, or
// pausing a coroutine does not end the round early. A Start made during
// the round runs its own nested round and switches into the new record
// directly, so records can get further turns that way.
//
// Calling this from inside a coroutine is a usage fault — use the
// package-level Resume function for the enqueue-only semantics that are
// valid there.
func (t *Thread) Resume(id int64) {
	if currentRecord() != nil {
		usageFault("Resume", "called from inside a coroutine; use sco.Resume instead")
	}
	t.runRound(id)
}

func (t *Thread) runRound(seedID int64) {
	t.drainIncoming()
	if seedID != 0 {
		r, ok := t.paused[seedID]
		if !ok {
			usageFault("Resume", "id is not a paused record on this thread")
		}
		delete(t.paused, seedID)
		t.pausedCount--
		r.setState(stateScheduled)
		t.pushFront(r)
	}
	visited := make(map[int64]bool)
	for {
		r := t.schedHead
		if r == nil || visited[r.id] {
			return
		}
		t.popScheduled()
		visited[r.id] = true
		t.runToSuspend(r)
		t.drainIncoming()
	}
}

// runToSuspend hands the baton to r and waits for it to suspend, then
// routes it to the right place based on why.
func (t *Thread) runToSuspend(r *record) {
	t.running = r
	r.setState(stateRunning)
	why := r.baton.resumeAndWait()
	t.running = nil
	switch why {
	case reasonYielded:
		r.setState(stateScheduled)
		t.pushBack(r)
	case reasonPaused:
		r.setState(statePaused)
		t.paused[r.id] = r
		t.pausedCount++
	case reasonFinished:
		r.setState(stateFinished)
		t.finalize(r)
	}
}

// finalize runs Cleanup from this (driving) goroutine, never from the
// coroutine's own backing goroutine, which has already exited by the time
// reasonFinished is observed.
func (t *Thread) finalize(r *record) {
	if r.desc.Cleanup != nil {
		r.desc.Cleanup(r.desc.Stack, r.desc.StackSize, r.desc.UData)
	}
	logEvent(t.logger.Info(), "coroutine finished", map[string]any{"id": r.id})
}

// enqueueResume implements the "from inside a coroutine" form of resume:
// move a paused id to the tail of the scheduled queue without switching.
func (t *Thread) enqueueResume(id int64) {
	if id == 0 {
		usageFault("Resume", "id 0 has no meaning from inside a coroutine")
	}
	t.drainIncoming()
	r, ok := t.paused[id]
	if !ok {
		usageFault("Resume", "id is not a paused record on this thread")
	}
	delete(t.paused, id)
	t.pausedCount--
	r.setState(stateScheduled)
	t.pushBack(r)
}

// Detach removes a paused record from this Thread's local state and
// parks it in the process-wide detached registry. Legal only when id
// names a record paused on this Thread.
func (t *Thread) Detach(id int64) {
	t.drainIncoming()
	r, ok := t.paused[id]
	if !ok {
		usageFault("Detach", "id is not a paused record on this thread")
	}
	delete(t.paused, id)
	t.pausedCount--
	r.setState(stateDetached)
	r.owner.Store(nil)
	globalRegistry.put(r)
	logEvent(t.logger.Info(), "coroutine detached", map[string]any{"id": id})
}

// Attach claims a detached record for this Thread. The record's saved
// state is unchanged; only its owner and local residency move. A
// subsequent Resume(id) on this Thread runs it here. Because Attach may
// be called from a goroutine other than the one driving this Thread, the
// new residency is only guaranteed visible after this Thread's next
// Resume call (see incoming/drainIncoming above) — every scenario in this
// package's tests attaches and then resumes from the same goroutine, in
// which case the ordering is immediate.
func (t *Thread) Attach(id int64) {
	r := globalRegistry.take(id)
	if r == nil {
		usageFault("Attach", "id is not a detached record")
	}
	r.owner.Store(t)
	r.setState(statePaused)
	t.incoming.push(r)
	logEvent(t.logger.Info(), "coroutine attached", map[string]any{"id": id})
}

func (t *Thread) drainIncoming() {
	for {
		r := t.incoming.pop()
		if r == nil {
			return
		}
		t.paused[r.id] = r
		t.pausedCount++
	}
}

// InfoRunning reports whether this Thread currently has a running record.
func (t *Thread) InfoRunning() int {
	if t.running != nil {
		return 1
	}
	return 0
}

// InfoPaused reports how many records are paused on this Thread.
func (t *Thread) InfoPaused() int {
	t.drainIncoming()
	return t.pausedCount
}

// InfoScheduled reports how many records are ready to run on this Thread.
func (t *Thread) InfoScheduled() int {
	return t.scheduledCount
}

// Active reports whether this Thread has any running, paused, or
// scheduled work.
func (t *Thread) Active() bool {
	return t.InfoRunning() > 0 || t.InfoPaused() > 0 || t.InfoScheduled() > 0
}

// InfoDetached returns the process-wide count of detached records. Unlike
// the other introspection counters this is not per-Thread: there is no
// per-Thread detached count, and detaching a record only lowers the
// detaching Thread's paused count (spec.md §4.4).
func InfoDetached() int {
	return globalRegistry.count()
}

func (t *Thread) pushBack(r *record) {
	r.next = nil
	if t.schedTail == nil {
		t.schedHead, t.schedTail = r, r
	} else {
		t.schedTail.next = r
		t.schedTail = r
	}
	t.scheduledCount++
}

func (t *Thread) pushFront(r *record) {
	r.next = t.schedHead
	t.schedHead = r
	if t.schedTail == nil {
		t.schedTail = r
	}
	t.scheduledCount++
}

func (t *Thread) popScheduled() *record {
	r := t.schedHead
	if r == nil {
		return nil
	}
	t.schedHead = r.next
	if t.schedHead == nil {
		t.schedTail = nil
	}
	r.next = nil
	t.scheduledCount--
	return r
}
