package sco

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
)

// Dump prints this Thread's scheduled, paused, and running state to stderr
// for interactive debugging. Adapted from the teacher's ZenQ.Dump, widened
// from a one-line printf to spew.Fdump since a record's interesting state
// (descriptor, wake deadline, lifecycle state) is considerably richer than
// a queue slot.
func (t *Thread) Dump() {
	fmt.Fprintf(os.Stderr, "thread: scheduled=%d paused=%d running=%d\n",
		t.scheduledCount, t.pausedCount, t.InfoRunning())
	if t.running != nil {
		fmt.Fprintln(os.Stderr, "running:")
		spew.Fdump(os.Stderr, snapshotRecord(t.running))
	}
	fmt.Fprintln(os.Stderr, "scheduled:")
	for r := t.schedHead; r != nil; r = r.next {
		spew.Fdump(os.Stderr, snapshotRecord(r))
	}
	fmt.Fprintln(os.Stderr, "paused:")
	for _, r := range t.paused {
		spew.Fdump(os.Stderr, snapshotRecord(r))
	}
}

// recordSnapshot is presented to spew in place of the record itself: a
// record carries a *baton and user Entry/Cleanup closures that spew would
// otherwise try (and fail) to walk meaningfully.
type recordSnapshot struct {
	ID           int64
	State        string
	WakeDeadline int64
}

func snapshotRecord(r *record) recordSnapshot {
	return recordSnapshot{ID: r.id, State: r.getState().String(), WakeDeadline: r.wakeDeadline}
}
