package sco

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestDetachAttachRoundTrip covers R1: a paused record removed from its
// Thread via Detach shows up in the process-wide detached count, is gone
// from the original Thread's paused count, and running it to completion
// after Attach on a second Thread behaves exactly as if it had never left.
func TestDetachAttachRoundTrip(t *testing.T) {
	threadA := NewThread()
	threadB := NewThread()

	var finished bool
	id := threadA.Start(Descriptor{
		StackSize: MinStackSize,
		Entry: func(any) {
			Pause()
			finished = true
		},
	})

	threadA.Resume(0)
	require.Equal(t, 1, threadA.InfoPaused())

	before := InfoDetached()
	threadA.Detach(id)
	require.Equal(t, 0, threadA.InfoPaused())
	require.Equal(t, before+1, InfoDetached())

	threadB.Attach(id)
	require.Equal(t, before, InfoDetached())
	require.Equal(t, 1, threadB.InfoPaused())

	threadB.Resume(id)
	require.True(t, finished)
	require.False(t, threadB.Active())
}

// TestAttachRunsOnNewThread covers P6: a coroutine started on one Thread,
// detached, attached to a different one, and resumed there runs to
// completion and observes the second Thread as its owner — confirming the
// record's owner, not the Thread it was born on, is what's authoritative.
func TestAttachRunsOnNewThread(t *testing.T) {
	threadA := NewThread()
	threadB := NewThread()

	done := make(chan struct{})
	var owner *Thread
	id := threadA.Start(Descriptor{
		StackSize: MinStackSize,
		Entry: func(any) {
			Pause()
			// The owner seen here must be threadB, since that is this
			// record's owner by the time it runs again.
			owner = currentRecord().owner.Load()
			close(done)
		},
	})
	threadA.Resume(0)
	threadA.Detach(id)
	threadB.Attach(id)
	threadB.Resume(id)

	select {
	case <-done:
	default:
		t.Fatal("coroutine did not run to completion on its new thread")
	}
	require.Same(t, threadB, owner)
	require.False(t, threadB.Active())
	require.False(t, threadA.Active())
}

// TestCrossThreadMigrationAtScale covers S5: 100 coroutines started and
// paused on thread A are all detached, then attached and resumed to
// completion by thread B, driven from a second goroutine.
func TestCrossThreadMigrationAtScale(t *testing.T) {
	const n = 100
	var now int64
	threadA := NewThread(WithClock(func() int64 { return now }))
	threadB := NewThread()

	ids := make([]int64, n)
	completed := make([]bool, n)
	for i := 0; i < n; i++ {
		i := i
		ids[i] = threadA.Start(Descriptor{
			StackSize: MinStackSize,
			Entry: func(any) {
				Sleep(1)
				Pause()
				completed[i] = true
			},
		})
	}
	for threadA.InfoPaused() < n {
		now++
		threadA.Resume(0)
	}
	require.Equal(t, n, threadA.InfoPaused())

	baseline := InfoDetached()
	var g errgroup.Group
	g.Go(func() error {
		for _, id := range ids {
			threadA.Detach(id)
		}
		return nil
	})
	require.NoError(t, g.Wait())
	require.Equal(t, baseline+n, InfoDetached())
	require.Equal(t, 0, threadA.InfoPaused())

	g.Go(func() error {
		for _, id := range ids {
			threadB.Attach(id)
			threadB.Resume(id)
		}
		return nil
	})
	require.NoError(t, g.Wait())

	for i, ok := range completed {
		require.True(t, ok, "coroutine %d did not complete after migration", i)
	}
	require.False(t, threadB.Active())
}
