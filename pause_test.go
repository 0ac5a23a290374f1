package sco

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPauseResumeRoundTrip covers R2: a coroutine that pauses itself is
// moved out of the scheduled queue and into the paused set, is inert until
// resumed by id, and then continues exactly where it left off.
func TestPauseResumeRoundTrip(t *testing.T) {
	th := NewThread()
	var steps []string

	id := th.Start(Descriptor{
		StackSize: MinStackSize,
		Entry: func(any) {
			steps = append(steps, "before-pause")
			Pause()
			steps = append(steps, "after-pause")
		},
	})

	th.Resume(0)
	require.Equal(t, []string{"before-pause"}, steps)
	require.Equal(t, 1, th.InfoPaused())
	require.Equal(t, 0, th.InfoScheduled())
	require.True(t, th.Active())

	th.Resume(id)
	require.Equal(t, []string{"before-pause", "after-pause"}, steps)
	require.False(t, th.Active())
}

// TestPauseResumeAtScale covers S4: 100 coroutines each pause once, are
// resumed in id order, pause again, and are resumed in reverse id order,
// twice through, with every coroutine reaching its final statement exactly
// once per resume.
func TestPauseResumeAtScale(t *testing.T) {
	const n = 100
	th := NewThread()

	ids := make([]int64, n)
	progress := make([]int, n)

	for i := 0; i < n; i++ {
		i := i
		ids[i] = th.Start(Descriptor{
			StackSize: MinStackSize,
			Entry: func(any) {
				progress[i] = 1
				Pause()
				progress[i] = 2
				Pause()
				progress[i] = 3
			},
		})
	}

	th.Resume(0) // nothing scheduled: each Start already ran its record to the first Pause
	for _, p := range progress {
		require.Equal(t, 1, p)
	}
	require.Equal(t, n, th.InfoPaused())

	// Resume in id order.
	for _, id := range ids {
		th.Resume(id)
	}
	for _, p := range progress {
		require.Equal(t, 2, p)
	}

	// Resume in reverse id order.
	for i := len(ids) - 1; i >= 0; i-- {
		th.Resume(ids[i])
	}
	for _, p := range progress {
		require.Equal(t, 3, p)
	}

	require.False(t, th.Active())
}
