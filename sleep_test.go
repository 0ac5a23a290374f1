package sco

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSleepHonorsDuration covers S6: Sleep must not return until at least
// the requested number of clock units have elapsed, as measured by the
// Thread's own clock (overridden here so the test is deterministic and
// fast instead of depending on wall-clock time).
func TestSleepHonorsDuration(t *testing.T) {
	var now int64
	th := NewThread(WithClock(func() int64 { return now }))

	var woke bool
	start := int64(1000)
	now = start

	th.Start(Descriptor{
		StackSize: MinStackSize,
		Entry: func(any) {
			Sleep(50)
			woke = true
		},
	})

	th.Resume(0)
	require.False(t, woke)
	require.True(t, th.Active())

	for i := 0; i < 49; i++ {
		now++
		th.Resume(0)
		require.False(t, woke, "woke too early at now=%d", now)
	}

	now++
	th.Resume(0)
	require.True(t, woke)
	require.False(t, th.Active())
	require.GreaterOrEqual(t, now-start, int64(50))
}
