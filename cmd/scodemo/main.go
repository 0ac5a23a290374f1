package main

import (
	"fmt"
	"runtime"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/tidwall/sco"
)

// main starts a root coroutine that fans out a handful of children and
// yields once itself, then lets the scheduler finish draining them, mirroring the teacher example's
// fan-out-then-read shape (examples/main.go) transplanted onto this
// package's scheduling model instead of a channel.
func main() {
	// Go's GOMAXPROCS defaults to the host's full core count even inside a
	// container cgroup quota; without this the driving goroutine below
	// competes for more OS threads than it is actually entitled to.
	if _, err := maxprocs.Set(); err != nil {
		fmt.Println("maxprocs:", err)
	}

	// For lowest latency, dedicate an entire OS thread to the goroutine
	// driving the scheduler, exactly as the teacher's example recommends
	// doing for its own read loop.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	th := sco.NewThread()

	th.Start(sco.Descriptor{
		StackSize: sco.MinStackSize,
		Entry: func(udata any) {
			fmt.Println("root: starting children")
			for i := 0; i < 5; i++ {
				n := i
				th.Start(sco.Descriptor{
					StackSize: sco.MinStackSize,
					Entry: func(udata any) {
						fmt.Printf("child %d: running\n", n)
						sco.Yield()
						fmt.Printf("child %d: done\n", n)
					},
					UData: n,
				})
			}
			fmt.Println("root: children launched, yielding to let them finish")
			sco.Yield()
		},
	})

	for th.Active() {
		th.Resume(0)
	}
	fmt.Println("demo: scheduler quiescent")
}
