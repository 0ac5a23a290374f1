package sco

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// global memory pool for storing and leasing queue nodes
var qnodePool = sync.Pool{New: func() any { return new(qnode) }}

// recordQueue is a lock-free FIFO of *record.
//
// theory -> https://www.cs.rochester.edu/u/scott/papers/1996_PODC_queues.pdf
// pseudocode -> https://www.cs.rochester.edu/research/synchronization/pseudocode/queues.html
//
// Adapted from the teacher's list.go: the scheduled queue and paused set on
// a Thread are touched only by whichever execution context currently holds
// the baton, so a plain slice/map would do for them. This lock-free queue
// earns its keep on the one path that is genuinely concurrent: Attach
// handing a record to a Thread's run loop from another goroutine entirely
// (see thread.go's incoming field).
type recordQueue struct {
	head unsafe.Pointer
	tail unsafe.Pointer
}

type qnode struct {
	value unsafe.Pointer // *record
	next  unsafe.Pointer // *qnode
}

func newRecordQueue() *recordQueue {
	n := qnodePool.Get().(*qnode)
	n.value, n.next = nil, nil
	ptr := unsafe.Pointer(n)
	return &recordQueue{head: ptr, tail: ptr}
}

// push inserts a record at the tail of the queue.
func (l *recordQueue) push(r *record) {
	n := qnodePool.Get().(*qnode)
	n.value, n.next = unsafe.Pointer(r), nil
	for {
		tail := loadQNode(&l.tail)
		next := loadQNode(&tail.next)
		if tail == loadQNode(&l.tail) { // are tail and next consistent?
			if next == nil {
				if casQNode(&tail.next, next, n) {
					casQNode(&l.tail, tail, n) // swing tail to the inserted node
					return
				}
			} else { // tail was not pointing to the last node
				casQNode(&l.tail, tail, next)
			}
		}
	}
}

// pop removes and returns the record at the head of the queue, or nil if
// the queue is empty.
func (l *recordQueue) pop() *record {
	for {
		head := loadQNode(&l.head)
		tail := loadQNode(&l.tail)
		next := loadQNode(&head.next)
		if head == loadQNode(&l.head) { // are head, tail, and next consistent?
			if head == tail { // is queue empty or tail falling behind?
				if next == nil {
					return nil
				}
				casQNode(&l.tail, tail, next)
			} else {
				value := next.value
				if casQNode(&l.head, head, next) {
					head.value, head.next = nil, nil
					qnodePool.Put(head)
					return (*record)(value)
				}
			}
		}
	}
}

func loadQNode(p *unsafe.Pointer) (n *qnode) {
	return (*qnode)(atomic.LoadPointer(p))
}

func casQNode(p *unsafe.Pointer, old, new *qnode) bool {
	return atomic.CompareAndSwapPointer(p, unsafe.Pointer(old), unsafe.Pointer(new))
}
