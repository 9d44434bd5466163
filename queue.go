package taskrt

import "github.com/joeycumines/go-taskrt/internal/list"

// boundedQueue is the fixed-capacity FIFO described in spec §4.1: it
// stores up to capacity items, evicting the oldest on overflow rather than
// rejecting the newest (drop-oldest). It is not itself synchronized; that
// is Channel's responsibility.
type boundedQueue[T any] struct {
	items *list.List[T]
	cap   int
}

func newBoundedQueue[T any](capacity int) *boundedQueue[T] {
	if capacity < 1 {
		panic("taskrt: queue capacity must be >= 1")
	}
	return &boundedQueue[T]{items: list.New[T](), cap: capacity}
}

// enqueue appends v, evicting the oldest item first if the queue is
// already at capacity. evicted reports whether that happened, so the
// caller can keep a coupled readiness signal's pending count in sync.
func (q *boundedQueue[T]) enqueue(v T) (evicted bool) {
	if q.items.Len() >= q.cap {
		q.items.PopFront()
		evicted = true
	}
	q.items.PushBack(v)
	return evicted
}

// dequeue removes and returns the oldest item. ok is false if the queue
// was empty.
func (q *boundedQueue[T]) dequeue() (v T, ok bool) {
	return q.items.PopFront()
}

func (q *boundedQueue[T]) len() int      { return q.items.Len() }
func (q *boundedQueue[T]) capacity() int { return q.cap }
