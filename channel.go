package taskrt

import (
	"sync"
	"time"
)

// Channel is a bounded, first-in-first-out message channel. It owns one
// queue, a mutex serializing every mutation of that queue, a condition
// variable for blocked receivers, and a readiness signal external
// selectors can poll via Select — the structure described in spec §3/§4.2.
type Channel[T any] struct {
	mu     sync.Mutex
	cond   sync.Cond
	q      *boundedQueue[T]
	sig    *signal
	closed bool
}

// NewChannel creates a channel holding up to capacity items. capacity must
// be >= 1; an invalid capacity is a programmer error and panics, mirroring
// this package's other constructors.
func NewChannel[T any](capacity int) (*Channel[T], error) {
	sig, err := newSignal()
	if err != nil {
		return nil, ErrAlloc
	}
	ch := &Channel[T]{
		q:   newBoundedQueue[T](capacity),
		sig: sig,
	}
	ch.cond.L = &ch.mu
	return ch, nil
}

// Cap returns the channel's fixed capacity.
func (c *Channel[T]) Cap() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.q.capacity()
}

// Len returns the number of items currently buffered.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.q.len()
}

// Send enqueues data. If the channel is already at capacity, the oldest
// buffered item is dropped first (spec §4.1: drop-oldest); Send itself
// never blocks and never returns a "full" error for this reason.
func (c *Channel[T]) Send(data T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}

	evicted := c.q.enqueue(data)
	if evicted {
		// The evicted item's token was never going to be consumed by a
		// receive, so it must be reclaimed here to keep the readiness
		// signal's pending count equal to queue occupancy at all times
		// (spec §9 Open Question, resolved as option (a)).
		if err := c.sig.pop(); err != nil {
			return err
		}
	}
	if err := c.sig.push(); err != nil {
		return err
	}
	c.cond.Broadcast()
	return nil
}

// Receive blocks until an item is available, then removes and returns it.
func (c *Channel[T]) Receive() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.q.len() == 0 {
		if c.closed {
			var zero T
			return zero, ErrClosed
		}
		c.cond.Wait()
	}
	return c.receiveLocked()
}

// TryReceive is the non-blocking counterpart to Receive: it returns
// ErrNothing immediately if the channel is currently empty, rather than
// waiting, mirroring the underlying queue's dequeue outcome (spec §4.1).
func (c *Channel[T]) TryReceive() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed && c.q.len() == 0 {
		var zero T
		return zero, ErrClosed
	}
	if c.q.len() == 0 {
		var zero T
		return zero, ErrNothing
	}
	return c.receiveLocked()
}

// ReceiveTimeout behaves like Receive, but returns ErrTimeout if no item
// becomes available before timeout elapses. The deadline is computed from
// the wall clock at entry, per spec §5; a negative timeout is a programmer
// error and panics.
func (c *Channel[T]) ReceiveTimeout(timeout time.Duration) (T, error) {
	if timeout < 0 {
		panic("taskrt: negative receive timeout")
	}

	// Round(0) strips the monotonic reading, so time.Until below measures
	// against the wall clock.
	deadline := time.Now().Round(0).Add(timeout)

	c.mu.Lock()
	defer c.mu.Unlock()

	for c.q.len() == 0 {
		if c.closed {
			var zero T
			return zero, ErrClosed
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			var zero T
			return zero, ErrTimeout
		}
		condWaitTimeout(&c.cond, remaining)
	}
	return c.receiveLocked()
}

// condWaitTimeout waits on cond, which wakes on the next Broadcast/Signal
// or after d elapses, whichever comes first. cond.L must be held by the
// caller, exactly as for cond.Wait. The caller is responsible for
// re-checking both its predicate and the overall deadline afterwards,
// since this may return for either reason, or spuriously.
func condWaitTimeout(cond *sync.Cond, d time.Duration) {
	timer := time.AfterFunc(d, func() {
		cond.L.Lock()
		cond.Broadcast()
		cond.L.Unlock()
	})
	cond.Wait()
	timer.Stop()
}

// receiveLocked must be called with c.mu held and c.q non-empty.
func (c *Channel[T]) receiveLocked() (T, error) {
	v, ok := c.q.dequeue()
	if !ok {
		var zero T
		return zero, ErrNothing
	}
	if c.closed {
		// Close already released the readiness signal; there is no token
		// left to consume for an item drained after close.
		return v, nil
	}
	if err := c.sig.pop(); err != nil {
		return v, err
	}
	return v, nil
}

// Close releases the channel's resources. Any goroutine blocked in
// Receive/ReceiveTimeout wakes with ErrClosed. Sending on a closed channel
// returns ErrClosed. Items still buffered at close can be received; once
// none remain, Receive, ReceiveTimeout and TryReceive return ErrClosed.
func (c *Channel[T]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.cond.Broadcast()
	return c.sig.close()
}

// the following methods implement the pollable interface, so a Channel
// can be passed directly to Select/SelectWithContext and friends.

func (c *Channel[T]) ready() bool               { return c.sig.ready() }
func (c *Channel[T]) fd() int                   { return c.sig.fd() }
func (c *Channel[T]) notifyCh() <-chan struct{} { return c.sig.notifyCh() }
func (c *Channel[T]) handle() Selected          { return Selected{source: c} }
