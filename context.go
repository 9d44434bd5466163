package taskrt

import (
	"sync"
	"time"
)

// ContextFlag is the binary state carried by a Context. It is signed so
// that the nil-receiver sentinel ContextFlag(-1) (see Flag) is
// representable alongside Lowered and Raised.
type ContextFlag int8

const (
	// Lowered is a Context's initial, "not cancelled" state.
	Lowered ContextFlag = iota
	// Raised is a Context's "cancelled" state.
	Raised
)

func (f ContextFlag) String() string {
	if f == Raised {
		return "raised"
	}
	return "lowered"
}

// Context carries a binary raised/lowered cancellation signal. It is the
// only cooperative cancellation mechanism this package provides: a task
// may Select on a Context of its own and exit voluntarily when it sees
// Raised.
type Context struct {
	mu     sync.Mutex
	flag   ContextFlag
	sig    *signal
	closed bool
}

// NewContext creates a new Context, initially Lowered.
func NewContext() (*Context, error) {
	sig, err := newSignal()
	if err != nil {
		return nil, ErrAlloc
	}
	return &Context{sig: sig}, nil
}

// Raise transitions the context to Raised. Raising an already-Raised
// context has no observable effect (idempotent, per spec §4.3).
func (c *Context) Raise() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.flag != Raised {
		c.flag = Raised
		return c.sig.push()
	}
	return nil
}

// Lower transitions the context to Lowered. Lowering an already-Lowered
// context has no observable effect (idempotent, per spec §4.3).
func (c *Context) Lower() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.flag == Raised {
		c.flag = Lowered
		return c.sig.pop()
	}
	return nil
}

// Flag returns the context's current state. ok is false only when c is
// nil, in which case flag is ContextFlag(-1), mirroring the SG_CTX_ERROR
// sentinel the source this package is modeled on returns for a missing
// context.
func (c *Context) Flag() (flag ContextFlag, ok bool) {
	if c == nil {
		return ContextFlag(-1), false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flag, true
}

// RaiseAfter arranges for Raise to be called after delay elapses, without
// blocking the caller. It uses a runtime timer (time.AfterFunc), the
// direct analogue of original_source/context.h's POSIX interval timer.
func (c *Context) RaiseAfter(delay time.Duration) {
	time.AfterFunc(delay, func() { _ = c.Raise() })
}

// LowerAfter arranges for Lower to be called after delay elapses, without
// blocking the caller.
func (c *Context) LowerAfter(delay time.Duration) {
	time.AfterFunc(delay, func() { _ = c.Lower() })
}

// Close releases the context's resources. Raise/Lower on a closed context
// return ErrClosed.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.sig.close()
}

// the following methods implement the pollable interface, so a Context
// can be passed directly to SelectWithContext and friends.

func (c *Context) ready() bool               { return c.sig.ready() }
func (c *Context) fd() int                   { return c.sig.fd() }
func (c *Context) notifyCh() <-chan struct{} { return c.sig.notifyCh() }
func (c *Context) handle() Selected          { return Selected{source: c} }
