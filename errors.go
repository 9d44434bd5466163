package taskrt

import "errors"

// Sentinel errors returned by this package's operations. Callers should
// match them with [errors.Is], not direct comparison, since wrapping may
// be introduced by future revisions.
var (
	// ErrNothing is returned by a non-blocking receive (or dequeue) when
	// there is nothing to return. It is informational, not a failure.
	ErrNothing = errors.New("taskrt: nothing available")

	// ErrTimeout is returned by a timed receive when the deadline elapses
	// before an item became available. It is a normal,
	// expected outcome and must not be treated as a failure.
	ErrTimeout = errors.New("taskrt: timed out")

	// ErrQueueFull is reserved for API completeness with the source this
	// package is modeled on. Because channels evict the oldest item on
	// overflow instead of rejecting the newest, no send path in this
	// package can ever return it.
	ErrQueueFull = errors.New("taskrt: queue full")

	// ErrNilArgument is returned when a required argument is nil (Spawn
	// with a nil function).
	ErrNilArgument = errors.New("taskrt: nil argument")

	// ErrAlloc is returned when an internal allocation (e.g. of OS
	// resources backing a readiness signal) failed.
	ErrAlloc = errors.New("taskrt: allocation failed")

	// ErrTaskFailed is reserved for API completeness with the source this
	// package is modeled on. No operation in this package returns it.
	ErrTaskFailed = errors.New("taskrt: task could not be started")

	// ErrInvalidIndex is reserved for API completeness with the source this
	// package is modeled on. No operation in this package takes an index,
	// so none returns it.
	ErrInvalidIndex = errors.New("taskrt: index out of range")

	// ErrAlreadyInitialized is returned by Init when the process-wide
	// supervisor has already been initialized and not yet closed.
	ErrAlreadyInitialized = errors.New("taskrt: already initialized")

	// ErrNotInitialized is returned by Spawn and Close when Init has not
	// been called, or Close has already been called.
	ErrNotInitialized = errors.New("taskrt: not initialized")

	// ErrAlreadyClosed is returned by Init when Close has already been
	// called once for this process. Re-initialization after Close is not
	// supported.
	ErrAlreadyClosed = errors.New("taskrt: already closed")

	// ErrClosed is returned by Send/Receive/Raise/Lower on a Channel or
	// Context that has already been closed or destroyed. The original
	// source leaves this as undefined behavior; this package makes it a
	// safe, returned error instead.
	ErrClosed = errors.New("taskrt: closed")
)

// IsNothing reports whether err is (or wraps) ErrNothing.
func IsNothing(err error) bool { return errors.Is(err, ErrNothing) }

// IsTimeout reports whether err is (or wraps) ErrTimeout.
func IsTimeout(err error) bool { return errors.Is(err, ErrTimeout) }

// IsInvalid reports whether err is (or wraps) ErrInvalidIndex.
func IsInvalid(err error) bool { return errors.Is(err, ErrInvalidIndex) }
