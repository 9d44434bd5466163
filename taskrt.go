package taskrt

import "sync"

var (
	facadeMu sync.Mutex
	active   *supervisor
	closed   bool
)

// Init must be called before Spawn, or any of this package's process-wide
// API. It allocates the background supervisor and starts its service
// task. Re-initialization after Close is not supported: once Close has
// been called, every subsequent Init returns ErrAlreadyClosed. Calling
// Init twice without an intervening Close returns ErrAlreadyInitialized.
func Init(opts ...Option) error {
	facadeMu.Lock()
	defer facadeMu.Unlock()

	if closed {
		return ErrAlreadyClosed
	}
	if active != nil {
		return ErrAlreadyInitialized
	}

	sv, err := newSupervisor(resolveInitOptions(opts))
	if err != nil {
		return err
	}
	active = sv
	return nil
}

// Close raises the supervisor's close-context, joins its service task
// (which itself abandons any still-running spawned tasks, per spec §4.6),
// and releases the supervisor. Close is a one-shot, terminal operation:
// once called, this package's process-wide API can never be
// re-initialized. Calling Close without a prior, matching Init returns
// ErrNotInitialized.
func Close() error {
	facadeMu.Lock()
	sv := active
	active = nil
	if sv != nil {
		closed = true
	}
	facadeMu.Unlock()

	if sv == nil {
		return ErrNotInitialized
	}
	return sv.close()
}

// Spawn builds a start request for fn(arg) and sends it to the
// supervisor's start channel; the supervisor creates the goroutine and
// tracks its lifecycle. Spawn returns ErrNotInitialized if called before
// Init or after Close.
func Spawn(fn func(arg any), arg any) error {
	facadeMu.Lock()
	sv := active
	facadeMu.Unlock()

	if sv == nil {
		return ErrNotInitialized
	}
	return sv.spawn(fn, arg)
}
