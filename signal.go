package taskrt

import "sync/atomic"

// signal is the readiness signal described in spec §3: a one-way
// indicator whose pending-token count a caller can inspect without
// blocking (ready), and which a select implementation can block on
// alongside other signals (see pollset_unix.go / pollset_other.go).
//
// push and pop must only be called while the owning Channel/Context holds
// its mutex, so that the pending count tracked here stays exactly in sync
// with queue occupancy or context flag state, per the invariant in spec §4.2.
type signal struct {
	pending atomic.Int32
	notify  chan struct{}
	impl    signalImpl
}

// signalImpl is the OS-specific (or fallback) half of a signal: whatever
// is needed to give a blocking select something to wait on.
type signalImpl interface {
	// push is called once per token appended. It must not block
	// indefinitely; transient EAGAIN/EINTR is retried internally.
	push() error
	// pop is called once per token removed. The caller guarantees a
	// token is actually pending.
	pop() error
	// fd returns a pollable descriptor for this signal, or -1 if this
	// platform has none (see pollset_other.go).
	fd() int
	close() error
}

func newSignal() (*signal, error) {
	impl, err := newSignalImpl()
	if err != nil {
		return nil, err
	}
	return &signal{
		notify: make(chan struct{}, 1),
		impl:   impl,
	}, nil
}

func (s *signal) push() error {
	if err := s.impl.push(); err != nil {
		return err
	}
	s.pending.Add(1)
	select {
	case s.notify <- struct{}{}:
	default:
	}
	return nil
}

func (s *signal) pop() error {
	if err := s.impl.pop(); err != nil {
		return err
	}
	s.pending.Add(-1)
	return nil
}

// ready reports whether at least one token is currently pending, without
// blocking and without consuming anything.
func (s *signal) ready() bool { return s.pending.Load() > 0 }

func (s *signal) fd() int { return s.impl.fd() }

func (s *signal) notifyCh() <-chan struct{} { return s.notify }

func (s *signal) close() error { return s.impl.close() }
