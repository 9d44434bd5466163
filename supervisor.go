package taskrt

import (
	"sync/atomic"

	"github.com/joeycumines/go-taskrt/internal/registry"
)

// taskStatus is the small per-task record spec §3 describes the registry
// as holding.
type taskStatus uint8

const (
	taskRunning taskStatus = iota
	taskFinished
)

type startRequest struct {
	fn  func(arg any)
	arg any
}

// supervisor owns the lifecycle of every task spawned through this
// package: it creates them, joins the ones that finish on their own, and
// forcibly abandons whatever remains running at close (spec §4.6).
type supervisor struct {
	startCh  *Channel[startRequest]
	stopCh   *Channel[uint64]
	closeCtx *Context
	tasks    registry.Registry[taskStatus]
	nextID   atomic.Uint64
	done     chan struct{}
	logger   Logger
}

func newSupervisor(opts *initOptions) (*supervisor, error) {
	startCh, err := NewChannel[startRequest](opts.startBuffer)
	if err != nil {
		return nil, err
	}
	stopCh, err := NewChannel[uint64](opts.stopBuffer)
	if err != nil {
		return nil, err
	}
	closeCtx, err := NewContext()
	if err != nil {
		return nil, err
	}

	sv := &supervisor{
		startCh:  startCh,
		stopCh:   stopCh,
		closeCtx: closeCtx,
		logger:   opts.logger,
		done:     make(chan struct{}),
	}
	go sv.serviceLoop()
	return sv, nil
}

// spawn enqueues a start request. A failure to enqueue (channel closed
// under us, i.e. a close already in flight) is reported rather than
// silently dropped, since it is visible to the caller unlike the
// allocation failures spec §4.6 says the service loop itself ignores.
func (sv *supervisor) spawn(fn func(arg any), arg any) error {
	if fn == nil {
		return ErrNilArgument
	}
	return sv.startCh.Send(startRequest{fn: fn, arg: arg})
}

func (sv *supervisor) serviceLoop() {
	defer close(sv.done)

	for {
		sel := SelectWithContext([]*Context{sv.closeCtx}, sv.startCh, sv.stopCh)

		switch {
		case sel.Is(sv.closeCtx):
			sv.terminateAll()
			_ = sv.startCh.Close()
			_ = sv.stopCh.Close()
			_ = sv.closeCtx.Close()
			return

		case sel.Is(sv.startCh):
			req, err := sv.startCh.Receive()
			if err != nil {
				// Closed concurrently with the close-context firing;
				// the next loop iteration will observe the close.
				continue
			}
			id := sv.nextID.Add(1)
			sv.tasks.Add(id, taskRunning)
			if l := sv.logger; l != nil {
				l.Debug().Any("task", id).Log("task started")
			}
			go sv.runTask(id, req)

		case sel.Is(sv.stopCh):
			id, err := sv.stopCh.Receive()
			if err != nil {
				continue
			}
			sv.tasks.Remove(id)
			if l := sv.logger; l != nil {
				l.Debug().Any("task", id).Log("task joined")
			}
		}
	}
}

// runTask is the wrapper every spawned task runs inside: it invokes the
// user function, then always reports completion on the stop channel, even
// if the user function panicked.
func (sv *supervisor) runTask(id uint64, req startRequest) {
	defer func() {
		if r := recover(); r != nil {
			if l := sv.logger; l != nil {
				l.Err().Any("task", id).Any("panic", r).Log("task panicked")
			}
		}
		_ = sv.stopCh.Send(id)
	}()
	req.fn(req.arg)
}

// terminateAll abandons every task still registered as running. Go has no
// mechanism to forcibly kill a goroutine, so this is the best-effort
// equivalent spec §4.6/§5 calls for: tracking is dropped, and the
// goroutine itself is left to finish (or never finish) on its own,
// potentially leaking whatever it held, exactly as spec §9's "Forced
// termination of tasks" design note accepts.
func (sv *supervisor) terminateAll() {
	sv.tasks.Drain(func(id uint64, _ taskStatus) {
		if l := sv.logger; l != nil {
			l.Warning().Any("task", id).Log("task abandoned at close")
		}
	})
}

func (sv *supervisor) close() error {
	if err := sv.closeCtx.Raise(); err != nil {
		return err
	}
	<-sv.done
	return nil
}
