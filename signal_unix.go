//go:build linux || darwin

package taskrt

import (
	"golang.org/x/sys/unix"
)

// pipeSignal backs a signal with a self-pipe, the same mechanism
// original_source/channel.h and original_source/context.h use, and the
// same syscall package (golang.org/x/sys/unix) eventloop's poller uses for
// its own wakeup fd.
type pipeSignal struct {
	r, w int
}

func newSignalImpl() (signalImpl, error) {
	fds := make([]int, 2)
	if err := unix.Pipe(fds); err != nil {
		return nil, ErrAlloc
	}
	if err := unix.SetNonblock(fds[0], true); err != nil {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
		return nil, ErrAlloc
	}
	if err := unix.SetNonblock(fds[1], true); err != nil {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
		return nil, ErrAlloc
	}
	return &pipeSignal{r: fds[0], w: fds[1]}, nil
}

func (p *pipeSignal) push() error {
	var b [1]byte
	for {
		_, err := unix.Write(p.w, b[:])
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		return err
	}
}

func (p *pipeSignal) pop() error {
	var b [1]byte
	for {
		_, err := unix.Read(p.r, b[:])
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		return err
	}
}

func (p *pipeSignal) fd() int { return p.r }

func (p *pipeSignal) close() error {
	err1 := unix.Close(p.r)
	err2 := unix.Close(p.w)
	if err1 != nil {
		return err1
	}
	return err2
}
