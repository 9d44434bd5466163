//go:build linux || darwin

package taskrt

import "golang.org/x/sys/unix"

// waitAny blocks until at least one of srcs shows readiness, using a
// single poll(2) call across all of their descriptors — the direct
// translation of original_source/select.h's poll()-based design. The
// caller is responsible for re-scanning srcs with ready() after this
// returns, since a spurious wake (e.g. POLLHUP, or a drop-oldest eviction
// racing the poll) is possible.
func waitAny(srcs []pollable) {
	pfds := make([]unix.PollFd, len(srcs))
	for i, s := range srcs {
		pfds[i] = unix.PollFd{Fd: int32(s.fd()), Events: unix.POLLIN}
	}
	for {
		_, err := unix.Poll(pfds, -1)
		if err == unix.EINTR {
			continue
		}
		return
	}
}
