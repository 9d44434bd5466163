//go:build !linux && !darwin

package taskrt

import "reflect"

// waitAny blocks until a doorbell is pending on at least one of srcs'
// notify channels, left by any push not already taken by an earlier
// wait; it takes one doorbell and returns. There is no pollable
// OS descriptor on this platform, so unlike pollset_unix.go this cannot
// multiplex real file descriptors — only the in-process notify channels
// this package itself drives.
func waitAny(srcs []pollable) {
	cases := make([]reflect.SelectCase, len(srcs))
	for i, s := range srcs {
		cases[i] = reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(s.notifyCh())}
	}
	reflect.Select(cases)
}
