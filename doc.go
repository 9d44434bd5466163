// Package taskrt provides a small, coherent concurrency toolkit modeled
// after a CSP-style programming model.
//
// Lightweight tasks are spawned with [Spawn] and coordinated through
// bounded, first-in-first-out [Channel] values. [Select] multiplexes
// readiness across channels and [Context] cancellation flags in a single
// blocking (or non-blocking) call. A [Context] carries a binary
// raised/lowered signal that can be toggled immediately or after a delay.
// A background supervisor, started by [Init] and stopped by [Close],
// tracks the lifecycle of every task spawned through this package: it
// joins tasks that finish on their own, and at [Close] stops tracking any
// task still running. Such a task is not stopped: its goroutine keeps
// running until its function returns.
//
// # Quick start
//
//	if err := taskrt.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	defer taskrt.Close()
//
//	c, _ := taskrt.NewChannel[int](1)
//	_ = taskrt.Spawn(func(arg any) {
//	    v, _ := c.Receive()
//	    fmt.Println(v)
//	}, nil)
//	_ = c.Send(42)
//
// # What this package is not
//
// It does not provide fair scheduling between concurrent receivers on the
// same channel, multi-producer/multi-consumer broadcast, cross-channel
// transactional atomicity (Select observes readiness only; it never
// commits a receive as part of the same atomic step), persistence, or
// cross-process transport.
package taskrt
