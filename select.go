package taskrt

// pollable is the common readiness surface Channel and Context expose to
// Select. It never consumes a token: Select only reports which source is
// ready, leaving the subsequent Receive or Flag read to consume it (spec
// §4.4: "Select does NOT consume readiness tokens nor mutate any queue").
type pollable interface {
	ready() bool
	fd() int
	notifyCh() <-chan struct{}
	handle() Selected
}

// Chan is implemented by *Channel[T] for any T, allowing channels of
// different element types to be passed to Select together.
type Chan interface {
	pollable
}

// Selected is the opaque handle Select returns: comparable by equality
// against the channel or context instance that was ready, per spec §6.
type Selected struct {
	source any
}

// None is returned by the default Select variants when nothing is ready.
var None = Selected{}

// IsNone reports whether s is the sentinel "nothing ready" handle.
func (s Selected) IsNone() bool { return s.source == nil }

// Is reports whether s identifies the given channel or context instance.
func (s Selected) Is(v any) bool { return s.source != nil && s.source == v }

func selectCore(contexts []*Context, channels []Chan, block bool) Selected {
	srcs := make([]pollable, 0, len(contexts)+len(channels))
	handles := make([]Selected, 0, cap(srcs))
	for _, c := range contexts {
		if c == nil {
			continue
		}
		srcs = append(srcs, c)
		handles = append(handles, c.handle())
	}
	for _, c := range channels {
		if c == nil {
			continue
		}
		srcs = append(srcs, c)
		handles = append(handles, c.handle())
	}
	if len(srcs) == 0 {
		return None
	}
	for {
		for i, s := range srcs {
			if s.ready() {
				return handles[i]
			}
		}
		if !block {
			return None
		}
		waitAny(srcs)
	}
}

// Select blocks until at least one channel is non-empty, then returns a
// handle identifying it. When multiple channels are simultaneously ready,
// the one appearing earliest in the argument list wins.
func Select(channels ...Chan) Selected {
	return selectCore(nil, channels, true)
}

// SelectDefault is the non-blocking form of Select: it returns None
// immediately if no channel is currently ready.
func SelectDefault(channels ...Chan) Selected {
	return selectCore(nil, channels, false)
}

// SelectWithContext blocks until at least one context is Raised or one
// channel is non-empty. Contexts are tested before channels at equal
// readiness; argument order is otherwise the tie-break, within each group.
func SelectWithContext(contexts []*Context, channels ...Chan) Selected {
	return selectCore(contexts, channels, true)
}

// SelectDefaultWithContext is the non-blocking form of SelectWithContext.
func SelectDefaultWithContext(contexts []*Context, channels ...Chan) Selected {
	return selectCore(contexts, channels, false)
}
