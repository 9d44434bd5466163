package taskrt

// initOptions holds configuration for Init.
type initOptions struct {
	startBuffer int
	stopBuffer  int
	logger      Logger
}

// Option configures the process-wide supervisor created by Init.
type Option interface {
	applyInit(*initOptions)
}

type optionFunc func(*initOptions)

func (f optionFunc) applyInit(o *initOptions) { f(o) }

// WithStartBuffer sets the capacity of the supervisor's start-request
// channel (spec default: 8). Values <= 0 are ignored.
func WithStartBuffer(n int) Option {
	return optionFunc(func(o *initOptions) {
		if n > 0 {
			o.startBuffer = n
		}
	})
}

// WithStopBuffer sets the capacity of the supervisor's task-finished
// channel (spec default: 8). Values <= 0 are ignored.
func WithStopBuffer(n int) Option {
	return optionFunc(func(o *initOptions) {
		if n > 0 {
			o.stopBuffer = n
		}
	})
}

// WithLogger overrides the logger used by the supervisor created by this
// call to Init. It does not affect SetLogger's package-wide default.
func WithLogger(l Logger) Option {
	return optionFunc(func(o *initOptions) {
		if l != nil {
			o.logger = l
		}
	})
}

func resolveInitOptions(opts []Option) *initOptions {
	o := &initOptions{
		startBuffer: 8,
		stopBuffer:  8,
		logger:      getLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyInit(o)
	}
	return o
}
